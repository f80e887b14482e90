// Package wordlist loads and normalizes candidate-word lists shared by the
// CLI and the solve service.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Load reads one word per line from path, lowercased and trimmed. Blank
// lines and lines starting with '#' are skipped. Words must be lowercase
// ASCII letters after trimming.
func Load(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
			}
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// Normalize lowercases, validates, de-duplicates, and sorts a vocabulary,
// dropping any excluded words.
func Normalize(words []string, excluded []string) ([]string, error) {
	skip := make(map[string]bool, len(excluded))
	for _, word := range excluded {
		skip[strings.ToLower(word)] = true
	}

	seen := make(map[string]bool, len(words))
	var out []string
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" || skip[word] || seen[word] {
			continue
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
			}
		}
		seen[word] = true
		out = append(out, word)
	}
	slices.Sort(out)
	return out, nil
}
