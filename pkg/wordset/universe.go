package wordset

import (
	"math/bits"
	"slices"
	"sync"
)

// Universe indexes a fixed vocabulary so that subsets of it can be
// represented as bitsets and filtered by letter constraints without
// scanning the word list.
//
// A Universe is immutable after construction and safe for concurrent use.
type Universe struct {
	words  []string
	blocks int
	maxLen int

	indexOnce   sync.Once
	indexByWord map[string]int

	masksOnce sync.Once
	// masks is a flattened 3D tensor of word-membership bitsets.
	//
	// Conceptually it is:
	//   masks[pos][charIdx] = BitSet(words that have rune(minChar+charIdx) at position pos)
	//
	// Each BitSet is stored as `blocks` uint64s so it can be ANDed against a
	// Set's bitset without allocating or scanning the full word list. Words
	// shorter than pos simply never appear in masks for that position.
	//
	// Layout:
	//   base := (pos*numChars + charIdx) * blocks
	//   masks[base + block] is the uint64 for that block.
	masks []uint64
}

// NewUniverse builds a Universe over the given vocabulary. The word list is
// sorted and de-duplicated; all words are expected to be lowercase a-z.
func NewUniverse(words []string) *Universe {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	maxLen := 0
	for _, w := range sorted {
		if len(w) > maxLen {
			maxLen = len(w)
		}
	}

	return &Universe{
		words:  sorted,
		blocks: (len(sorted) + 63) / 64,
		maxLen: maxLen,
	}
}

// Len returns the number of words in the universe.
func (u *Universe) Len() int {
	return len(u.words)
}

// Word returns the word at a given index.
func (u *Universe) Word(idx int) string {
	return u.words[idx]
}

// Index returns the index of a word, if present.
func (u *Universe) Index(word string) (int, bool) {
	u.ensureIndexByWord()
	idx, ok := u.indexByWord[word]
	return idx, ok
}

func (u *Universe) ensureIndexByWord() {
	u.indexOnce.Do(func() {
		m := make(map[string]int, len(u.words))
		for i, w := range u.words {
			m[w] = i
		}
		u.indexByWord = m
	})
}

func (u *Universe) ensureMasks() {
	u.masksOnce.Do(func() {
		if len(u.words) == 0 {
			u.masks = nil
			return
		}

		total := u.maxLen * numChars * u.blocks
		u.masks = make([]uint64, total)

		for wi, word := range u.words {
			block := wi / 64
			bit := uint(wi % 64)
			for pos := 0; pos < len(word); pos++ {
				r := rune(word[pos])
				if r < minChar || r > maxChar {
					continue
				}
				cidx := int(r - minChar)
				base := (pos*numChars + cidx) * u.blocks
				u.masks[base+block] |= 1 << bit
			}
		}
	})
}

// maskBase returns the base index into u.masks for (pos,charIdx).
//
// The caller can then index u.masks[base+i] for i in [0, blocks).
func (u *Universe) maskBase(pos int, charIdx int) int {
	return (pos*numChars + charIdx) * u.blocks
}

// Full returns a Set holding every word in the universe.
func (u *Universe) Full() *Set {
	set := make([]uint64, u.blocks)
	n := len(u.words)
	for i := range set {
		set[i] = ^uint64(0)
	}
	// clear unused bits in last word
	if rem := n % 64; rem != 0 {
		set[len(set)-1] = (uint64(1) << uint(rem)) - 1
	}
	return &Set{u: u, blocks: set, count: n}
}

// Empty returns a Set holding no words.
func (u *Universe) Empty() *Set {
	return &Set{u: u, blocks: make([]uint64, u.blocks)}
}

func firstSetBit(set []uint64) int {
	for bi, block := range set {
		if block == 0 {
			continue
		}
		return bi*64 + bits.TrailingZeros64(block)
	}
	return -1
}

func hasIntersectionAt(set []uint64, masks []uint64, base int, blocks int) bool {
	for i := 0; i < blocks; i++ {
		if set[i]&masks[base+i] != 0 {
			return true
		}
	}
	return false
}

func hasBit(set []uint64, idx int) bool {
	bi := idx / 64
	bit := uint(idx % 64)
	return (set[bi] & (uint64(1) << bit)) != 0
}

// clearBit clears idx in set and returns true if it was previously set.
func clearBit(set []uint64, idx int) bool {
	bi := idx / 64
	bit := uint(idx % 64)
	mask := uint64(1) << bit
	had := (set[bi] & mask) != 0
	set[bi] &^= mask
	return had
}
