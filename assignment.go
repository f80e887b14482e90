package xwfill

import "crosswarped.com/xwfill/pkg/puzzle"

// Assignment is a partial mapping from variables to the words filling
// them. It becomes a solution only once it covers every variable.
type Assignment map[puzzle.Variable]string

// Complete reports whether every variable in the puzzle has a word.
func (a Assignment) Complete(c *puzzle.Crossword) bool {
	for _, v := range c.Variables() {
		if _, ok := a[v]; !ok {
			return false
		}
	}
	return true
}

// Consistent reports whether the assigned words are mutually distinct, fit
// their variables' lengths, and agree at every overlap between assigned
// neighbors. Pure; ignores unassigned variables.
func (a Assignment) Consistent(c *puzzle.Crossword) bool {
	existingWords := make(map[string]bool, len(a))
	for v, word := range a {
		if existingWords[word] {
			return false
		}
		existingWords[word] = true

		if len(word) != v.Length {
			return false
		}

		for _, n := range c.Neighbors(v) {
			other, ok := a[n]
			if !ok {
				continue
			}
			// A wrong-length neighbor already makes the assignment
			// inconsistent; indexing it would be out of range.
			if len(other) != n.Length {
				return false
			}
			ov, ok := c.Overlap(v, n)
			if !ok {
				continue
			}
			if word[ov.X] != other[ov.Y] {
				return false
			}
		}
	}
	return true
}

// LetterGrid returns a 2D rune grid of the assignment's letters, with zero
// runes for cells no assigned word covers.
func (a Assignment) LetterGrid(c *puzzle.Crossword) [][]rune {
	letters := make([][]rune, c.Height)
	for i := range letters {
		letters[i] = make([]rune, c.Width)
	}
	for v, word := range a {
		for k, cell := range v.Cells() {
			letters[cell.Row][cell.Col] = rune(word[k])
		}
	}
	return letters
}
