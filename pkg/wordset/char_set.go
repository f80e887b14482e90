package wordset

import (
	"math/bits"
	"strings"
)

const (
	minChar  rune = 'a'
	maxChar  rune = 'z'
	numChars      = int(maxChar-minChar) + 1
)

// CharSet efficiently represents a set of lowercase ASCII letters.
//
// The zero value is the empty set.
type CharSet struct {
	bits uint32
}

// Add adds a letter to the set. Letters outside a-z are ignored and
// reported as false.
func (c *CharSet) Add(r rune) bool {
	if r < minChar || r > maxChar {
		return false
	}
	c.bits |= 1 << uint(r-minChar)
	return true
}

// Contains checks if a letter is in the set.
func (c *CharSet) Contains(r rune) bool {
	if r < minChar || r > maxChar {
		return false
	}
	return c.bits&(1<<uint(r-minChar)) != 0
}

// Count returns the number of letters in the set.
func (c *CharSet) Count() int {
	return bits.OnesCount32(c.bits)
}

// IsFull checks if the set holds every letter a-z.
func (c *CharSet) IsFull() bool {
	return c.Count() == numChars
}

// IsEmpty checks if the set holds no letters.
func (c *CharSet) IsEmpty() bool {
	return c.bits == 0
}

func (c *CharSet) String() string {
	var sb strings.Builder
	for r := minChar; r <= maxChar; r++ {
		if c.Contains(r) {
			sb.WriteRune(r)
		}
	}
	return "CharSet(" + sb.String() + ")"
}
