package wordset

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Set is a mutable subset of a Universe's words, stored as a bitset over
// the universe's word indices.
type Set struct {
	u      *Universe
	blocks []uint64
	count  int
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return s.count
}

// Contains checks if a word is in the set.
func (s *Set) Contains(word string) bool {
	idx, ok := s.u.Index(word)
	if !ok {
		return false
	}
	return hasBit(s.blocks, idx)
}

// Remove removes a word from the set and returns true if it was present.
func (s *Set) Remove(word string) bool {
	idx, ok := s.u.Index(word)
	if !ok {
		return false
	}
	if clearBit(s.blocks, idx) {
		s.count--
		return true
	}
	return false
}

// Clone returns an independent copy of the set. Mutating either copy does
// not affect the other.
func (s *Set) Clone() *Set {
	blocks := make([]uint64, len(s.blocks))
	copy(blocks, s.blocks)
	return &Set{u: s.u, blocks: blocks, count: s.count}
}

// RestrictTo narrows the set to the singleton {word}. The word must belong
// to the universe.
func (s *Set) RestrictTo(word string) {
	idx, ok := s.u.Index(word)
	if !ok {
		panic(fmt.Sprintf("wordset: %q is not in the universe", word))
	}
	for i := range s.blocks {
		s.blocks[i] = 0
	}
	s.blocks[idx/64] = 1 << uint(idx%64)
	s.count = 1
}

// KeepLength removes every word whose length differs from n, returning the
// number of words removed.
func (s *Set) KeepLength(n int) int {
	removed := 0
	for idx := range s.indices() {
		if len(s.u.words[idx]) != n {
			clearBit(s.blocks, idx)
			removed++
		}
	}
	s.count -= removed
	return removed
}

// LettersAt accumulates into cs the letters that appear at position pos
// across the set's words.
func (s *Set) LettersAt(pos int, cs *CharSet) {
	if cs.IsFull() {
		return
	}

	s.u.ensureMasks()
	if pos < 0 || pos >= s.u.maxLen {
		return
	}
	for cidx := 0; cidx < numChars; cidx++ {
		base := s.u.maskBase(pos, cidx)
		if hasIntersectionAt(s.blocks, s.u.masks, base, s.u.blocks) {
			cs.Add(rune(minChar + rune(cidx)))
		}
	}
}

// KeepLettersAt removes every word whose letter at position pos is not in
// the allowed set, returning true if anything was removed.
//
// Callers are expected to pass a position inside every member word, so a
// full allowed set can never remove anything.
func (s *Set) KeepLettersAt(pos int, allowed *CharSet) bool {
	if allowed.IsFull() {
		return false
	}
	if pos < 0 || pos >= s.u.maxLen {
		return false
	}

	s.u.ensureMasks()

	changed := false
	newCount := 0
	for i := range s.blocks {
		var keep uint64
		cbits := allowed.bits
		for cbits != 0 {
			tz := bits.TrailingZeros32(cbits)
			base := s.u.maskBase(pos, tz)
			keep |= s.u.masks[base+i]
			cbits &= cbits - 1
		}

		ns := s.blocks[i] & keep
		if ns != s.blocks[i] {
			changed = true
		}
		s.blocks[i] = ns
		newCount += bits.OnesCount64(ns)
	}
	s.count = newCount
	return changed
}

// CountLettersAt returns the number of words in the set with letter r at
// position pos.
func (s *Set) CountLettersAt(pos int, r rune) int {
	if r < minChar || r > maxChar || pos < 0 || pos >= s.u.maxLen {
		return 0
	}

	s.u.ensureMasks()
	base := s.u.maskBase(pos, int(r-minChar))
	n := 0
	for i := range s.blocks {
		n += bits.OnesCount64(s.blocks[i] & s.u.masks[base+i])
	}
	return n
}

// First returns the first word in the set in universe order, or false if
// the set is empty.
func (s *Set) First() (string, bool) {
	idx := firstSetBit(s.blocks)
	if idx < 0 {
		return "", false
	}
	return s.u.words[idx], true
}

// Words returns a sequence of the set's words in universe order.
func (s *Set) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for idx := range s.indices() {
			if !yield(s.u.words[idx]) {
				return
			}
		}
	}
}

func (s *Set) indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for bi, block := range s.blocks {
			b := block
			for b != 0 {
				tz := bits.TrailingZeros64(b)
				if !yield(bi*64 + tz) {
					return
				}
				b &= b - 1
			}
		}
	}
}

func (s *Set) String() string {
	const maxPrint = 3

	sample := make([]string, 0, maxPrint)
	for w := range s.Words() {
		sample = append(sample, w)
		if len(sample) >= maxPrint {
			break
		}
	}
	if s.count > maxPrint {
		return fmt.Sprintf("Set([%s, ...%d])", strings.Join(sample, ", "), s.count-maxPrint)
	}
	return fmt.Sprintf("Set([%s])", strings.Join(sample, ", "))
}
