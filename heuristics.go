package xwfill

import (
	"slices"

	"crosswarped.com/xwfill/pkg/puzzle"
)

// selectUnassignedVariable picks the next variable to fill: minimum
// remaining values first, ties broken by maximum degree. Remaining ties
// are shuffled when the solver carries a rand, otherwise the first in
// variable order wins.
func (s *Solver) selectUnassignedVariable(d *Domains, a Assignment) (puzzle.Variable, bool) {
	type option struct {
		v      puzzle.Variable
		size   int
		degree int
	}
	var opts []option
	for _, v := range s.crossword.Variables() {
		if _, ok := a[v]; ok {
			continue
		}
		opts = append(opts, option{v: v, size: d.Get(v).Len(), degree: len(s.crossword.Neighbors(v))})
	}
	if len(opts) == 0 {
		return puzzle.Variable{}, false
	}

	best := opts[0]
	for _, o := range opts[1:] {
		if o.size < best.size || (o.size == best.size && o.degree > best.degree) {
			best = o
		}
	}
	opts = slices.DeleteFunc(opts, func(o option) bool {
		return o.size != best.size || o.degree != best.degree
	})

	if s.rand != nil && len(opts) > 1 {
		// Shuffles the equivalent options:
		s.rand.Shuffle(len(opts), func(i, j int) {
			opts[i], opts[j] = opts[j], opts[i]
		})
	}
	return opts[0].v, true
}

// orderDomainValues orders v's candidate words least-constraining first:
// ascending by the number of values each word would eliminate from
// unassigned neighbors' domains. A neighbor's value is eliminated if it
// disagrees at the overlap offset, or if it is the candidate word itself
// (a solved puzzle never reuses a word). Words already used elsewhere in
// the assignment are skipped.
func (s *Solver) orderDomainValues(d *Domains, a Assignment, v puzzle.Variable) []string {
	used := make(map[string]bool, len(a))
	for _, word := range a {
		used[word] = true
	}

	type candidate struct {
		word string
		cost int
	}
	var cands []candidate
	for word := range d.Get(v).Words() {
		if used[word] {
			continue
		}

		cost := 0
		for _, n := range s.crossword.Neighbors(v) {
			if _, ok := a[n]; ok {
				continue
			}
			ov, ok := s.crossword.Overlap(v, n)
			if !ok {
				continue
			}

			dn := d.Get(n)
			compatible := dn.CountLettersAt(ov.Y, rune(word[ov.X]))
			cost += dn.Len() - compatible

			// The word itself colliding in the neighbor's domain counts as
			// eliminated even when its letters happen to agree.
			if dn.Contains(word) && word[ov.Y] == word[ov.X] {
				cost++
			}
		}
		cands = append(cands, candidate{word: word, cost: cost})
	}

	if s.rand != nil && len(cands) > 1 {
		s.rand.Shuffle(len(cands), func(i, j int) {
			cands[i], cands[j] = cands[j], cands[i]
		})
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return a.cost - b.cost
	})

	words := make([]string, len(cands))
	for i, c := range cands {
		words[i] = c.word
	}
	return words
}
