package xwfill

import (
	"slices"

	"crosswarped.com/xwfill/pkg/puzzle"
	"crosswarped.com/xwfill/pkg/wordset"
)

// Arc is a directed constraint edge between two neighboring variables,
// read as "X must stay consistent with Y".
type Arc struct {
	X, Y puzzle.Variable
}

// EnforceNodeConsistency removes from every variable's domain each word
// whose length does not match the variable's length.
func (s *Solver) EnforceNodeConsistency(d *Domains) {
	for _, v := range s.crossword.Variables() {
		d.Get(v).KeepLength(v.Length)
	}
}

// Revise makes x arc-consistent with y: it removes from x's domain every
// word with no compatible partner at the overlap offset in y's domain.
// Without an overlap it is a no-op. Returns whether anything was removed.
//
// Rather than scanning word pairs, this collects the letters y's domain
// can still place at the shared cell and intersects x's domain against the
// universe's position masks for those letters.
func (s *Solver) Revise(d *Domains, x, y puzzle.Variable) bool {
	ov, ok := s.crossword.Overlap(x, y)
	if !ok {
		return false
	}

	var allowed wordset.CharSet
	d.Get(y).LettersAt(ov.Y, &allowed)
	return d.Get(x).KeepLettersAt(ov.X, &allowed)
}

// AC3 propagates arc consistency over the constraint graph.
//
// The worklist starts as the given arcs, or as every neighbor-derived arc
// in the puzzle when initial is nil. Arcs are processed FIFO; whenever a
// revision shrinks domain(x), every arc (z, x) for the other neighbors z
// is re-enqueued, since the shrink may invalidate previously-satisfied
// constraints on z. Returns false as soon as any domain empties: the
// puzzle is unsolvable given the current domains.
func (s *Solver) AC3(d *Domains, initial []Arc) bool {
	var queue []Arc
	if initial != nil {
		// Pop-and-append below would otherwise scribble re-enqueued
		// arcs into the caller's backing array.
		queue = slices.Clone(initial)
	} else {
		for _, x := range s.crossword.Variables() {
			for _, y := range s.crossword.Neighbors(x) {
				queue = append(queue, Arc{X: x, Y: y})
			}
		}
	}

	for len(queue) > 0 {
		// Pop the first element
		arc := queue[0]
		queue = queue[1:]

		if !s.Revise(d, arc.X, arc.Y) {
			continue
		}
		if d.Get(arc.X).Len() == 0 {
			return false
		}
		for _, z := range s.crossword.Neighbors(arc.X) {
			if z != arc.Y {
				queue = append(queue, Arc{X: z, Y: arc.X})
			}
		}
	}
	return true
}
