package xwfill

import (
	"context"
	"errors"
	"math/rand/v2"

	"crosswarped.com/xwfill/pkg/puzzle"
	"crosswarped.com/xwfill/pkg/wordset"
)

// ErrNoSolution is returned by Solve when no assignment satisfies the
// puzzle, whether that is detected before search or after exhausting it.
var ErrNoSolution = errors.New("no solution")

// Solver fills a crossword's variables from its vocabulary so that every
// overlap agrees and no word repeats.
type Solver struct {
	crossword *puzzle.Crossword
	universe  *wordset.Universe

	rand *rand.Rand
}

// NewSolver creates a solver for the given puzzle. rng, when non-nil,
// shuffles equally-ranked choices during search; with a nil rng the solver
// is fully deterministic.
func NewSolver(c *puzzle.Crossword, rng *rand.Rand) *Solver {
	return &Solver{
		crossword: c,
		universe:  wordset.NewUniverse(c.Words()),
		rand:      rng,
	}
}

// Solve returns a complete, constraint-satisfying assignment, or
// ErrNoSolution. It never returns a partial assignment. The search aborts
// with the context's error if the context is done first.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	d := NewDomains(s.crossword, s.universe)

	s.EnforceNodeConsistency(d)
	if !s.AC3(d, nil) {
		return nil, ErrNoSolution
	}

	a, ok := s.backtrack(ctx, d, Assignment{})
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoSolution
	}
	return a, nil
}

// backtrack is a depth-first search over variable assignments. It owns d
// and a for the duration of the call; on failure both are restored to the
// state they were passed in.
func (s *Solver) backtrack(ctx context.Context, d *Domains, a Assignment) (Assignment, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	if a.Complete(s.crossword) {
		return a, true
	}

	v, ok := s.selectUnassignedVariable(d, a)
	if !ok {
		return nil, false
	}

	for _, word := range s.orderDomainValues(d, a, v) {
		snap := d.Snapshot()
		a[v] = word
		d.Get(v).RestrictTo(word)

		// Re-propagate the new singleton outward through the still-open
		// neighbors before recursing.
		arcs := make([]Arc, 0, len(s.crossword.Neighbors(v)))
		for _, n := range s.crossword.Neighbors(v) {
			if _, assigned := a[n]; !assigned {
				arcs = append(arcs, Arc{X: n, Y: v})
			}
		}

		if s.AC3(d, arcs) && a.Consistent(s.crossword) {
			if result, ok := s.backtrack(ctx, d, a); ok {
				return result, true
			}
		}

		delete(a, v)
		d.Restore(snap)
	}
	return nil, false
}
