package xwfill

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"crosswarped.com/xwfill/pkg/puzzle"
)

// bruteForceSolvable enumerates every complete assignment of words to
// variables and reports whether any is consistent. Used to cross-check
// the solver's no-solution answers on small fixtures.
func bruteForceSolvable(c *puzzle.Crossword) bool {
	vars := c.Variables()
	var recurse func(i int, a Assignment) bool
	recurse = func(i int, a Assignment) bool {
		if i == len(vars) {
			return a.Complete(c) && a.Consistent(c)
		}
		for _, w := range c.Words() {
			if len(w) != vars[i].Length {
				continue
			}
			a[vars[i]] = w
			if a.Consistent(c) && recurse(i+1, a) {
				return true
			}
			delete(a, vars[i])
		}
		return false
	}
	return recurse(0, Assignment{})
}

func checkSolution(t *testing.T, c *puzzle.Crossword, a Assignment) {
	t.Helper()
	if !a.Complete(c) {
		t.Error("solution is not complete")
	}
	if !a.Consistent(c) {
		t.Error("solution is not consistent")
	}
}

func TestSolve_ThreeSlotPuzzle(t *testing.T) {
	c := buildCrossword(t, threeSlotStructure, []string{"art", "car", "cat", "tar"})
	s := NewSolver(c, nil)

	a, err := s.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	checkSolution(t, c, a)

	// The down slot pins the crossings: down[0] = top[1], down[2] = bottom[0].
	down := variableAt(t, c, 0, 2, puzzle.Down)
	if a[down] != "art" {
		t.Errorf("down = %q, want art (the only word fitting both crossings)", a[down])
	}
}

func TestSolve_WrongLengthVocabulary(t *testing.T) {
	c := buildCrossword(t, crossStructure, []string{"go", "word", "words"})
	s := NewSolver(c, nil)

	_, err := s.Solve(context.Background())
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Solve() error = %v, want ErrNoSolution", err)
	}
}

func TestSolve_ArcConsistencyCollapse(t *testing.T) {
	// Across and down share their first cell but no word pair agrees there.
	c := buildCrossword(t, "___\n_##\n_##\n_##", []string{"cat", "dome"})
	s := NewSolver(c, nil)

	_, err := s.Solve(context.Background())
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Solve() error = %v, want ErrNoSolution", err)
	}
	if bruteForceSolvable(c) {
		t.Fatal("brute force disagrees: a solution exists")
	}
}

func TestSolve_UniquenessExhaustsSearch(t *testing.T) {
	// cat/dog agree with themselves at the shared cell but a word cannot
	// be used twice, so the search must exhaust and fail.
	c := buildCrossword(t, crossStructure, []string{"cat", "dog"})
	s := NewSolver(c, nil)

	_, err := s.Solve(context.Background())
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Solve() error = %v, want ErrNoSolution", err)
	}
	if bruteForceSolvable(c) {
		t.Fatal("brute force disagrees: a solution exists")
	}
}

func TestSolve_NeverReusesWords(t *testing.T) {
	c := buildCrossword(t, threeSlotStructure, []string{"art", "car", "cat", "tar"})
	s := NewSolver(c, nil)

	a, err := s.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, w := range a {
		if seen[w] {
			t.Errorf("word %q assigned twice", w)
		}
		seen[w] = true
	}
}

func TestSolve_IsolatedSlots(t *testing.T) {
	c := buildCrossword(t, twoIslandStructure, []string{"cat", "tar"})
	s := NewSolver(c, nil)

	a, err := s.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	checkSolution(t, c, a)
}

func TestSolve_SolvableMatchesBruteForce(t *testing.T) {
	vocabularies := [][]string{
		{"art", "car", "cat", "tar"},
		{"art", "rat", "tar"},
		{"cat", "dog"},
		{"oak", "ask", "kayak"},
	}

	for _, words := range vocabularies {
		for _, structure := range []string{crossStructure, threeSlotStructure, twoIslandStructure} {
			c := buildCrossword(t, structure, words)
			s := NewSolver(c, nil)

			_, err := s.Solve(context.Background())
			solved := err == nil
			if err != nil && !errors.Is(err, ErrNoSolution) {
				t.Fatalf("Solve() error = %v", err)
			}
			if want := bruteForceSolvable(c); solved != want {
				t.Errorf("structure %q words %v: solved = %v, brute force = %v", structure, words, solved, want)
			}
		}
	}
}

func TestSolve_SeededRandStillValid(t *testing.T) {
	c := buildCrossword(t, threeSlotStructure, []string{"art", "car", "cat", "tar"})

	// Use a fixed seed for reproducibility.
	for seed := uint64(1); seed <= 5; seed++ {
		s := NewSolver(c, rand.New(rand.NewPCG(seed, 1024)))
		a, err := s.Solve(context.Background())
		if err != nil {
			t.Fatalf("seed %d: Solve() error = %v", seed, err)
		}
		checkSolution(t, c, a)
	}
}

func BenchmarkSolve(b *testing.B) {
	words := []string{
		"ant", "arm", "art", "ate", "car", "cat", "ear", "eat",
		"era", "mar", "oar", "oat", "ram", "rat", "tan", "tar", "tea",
	}
	b.ReportAllocs()

	for _, tc := range []struct {
		name      string
		structure string
	}{
		{name: "cross", structure: crossStructure},
		{name: "three_slot", structure: threeSlotStructure},
		{name: "two_islands", structure: twoIslandStructure},
	} {
		b.Run(tc.name, func(b *testing.B) {
			c := buildCrossword(b, tc.structure, words)
			rng := rand.New(rand.NewPCG(42, 1024))
			for b.Loop() {
				s := NewSolver(c, rng)
				if _, err := s.Solve(b.Context()); err != nil {
					b.Fatalf("Solve() error = %v", err)
				}
			}
		})
	}
}

func TestSolve_CanceledContext(t *testing.T) {
	c := buildCrossword(t, threeSlotStructure, []string{"art", "car", "cat", "tar"})
	s := NewSolver(c, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Solve(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Solve() error = %v, want context.Canceled", err)
	}
}
