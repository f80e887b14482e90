package xwfill

import (
	"crosswarped.com/xwfill/pkg/puzzle"
	"crosswarped.com/xwfill/pkg/wordset"
)

// Domains maps each variable to its current candidate word set. The search
// exclusively owns a Domains value during a solve; snapshot/restore makes
// trial assignments reversible.
type Domains struct {
	sets map[puzzle.Variable]*wordset.Set
}

// NewDomains initializes every variable's domain to the full vocabulary.
func NewDomains(c *puzzle.Crossword, u *wordset.Universe) *Domains {
	sets := make(map[puzzle.Variable]*wordset.Set, len(c.Variables()))
	for _, v := range c.Variables() {
		sets[v] = u.Full()
	}
	return &Domains{sets: sets}
}

// Get returns the live domain of v.
func (d *Domains) Get(v puzzle.Variable) *wordset.Set {
	return d.sets[v]
}

// Set replaces the domain of v.
func (d *Domains) Set(v puzzle.Variable, s *wordset.Set) {
	d.sets[v] = s
}

// Remove removes a word from v's domain, reporting whether it was present.
func (d *Domains) Remove(v puzzle.Variable, word string) bool {
	return d.sets[v].Remove(word)
}

// Snapshot is an opaque deep copy of a Domains state, taken before a trial
// assignment and restored on backtrack.
type Snapshot struct {
	sets map[puzzle.Variable]*wordset.Set
}

// Snapshot captures the full current state. Mutating the live store after
// a snapshot does not affect the snapshot.
func (d *Domains) Snapshot() Snapshot {
	sets := make(map[puzzle.Variable]*wordset.Set, len(d.sets))
	for v, s := range d.sets {
		sets[v] = s.Clone()
	}
	return Snapshot{sets: sets}
}

// Restore replaces the current state with a prior snapshot. The snapshot
// remains valid and can be restored again.
func (d *Domains) Restore(snap Snapshot) {
	for v, s := range snap.sets {
		d.sets[v] = s.Clone()
	}
}
