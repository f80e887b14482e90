package wordset

import (
	"slices"
	"testing"
)

func collect(s *Set) []string {
	var out []string
	for w := range s.Words() {
		out = append(out, w)
	}
	return out
}

func TestUniverse_SortsAndDedupes(t *testing.T) {
	u := NewUniverse([]string{"tar", "cat", "art", "cat", "car"})
	if u.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", u.Len())
	}
	got := collect(u.Full())
	want := []string{"art", "car", "cat", "tar"}
	if !slices.Equal(got, want) {
		t.Errorf("Full() words = %v, want %v", got, want)
	}
}

func TestSet_RemoveAndContains(t *testing.T) {
	u := NewUniverse([]string{"art", "car", "cat", "tar"})
	s := u.Full()

	if !s.Contains("car") {
		t.Error("full set missing car")
	}
	if !s.Remove("car") {
		t.Error("Remove(car) = false on first removal")
	}
	if s.Remove("car") {
		t.Error("Remove(car) = true on second removal")
	}
	if s.Remove("missing") {
		t.Error("Remove of a word outside the universe = true")
	}
	if s.Len() != 3 || s.Contains("car") {
		t.Errorf("after removal: len = %d, contains(car) = %v", s.Len(), s.Contains("car"))
	}
}

func TestSet_CloneIsIndependent(t *testing.T) {
	u := NewUniverse([]string{"art", "car", "cat", "tar"})
	s := u.Full()
	c := s.Clone()

	s.Remove("art")
	s.Remove("tar")

	if c.Len() != 4 {
		t.Errorf("clone len = %d after mutating original, want 4", c.Len())
	}
	if s.Len() != 2 {
		t.Errorf("original len = %d, want 2", s.Len())
	}
}

func TestSet_RestrictTo(t *testing.T) {
	u := NewUniverse([]string{"art", "car", "cat", "tar"})
	s := u.Full()
	s.RestrictTo("cat")

	if got := collect(s); !slices.Equal(got, []string{"cat"}) {
		t.Errorf("RestrictTo(cat) = %v, want [cat]", got)
	}
}

func TestSet_KeepLength(t *testing.T) {
	u := NewUniverse([]string{"a", "go", "cat", "tar", "word", "words"})
	s := u.Full()

	removed := s.KeepLength(3)
	if removed != 4 {
		t.Errorf("removed = %d, want 4", removed)
	}
	if got := collect(s); !slices.Equal(got, []string{"cat", "tar"}) {
		t.Errorf("KeepLength(3) = %v, want [cat tar]", got)
	}
}

func TestSet_LettersAt(t *testing.T) {
	u := NewUniverse([]string{"art", "car", "cat", "tar"})
	s := u.Full()

	var cs CharSet
	s.LettersAt(0, &cs)
	for _, r := range "act" {
		if !cs.Contains(r) {
			t.Errorf("LettersAt(0) missing %q", r)
		}
	}
	if cs.Count() != 3 {
		t.Errorf("LettersAt(0) count = %d, want 3", cs.Count())
	}

	cs = CharSet{}
	s.LettersAt(2, &cs)
	if !cs.Contains('t') || !cs.Contains('r') || cs.Count() != 2 {
		t.Errorf("LettersAt(2) = %v, want {r, t}", cs.String())
	}
}

func TestSet_KeepLettersAt(t *testing.T) {
	u := NewUniverse([]string{"art", "car", "cat", "tar"})
	s := u.Full()

	var allowed CharSet
	allowed.Add('a')
	if !s.KeepLettersAt(1, &allowed) {
		t.Fatal("KeepLettersAt reported no change")
	}
	// Words with 'a' at index 1: car, cat, tar.
	if got := collect(s); !slices.Equal(got, []string{"car", "cat", "tar"}) {
		t.Errorf("KeepLettersAt(1, {a}) = %v", got)
	}

	var none CharSet
	if !s.KeepLettersAt(0, &none) {
		t.Fatal("empty allowed set reported no change")
	}
	if s.Len() != 0 {
		t.Errorf("len = %d after empty allowed set, want 0", s.Len())
	}
}

func TestSet_CountLettersAt(t *testing.T) {
	u := NewUniverse([]string{"art", "car", "cat", "tar"})
	s := u.Full()

	for _, tt := range []struct {
		pos  int
		r    rune
		want int
	}{
		{0, 'c', 2},
		{0, 'a', 1},
		{2, 't', 2},
		{2, 'z', 0},
		{1, 'a', 3},
	} {
		if got := s.CountLettersAt(tt.pos, tt.r); got != tt.want {
			t.Errorf("CountLettersAt(%d, %q) = %d, want %d", tt.pos, tt.r, got, tt.want)
		}
	}
}

func BenchmarkSet_KeepLettersAt(b *testing.B) {
	letters := "aeorst"
	var words []string
	for _, c1 := range letters {
		for _, c2 := range letters {
			for _, c3 := range letters {
				words = append(words, string([]rune{c1, c2, c3}))
			}
		}
	}
	u := NewUniverse(words)
	full := u.Full()

	var allowed CharSet
	allowed.Add('a')
	allowed.Add('s')
	allowed.Add('t')

	b.ReportAllocs()
	for b.Loop() {
		s := full.Clone()
		s.KeepLettersAt(1, &allowed)
	}
}

func TestSet_MixedLengthMasks(t *testing.T) {
	// Position masks must never leak words shorter than the position.
	u := NewUniverse([]string{"go", "gone", "grid"})
	s := u.Full()

	var cs CharSet
	s.LettersAt(2, &cs)
	if cs.Contains('o') || !cs.Contains('n') || !cs.Contains('i') || cs.Count() != 2 {
		t.Errorf("LettersAt(2) = %s, want {i, n}", cs.String())
	}
	if got := s.CountLettersAt(3, 'e'); got != 1 {
		t.Errorf("CountLettersAt(3, e) = %d, want 1", got)
	}
}
