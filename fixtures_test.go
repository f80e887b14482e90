package xwfill

import (
	"strings"
	"testing"

	"crosswarped.com/xwfill/pkg/puzzle"
)

// Fixtures used across the solver tests.
//
// crossStructure is a plus shape whose across and down slots share their
// middle cell:
//
//	#_#
//	___
//	#_#
//
// threeSlotStructure has two across slots crossed by one down slot at
// distinct offsets (down[0] = top[1], down[2] = bottom[0]):
//
//	#___#
//	##_##
//	##___
const (
	crossStructure = "#_#\n___\n#_#"

	threeSlotStructure = "#___#\n##_##\n##___"

	twoIslandStructure = "___\n###\n___"
)

func buildCrossword(t testing.TB, structure string, words []string) *puzzle.Crossword {
	t.Helper()
	parsed, err := puzzle.ParseStructure(strings.NewReader(structure))
	if err != nil {
		t.Fatalf("parsing structure: %v", err)
	}
	return puzzle.New(parsed, words)
}

func variableAt(t testing.TB, c *puzzle.Crossword, row, col int, dir puzzle.Direction) puzzle.Variable {
	t.Helper()
	for _, v := range c.Variables() {
		if v.Row == row && v.Col == col && v.Dir == dir {
			return v
		}
	}
	t.Fatalf("no variable at (%d, %d) %s", row, col, dir)
	return puzzle.Variable{}
}
