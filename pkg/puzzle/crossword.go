package puzzle

import "slices"

// Overlap is the shared-cell constraint between two neighboring variables:
// the letter at offset X of the first variable's word must equal the letter
// at offset Y of the second's.
type Overlap struct {
	X, Y int
}

// Crossword is the immutable puzzle model: the grid's open cells, the
// vocabulary, the variables derived from the geometry, and the overlap
// relation between variables that share a cell.
//
// All queries are pure and constant after construction.
type Crossword struct {
	Height, Width int

	open      [][]bool
	words     []string
	variables []Variable
	overlaps  map[[2]Variable]Overlap
	neighbors map[Variable][]Variable
}

// New builds a Crossword from grid geometry and a vocabulary. structure
// rows marked true are open (fillable) cells. The vocabulary is sorted and
// de-duplicated. The geometry is assumed well-formed (rectangular, from
// ParseStructure or equivalent).
func New(structure [][]bool, words []string) *Crossword {
	height := len(structure)
	width := 0
	if height > 0 {
		width = len(structure[0])
	}

	sorted := slices.Clone(words)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	c := &Crossword{
		Height:    height,
		Width:     width,
		open:      structure,
		words:     sorted,
		overlaps:  make(map[[2]Variable]Overlap),
		neighbors: make(map[Variable][]Variable),
	}

	c.findVariables()
	c.findOverlaps()
	return c
}

// findVariables derives variables as maximal runs of two or more open
// cells, across and down.
func (c *Crossword) findVariables() {
	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			if !c.open[i][j] {
				continue
			}

			if j == 0 || !c.open[i][j-1] {
				length := 1
				for k := j + 1; k < c.Width && c.open[i][k]; k++ {
					length++
				}
				if length > 1 {
					c.variables = append(c.variables, Variable{Row: i, Col: j, Dir: Across, Length: length})
				}
			}

			if i == 0 || !c.open[i-1][j] {
				length := 1
				for k := i + 1; k < c.Height && c.open[k][j]; k++ {
					length++
				}
				if length > 1 {
					c.variables = append(c.variables, Variable{Row: i, Col: j, Dir: Down, Length: length})
				}
			}
		}
	}
}

// findOverlaps intersects every variable pair's cell ranges. Maximal runs
// in the same direction never share a cell, so a pair shares at most one.
func (c *Crossword) findOverlaps() {
	for _, x := range c.variables {
		cellIdx := make(map[Cell]int, x.Length)
		for k, cell := range x.Cells() {
			cellIdx[cell] = k
		}

		for _, y := range c.variables {
			if x == y {
				continue
			}
			for k, cell := range y.Cells() {
				if i, ok := cellIdx[cell]; ok {
					c.overlaps[[2]Variable{x, y}] = Overlap{X: i, Y: k}
					c.neighbors[x] = append(c.neighbors[x], y)
					break
				}
			}
		}
	}
}

// Variables returns every variable in the puzzle. Callers must not mutate
// the returned slice.
func (c *Crossword) Variables() []Variable {
	return c.variables
}

// Words returns the vocabulary, sorted. Callers must not mutate the
// returned slice.
func (c *Crossword) Words() []string {
	return c.words
}

// Open reports whether the cell at (row, col) is fillable.
func (c *Crossword) Open(row, col int) bool {
	return c.open[row][col]
}

// Overlap returns the offset pair constraining the ordered pair (x, y), if
// the two variables share a cell.
func (c *Crossword) Overlap(x, y Variable) (Overlap, bool) {
	ov, ok := c.overlaps[[2]Variable{x, y}]
	return ov, ok
}

// Neighbors returns the variables sharing a cell with v. Callers must not
// mutate the returned slice.
func (c *Crossword) Neighbors(v Variable) []Variable {
	return c.neighbors[v]
}
