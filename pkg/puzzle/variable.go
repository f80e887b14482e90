package puzzle

import "fmt"

// Direction is an enum representing the direction of a slot in a grid,
// either 'Across' or 'Down'.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Cell is a single grid position.
type Cell struct {
	Row, Col int
}

// Variable is a fillable run of cells: a fixed starting position, a
// direction, and a length. Variables are small comparable values and are
// used directly as map keys.
type Variable struct {
	Row, Col int
	Dir      Direction
	Length   int
}

// Cells returns the grid positions the variable occupies, in word order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := range cells {
		if v.Dir == Across {
			cells[k] = Cell{Row: v.Row, Col: v.Col + k}
		} else {
			cells[k] = Cell{Row: v.Row + k, Col: v.Col}
		}
	}
	return cells
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s length %d", v.Row, v.Col, v.Dir, v.Length)
}
