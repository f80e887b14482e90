package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// OpenCell marks a fillable cell in a structure description; any other
// character is a blocked cell.
const OpenCell = '_'

// ParseStructure reads a textual grid-structure description: one row per
// line, '_' for open cells. Rows shorter than the widest row are padded
// with blocked cells.
func ParseStructure(r io.Reader) ([][]bool, error) {
	var rows []string
	width := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row := scanner.Text()
		rows = append(rows, row)
		if len(row) > width {
			width = len(row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning structure: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("structure is empty")
	}

	structure := make([][]bool, len(rows))
	for i, row := range rows {
		structure[i] = make([]bool, width)
		for j := range row {
			structure[i][j] = row[j] == OpenCell
		}
	}
	return structure, nil
}

// LoadStructure reads a grid-structure description from a file.
func LoadStructure(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseStructure(f)
}
