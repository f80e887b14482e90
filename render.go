package xwfill

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"crosswarped.com/xwfill/pkg/puzzle"
)

const blockedGlyph = '█'

// Render returns the assignment as a text grid: letters in open cells, a
// block glyph in blocked ones.
func Render(c *puzzle.Crossword, a Assignment) string {
	letters := a.LetterGrid(c)

	lines := make([]string, c.Height)
	for i := 0; i < c.Height; i++ {
		row := make([]rune, c.Width)
		for j := 0; j < c.Width; j++ {
			switch {
			case !c.Open(i, j):
				row[j] = blockedGlyph
			case letters[i][j] != 0:
				row[j] = letters[i][j]
			default:
				row[j] = ' '
			}
		}
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// SaveImage writes the assignment as a PNG: white open cells on a black
// background, one letter per cell.
func SaveImage(c *puzzle.Crossword, a Assignment, path string) error {
	const (
		cellSize   = 100
		cellBorder = 2
	)

	letters := a.LetterGrid(c)

	img := image.NewRGBA(image.Rect(0, 0, c.Width*cellSize, c.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			if !c.Open(i, j) {
				continue
			}

			cell := image.Rect(
				j*cellSize+cellBorder,
				i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder,
				(i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if letters[i][j] == 0 {
				continue
			}
			glyph := string(unicode.ToUpper(letters[i][j]))
			width := drawer.MeasureString(glyph)
			drawer.Dot = fixed.P(
				j*cellSize+cellSize/2,
				i*cellSize+cellSize/2,
			)
			drawer.Dot.X -= width / 2
			drawer.Dot.Y += fixed.I(face.Metrics().Ascent.Ceil() / 2)
			drawer.DrawString(glyph)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
