package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/physics"
)

// sprite is a monochrome bitmap, one string per row, '#' for a lit cell.
type sprite []string

// draw stretches the bitmap over a w×h box centered on center.
func (s sprite) draw(c *draw.Canvas, center physics.Vector, w, h float64) {
	rows := len(s)
	if rows == 0 || len(s[0]) == 0 {
		return
	}
	cellW := w / float64(len(s[0]))
	cellH := h / float64(rows)
	left := center.X - w/2
	top := center.Y - h/2

	for r, line := range s {
		y := top + float64(r)*cellH
		for col := 0; col < len(line); col++ {
			if line[col] != '#' {
				continue
			}
			x := left + float64(col)*cellW
			c.FillRect(draw.Point{X: x, Y: y}, draw.Point{X: x + cellW*0.5, Y: y + cellH*0.5})
		}
	}
}

var (
	redFrames = [2]sprite{
		{
			"...##...",
			"..####..",
			".######.",
			"##.##.##",
			"########",
			"..#..#..",
			".#.##.#.",
			"#.#..#.#",
		},
		{
			"...##...",
			"..####..",
			".######.",
			"##.##.##",
			"########",
			".#.##.#.",
			"#......#",
			".#....#.",
		},
	}

	greenFrames = [2]sprite{
		{
			"....####....",
			".##########.",
			"############",
			"###..##..###",
			"############",
			"...##..##...",
			"..##.##.##..",
			"##........##",
		},
		{
			"....####....",
			".##########.",
			"############",
			"###..##..###",
			"############",
			"..###..###..",
			".##..##..##.",
			"..##....##..",
		},
	}

	blueFrames = [2]sprite{
		{
			"..#.....#..",
			"...#...#...",
			"..#######..",
			".##.###.##.",
			"###########",
			"#.#######.#",
			"#.#.....#.#",
			"...##.##...",
		},
		{
			"..#.....#..",
			"#..#...#..#",
			"#.#######.#",
			"###.###.###",
			"###########",
			".#########.",
			"..#.....#..",
			".#.......#.",
		},
	}

	cannonSprite = sprite{
		".....#.....",
		"....###....",
		"....###....",
		".#########.",
		"###########",
		"###########",
		"###########",
		"###########",
	}

	bunkerSprite = sprite{
		"...######...",
		"..########..",
		".##########.",
		"############",
		"############",
		"############",
		"####....####",
		"###......###",
	}
)
