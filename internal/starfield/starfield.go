// Package starfield animates a drifting star background for the neon theme.
//
// A Field is a fixed-size grid of stars that fall at individual speeds with a
// small horizontal drift. It has no clock of its own; callers advance it with
// Step on every animation tick.
package starfield

import (
	"math/rand/v2"
	"strings"
)

// DefaultStars is the star count for an 80x24 area. New scales it to the
// actual area.
const DefaultStars = 120

const referenceArea = 80 * 24

// glyphs by brightness, dim to bright.
var glyphs = []rune{'.', '·', '+', '*'}

// Star is one point in the field. Positions are fractional so slow stars
// still move.
type Star struct {
	X, Y  float64
	Speed float64
	Drift float64
	Glyph rune
}

// Field is the animated star grid.
type Field struct {
	Width  int
	Height int
	Stars  []Star

	rng *rand.Rand
}

// New creates a field of n stars. If n <= 0 the count is DefaultStars scaled
// to the area. rng may be nil for a time-seeded source; tests pass a seeded one.
func New(width, height, n int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Field{rng: rng}
	f.Resize(width, height, n)
	return f
}

// ScaledCount returns DefaultStars scaled to a width x height area, at least one.
func ScaledCount(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	n := DefaultStars * width * height / referenceArea
	return max(n, 1)
}

// Resize changes the field size and reseeds every star.
func (f *Field) Resize(width, height, n int) {
	f.Width = max(width, 0)
	f.Height = max(height, 0)
	if n <= 0 {
		n = ScaledCount(f.Width, f.Height)
	}
	if f.Width == 0 || f.Height == 0 {
		f.Stars = nil
		return
	}

	f.Stars = make([]Star, n)
	for i := range f.Stars {
		f.Stars[i] = f.spawn(f.rng.Float64() * float64(f.Height))
	}
}

func (f *Field) spawn(y float64) Star {
	speed := 0.1 + f.rng.Float64()*0.9
	return Star{
		X:     f.rng.Float64() * float64(f.Width),
		Y:     y,
		Speed: speed,
		Drift: (f.rng.Float64() - 0.5) * 0.2,
		Glyph: glyphs[min(int(speed*float64(len(glyphs))), len(glyphs)-1)],
	}
}

// Step advances the animation by one frame. Stars leaving the bottom
// re-enter at the top at a new column; horizontal drift wraps around.
func (f *Field) Step() {
	if f.Width == 0 || f.Height == 0 {
		return
	}
	w, h := float64(f.Width), float64(f.Height)
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Y += s.Speed
		s.X += s.Drift
		if s.Y >= h {
			*s = f.spawn(s.Y - h)
		}
		if s.X < 0 {
			s.X += w
		} else if s.X >= w {
			s.X -= w
		}
	}
}

// Grid returns the field as Height rows of Width runes. Empty cells are spaces.
func (f *Field) Grid() [][]rune {
	grid := make([][]rune, f.Height)
	for y := range grid {
		row := make([]rune, f.Width)
		for x := range row {
			row[x] = ' '
		}
		grid[y] = row
	}
	for _, s := range f.Stars {
		x, y := int(s.X), int(s.Y)
		if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
			continue
		}
		// Brighter star wins a shared cell.
		if grid[y][x] == ' ' || glyphIndex(s.Glyph) > glyphIndex(grid[y][x]) {
			grid[y][x] = s.Glyph
		}
	}
	return grid
}

// Render returns the field as newline-separated lines.
func (f *Field) Render() string {
	grid := f.Grid()
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func glyphIndex(r rune) int {
	for i, g := range glyphs {
		if g == r {
			return i
		}
	}
	return -1
}
