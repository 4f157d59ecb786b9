// Package term draws simulations onto a character-cell terminal.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	lineRune = '·'
	arcRune  = 'o'
	fillRune = '●'
)

// Surface adapts a tcell screen to verlet.Surface. One cell covers ScaleX by
// ScaleY world units.
type Surface struct {
	Screen tcell.Screen
	ScaleX float64
	ScaleY float64
}

// NewSurface fits a world of worldW x worldH units onto the whole screen.
func NewSurface(screen tcell.Screen, worldW, worldH float64) *Surface {
	s := &Surface{Screen: screen, ScaleX: 1, ScaleY: 1}
	s.Fit(worldW, worldH)
	return s
}

// Fit recomputes the scale after the terminal is resized.
func (s *Surface) Fit(worldW, worldH float64) {
	if s == nil || s.Screen == nil || worldW <= 0 || worldH <= 0 {
		return
	}
	cols, rows := s.Screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	s.ScaleX = worldW / float64(cols)
	// the bottom row is the floor
	s.ScaleY = worldH / float64(max(rows-1, 1))
}

// Cell returns the cell holding world point (x, y).
func (s *Surface) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / s.ScaleX)), int(math.Floor(y / s.ScaleY))
}

// World returns the world point at the centre of cell (col, row).
func (s *Surface) World(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.ScaleX, (float64(row) + 0.5) * s.ScaleY
}

func (s *Surface) set(col, row int, r rune, clr color.Color) {
	cols, rows := s.Screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	s.Screen.SetContent(col, row, r, nil, style(clr))
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	if s == nil || s.Screen == nil {
		return
	}
	c0, r0 := s.Cell(x, y)
	c1, r1 := s.Cell(x+w, y+h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.set(col, row, ' ', nil)
		}
	}
}

func (s *Surface) StrokeArc(cx, cy, r, start, end float64, width float32, clr color.Color) {
	if s == nil || s.Screen == nil {
		return
	}
	// too small to show as a ring: leave the cell to whatever fills it
	if r/s.ScaleX < 1 && r/s.ScaleY < 1 {
		return
	}
	circumference := math.Abs(end-start) * r / math.Min(s.ScaleX, s.ScaleY)
	samples := max(int(math.Ceil(circumference*2)), 8)
	step := (end - start) / float64(samples)
	for i := 0; i <= samples; i++ {
		theta := start + step*float64(i)
		col, row := s.Cell(cx+math.Cos(theta)*r, cy+math.Sin(theta)*r)
		s.set(col, row, arcRune, clr)
	}
}

// FillArc marks every cell whose centre lies in the sector, or just the centre
// cell when the sector is smaller than a cell.
func (s *Surface) FillArc(cx, cy, r, start, end float64, clr color.Color) {
	if s == nil || s.Screen == nil {
		return
	}
	c0, r0 := s.Cell(cx-r, cy-r)
	c1, r1 := s.Cell(cx+r, cy+r)
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := s.World(col, row)
			if !inSector(x-cx, y-cy, r, start, end) {
				continue
			}
			s.set(col, row, fillRune, clr)
			filled = true
		}
	}
	if !filled {
		col, row := s.Cell(cx, cy)
		s.set(col, row, fillRune, clr)
	}
}

// StrokeLine rasterises the segment with Bresenham's algorithm.
func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, width float32, clr color.Color) {
	if s == nil || s.Screen == nil {
		return
	}
	c0, r0 := s.Cell(x0, y0)
	c1, r1 := s.Cell(x1, y1)

	dx := abs(c1 - c0)
	dy := -abs(r1 - r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.set(c0, r0, lineRune, clr)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			c0 += sx
		}
		if e2 <= dx {
			e += dx
			r0 += sy
		}
	}
}

func inSector(dx, dy, r, start, end float64) bool {
	if dx*dx+dy*dy > r*r {
		return false
	}
	if math.Abs(end-start) >= 2*math.Pi {
		return true
	}
	theta := math.Atan2(dy, dx)
	lo, hi := start, end
	if lo > hi {
		lo, hi = hi, lo
	}
	for theta < lo {
		theta += 2 * math.Pi
	}
	return theta <= hi
}

func style(clr color.Color) tcell.Style {
	if clr == nil {
		return tcell.StyleDefault
	}
	r, g, b, _ := clr.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
