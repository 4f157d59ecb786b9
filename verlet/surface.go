package verlet

import "image/color"

// Surface is the minimal immediate-mode drawing capability the simulation
// renders onto. Angles are in radians, coordinates in world units.
type Surface interface {
	ClearRect(x, y, w, h float64)
	StrokeArc(cx, cy, r, start, end float64, width float32, clr color.Color)
	FillArc(cx, cy, r, start, end float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1 float64, width float32, clr color.Color)
}

// Palette holds the colours and sizes used by Draw.
type Palette struct {
	Particle   color.Color
	Constraint color.Color
	Highlight  color.Color
	Pin        color.Color

	ParticleRadius  float64
	HighlightRadius float64
	LineWidth       float32

	// ShowPins draws a small ring at every pin target.
	ShowPins bool
}

func DefaultPalette() Palette {
	return Palette{
		Particle:        color.RGBA{R: 0x2d, G: 0xad, B: 0x8f, A: 0xff},
		Constraint:      color.RGBA{R: 0xd8, G: 0xdd, B: 0xe2, A: 0xff},
		Highlight:       color.RGBA{R: 0x4f, G: 0x54, B: 0x5c, A: 0xff},
		Pin:             color.RGBA{R: 0xe0, G: 0x6c, B: 0x4c, A: 0xff},
		ParticleRadius:  2,
		HighlightRadius: 8,
		LineWidth:       1,
	}
}

// fill replaces unset fields with their defaults.
func (p *Palette) fill() {
	def := DefaultPalette()
	if p.Particle == nil {
		p.Particle = def.Particle
	}
	if p.Constraint == nil {
		p.Constraint = def.Constraint
	}
	if p.Highlight == nil {
		p.Highlight = def.Highlight
	}
	if p.Pin == nil {
		p.Pin = def.Pin
	}
	if p.ParticleRadius <= 0 {
		p.ParticleRadius = def.ParticleRadius
	}
	if p.HighlightRadius <= 0 {
		p.HighlightRadius = def.HighlightRadius
	}
	if p.LineWidth <= 0 {
		p.LineWidth = def.LineWidth
	}
}
