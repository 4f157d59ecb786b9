// Package render draws simulations onto ebiten images.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const arcSegments = 32

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Screen adapts an ebiten image to verlet.Surface. World coordinates are
// mapped to pixels as (p - Offset) * Zoom.
type Screen struct {
	Image      *ebiten.Image
	OffsetX    float64
	OffsetY    float64
	Zoom       float64
	Background color.Color
}

func NewScreen(img *ebiten.Image) *Screen {
	return &Screen{Image: img, Zoom: 1, Background: colornames.Black}
}

func (s *Screen) toScreen(x, y float64) (float32, float32) {
	zoom := s.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return float32((x - s.OffsetX) * zoom), float32((y - s.OffsetY) * zoom)
}

func (s *Screen) scale(v float64) float32 {
	if s.Zoom == 0 {
		return float32(v)
	}
	return float32(v * s.Zoom)
}

func (s *Screen) ClearRect(x, y, w, h float64) {
	if s == nil || s.Image == nil {
		return
	}
	x0, y0 := s.toScreen(x, y)
	x1, y1 := s.toScreen(x+w, y+h)
	r := image.Rect(int(math.Floor(float64(x0))), int(math.Floor(float64(y0))), int(math.Ceil(float64(x1))), int(math.Ceil(float64(y1))))
	sub, ok := s.Image.SubImage(r).(*ebiten.Image)
	if !ok || sub == nil {
		return
	}
	sub.Clear()
	if s.Background != nil {
		sub.Fill(s.Background)
	}
}

func (s *Screen) StrokeArc(cx, cy, r, start, end float64, width float32, clr color.Color) {
	if s == nil || s.Image == nil || r <= 0 {
		return
	}
	px, py := s.toScreen(cx, cy)
	pr := s.scale(r)
	sw := s.scale(float64(width))
	if isFullCircle(start, end) {
		vector.StrokeCircle(s.Image, px, py, pr, sw, clr, true)
		return
	}

	step := (end - start) / arcSegments
	prevX, prevY := s.toScreen(cx+math.Cos(start)*r, cy+math.Sin(start)*r)
	for i := 1; i <= arcSegments; i++ {
		theta := start + step*float64(i)
		x, y := s.toScreen(cx+math.Cos(theta)*r, cy+math.Sin(theta)*r)
		vector.StrokeLine(s.Image, prevX, prevY, x, y, sw, clr, true)
		prevX, prevY = x, y
	}
}

func (s *Screen) FillArc(cx, cy, r, start, end float64, clr color.Color) {
	if s == nil || s.Image == nil || r <= 0 {
		return
	}
	px, py := s.toScreen(cx, cy)
	if isFullCircle(start, end) {
		vector.FillCircle(s.Image, px, py, s.scale(r), clr, true)
		return
	}

	// triangle fan around the centre
	cr, cg, cb, ca := clr.RGBA()
	vertex := func(x, y float32) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: x, DstY: y, SrcX: 1, SrcY: 1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		}
	}
	vertices := []ebiten.Vertex{vertex(px, py)}
	indices := make([]uint16, 0, arcSegments*3)
	step := (end - start) / arcSegments
	for i := 0; i <= arcSegments; i++ {
		theta := start + step*float64(i)
		vertices = append(vertices, vertex(s.toScreen(cx+math.Cos(theta)*r, cy+math.Sin(theta)*r)))
		if i > 0 {
			indices = append(indices, 0, uint16(i), uint16(i+1))
		}
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.Image.DrawTriangles(vertices, indices, whitePixel, op)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1 float64, width float32, clr color.Color) {
	if s == nil || s.Image == nil {
		return
	}
	ax, ay := s.toScreen(x0, y0)
	bx, by := s.toScreen(x1, y1)
	vector.StrokeLine(s.Image, ax, ay, bx, by, s.scale(float64(width)), clr, true)
}

func isFullCircle(start, end float64) bool {
	return math.Abs(end-start) >= 2*math.Pi-1e-9
}
