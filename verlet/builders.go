package verlet

import (
	"fmt"
	"math"
)

// DefaultTireBrace is how many rim positions ahead each tire particle is
// cross-braced to.
const DefaultTireBrace = 5

// TireConfig describes a wheel: Segments rim particles around Center plus a
// hub particle at Center.
type TireConfig struct {
	Name           string
	Center         Vec2
	Radius         float64
	Segments       int
	SpokeStiffness float64
	TreadStiffness float64
	// Brace links rim particle i to i+Brace. Zero means DefaultTireBrace.
	Brace int
}

// ClothConfig describes a Segments x Segments grid of particles spanning
// Width x Height, centred on Origin.
type ClothConfig struct {
	Name      string
	Origin    Vec2
	Width     float64
	Height    float64
	Segments  int
	Stiffness float64
	// PinEvery pins every n-th particle of the top row. Zero pins nothing.
	PinEvery int
}

// LineSegments builds a chain with one particle per vertex and a distance
// constraint between each consecutive pair.
func (s *Simulation) LineSegments(vertices []Vec2, stiffness float64) (*Composite, error) {
	c, err := NewLineSegments("", vertices, stiffness)
	if err != nil {
		return nil, err
	}
	s.composites = append(s.composites, c)
	return c, nil
}

// NewLineSegments builds a chain composite without adding it to a simulation.
func NewLineSegments(name string, vertices []Vec2, stiffness float64) (*Composite, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("verlet: line segments: no vertices: %w", ErrInvalidArgument)
	}
	if !validStiffness(stiffness) {
		return nil, fmt.Errorf("verlet: line segments stiffness %g: %w", stiffness, ErrInvalidArgument)
	}

	c := NewComposite(name)
	for i, v := range vertices {
		c.AddParticle(NewParticle(v))
		if i > 0 {
			c.Constraints = append(c.Constraints, newDistance(c.Particles, i, i-1, stiffness))
		}
	}
	return c, nil
}

func (s *Simulation) Tire(cfg TireConfig) (*Composite, error) {
	c, err := NewTire(cfg)
	if err != nil {
		return nil, err
	}
	s.composites = append(s.composites, c)
	return c, nil
}

// NewTire builds a tire composite without adding it to a simulation. The hub
// is the last particle.
func NewTire(cfg TireConfig) (*Composite, error) {
	n := cfg.Segments
	if n < 3 {
		return nil, fmt.Errorf("verlet: tire segments %d: %w", n, ErrInvalidArgument)
	}
	if cfg.Radius <= 0 {
		return nil, fmt.Errorf("verlet: tire radius %g: %w", cfg.Radius, ErrInvalidArgument)
	}
	if !validStiffness(cfg.SpokeStiffness) || !validStiffness(cfg.TreadStiffness) {
		return nil, fmt.Errorf("verlet: tire stiffness %g/%g: %w", cfg.SpokeStiffness, cfg.TreadStiffness, ErrInvalidArgument)
	}
	brace := cfg.Brace
	if brace == 0 {
		brace = DefaultTireBrace
	}
	if brace < 0 {
		return nil, fmt.Errorf("verlet: tire brace %d: %w", brace, ErrInvalidArgument)
	}

	c := NewComposite(cfg.Name)
	stride := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		theta := float64(i) * stride
		c.AddParticle(NewParticle(V(
			cfg.Center.X+math.Cos(theta)*cfg.Radius,
			cfg.Center.Y+math.Sin(theta)*cfg.Radius,
		)))
	}
	hub := c.AddParticle(NewParticle(cfg.Center))

	for i := 0; i < n; i++ {
		c.Constraints = append(c.Constraints,
			newDistance(c.Particles, i, (i+1)%n, cfg.TreadStiffness),
			newDistance(c.Particles, i, hub, cfg.SpokeStiffness),
		)
		// a brace that wraps onto itself would be a zero-length no-op
		if j := (i + brace) % n; j != i {
			c.Constraints = append(c.Constraints, newDistance(c.Particles, i, j, cfg.TreadStiffness))
		}
	}
	return c, nil
}

func (s *Simulation) Cloth(cfg ClothConfig) (*Composite, error) {
	c, err := NewCloth(cfg)
	if err != nil {
		return nil, err
	}
	s.composites = append(s.composites, c)
	return c, nil
}

// NewCloth builds a cloth composite without adding it to a simulation.
// Particle (x, y) of the grid has index y*Segments+x.
func NewCloth(cfg ClothConfig) (*Composite, error) {
	n := cfg.Segments
	if n < 1 {
		return nil, fmt.Errorf("verlet: cloth segments %d: %w", n, ErrInvalidArgument)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("verlet: cloth size %gx%g: %w", cfg.Width, cfg.Height, ErrInvalidArgument)
	}
	if !validStiffness(cfg.Stiffness) {
		return nil, fmt.Errorf("verlet: cloth stiffness %g: %w", cfg.Stiffness, ErrInvalidArgument)
	}
	if cfg.PinEvery < 0 {
		return nil, fmt.Errorf("verlet: cloth pin interval %d: %w", cfg.PinEvery, ErrInvalidArgument)
	}

	c := NewComposite(cfg.Name)
	xStride := cfg.Width / float64(n)
	yStride := cfg.Height / float64(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px := cfg.Origin.X + float64(x)*xStride - cfg.Width/2 + xStride/2
			py := cfg.Origin.Y + float64(y)*yStride - cfg.Height/2 + yStride/2
			i := c.AddParticle(NewParticle(V(px, py)))
			if x > 0 {
				c.Constraints = append(c.Constraints, newDistance(c.Particles, i, i-1, cfg.Stiffness))
			}
			if y > 0 {
				c.Constraints = append(c.Constraints, newDistance(c.Particles, i, i-n, cfg.Stiffness))
			}
		}
	}

	if cfg.PinEvery > 0 {
		for x := 0; x < n; x += cfg.PinEvery {
			if _, err := c.Pin(x); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}
