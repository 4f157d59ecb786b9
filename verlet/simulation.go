// Package verlet simulates particles and constraints with Verlet integration
// and iterative relaxation. A Simulation is stepped once per display frame
// by an external driver and drawn onto a Surface.
package verlet

import (
	"fmt"
	"math"
)

// frictionEpsilon is the squared speed below which ground friction is skipped.
const frictionEpsilon = 1e-6

// Config holds the global physical parameters of a Simulation.
type Config struct {
	Width, Height   float64
	Gravity         Vec2
	Friction        float64
	SelectionRadius float64
	Palette         Palette
}

// DefaultConfig returns the parameters of the classic demo for a world of
// the given size.
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:           width,
		Height:          height,
		Gravity:         V(0, 0.2),
		Friction:        0.8,
		SelectionRadius: 20,
		Palette:         DefaultPalette(),
	}
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("verlet: world size %gx%g: %w", c.Width, c.Height, ErrInvalidArgument)
	}
	if c.Friction < 0 || c.Friction > 1 {
		return fmt.Errorf("verlet: friction %g: %w", c.Friction, ErrInvalidArgument)
	}
	if c.SelectionRadius < 0 {
		return fmt.Errorf("verlet: selection radius %g: %w", c.SelectionRadius, ErrInvalidArgument)
	}
	return nil
}

// Simulation owns every composite and advances them one frame per Step. It
// is not safe for concurrent use.
type Simulation struct {
	width, height   float64
	gravity         Vec2
	friction        float64
	selectionRadius float64
	palette         Palette

	composites []*Composite
	frame      int

	pointer     Vec2
	pointerDown bool
	dragged     Entity
	dragging    bool
}

func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	pal := cfg.Palette
	pal.fill()
	return &Simulation{
		width:           cfg.Width,
		height:          cfg.Height,
		gravity:         cfg.Gravity,
		friction:        cfg.Friction,
		selectionRadius: cfg.SelectionRadius,
		palette:         pal,
	}, nil
}

func (s *Simulation) Width() float64  { return s.width }
func (s *Simulation) Height() float64 { return s.height }
func (s *Simulation) Gravity() Vec2   { return s.gravity }
func (s *Simulation) SetGravity(g Vec2) {
	s.gravity = g
}
func (s *Simulation) Friction() float64 { return s.friction }

func (s *Simulation) SetFriction(f float64) error {
	if f < 0 || f > 1 {
		return fmt.Errorf("verlet: friction %g: %w", f, ErrInvalidArgument)
	}
	s.friction = f
	return nil
}

func (s *Simulation) SelectionRadius() float64 { return s.selectionRadius }
func (s *Simulation) Palette() *Palette        { return &s.palette }

// Frame is the number of completed steps.
func (s *Simulation) Frame() int { return s.frame }

func (s *Simulation) Composites() []*Composite {
	return s.composites
}

func (s *Simulation) ParticleCount() int {
	n := 0
	for _, c := range s.composites {
		n += len(c.Particles)
	}
	return n
}

// AddComposite validates c and adds it to the simulation. A malformed
// composite is rejected and the simulation is left untouched.
func (s *Simulation) AddComposite(c *Composite) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, existing := range s.composites {
		if existing == c {
			return fmt.Errorf("verlet: composite %q already added: %w", c.Name, ErrInvalidArgument)
		}
	}
	s.composites = append(s.composites, c)
	return nil
}

// RemoveComposite discards c, dropping the drag target if it belonged to it.
func (s *Simulation) RemoveComposite(c *Composite) bool {
	for i, existing := range s.composites {
		if existing != c {
			continue
		}
		s.composites = append(s.composites[:i], s.composites[i+1:]...)
		if s.dragging && s.dragged.Composite == c {
			s.dragging = false
			s.dragged = Entity{}
		}
		return true
	}
	return false
}

// Step advances the simulation by one frame, relaxing constraints substeps
// times. Gravity and inertia are applied once regardless of substeps.
func (s *Simulation) Step(substeps int) error {
	if substeps < 1 {
		return fmt.Errorf("verlet: step substeps %d: %w", substeps, ErrInvalidArgument)
	}

	s.integrate()

	if s.dragging {
		s.dragged.setPosition(s.pointer)
	}

	stepCoef := 1 / float64(substeps)
	for i := 0; i < substeps; i++ {
		for _, c := range s.composites {
			for j := range c.Constraints {
				c.Constraints[j].Relax(c.Particles, stepCoef)
			}
		}
	}

	s.clamp()
	s.frame++
	return nil
}

func (s *Simulation) integrate() {
	for _, c := range s.composites {
		for i := range c.Particles {
			p := &c.Particles[i]
			velocity := p.Pos.Sub(p.LastPos)

			// ground friction
			if p.Pos.Y >= s.height && velocity.Length2() > frictionEpsilon {
				m := velocity.Length()
				velocity.X /= m
				velocity.Y /= m
				velocity.MutableScale(m * s.friction)
			}

			p.LastPos.MutableSet(p.Pos)
			p.Pos.MutableAdd(s.gravity)
			p.Pos.MutableAdd(p.Acc)
			p.Pos.MutableAdd(velocity)
		}
	}
}

// clamp keeps particles inside the world. Velocity is left as is, so a
// particle pushed into a wall sticks there instead of bouncing.
func (s *Simulation) clamp() {
	maxX := s.width - 1
	for _, c := range s.composites {
		for i := range c.Particles {
			p := &c.Particles[i].Pos
			if p.Y > s.height {
				p.Y = s.height
			}
			if p.X < 0 {
				p.X = 0
			}
			if p.X > maxX {
				p.X = maxX
			}
		}
	}
}

// NearestEntity returns the entity closest to the pointer within the
// selection radius.
func (s *Simulation) NearestEntity() (Entity, bool) {
	return s.NearestEntityTo(s.pointer, s.selectionRadius)
}

// NearestEntityTo scans every particle for the closest one within radius of
// pos. The first particle in composite/particle order wins ties. A pinned
// particle is reported as its pin.
func (s *Simulation) NearestEntityTo(pos Vec2, radius float64) (Entity, bool) {
	r2 := radius * radius
	best := math.Inf(1)
	var comp *Composite
	index := -1

	for _, c := range s.composites {
		for i := range c.Particles {
			d2 := c.Particles[i].Pos.Dist2(pos)
			if d2 <= r2 && (comp == nil || d2 < best) {
				comp = c
				index = i
				best = d2
			}
		}
	}
	if comp == nil {
		return Entity{}, false
	}

	if pin, ok := comp.PinOf(index); ok {
		return Entity{Kind: EntityPin, Composite: comp, Index: pin.Index()}, true
	}
	return Entity{Kind: EntityParticle, Composite: comp, Index: index}, true
}

func (s *Simulation) SetPointer(pos Vec2) {
	s.pointer = pos
}

func (s *Simulation) Pointer() Vec2 {
	return s.pointer
}

// PointerDown marks the nearest entity, if any, as the drag target.
func (s *Simulation) PointerDown() (Entity, bool) {
	s.pointerDown = true
	e, ok := s.NearestEntity()
	if ok {
		s.dragged = e
		s.dragging = true
	}
	return e, ok
}

// PointerUp releases the drag target.
func (s *Simulation) PointerUp() {
	s.pointerDown = false
	s.dragging = false
	s.dragged = Entity{}
}

func (s *Simulation) IsPointerDown() bool {
	return s.pointerDown
}

func (s *Simulation) Dragged() (Entity, bool) {
	return s.dragged, s.dragging
}

// Draw renders the whole simulation: a highlight ring around the dragged or
// nearest entity, then all constraints, then all particles.
func (s *Simulation) Draw(surface Surface) {
	if surface == nil {
		return
	}
	surface.ClearRect(0, 0, s.width, s.height)

	highlight, ok := s.dragged, s.dragging
	if !ok {
		highlight, ok = s.NearestEntity()
	}
	if ok {
		p := highlight.Position()
		surface.StrokeArc(p.X, p.Y, s.palette.HighlightRadius, 0, 2*math.Pi, s.palette.LineWidth, s.palette.Highlight)
	}

	for _, c := range s.composites {
		for i := range c.Constraints {
			c.Constraints[i].Draw(c.Particles, surface, &s.palette)
		}
	}
	for _, c := range s.composites {
		for i := range c.Particles {
			c.Particles[i].Draw(surface, &s.palette)
		}
	}
}
