package verlet

import "fmt"

// Composite is one articulated structure: a flat slice of particles and the
// constraints between them, relaxed in slice order.
type Composite struct {
	Name        string
	Particles   []Particle
	Constraints []Constraint

	// pins maps a particle index to the index of the latest pin constraint
	// anchoring it.
	pins map[int]int
}

func NewComposite(name string) *Composite {
	return &Composite{Name: name, pins: map[int]int{}}
}

// AddParticle appends p and returns its index.
func (c *Composite) AddParticle(p Particle) int {
	c.Particles = append(c.Particles, p)
	return len(c.Particles) - 1
}

// AddDistance links particles a and b at their current separation.
func (c *Composite) AddDistance(a, b int, stiffness float64) (int, error) {
	if !c.hasParticle(a) || !c.hasParticle(b) {
		return -1, fmt.Errorf("verlet: distance %d-%d: %w", a, b, ErrInvalidArgument)
	}
	if !validStiffness(stiffness) {
		return -1, fmt.Errorf("verlet: distance stiffness %g: %w", stiffness, ErrInvalidArgument)
	}
	c.Constraints = append(c.Constraints, newDistance(c.Particles, a, b, stiffness))
	return len(c.Constraints) - 1, nil
}

// Pin anchors the particle at index to its current position.
func (c *Composite) Pin(index int) (PinRef, error) {
	if !c.hasParticle(index) {
		return PinRef{}, fmt.Errorf("verlet: pin %d: %w", index, ErrInvalidArgument)
	}
	return c.PinAt(index, c.Particles[index].Pos)
}

// PinAt anchors the particle at index to pos. The returned PinRef can be used
// to move the anchor later.
func (c *Composite) PinAt(index int, pos Vec2) (PinRef, error) {
	if !c.hasParticle(index) {
		return PinRef{}, fmt.Errorf("verlet: pin %d: %w", index, ErrInvalidArgument)
	}
	c.Constraints = append(c.Constraints, newPin(index, pos))
	ci := len(c.Constraints) - 1
	if c.pins == nil {
		c.pins = map[int]int{}
	}
	c.pins[index] = ci
	return PinRef{comp: c, index: ci}, nil
}

// PinOf returns the pin anchoring the particle at index, if there is one.
func (c *Composite) PinOf(index int) (PinRef, bool) {
	ci, ok := c.pins[index]
	if !ok {
		return PinRef{}, false
	}
	return PinRef{comp: c, index: ci}, true
}

// Pins returns every pin of the composite in constraint order.
func (c *Composite) Pins() []PinRef {
	var out []PinRef
	for i := range c.Constraints {
		if c.Constraints[i].Kind == PinConstraint {
			out = append(out, PinRef{comp: c, index: i})
		}
	}
	return out
}

// Validate checks every constraint against the particle slice and rebuilds
// the pin lookup table.
func (c *Composite) Validate() error {
	if c == nil {
		return fmt.Errorf("verlet: nil composite: %w", ErrInvalidArgument)
	}
	pins := make(map[int]int)
	for i := range c.Constraints {
		con := &c.Constraints[i]
		if !con.valid(len(c.Particles)) {
			return fmt.Errorf("verlet: composite %q constraint %d (%s): %w", c.Name, i, con.Kind, ErrInvalidArgument)
		}
		if con.Kind == PinConstraint {
			pins[con.A] = i
		}
	}
	c.pins = pins
	return nil
}

func (c *Composite) hasParticle(i int) bool {
	return i >= 0 && i < len(c.Particles)
}

// PinRef is a handle to a pin constraint inside a composite.
type PinRef struct {
	comp  *Composite
	index int
}

// Valid reports whether the handle points at a pin constraint.
func (p PinRef) Valid() bool {
	return p.comp != nil && p.index >= 0 && p.index < len(p.comp.Constraints) &&
		p.comp.Constraints[p.index].Kind == PinConstraint
}

func (p PinRef) Target() Vec2 {
	if !p.Valid() {
		return Vec2{}
	}
	return p.comp.Constraints[p.index].Target
}

func (p PinRef) SetTarget(pos Vec2) {
	if !p.Valid() {
		return
	}
	p.comp.Constraints[p.index].Target = pos
}

// Particle is the index of the pinned particle.
func (p PinRef) Particle() int {
	if !p.Valid() {
		return -1
	}
	return p.comp.Constraints[p.index].A
}

// Index is the pin's position in the composite's constraint slice.
func (p PinRef) Index() int {
	return p.index
}

func (p PinRef) Composite() *Composite {
	return p.comp
}
