package verlet

import "math"

// ConstraintKind tags the variant held by a Constraint.
type ConstraintKind uint8

const (
	// DistanceConstraint keeps two particles at their initial separation.
	DistanceConstraint ConstraintKind = iota + 1
	// PinConstraint snaps a particle onto a target point.
	PinConstraint
)

func (k ConstraintKind) String() string {
	switch k {
	case DistanceConstraint:
		return "distance"
	case PinConstraint:
		return "pin"
	default:
		return "unknown"
	}
}

// Constraint is a geometric constraint over particles of one composite.
// Particles are referenced by index into the composite's particle slice.
type Constraint struct {
	Kind ConstraintKind
	A, B int

	// distance
	Stiffness float64
	Distance  float64

	// pin
	Target Vec2
}

func newDistance(particles []Particle, a, b int, stiffness float64) Constraint {
	return Constraint{
		Kind:      DistanceConstraint,
		A:         a,
		B:         b,
		Stiffness: stiffness,
		Distance:  particles[a].Pos.Dist(particles[b].Pos),
	}
}

func newPin(a int, target Vec2) Constraint {
	return Constraint{Kind: PinConstraint, A: a, B: -1, Target: target}
}

// Relax moves the constraint's particles toward satisfying it. stepCoef is
// 1/substeps so the total correction per frame does not depend on how many
// passes are made.
func (c *Constraint) Relax(particles []Particle, stepCoef float64) {
	switch c.Kind {
	case DistanceConstraint:
		a := &particles[c.A]
		b := &particles[c.B]
		delta := b.Pos.Sub(a.Pos)
		dist := delta.Length()
		if dist == 0 {
			return
		}
		// a stretched pair moves together, a compressed one apart
		diff := (dist - c.Distance) / dist
		corr := delta.Scale(diff * c.Stiffness * stepCoef * 0.5)
		a.Pos.MutableAdd(corr)
		b.Pos.MutableAdd(corr.Scale(-1))
	case PinConstraint:
		particles[c.A].Pos.MutableSet(c.Target)
	}
}

func (c *Constraint) Draw(particles []Particle, s Surface, pal *Palette) {
	switch c.Kind {
	case DistanceConstraint:
		a := particles[c.A].Pos
		b := particles[c.B].Pos
		s.StrokeLine(a.X, a.Y, b.X, b.Y, pal.LineWidth, pal.Constraint)
	case PinConstraint:
		if pal.ShowPins {
			s.StrokeArc(c.Target.X, c.Target.Y, pal.ParticleRadius*2, 0, 2*math.Pi, pal.LineWidth, pal.Pin)
		}
	}
}

// valid reports whether every particle index is in range for n particles.
func (c *Constraint) valid(n int) bool {
	inRange := func(i int) bool { return i >= 0 && i < n }
	switch c.Kind {
	case DistanceConstraint:
		return inRange(c.A) && inRange(c.B) && validStiffness(c.Stiffness) && c.Distance >= 0
	case PinConstraint:
		return inRange(c.A)
	default:
		return false
	}
}
