package verlet

import "math"

// Particle is a point mass tracked by its current and previous position.
// Velocity is never stored; it is Pos - LastPos.
type Particle struct {
	Pos     Vec2
	LastPos Vec2
	// Acc is added to Pos on every integration step on top of gravity.
	Acc Vec2
}

// NewParticle returns a particle at rest at pos.
func NewParticle(pos Vec2) Particle {
	return Particle{Pos: pos, LastPos: pos}
}

// NewParticleWithVelocity returns a particle at pos that will travel by vel on
// its first step.
func NewParticleWithVelocity(pos, vel Vec2) Particle {
	return Particle{Pos: pos, LastPos: pos.Sub(vel)}
}

func (p *Particle) Velocity() Vec2 {
	return p.Pos.Sub(p.LastPos)
}

// Draw renders the particle as a filled dot with an outline on its boundary.
func (p *Particle) Draw(s Surface, pal *Palette) {
	if s == nil || pal == nil {
		return
	}
	s.FillArc(p.Pos.X, p.Pos.Y, pal.ParticleRadius, 0, 2*math.Pi, pal.Particle)
	s.StrokeArc(p.Pos.X, p.Pos.Y, pal.ParticleRadius, 0, 2*math.Pi, 1, pal.Particle)
}
