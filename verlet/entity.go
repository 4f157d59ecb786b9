package verlet

// EntityKind says whether an Entity is a particle or a pin.
type EntityKind uint8

const (
	EntityParticle EntityKind = iota + 1
	EntityPin
)

// Entity is something the pointer can pick and drag. For EntityParticle the
// Index is a particle index, for EntityPin a constraint index.
type Entity struct {
	Kind      EntityKind
	Composite *Composite
	Index     int
}

// Position is the particle position or the pin target.
func (e Entity) Position() Vec2 {
	if e.Composite == nil {
		return Vec2{}
	}
	switch e.Kind {
	case EntityParticle:
		if e.Composite.hasParticle(e.Index) {
			return e.Composite.Particles[e.Index].Pos
		}
	case EntityPin:
		if pin := (PinRef{comp: e.Composite, index: e.Index}); pin.Valid() {
			return pin.Target()
		}
	}
	return Vec2{}
}

// Pin returns the entity as a pin handle.
func (e Entity) Pin() (PinRef, bool) {
	if e.Kind != EntityPin {
		return PinRef{}, false
	}
	pin := PinRef{comp: e.Composite, index: e.Index}
	return pin, pin.Valid()
}

func (e Entity) setPosition(pos Vec2) {
	if e.Composite == nil {
		return
	}
	switch e.Kind {
	case EntityParticle:
		if e.Composite.hasParticle(e.Index) {
			e.Composite.Particles[e.Index].Pos.MutableSet(pos)
		}
	case EntityPin:
		PinRef{comp: e.Composite, index: e.Index}.SetTarget(pos)
	}
}
