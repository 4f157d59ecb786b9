// Package scene turns prefab scene specs into running simulations.
package scene

import (
	"fmt"
	"strings"

	"github.com/milk9111/verlet/prefabs"
	"github.com/milk9111/verlet/verlet"
)

// DefaultSubsteps is used when a scene does not set its own.
const DefaultSubsteps = 16

// Scene is a simulation built from a spec together with the drivers that
// animate its pins.
type Scene struct {
	Name     string
	Spec     *prefabs.SceneSpec
	Substeps int

	sim       *verlet.Simulation
	gravity   verlet.Vec2
	drivers   []Driver
	scheduler *Scheduler
	frame     int
}

// Load builds the named prefab scene.
func Load(name string) (*Scene, error) {
	spec, err := prefabs.LoadSceneSpec(name)
	if err != nil {
		return nil, err
	}
	return Build(spec)
}

func Build(spec *prefabs.SceneSpec) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}

	cfg := simConfig(spec)
	sim, err := verlet.NewSimulation(cfg)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", spec.Name, err)
	}

	s := &Scene{
		Name:      spec.Name,
		Spec:      spec,
		Substeps:  spec.Substeps,
		sim:       sim,
		gravity:   cfg.Gravity,
		scheduler: NewScheduler(DriverSystem{}, StepSystem{}),
	}
	if s.Substeps < 1 {
		s.Substeps = DefaultSubsteps
	}

	for i, cs := range spec.Composites {
		c, err := buildComposite(cs)
		if err != nil {
			return nil, fmt.Errorf("scene %s: composite %d (%s): %w", spec.Name, i, cs.Name, err)
		}
		drivers, err := buildPins(c, cs.Pins)
		if err != nil {
			return nil, fmt.Errorf("scene %s: composite %d (%s): %w", spec.Name, i, cs.Name, err)
		}
		if err := sim.AddComposite(c); err != nil {
			return nil, fmt.Errorf("scene %s: composite %d (%s): %w", spec.Name, i, cs.Name, err)
		}
		s.drivers = append(s.drivers, drivers...)
	}

	return s, nil
}

func simConfig(spec *prefabs.SceneSpec) verlet.Config {
	cfg := verlet.DefaultConfig(spec.Width, spec.Height)
	if spec.Gravity != nil {
		cfg.Gravity = vec(*spec.Gravity)
	}
	if spec.Friction != nil {
		cfg.Friction = *spec.Friction
	}
	if spec.SelectionRadius != nil {
		cfg.SelectionRadius = *spec.SelectionRadius
	}

	p := spec.Palette
	if p.Particle != nil {
		cfg.Palette.Particle = p.Particle.Color
	}
	if p.Constraint != nil {
		cfg.Palette.Constraint = p.Constraint.Color
	}
	if p.Highlight != nil {
		cfg.Palette.Highlight = p.Highlight.Color
	}
	if p.Pin != nil {
		cfg.Palette.Pin = p.Pin.Color
	}
	if p.ParticleRadius > 0 {
		cfg.Palette.ParticleRadius = p.ParticleRadius
	}
	if p.HighlightRadius > 0 {
		cfg.Palette.HighlightRadius = p.HighlightRadius
	}
	if p.LineWidth > 0 {
		cfg.Palette.LineWidth = p.LineWidth
	}
	cfg.Palette.ShowPins = p.ShowPins
	return cfg
}

func buildComposite(cs prefabs.CompositeSpec) (*verlet.Composite, error) {
	switch strings.ToLower(cs.Type) {
	case prefabs.CompositeLine:
		vertices := make([]verlet.Vec2, len(cs.Vertices))
		for i, v := range cs.Vertices {
			vertices[i] = vec(v)
		}
		return verlet.NewLineSegments(cs.Name, vertices, cs.Stiffness)
	case prefabs.CompositeTire:
		return verlet.NewTire(verlet.TireConfig{
			Name:           cs.Name,
			Center:         vec(cs.Center),
			Radius:         cs.Radius,
			Segments:       cs.Segments,
			SpokeStiffness: cs.SpokeStiffness,
			TreadStiffness: cs.TreadStiffness,
			Brace:          cs.Brace,
		})
	case prefabs.CompositeCloth:
		return verlet.NewCloth(verlet.ClothConfig{
			Name:      cs.Name,
			Origin:    vec(cs.Center),
			Width:     cs.Width,
			Height:    cs.Height,
			Segments:  cs.Segments,
			Stiffness: cs.Stiffness,
			PinEvery:  cs.PinEvery,
		})
	default:
		return nil, fmt.Errorf("unknown composite type %q", cs.Type)
	}
}

func buildPins(c *verlet.Composite, pins []prefabs.PinSpec) ([]Driver, error) {
	var drivers []Driver
	for _, ps := range pins {
		var (
			pin verlet.PinRef
			err error
		)
		if ps.At != nil {
			pin, err = c.PinAt(ps.Index, vec(*ps.At))
		} else {
			pin, err = c.Pin(ps.Index)
		}
		if err != nil {
			return nil, err
		}

		if ps.Script == "" {
			continue
		}
		src, err := prefabs.LoadScript(ps.Script)
		if err != nil {
			return nil, fmt.Errorf("pin %d: load script %s: %w", ps.Index, ps.Script, err)
		}
		d, err := NewScriptDriver(ps.Script, src, pin)
		if err != nil {
			return nil, fmt.Errorf("pin %d: %w", ps.Index, err)
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

func vec(v prefabs.Vec2Spec) verlet.Vec2 {
	return verlet.V(v.X, v.Y)
}

func (s *Scene) Sim() *verlet.Simulation {
	return s.sim
}

func (s *Scene) Drivers() []Driver {
	return s.drivers
}

// Frame is the number of frames the scene has run.
func (s *Scene) Frame() int {
	return s.frame
}

// Update runs the scene's systems for one frame: pin drivers, then physics.
func (s *Scene) Update() error {
	if s == nil {
		return nil
	}
	if err := s.scheduler.Update(s); err != nil {
		return fmt.Errorf("scene %s: frame %d: %w", s.Name, s.frame, err)
	}
	s.frame++
	return nil
}

func (s *Scene) Draw(surface verlet.Surface) {
	if s == nil || s.sim == nil {
		return
	}
	s.sim.Draw(surface)
}

// ToggleGravity switches between the scene's configured gravity and none,
// reporting whether gravity is now on.
func (s *Scene) ToggleGravity() bool {
	if s.sim.Gravity() == (verlet.Vec2{}) {
		s.sim.SetGravity(s.gravity)
	} else {
		s.sim.SetGravity(verlet.Vec2{})
	}
	return s.sim.Gravity() != verlet.Vec2{}
}

// Rebuild returns a fresh scene from the same spec.
func (s *Scene) Rebuild() (*Scene, error) {
	next, err := Build(s.Spec)
	if err != nil {
		return nil, err
	}
	next.Substeps = s.Substeps
	return next, nil
}
