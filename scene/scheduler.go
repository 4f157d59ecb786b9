package scene

import "log"

// System runs once per frame against a scene.
type System interface {
	Update(s *Scene) error
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in order and stops at the first error.
func (s *Scheduler) Update(sc *Scene) error {
	for _, system := range s.systems {
		if err := system.Update(sc); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// DriverSystem moves scripted pins. A failing driver is logged and keeps
// its previous target; it never stops the frame.
type DriverSystem struct{}

func (DriverSystem) Update(s *Scene) error {
	if s == nil {
		return nil
	}
	for _, d := range s.drivers {
		if err := d.Update(s.frame); err != nil {
			log.Printf("scene %s: driver %s: %v", s.Name, d.Name(), err)
		}
	}
	return nil
}

// StepSystem advances the physics by one frame.
type StepSystem struct{}

func (StepSystem) Update(s *Scene) error {
	if s == nil || s.sim == nil {
		return nil
	}
	return s.sim.Step(s.Substeps)
}
