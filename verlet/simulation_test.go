package verlet

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

const tolerance = 1e-9

func newTestSim(t *testing.T, width, height float64, gravity Vec2, friction float64) *Simulation {
	t.Helper()
	cfg := DefaultConfig(width, height)
	cfg.Gravity = gravity
	cfg.Friction = friction
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNewSimulationValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero_width", func(c *Config) { c.Width = 0 }, false},
		{"negative_height", func(c *Config) { c.Height = -1 }, false},
		{"friction_above_one", func(c *Config) { c.Friction = 1.5 }, false},
		{"friction_negative", func(c *Config) { c.Friction = -0.1 }, false},
		{"negative_radius", func(c *Config) { c.SelectionRadius = -1 }, false},
		{"friction_bounds", func(c *Config) { c.Friction = 1 }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig(800, 500)
			c.mutate(&cfg)
			_, err := NewSimulation(cfg)
			if c.ok && err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestStepRejectsZeroSubsteps(t *testing.T) {
	sim := newTestSim(t, 100, 100, V(0, 0.2), 0)
	c, err := sim.LineSegments([]Vec2{V(10, 10)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}
	if err := sim.Step(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if c.Particles[0].Pos != V(10, 10) || sim.Frame() != 0 {
		t.Fatalf("rejected step must not change state")
	}
}

func TestChainFallsUnderGravity(t *testing.T) {
	sim := newTestSim(t, 100, 100, V(0, 0.2), 0)
	c, err := sim.LineSegments([]Vec2{V(0, 0), V(10, 0), V(20, 0)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}
	if len(c.Particles) != 3 || len(c.Constraints) != 2 {
		t.Fatalf("expected 3 particles and 2 constraints, got %d/%d", len(c.Particles), len(c.Constraints))
	}

	if err := sim.Step(1); err != nil {
		t.Fatalf("Step: %v", err)
	}

	mid := c.Particles[1].Pos
	if !near(mid.Y, 0.2) {
		t.Fatalf("expected middle particle to fall by 0.2, got y=%g", mid.Y)
	}
	if d := c.Particles[0].Pos.Dist(mid); !near(d, 10) {
		t.Fatalf("expected rest distance 10, got %g", d)
	}
}

func TestGravityAppliedOncePerStep(t *testing.T) {
	for _, substeps := range []int{1, 4, 16} {
		sim := newTestSim(t, 100, 100, V(0, 0.2), 0)
		c, err := sim.LineSegments([]Vec2{V(50, 10)}, 1)
		if err != nil {
			t.Fatalf("LineSegments: %v", err)
		}
		if err := sim.Step(substeps); err != nil {
			t.Fatalf("Step(%d): %v", substeps, err)
		}
		if got := c.Particles[0].Pos.Y - 10; !near(got, 0.2) {
			t.Fatalf("substeps=%d: expected one gravity step (0.2), got %g", substeps, got)
		}
	}
}

func TestSubstepsMatchOnRestingChain(t *testing.T) {
	run := func(substeps, frames int) []Vec2 {
		sim := newTestSim(t, 200, 200, V(0, 0.2), 0)
		c, err := sim.LineSegments([]Vec2{V(20, 20), V(30, 20), V(40, 20)}, 1)
		if err != nil {
			t.Fatalf("LineSegments: %v", err)
		}
		for i := 0; i < frames; i++ {
			if err := sim.Step(substeps); err != nil {
				t.Fatalf("Step: %v", err)
			}
		}
		out := make([]Vec2, len(c.Particles))
		for i, p := range c.Particles {
			out[i] = p.Pos
		}
		return out
	}

	a := run(4, 4)
	b := run(1, 4)
	for i := range a {
		if !near(a[i].X, b[i].X) || !near(a[i].Y, b[i].Y) {
			t.Fatalf("particle %d: substeps 4 gave %v, substeps 1 gave %v", i, a[i], b[i])
		}
	}
}

// maxStretch is the largest relative deviation from rest length over every
// distance constraint of c.
func maxStretch(c *Composite) float64 {
	worst := 0.0
	for _, con := range c.Constraints {
		if con.Kind != DistanceConstraint {
			continue
		}
		d := c.Particles[con.A].Pos.Dist(c.Particles[con.B].Pos)
		worst = math.Max(worst, math.Abs(d-con.Distance)/con.Distance)
	}
	return worst
}

func TestStretchedChainContracts(t *testing.T) {
	sim := newTestSim(t, 200, 200, Vec2{}, 0)
	c, err := sim.LineSegments([]Vec2{V(50, 100), V(60, 100), V(70, 100)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}
	// pull the last particle out without giving it velocity
	c.Particles[2] = NewParticle(V(90, 100))
	centroid := (50.0 + 60 + 90) / 3

	if err := sim.Step(16); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if d := c.Particles[1].Pos.Dist(c.Particles[2].Pos); d >= 30 {
		t.Fatalf("expected the stretched link to shorten after one step, got %g", d)
	}

	for i := 0; i < 120; i++ {
		if err := sim.Step(16); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	for i := 1; i < len(c.Particles); i++ {
		if d := c.Particles[i].Pos.Dist(c.Particles[i-1].Pos); math.Abs(d-10) > 1e-6 {
			t.Fatalf("link %d: expected rest length 10, got %g", i, d)
		}
	}
	x := (c.Particles[0].Pos.X + c.Particles[1].Pos.X + c.Particles[2].Pos.X) / 3
	if math.Abs(x-centroid) > 1e-6 {
		t.Fatalf("expected centroid to stay at x=%g, got %g", centroid, x)
	}
}

func TestTireKeepsShape(t *testing.T) {
	sim := newTestSim(t, 800, 500, V(0, 0.2), 0.8)
	tire, err := sim.Tire(TireConfig{
		Center:         V(200, 200),
		Radius:         50,
		Segments:       30,
		SpokeStiffness: 0.3,
		TreadStiffness: 0.9,
	})
	if err != nil {
		t.Fatalf("Tire: %v", err)
	}

	// the tire lands on the floor around frame 55
	for i := 0; i < 300; i++ {
		if err := sim.Step(16); err != nil {
			t.Fatalf("Step: %v", err)
		}
		if s := maxStretch(tire); math.IsNaN(s) || s > 1 {
			t.Fatalf("frame %d: constraint deviates %g from rest", i, s)
		}
	}
	if s := maxStretch(tire); s > 0.25 {
		t.Fatalf("expected tire near rest shape after settling, worst deviation %g", s)
	}
	hub := tire.Particles[len(tire.Particles)-1].Pos
	if hub.Y <= 400 || hub.Y >= 500 {
		t.Fatalf("expected hub resting about a radius above the floor, got y=%g", hub.Y)
	}
}

func TestPinnedChainHangs(t *testing.T) {
	sim := newTestSim(t, 800, 500, V(0, 0.2), 0.8)
	vertices := make([]Vec2, 10)
	for i := range vertices {
		vertices[i] = V(100+float64(i)*10, 50)
	}
	c, err := sim.LineSegments(vertices, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}
	if _, err := c.Pin(0); err != nil {
		t.Fatalf("Pin: %v", err)
	}

	for i := 0; i < 300; i++ {
		if err := sim.Step(16); err != nil {
			t.Fatalf("Step: %v", err)
		}
		for j := 1; j < len(c.Particles); j++ {
			d := c.Particles[j].Pos.Dist(c.Particles[j-1].Pos)
			if d < 9.9 || d > 20 {
				t.Fatalf("frame %d link %d: length %g out of bounds", i, j, d)
			}
		}
	}
	if c.Particles[0].Pos != V(100, 50) {
		t.Fatalf("expected pinned particle at (100, 50), got %v", c.Particles[0].Pos)
	}
	if end := c.Particles[len(c.Particles)-1].Pos; end.Y < 120 {
		t.Fatalf("expected chain end to hang below the pin, got %v", end)
	}
}

func TestSetGravity(t *testing.T) {
	sim := newTestSim(t, 100, 100, V(0, 0.2), 0)
	if sim.SelectionRadius() != 20 {
		t.Fatalf("expected default selection radius 20, got %g", sim.SelectionRadius())
	}
	c, err := sim.LineSegments([]Vec2{V(50, 50)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}

	sim.SetGravity(V(0.5, 0))
	if sim.Gravity() != V(0.5, 0) {
		t.Fatalf("expected gravity (0.5, 0), got %v", sim.Gravity())
	}
	if err := sim.Step(1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if p := c.Particles[0].Pos; !near(p.X, 50.5) || !near(p.Y, 50) {
		t.Fatalf("expected particle pushed sideways to (50.5, 50), got %v", p)
	}
}

func TestInertiaCarriesVelocity(t *testing.T) {
	sim := newTestSim(t, 100, 100, Vec2{}, 0)
	c := NewComposite("ball")
	c.AddParticle(NewParticleWithVelocity(V(10, 10), V(3, -1)))
	if err := sim.AddComposite(c); err != nil {
		t.Fatalf("AddComposite: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := sim.Step(1); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if got := c.Particles[0].Pos; !near(got.X, 16) || !near(got.Y, 8) {
		t.Fatalf("expected (16,8), got %v", got)
	}
}

func TestParticleAccelerationAddsEachStep(t *testing.T) {
	sim := newTestSim(t, 100, 100, Vec2{}, 0)
	c := NewComposite("pushed")
	i := c.AddParticle(NewParticle(V(10, 10)))
	c.Particles[i].Acc = V(1, 0)
	if err := sim.AddComposite(c); err != nil {
		t.Fatalf("AddComposite: %v", err)
	}
	// x: 10 -> 11 -> 13
	for k := 0; k < 2; k++ {
		if err := sim.Step(1); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if got := c.Particles[i].Pos.X; !near(got, 13) {
		t.Fatalf("expected x=13, got %g", got)
	}
}

func TestGroundFriction(t *testing.T) {
	cases := []struct {
		name     string
		friction float64
		wantX    float64
	}{
		{"half", 0.5, 51},
		{"none", 1, 52},
		{"full_stop", 0, 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sim := newTestSim(t, 100, 100, V(0, 0.2), c.friction)
			comp := NewComposite("slider")
			comp.AddParticle(Particle{Pos: V(50, 100), LastPos: V(48, 100)})
			if err := sim.AddComposite(comp); err != nil {
				t.Fatalf("AddComposite: %v", err)
			}
			if err := sim.Step(1); err != nil {
				t.Fatalf("Step: %v", err)
			}
			got := comp.Particles[0].Pos
			if !near(got.X, c.wantX) || got.Y != 100 {
				t.Fatalf("expected (%g,100), got %v", c.wantX, got)
			}
		})
	}
}

func TestFrictionSkipsNearlyStillParticles(t *testing.T) {
	sim := newTestSim(t, 100, 100, Vec2{}, 0)
	comp := NewComposite("still")
	comp.AddParticle(Particle{Pos: V(50, 100), LastPos: V(50-1e-4, 100)})
	if err := sim.AddComposite(comp); err != nil {
		t.Fatalf("AddComposite: %v", err)
	}
	if err := sim.Step(1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	p := comp.Particles[0].Pos
	if math.IsNaN(p.X) || !near(p.X, 50+1e-4) {
		t.Fatalf("expected untouched drift, got %v", p)
	}
}

func TestBoundsClamp(t *testing.T) {
	sim := newTestSim(t, 100, 80, V(0, 0.2), 0.8)
	c := NewComposite("escapees")
	c.AddParticle(NewParticleWithVelocity(V(5, 40), V(-20, 0)))
	c.AddParticle(NewParticleWithVelocity(V(95, 40), V(20, 0)))
	c.AddParticle(NewParticleWithVelocity(V(50, 75), V(0, 30)))
	c.AddParticle(NewParticleWithVelocity(V(50, 10), V(0, -40)))
	if err := sim.AddComposite(c); err != nil {
		t.Fatalf("AddComposite: %v", err)
	}

	for frame := 0; frame < 20; frame++ {
		if err := sim.Step(2); err != nil {
			t.Fatalf("Step: %v", err)
		}
		for i, p := range c.Particles {
			if p.Pos.X < 0 || p.Pos.X > sim.Width()-1 || p.Pos.Y > sim.Height() {
				t.Fatalf("frame %d particle %d out of bounds: %v", frame, i, p.Pos)
			}
		}
	}
	// the ceiling is open
	if c.Particles[3].Pos.Y >= 10 {
		t.Fatalf("expected particle to rise above its start, got %v", c.Particles[3].Pos)
	}
}

func TestNearestEntity(t *testing.T) {
	sim := newTestSim(t, 200, 200, Vec2{}, 0)
	first, err := sim.LineSegments([]Vec2{V(10, 50), V(90, 50)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}
	second, err := sim.LineSegments([]Vec2{V(30, 50), V(150, 50)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}

	cases := []struct {
		name      string
		pointer   Vec2
		radius    float64
		ok        bool
		composite *Composite
		index     int
	}{
		{"tie_prefers_earlier_composite", V(20, 50), 20, true, first, 0},
		{"second_particle", V(90, 60), 20, true, first, 1},
		{"closest_wins", V(28, 51), 20, true, second, 0},
		{"radius_inclusive", V(10, 70), 20, true, first, 0},
		{"nothing_in_range", V(10, 100), 20, false, nil, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, ok := sim.NearestEntityTo(c.pointer, c.radius)
			if ok != c.ok {
				t.Fatalf("expected ok=%v, got %v", c.ok, ok)
			}
			if !ok {
				return
			}
			if e.Kind != EntityParticle || e.Composite != c.composite || e.Index != c.index {
				t.Fatalf("unexpected entity %+v", e)
			}
		})
	}
}

func TestNearestEntityTieIsStable(t *testing.T) {
	sim := newTestSim(t, 200, 200, Vec2{}, 0)
	c := NewComposite("pair")
	c.AddParticle(NewParticle(V(40, 40)))
	c.AddParticle(NewParticle(V(60, 40)))
	if err := sim.AddComposite(c); err != nil {
		t.Fatalf("AddComposite: %v", err)
	}
	sim.SetPointer(V(50, 40))
	for i := 0; i < 5; i++ {
		e, ok := sim.NearestEntity()
		if !ok || e.Index != 0 {
			t.Fatalf("expected particle 0, got %+v ok=%v", e, ok)
		}
	}
}

func TestNearestEntityUpgradesToPin(t *testing.T) {
	sim := newTestSim(t, 200, 200, V(0, 0.2), 0)
	c, err := sim.LineSegments([]Vec2{V(20, 20), V(40, 20), V(60, 20)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}
	pin, err := c.Pin(0)
	if err != nil {
		t.Fatalf("Pin: %v", err)
	}

	e, ok := sim.NearestEntityTo(V(21, 21), 5)
	if !ok || e.Kind != EntityPin || e.Index != pin.Index() {
		t.Fatalf("expected pin entity, got %+v ok=%v", e, ok)
	}
	ref, ok := e.Pin()
	if !ok || ref.Particle() != 0 {
		t.Fatalf("expected pin on particle 0, got %+v", ref)
	}

	e, ok = sim.NearestEntityTo(V(41, 20), 5)
	if !ok || e.Kind != EntityParticle || e.Index != 1 {
		t.Fatalf("expected unpinned particle, got %+v", e)
	}
}

func TestDragParticle(t *testing.T) {
	sim := newTestSim(t, 200, 200, V(0, 0.2), 0)
	c, err := sim.LineSegments([]Vec2{V(50, 50)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}

	sim.SetPointer(V(52, 50))
	if _, ok := sim.PointerDown(); !ok {
		t.Fatalf("expected pick")
	}
	sim.SetPointer(V(120, 90))
	if err := sim.Step(4); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.Particles[0].Pos; got != V(120, 90) {
		t.Fatalf("expected dragged particle at pointer, got %v", got)
	}

	sim.PointerUp()
	if _, ok := sim.Dragged(); ok || sim.IsPointerDown() {
		t.Fatalf("expected drag released")
	}
	if err := sim.Step(1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.Particles[0].Pos; got == V(120, 90) {
		t.Fatalf("expected released particle to move")
	}
}

func TestDragPinMovesTarget(t *testing.T) {
	sim := newTestSim(t, 200, 200, V(0, 0.2), 0)
	c, err := sim.LineSegments([]Vec2{V(50, 50), V(60, 50)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}
	pin, err := c.Pin(0)
	if err != nil {
		t.Fatalf("Pin: %v", err)
	}

	sim.SetPointer(V(50, 50))
	e, ok := sim.PointerDown()
	if !ok || e.Kind != EntityPin {
		t.Fatalf("expected to grab the pin, got %+v", e)
	}
	sim.SetPointer(V(100, 100))
	if err := sim.Step(8); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if pin.Target() != V(100, 100) {
		t.Fatalf("expected pin target at pointer, got %v", pin.Target())
	}
	if c.Particles[0].Pos != V(100, 100) {
		t.Fatalf("expected pinned particle on its target, got %v", c.Particles[0].Pos)
	}
}

func TestRemoveCompositeDropsDrag(t *testing.T) {
	sim := newTestSim(t, 200, 200, Vec2{}, 0)
	keep, _ := sim.LineSegments([]Vec2{V(150, 150)}, 1)
	gone, _ := sim.LineSegments([]Vec2{V(10, 10)}, 1)

	sim.SetPointer(V(10, 10))
	if _, ok := sim.PointerDown(); !ok {
		t.Fatalf("expected pick")
	}
	if !sim.RemoveComposite(gone) {
		t.Fatalf("expected composite removed")
	}
	if _, ok := sim.Dragged(); ok {
		t.Fatalf("expected drag cleared")
	}
	if sim.RemoveComposite(gone) {
		t.Fatalf("second remove should report false")
	}
	if len(sim.Composites()) != 1 || sim.Composites()[0] != keep {
		t.Fatalf("unexpected composites %v", sim.Composites())
	}
}

func TestAddCompositeRejectsMalformed(t *testing.T) {
	sim := newTestSim(t, 200, 200, Vec2{}, 0)
	good, _ := sim.LineSegments([]Vec2{V(10, 10), V(20, 10)}, 1)

	bad := NewComposite("broken")
	bad.AddParticle(NewParticle(V(0, 0)))
	bad.Constraints = append(bad.Constraints, Constraint{Kind: DistanceConstraint, A: 0, B: 3, Stiffness: 1})

	if err := sim.AddComposite(bad); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err := sim.AddComposite(good); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected duplicate add to fail, got %v", err)
	}
	if len(sim.Composites()) != 1 {
		t.Fatalf("expected only the good composite, got %d", len(sim.Composites()))
	}
	if err := sim.Step(1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if sim.ParticleCount() != 2 {
		t.Fatalf("expected 2 particles, got %d", sim.ParticleCount())
	}
}

func TestSetFriction(t *testing.T) {
	sim := newTestSim(t, 100, 100, Vec2{}, 0.5)
	if err := sim.SetFriction(2); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if sim.Friction() != 0.5 {
		t.Fatalf("rejected friction must not be applied")
	}
	if err := sim.SetFriction(0.25); err != nil || sim.Friction() != 0.25 {
		t.Fatalf("expected friction 0.25, got %g (%v)", sim.Friction(), err)
	}
}

type drawCall struct {
	op  string
	clr color.Color
}

type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) ClearRect(x, y, w, h float64) {
	r.calls = append(r.calls, drawCall{op: "clear"})
}

func (r *recordingSurface) StrokeArc(cx, cy, rad, start, end float64, width float32, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "stroke_arc", clr: clr})
}

func (r *recordingSurface) FillArc(cx, cy, rad, start, end float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "fill_arc", clr: clr})
}

func (r *recordingSurface) StrokeLine(x0, y0, x1, y1 float64, width float32, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "line", clr: clr})
}

func (r *recordingSurface) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func TestDraw(t *testing.T) {
	sim := newTestSim(t, 200, 200, Vec2{}, 0)
	c, err := sim.LineSegments([]Vec2{V(20, 20), V(40, 20), V(60, 20)}, 1)
	if err != nil {
		t.Fatalf("LineSegments: %v", err)
	}
	if _, err := c.Pin(0); err != nil {
		t.Fatalf("Pin: %v", err)
	}

	t.Run("no_highlight", func(t *testing.T) {
		sim.SetPointer(V(150, 150))
		rec := &recordingSurface{}
		sim.Draw(rec)
		if len(rec.calls) == 0 || rec.calls[0].op != "clear" {
			t.Fatalf("expected clear first, got %v", rec.calls)
		}
		if rec.count("line") != 2 {
			t.Fatalf("expected 2 lines (pins invisible), got %d", rec.count("line"))
		}
		if rec.count("fill_arc") != 3 || rec.count("stroke_arc") != 3 {
			t.Fatalf("expected 3 particle dots, got fill=%d stroke=%d", rec.count("fill_arc"), rec.count("stroke_arc"))
		}
	})

	t.Run("highlight_nearest", func(t *testing.T) {
		sim.SetPointer(V(41, 21))
		rec := &recordingSurface{}
		sim.Draw(rec)
		if rec.calls[1].op != "stroke_arc" || rec.calls[1].clr != sim.Palette().Highlight {
			t.Fatalf("expected highlight ring after clear, got %v", rec.calls[1])
		}
		if rec.count("stroke_arc") != 4 {
			t.Fatalf("expected ring plus 3 outlines, got %d", rec.count("stroke_arc"))
		}
	})

	t.Run("show_pins", func(t *testing.T) {
		sim.SetPointer(V(150, 150))
		sim.Palette().ShowPins = true
		defer func() { sim.Palette().ShowPins = false }()
		rec := &recordingSurface{}
		sim.Draw(rec)
		if rec.count("stroke_arc") != 4 {
			t.Fatalf("expected pin ring plus 3 outlines, got %d", rec.count("stroke_arc"))
		}
	})
}
