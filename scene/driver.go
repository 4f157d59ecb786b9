package scene

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/verlet/verlet"
)

// Driver retargets a pin every frame.
type Driver interface {
	Name() string
	Update(frame int) error
}

// ScriptDriver runs a tengo script each frame to compute a pin target. The
// script sees frame, origin_x and origin_y and assigns x and y.
type ScriptDriver struct {
	name     string
	pin      verlet.PinRef
	origin   verlet.Vec2
	compiled *tengo.Compiled
}

func NewScriptDriver(name string, src []byte, pin verlet.PinRef) (*ScriptDriver, error) {
	if !pin.Valid() {
		return nil, fmt.Errorf("script %s: invalid pin", name)
	}
	origin := pin.Target()

	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("origin_x", origin.X)
	_ = script.Add("origin_y", origin.Y)
	_ = script.Add("x", origin.X)
	_ = script.Add("y", origin.Y)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", name, err)
	}

	return &ScriptDriver{
		name:     name,
		pin:      pin,
		origin:   origin,
		compiled: compiled,
	}, nil
}

func (d *ScriptDriver) Name() string {
	return d.name
}

func (d *ScriptDriver) Pin() verlet.PinRef {
	return d.pin
}

func (d *ScriptDriver) Update(frame int) error {
	if d == nil || d.compiled == nil {
		return nil
	}
	if err := d.compiled.Set("frame", frame); err != nil {
		return err
	}
	if err := d.compiled.Run(); err != nil {
		return err
	}

	x, err := scriptNumber(d.compiled, "x")
	if err != nil {
		return err
	}
	y, err := scriptNumber(d.compiled, "y")
	if err != nil {
		return err
	}
	d.pin.SetTarget(verlet.V(x, y))
	return nil
}

func scriptNumber(c *tengo.Compiled, name string) (float64, error) {
	v := c.Get(name)
	switch v.ValueType() {
	case "float", "int":
		return v.Float(), nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %s", name, v.ValueType())
	}
}
