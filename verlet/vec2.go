package verlet

import "math"

// Vec2 is a 2D vector. Value methods return new vectors; the Mutable* methods
// update the receiver in place and are meant for the per-frame hot loop.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Length2 is the squared length.
func (v Vec2) Length2() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Dist(o Vec2) float64 {
	return math.Sqrt(v.Dist2(o))
}

// Dist2 is the squared euclidean distance to o.
func (v Vec2) Dist2(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Normal returns the unit vector pointing the same way as v, or the zero
// vector when v has no length.
func (v Vec2) Normal() Vec2 {
	m := v.Length()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / m, Y: v.Y / m}
}

func (v *Vec2) MutableAdd(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

func (v *Vec2) MutableSet(o Vec2) {
	v.X = o.X
	v.Y = o.Y
}

func (v *Vec2) MutableScale(s float64) {
	v.X *= s
	v.Y *= s
}
