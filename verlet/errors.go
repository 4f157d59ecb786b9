package verlet

import "errors"

// ErrInvalidArgument is returned, wrapped with context, for out-of-range
// indices, non-positive sizes and stiffness values outside (0, 1].
var ErrInvalidArgument = errors.New("verlet: invalid argument")

func validStiffness(s float64) bool {
	return s > 0 && s <= 1
}
