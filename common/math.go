package common

// Default window size used before a scene sets its own.
const (
	BaseWidth  = 800
	BaseHeight = 500
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
