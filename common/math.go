package common

// BaseWidth and BaseHeight are the logical screen size every front-end lays
// the simulation out against.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
