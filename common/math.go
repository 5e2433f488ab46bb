package common

import "math"

// Epsilon is the magnitude below which a movement component counts as zero.
const Epsilon = 1e-4

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or +1, treating values within eps of zero as zero.
func Sign(v, eps float64) int {
	if math.Abs(v) < eps {
		return 0
	}
	if v < 0 {
		return -1
	}
	return 1
}

func NearZero(x, y float64) bool {
	return math.Abs(x) < Epsilon && math.Abs(y) < Epsilon
}
