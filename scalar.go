package numerical

import "math"

// IsZero reports whether v is within [Epsilon] of zero.
//
// NaN is never zero, so that invalid input falls through to whatever error
// path the caller has instead of being treated as an absent coefficient.
func IsZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// IsMachineZero reports whether v is within [MachineEpsilon] of zero. Like
// [IsZero], it returns false for NaN.
func IsMachineZero(v float64) bool {
	return math.Abs(v) <= MachineEpsilon
}

// Clamp limits v to the range [lo, hi]. NaN is returned unchanged.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}
