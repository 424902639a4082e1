package numerical

import "math"

// An Interval is the closed range [Min, Max]. The solvers use it to restrict
// which roots they report.
type Interval struct {
	Min float64
	Max float64
}

// UnitInterval is the range of curve-time parameters, [0, 1].
var UnitInterval = Interval{0, 1}

// Contains reports whether v lies within the interval, widened by [Epsilon]
// on both sides.
func (iv Interval) Contains(v float64) bool {
	return v > iv.Min-Epsilon && v < iv.Max+Epsilon
}

// Clamp limits v to the interval.
func (iv Interval) Clamp(v float64) float64 {
	return Clamp(v, iv.Min, iv.Max)
}

type option[T any] struct {
	isSet bool
	value T
}

func some[T any](v T) option[T] {
	return option[T]{isSet: true, value: v}
}

// acceptRoot decides whether a root may be reported, and in what form.
// Non-finite roots are always rejected. Without bounds, roots are reported as
// they are; with bounds, roots within Epsilon of the interval are clamped into
// it and everything else is rejected.
func acceptRoot(x float64, bounds option[Interval]) (float64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	if !bounds.isSet {
		return x, true
	}
	if !bounds.value.Contains(x) {
		return 0, false
	}
	return bounds.value.Clamp(x), true
}
