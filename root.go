package numerical

import "math"

// FindRoot refines x towards a root of f in the bracket [a, b], using the
// derivative df.
//
// It is Newton's method with a bisection safeguard. Each iteration narrows
// the bracket to the side of x on which the root must lie, judged by the sign
// of f(x), and replaces Newton steps that would leave the bracket, or that
// aren't defined because df vanishes, by its midpoint. The iteration stops
// after n steps, as soon as a step is smaller than tolerance, or when f(x) is
// exactly zero.
//
// f is assumed to be increasing across the bracket, with f(a) < 0 < f(b). The
// result is always within [a, b].
func FindRoot(
	f func(float64) float64,
	df func(float64) float64,
	x float64,
	a float64,
	b float64,
	n int,
	tolerance float64,
) float64 {
	for range n {
		fx := f(x)
		if fx == 0 {
			break
		}
		dx := fx / df(x)
		nx := x - dx
		if math.Abs(dx) < tolerance {
			x = nx
			break
		}
		if fx > 0 {
			b = x
		} else {
			a = x
		}
		// Also catches NaN and infinite steps.
		if nx > a && nx < b {
			x = nx
		} else {
			x = (a + b) * 0.5
		}
	}
	return Clamp(x, a, b)
}

// SolveITP finds a zero crossing of f in [a, b], without needing its
// derivative.
//
// It implements the [ITP method] (interpolate, truncate, project) of Oliveira
// and Takahashi, [An Enhancement of the Bisection Method Average Performance
// Preserving Minmax Optimality]. Each step starts from the regula falsi
// estimate, pulls it towards the midpoint by k1·(b-a)², and keeps it close
// enough to the midpoint that the bracket never shrinks slower than
// bisection would allow. On smooth functions this converges superlinearly.
//
// The signs of f(a) and f(b) must differ; either may be the negative one. An
// endpoint at which f is zero is returned as is. SolveITP returns NaN if the
// signs agree, if f is NaN at either endpoint, if a isn't less than b, or if
// epsilon isn't positive. An epsilon below the resolution of float64 at the
// bracket is raised to that resolution.
//
// n0 allows this many iterations beyond what bisection would need, giving
// the secant step more of a chance to engage. 0 or 1 are typical values. k1
// is usually chosen as 0.2 / (b - a).
//
// For a monotonic f, the result is within epsilon of the zero crossing.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
) float64 {
	ya, yb := f(a), f(b)
	switch {
	case ya == 0:
		return a
	case yb == 0:
		return b
	case !(ya < 0 && yb > 0 || ya > 0 && yb < 0):
		return math.NaN()
	case !(a < b) || !(epsilon > 0):
		return math.NaN()
	}
	// Below this, the midpoint of the bracket can't be told apart from its
	// endpoints.
	epsilon = max(epsilon, max(math.Abs(a), math.Abs(b))*0x1p-52)
	// Work on a function that increases across the bracket.
	sign := 1.0
	if ya > 0 {
		sign = -1.0
		ya, yb = -ya, -yb
	}

	steps := n0 + int(max(math.Ceil(math.Log2((b-a)/epsilon))-1, 0))
	radius := math.Ldexp(epsilon, steps)
	for b-a > 2*epsilon {
		mid := 0.5 * (a + b)
		rf := (yb*a - ya*b) / (yb - ya)
		dir := math.Copysign(1, mid-rf)
		// Truncate.
		x := mid
		if delta := k1 * ((b - a) * (b - a)); delta <= math.Abs(mid-rf) {
			x = rf + dir*delta
		}
		// Project.
		if r := radius - 0.5*(b-a); math.Abs(x-mid) > r {
			x = mid - dir*r
		}
		switch y := sign * f(x); {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
		radius *= 0.5
	}
	return 0.5 * (a + b)
}
