package numerical

import (
	"math"
	"slices"
)

// InfiniteRoots is the root count reported for equations whose coefficients
// are all negligible, which every value of x satisfies. Being negative, it
// can't be used to slice the returned roots.
const InfiniteRoots = -1

// maxCubicIterations bounds the Newton refinement in the cubic solver.
// Well-formed input converges in a handful of steps.
const maxCubicIterations = 100

// plastic is the plastic number, the real root of x³ = x + 1. It scales the
// derivative-based bound on the distance between the inflection point of a
// cubic and its real root.
const plastic = 1.324717957244746

// SolveQuadratic finds the real roots of a·x² + b·x + c = 0.
//
// The second return value states how many roots were found, in ascending
// order. It is [InfiniteRoots] if a, b and c are all within [Epsilon] of
// zero, and must not be used to slice the roots. If only a is, the equation is
// solved as the linear b·x + c = 0.
//
// Double roots are reported once. Roots that aren't finite are never
// reported.
//
// The roots are computed without catastrophic cancellation: the discriminant
// uses compensated arithmetic when necessary (see [Discriminant]), nearly
// vanishing discriminants are recomputed on rescaled coefficients, and the
// two roots are derived by Vieta's formula from the larger one instead of
// from the textbook formula.
func SolveQuadratic(a, b, c float64) ([2]float64, int) {
	return solveQuadratic(a, b, c, option[Interval]{})
}

// SolveQuadraticIn is like [SolveQuadratic] but only reports roots that lie
// in bounds, widened by [Epsilon]. Roots within that tolerance are clamped to
// bounds.
func SolveQuadraticIn(a, b, c float64, bounds Interval) ([2]float64, int) {
	return solveQuadratic(a, b, c, some(bounds))
}

func solveQuadratic(a, b, c float64, bounds option[Interval]) ([2]float64, int) {
	x1, x2 := math.Inf(1), math.Inf(1)
	if math.Abs(a) < Epsilon {
		if math.Abs(b) < Epsilon {
			if math.Abs(c) < Epsilon {
				return [2]float64{}, InfiniteRoots
			}
			return [2]float64{}, 0
		}
		x1 = -c / b
	} else {
		b *= -0.5
		d := Discriminant(a, b, c)
		// A discriminant this close to zero may be the product of rounding
		// alone. Rescale so it can be told apart from a double root.
		if d != 0 && math.Abs(d) < MachineEpsilon {
			if f := NormalizationFactor(a, b, c); f != 0 {
				a *= f
				b *= f
				c *= f
				d = Discriminant(a, b, c)
			}
		}
		if d >= -MachineEpsilon {
			var q float64
			if d > 0 {
				q = math.Sqrt(d)
			}
			var r float64
			if b < 0 {
				r = b - q
			} else {
				r = b + q
			}
			if r == 0 {
				x1 = c / a
				x2 = -x1
			} else {
				x1 = r / a
				x2 = c / r
			}
		}
	}

	var roots [2]float64
	var n int
	if x, ok := acceptRoot(x1, bounds); ok {
		roots[n] = x
		n++
	}
	if x2 != x1 {
		if x, ok := acceptRoot(x2, bounds); ok {
			roots[n] = x
			n++
		}
	}
	slices.Sort(roots[:n])
	return roots, n
}

// SolveCubic finds the real roots of a·x³ + b·x² + c·x + d = 0.
//
// The second return value states how many roots were found, in ascending
// order. If a is within [Epsilon] of zero, the equation is solved as the
// quadratic b·x² + c·x + d = 0, which means that [InfiniteRoots] is returned
// when all coefficients are negligible. Check for it before slicing the roots.
//
// One real root is located with Newton's method, started from a point
// derived from the inflection point that is guaranteed to lie on the far
// side of the root, so that the iteration approaches it monotonically. The
// remaining roots are those of the quadratic factor left after dividing out
// the first root.
//
// Coefficients of extreme magnitude are rescaled first (see
// [NormalizationFactor]), and the degenerate cases are decided on the rescaled
// values. A cubic whose coefficients span more than about twelve orders of
// magnitude may therefore lose its leading term and be solved as a quadratic.
//
// See Kahan, "To Solve a Real Cubic Equation" (1986), on which this approach
// is based.
func SolveCubic(a, b, c, d float64) ([3]float64, int) {
	return solveCubic(a, b, c, d, option[Interval]{})
}

// SolveCubicIn is like [SolveCubic] but only reports roots that lie in
// bounds, widened by [Epsilon]. Roots within that tolerance are clamped to
// bounds.
func SolveCubicIn(a, b, c, d float64, bounds Interval) ([3]float64, int) {
	return solveCubic(a, b, c, d, some(bounds))
}

func solveCubic(a, b, c, d float64, bounds option[Interval]) ([3]float64, int) {
	if f := NormalizationFactor(a, b, c, d); f != 0 {
		a *= f
		b *= f
		c *= f
		d *= f
	}

	// x is the current estimate of the real root, q and qd are the value and
	// derivative of the cubic at x, and a·t² + b1·t + c2 is the quotient of
	// the cubic divided by (t - x).
	var x, b1, c2, qd, q float64
	evaluate := func(x0 float64) {
		x = x0
		tmp := a * x
		b1 = tmp + b
		c2 = b1*x + c
		qd = (tmp+b1)*x + c2
		q = c2*x + d
	}

	if math.Abs(a) < Epsilon {
		a, b1, c2 = b, c, d
		x = math.Inf(1)
	} else if math.Abs(d) < Epsilon {
		b1, c2 = b, c
		x = 0
	} else {
		evaluate(-(b / a) / 3)
		t := q / a
		r := math.Cbrt(math.Abs(t))
		s := 1.0
		if t < 0 {
			s = -1
		}
		td := -qd / a
		rd := r
		if td > 0 {
			rd = plastic * max(r, math.Sqrt(td))
		}
		x0 := x - s*rd
		if x0 != x {
			for range maxCubicIterations {
				evaluate(x0)
				if qd == 0 {
					x0 = x
				} else {
					// Dividing by 1 + MachineEpsilon keeps x0 from
					// crossing over the root.
					x0 = x - q/qd/(1+MachineEpsilon)
				}
				if !(s*x0 > s*x) {
					break
				}
			}
			// The tracked coefficients accumulate error as x grows; for
			// large roots, dividing by x is more accurate.
			if math.Abs(a)*x*x > math.Abs(d/x) {
				c2 = -d / x
				b1 = (c2 - c) / x
			}
		}
	}

	qroots, n := solveQuadratic(a, b1, c2, bounds)
	var roots [3]float64
	if n == InfiniteRoots {
		return roots, n
	}
	copy(roots[:], qroots[:n])
	if !slices.Contains(roots[:n], x) {
		if x, ok := acceptRoot(x, bounds); ok {
			roots[n] = x
			n++
		}
	}
	slices.Sort(roots[:n])
	return roots, n
}
