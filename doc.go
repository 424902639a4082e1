// Package numerical provides the numerical kernel underneath 2D curve
// geometry: robust solvers for quadratic and cubic equations, fixed-order
// Gauss-Legendre quadrature, and bracketed root finding.
//
// Curve-time computations, curve/curve intersection, arc length measurement
// and self-intersection tests all boil down to one of these primitives,
// called with coefficients derived from Bézier control points. None of that
// geometry lives in this package.
//
// # Solving polynomials
//
// [SolveQuadratic] and [SolveCubic] return their roots in a fixed-size array,
// together with the number of roots found. The In variants, [SolveQuadraticIn]
// and [SolveCubicIn], only report roots that fall into an [Interval], which is
// usually [UnitInterval] when the roots are curve-time parameters:
//
//	roots, n := numerical.SolveCubicIn(a, b, c, d, numerical.UnitInterval)
//	if n == numerical.InfiniteRoots {
//		// Every t solves the equation.
//		return
//	}
//	for _, t := range roots[:n] {
//		// ...
//	}
//
// The naive formulas for polynomial roots lose most of their precision near
// double roots, or when coefficients span many orders of magnitude. The
// solvers avoid this in three ways: coefficients are rescaled by powers of
// two when their magnitudes are extreme (see [NormalizationFactor]), the
// discriminant of a quadratic is computed with compensated arithmetic when
// its terms nearly cancel (see [Discriminant]), and the real root of a cubic
// is polished by a Newton iteration that approaches it from one side only.
//
// Degenerate equations aren't errors. A quadratic with a negligible leading
// coefficient is solved as a linear equation, a cubic as a quadratic. When
// all coefficients are negligible, the count is [InfiniteRoots], which is
// negative. Check for it before slicing the roots with the count.
//
// # Precision
//
// Whether a value is "zero" depends on what it measures. The constants
// [GeometricEpsilon], [CurveTimeEpsilon], [TrigonometricEpsilon], [Epsilon]
// and [MachineEpsilon] form a hierarchy of thresholds from loosest to
// tightest. [IsZero] and [IsMachineZero] test against the last two.
//
// # Integration and root finding
//
// [Integrate] applies an n-point Gauss-Legendre rule, for n between
// [MinQuadratureOrder] and [MaxQuadratureOrder]. [FindRoot] is a Newton
// iteration safeguarded by bisection, for functions with a known derivative,
// and [SolveITP] finds zero crossings of functions without one.
//
// # Concurrency
//
// The package has no mutable state. All functions may be called concurrently.
package numerical
