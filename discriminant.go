package numerical

import "math"

// splitter is 2²⁷+1, the Veltkamp constant for splitting a float64 into two
// halves of 26 significant bits each.
const splitter = 134217729.0

// split returns hi and lo such that hi + lo == v exactly and each half has at
// most 26 significant bits, so that the product of two halves is exact.
//
// The explicit conversions keep the compiler from fusing the operations.
func split(v float64) (hi, lo float64) {
	x := float64(v * splitter)
	y := float64(v - x)
	hi = float64(y + x)
	lo = float64(v - hi)
	return hi, lo
}

// twoProduct returns the rounded product p = x*y and the error e of that
// rounding, such that x*y == p + e exactly, barring overflow and underflow.
//
// This is Dekker's algorithm. On hardware with fused multiply-add, the same
// error is math.FMA(x, y, -p), but the split formulation gives identical
// results on every platform.
func twoProduct(x, y float64) (p, e float64) {
	p = float64(x * y)
	xh, xl := split(x)
	yh, yl := split(y)
	e = float64(float64(float64(float64(xh*yh)-p)+float64(xh*yl))+float64(xl*yh)) + float64(xl*yl)
	return p, e
}

// Discriminant returns b² - a·c, the discriminant of the quadratic
// a·x² - 2b·x + c = 0.
//
// When b² and a·c are close, the direct subtraction cancels most significant
// bits. In that case, both products are computed as unevaluated sums of two
// floats and subtracted with compensation, so that the sign of the result is
// correct even when the coefficients span many orders of magnitude.
//
// See <https://people.eecs.berkeley.edu/~wkahan/Qdrtcs.pdf>.
func Discriminant(a, b, c float64) float64 {
	d := b*b - a*c
	e := b*b + a*c
	if math.Abs(d)*3 < e {
		p, dp := twoProduct(b, b)
		q, dq := twoProduct(a, c)
		d = (p - q) + (dp - dq)
	}
	return d
}

// NormalizationFactor returns a power of two that brings the largest
// magnitude among coeffs into a range where squaring it neither overflows nor
// underflows. Scaling by a power of two is exact.
//
// If the largest magnitude already lies within [1e-8, 1e8], or is zero,
// infinite or NaN, NormalizationFactor returns 0, meaning that no scaling
// should be done.
func NormalizationFactor(coeffs ...float64) float64 {
	var norm float64
	for _, c := range coeffs {
		c = math.Abs(c)
		if math.IsNaN(c) {
			return 0
		}
		norm = max(norm, c)
	}
	if norm == 0 || (norm >= 1e-8 && norm <= 1e8) {
		return 0
	}
	// Round halves towards positive infinity.
	return math.Exp2(-math.Floor(math.Log2(norm) + 0.5))
}
