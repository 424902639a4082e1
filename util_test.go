package numerical

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func checkRoots(t *testing.T, roots, expected []float64, epsilon float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots %v, expected %d %v", len(roots), roots, len(expected), expected)
	}
	diff(t, expected, roots, cmpopts.EquateEmpty(), cmpopts.EquateApprox(0, epsilon))
}

// residual evaluates the polynomial with the given coefficients, highest
// degree first, at x, relative to the magnitude of its terms.
func residual(coeffs []float64, x float64) float64 {
	var v, s float64
	for _, c := range coeffs {
		v = v*x + c
		s = s*math.Abs(x) + math.Abs(c)
	}
	if s == 0 {
		return math.Abs(v)
	}
	return math.Abs(v) / s
}
