package numerical

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFindRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }
	tests := []struct {
		name string
		f    func(float64) float64
		df   func(float64) float64
		x    float64
		a, b float64
		want float64
	}{
		{"sqrt 2", f, df, 1, 0, 2, math.Sqrt2},
		// The derivative vanishes at the initial guess, so the first
		// Newton step is infinite and gets replaced by bisection.
		{"flat start", f, df, 0, 0, 2, math.Sqrt2},
		{"cubic", func(x float64) float64 { return x*x*x - x - 2 }, func(x float64) float64 { return 3*x*x - 1 }, 1, 1, 2, 1.5213797068045676},
		// Pure Newton diverges on arctan when started this far from the root.
		{
			"arctan",
			func(x float64) float64 { return math.Atan(x - 0.3) },
			func(x float64) float64 { return 1 / (1 + (x-0.3)*(x-0.3)) },
			1.9, -2, 2,
			0.3,
		},
		{"linear", func(x float64) float64 { return x - 0.25 }, func(float64) float64 { return 1 }, 0.9, 0, 1, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindRoot(tt.f, tt.df, tt.x, tt.a, tt.b, 100, 1e-12)
			diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-9))
		})
	}
}

func TestFindRootIterations(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }
	// No iterations leave the guess alone.
	diff(t, 1.0, FindRoot(f, df, 1, 0, 2, 0, 1e-12))
	// One Newton step from 1 lands at 1.5.
	diff(t, 1.5, FindRoot(f, df, 1, 0, 2, 1, 1e-12))
	diff(t, math.Sqrt2, FindRoot(f, df, 1, 0, 2, 50, 1e-12), cmpopts.EquateApprox(0, 1e-9))
}

func TestFindRootStaysInBracket(t *testing.T) {
	// The guess lies outside the bracket; the result never does.
	f := func(x float64) float64 { return x - 5 }
	df := func(float64) float64 { return 1 }
	if x := FindRoot(f, df, -3, 0, 1, 20, 1e-12); x < 0 || x > 1 {
		t.Errorf("got %g, outside of [0, 1]", x)
	}
}

func TestFindRootUndefinedStep(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		df   func(float64) float64
		x    float64
		a, b float64
		want float64
	}{
		// The guess is a triple root, so f and df both vanish there.
		{"root at guess", func(x float64) float64 { return x * x * x }, func(x float64) float64 { return 3 * x * x }, 0, -1, 1, 0},
		// Every Newton step is NaN, leaving bisection.
		{"NaN derivative", func(x float64) float64 { return x - 0.25 }, func(float64) float64 { return math.NaN() }, 0.9, 0, 1, 0.25},
		// df has the wrong sign at the guess, sending the step to +Inf.
		{"infinite step", func(x float64) float64 { return x - 0.25 }, func(float64) float64 { return math.Copysign(0, -1) }, 0.9, 0, 1, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindRoot(tt.f, tt.df, tt.x, tt.a, tt.b, 40, 1e-12)
			if !(got >= tt.a && got <= tt.b) {
				t.Fatalf("got %g, outside of [%g, %g]", got, tt.a, tt.b)
			}
			diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-9))
		})
	}
}

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2.0 }
	x := SolveITP(f, 1.0, 2.0, 1e-12, 0, 0.2)
	if n := math.Abs(f(x)); n > 6e-12 {
		t.Errorf("%v > 6e-12", n)
	}
}

func TestSolveITPDecreasing(t *testing.T) {
	f := func(x float64) float64 { return 2 - x*x }
	x := SolveITP(f, 1, 2, 1e-12, 1, 0.2)
	diff(t, math.Sqrt2, x, cmpopts.EquateApprox(0, 1e-12))
}

func TestSolveITPEndpoints(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }
	diff(t, 1.0, SolveITP(f, 1, 3, 1e-12, 1, 0.1))
	diff(t, 1.0, SolveITP(f, -1, 1, 1e-12, 1, 0.1))
	if x := SolveITP(f, 2, 3, 1e-12, 1, 0.1); !math.IsNaN(x) {
		t.Errorf("got %g for a bracket without sign change, want NaN", x)
	}
}

func TestSolveITPInvalid(t *testing.T) {
	f := func(x float64) float64 { return x - 0.5 }
	tests := []struct {
		name    string
		a, b    float64
		epsilon float64
	}{
		{"reversed bracket", 1, 0, 1e-12},
		{"zero epsilon", 0, 1, 0},
		{"negative epsilon", 0, 1, -1e-12},
		{"NaN epsilon", 0, 1, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if x := SolveITP(f, tt.a, tt.b, tt.epsilon, 1, 0.2); !math.IsNaN(x) {
				t.Errorf("got %g, want NaN", x)
			}
		})
	}
}

func TestSolveITPTinyEpsilon(t *testing.T) {
	// The tolerance is far below what float64 can resolve near 1.1.
	f := func(x float64) float64 { return x - 1.1 }
	diff(t, 1.1, SolveITP(f, 1, 2, 1e-300, 1, 0.2), cmpopts.EquateApprox(0, 1e-15))
}
