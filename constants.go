package numerical

import "math"

// Precision thresholds, from loosest to tightest. Callers pick the one that
// matches the quantity they compare: geometric distances, curve-time
// parameters, angles, or raw binary precision.
const (
	// GeometricEpsilon is the tolerance for distances between points.
	GeometricEpsilon = 1e-7
	// CurveTimeEpsilon is the tolerance for curve-time parameters in [0, 1].
	CurveTimeEpsilon = 1e-8
	// TrigonometricEpsilon is the tolerance for sines, cosines and angles.
	TrigonometricEpsilon = 1e-8
	// Epsilon is the general threshold below which a value is considered
	// absent. See [IsZero].
	Epsilon = 1e-12
	// MachineEpsilon is slightly larger than half the distance between 1.0
	// and the next representable float64. It is used where genuine
	// floating-point cancellation has to be detected. See [IsMachineZero].
	MachineEpsilon = 1.12e-16
)

// Kappa is the distance, relative to the radius, at which the control points
// of a cubic Bézier have to be placed so that it approximates a quarter
// circle. The radial error of that approximation stays below 0.03%.
const Kappa = 4.0 * (math.Sqrt2 - 1.0) / 3.0
