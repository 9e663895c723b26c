package engine

// Analytic signal constants
const (
	// analyticPositiveGain doubles the positive-frequency bins so that the
	// real part of the analytic signal equals the input.
	analyticPositiveGain = 2

	// analyticHalfDivisor locates the Nyquist bin of an even-length FFT.
	analyticHalfDivisor = 2
)

// Interpolation constants
const (
	// minInterpolationPoints is the number of knots linear interpolation needs.
	minInterpolationPoints = 2
)
