package mathutil

// n-ball volume/radius constants
const (
	// nBallEvenDivisor splits the dimensionality into k = floor(n/2).
	nBallEvenDivisor = 2

	// nBallOddBase is the base of the 2^(k+1) term in the odd-n volume formula.
	nBallOddBase = 2.0
)

// Spacing statistics constants
const (
	// spacingResolution is the grid that sample spacings are snapped to
	// before the modal spacing is taken. Timestamps are in seconds, so this
	// is one nanosecond; it absorbs the subtraction noise of diff(ts).
	spacingResolution = 1e-9

	// minSpacingSamples is the number of timestamps needed for one spacing.
	minSpacingSamples = 2
)
