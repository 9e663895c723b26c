package filter

const (
	// DefaultOrder is the Butterworth prototype order used by the band-pass
	// builders. The band-pass filter itself has twice as many poles.
	DefaultOrder = 3

	// maxOrder bounds the prototype order; higher orders lose precision in
	// the cascade.
	maxOrder = 12

	// padFactor scales the odd-extension padding length of FiltFilt, as in
	// padlen = padFactor * (2*sections + 1).
	padFactor = 3

	// bilinearFS2 is 2*fs for the normalised sample rate fs = 2 used by the
	// design, where frequencies are fractions of Nyquist.
	bilinearFS2 = 4.0

	// nyquistFraction converts a sample rate to its Nyquist frequency.
	nyquistFraction = 0.5

	// realPoleTolerance is the imaginary magnitude below which a pole is
	// treated as real when pairing poles into sections.
	realPoleTolerance = 1e-12
)
