package filter

import "math/cmplx"

// MagnitudeAt returns |H| at freq for a filter running at sampleRate.
func (c Cascade) MagnitudeAt(freq, sampleRate float64) float64 {
	return cmplx.Abs(c.Chain().Response(freq, sampleRate))
}

// MagnitudeDB returns the gain at freq in decibels.
func (c Cascade) MagnitudeDB(freq, sampleRate float64) float64 {
	return c.Chain().MagnitudeDB(freq, sampleRate)
}
