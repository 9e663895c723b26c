// Package engine implements the numeric primitives the pass-index pipeline
// is built on: analytic signal, linear interpolation and arc length.
package engine

import (
	"math/cmplx"

	"github.com/tphakala/go-pass-index/internal/simdops"
	"gonum.org/v1/gonum/dsp/fourier"
)

// AnalyticTransformer computes analytic signals by the FFT method: transform,
// zero the negative frequencies, double the positive ones, transform back.
// It holds the FFT plan and working buffers for one signal length.
type AnalyticTransformer struct {
	fft  *fourier.CmplxFFT
	size int

	// Spectral weights: 1 at DC (and Nyquist for even sizes), 2 for positive
	// frequencies, 0 for negative ones.
	weights []complex128

	// Working buffers (pre-allocated so repeated calls do not allocate)
	seq      []complex128
	spectrum []complex128
	ops      *simdops.Ops
}

// NewAnalyticTransformer creates a transformer for signals of length n.
func NewAnalyticTransformer(n int) *AnalyticTransformer {
	if n <= 0 {
		return nil
	}

	weights := make([]complex128, n)
	weights[0] = 1
	if n%analyticHalfDivisor == 0 {
		weights[n/analyticHalfDivisor] = 1
		for i := 1; i < n/analyticHalfDivisor; i++ {
			weights[i] = analyticPositiveGain
		}
	} else {
		for i := 1; i < (n+1)/analyticHalfDivisor; i++ {
			weights[i] = analyticPositiveGain
		}
	}

	return &AnalyticTransformer{
		fft:      fourier.NewCmplxFFT(n),
		size:     n,
		weights:  weights,
		seq:      make([]complex128, n),
		spectrum: make([]complex128, n),
		ops:      simdops.Float64Ops(),
	}
}

// Transform returns the analytic signal of x, which must hold exactly the
// length the transformer was built for.
func (a *AnalyticTransformer) Transform(x []float64) []complex128 {
	for i, v := range x[:a.size] {
		a.seq[i] = complex(v, 0)
	}

	a.spectrum = a.fft.Coefficients(a.spectrum, a.seq)
	a.ops.MulComplex(a.spectrum, a.spectrum, a.weights)

	out := a.fft.Sequence(nil, a.spectrum)

	// gonum's inverse transform is unnormalised.
	scale := complex(1/float64(a.size), 0)
	for i := range out {
		out[i] *= scale
	}

	return out
}

// AnalyticSignal returns the analytic signal x + j·H{x} of x.
func AnalyticSignal(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return NewAnalyticTransformer(len(x)).Transform(x)
}

// InstantaneousPhase returns the angle of the analytic signal of x, in
// radians in [-π, π].
func InstantaneousPhase(x []float64) []float64 {
	analytic := AnalyticSignal(x)
	phase := make([]float64, len(analytic))
	for i, z := range analytic {
		phase[i] = cmplx.Phase(z)
	}
	return phase
}

