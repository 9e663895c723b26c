// Package simdops wraps the SIMD kernels from github.com/tphakala/simd that
// the numeric primitives share, adding the padding and allocation handling
// the raw kernels leave to the caller.
package simdops

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
)

// Ops is the set of float64 kernels used by the filter, engine and rate-map
// packages. Function pointers let tests swap in reference implementations.
type Ops struct {
	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// ConvolveValid computes the valid part of the correlation of signal
	// with kernel: dst[i] = Σ signal[i+k]·kernel[k].
	ConvolveValid func(dst, signal, kernel []float64)

	// MulComplex multiplies element-wise: dst[i] = a[i] * b[i].
	MulComplex func(dst, a, b []complex128)
}

var ops64 = Ops{
	Sum:           f64.Sum,
	Scale:         f64.Scale,
	ConvolveValid: f64.ConvolveValid,
	MulComplex:    c128.Mul,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// ConvolveSame filters signal with an odd-length symmetric kernel and
// returns an output of the same length. Samples outside the signal are
// treated as zero.
func (o *Ops) ConvolveSame(signal, kernel []float64) []float64 {
	n := len(signal)
	if n == 0 || len(kernel) == 0 {
		return make([]float64, n)
	}

	half := len(kernel) / 2
	padded := make([]float64, n+2*half)
	copy(padded[half:], signal)

	out := make([]float64, len(padded)-len(kernel)+1)
	o.ConvolveValid(out, padded, kernel)

	return out[:n]
}

