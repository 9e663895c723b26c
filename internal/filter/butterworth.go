// Package filter provides IIR filter design and zero-phase filtering for the
// pass-index pipeline.
package filter

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
)

var (
	// ErrInvalidBand indicates band edges that cannot be realised at the
	// given sample rate.
	ErrInvalidBand = errors.New("invalid filter band")

	// ErrSignalTooShort indicates a signal shorter than the zero-phase
	// filter's edge padding.
	ErrSignalTooShort = errors.New("signal too short for filter")
)

// BandParams holds parameters for band-pass design.
type BandParams struct {
	// Order is the Butterworth prototype order.
	Order int

	// Low and High are the band edges in the units of SampleRate.
	Low  float64
	High float64

	// SampleRate is the sampling rate of the signal to be filtered.
	SampleRate float64
}

// Validate checks that the band can be realised.
func (bp *BandParams) Validate() error {
	if bp.Order < 1 || bp.Order > maxOrder {
		return fmt.Errorf("%w: order %d (must be 1-%d)", ErrInvalidBand, bp.Order, maxOrder)
	}

	if !(bp.SampleRate > 0) || math.IsInf(bp.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate %v must be positive and finite", ErrInvalidBand, bp.SampleRate)
	}

	nyquist := bp.SampleRate * nyquistFraction
	if !(bp.Low > 0) || !(bp.High > bp.Low) || !(bp.High < nyquist) {
		return fmt.Errorf("%w: [%v, %v] must satisfy 0 < low < high < %v (Nyquist)",
			ErrInvalidBand, bp.Low, bp.High, nyquist)
	}

	return nil
}

// DesignBandPass designs a digital Butterworth band-pass filter as a cascade
// of second-order sections.
//
// The design follows the classic route: analog Butterworth prototype,
// low-pass to band-pass transform around the pre-warped band edges, then the
// bilinear transform. A prototype of order N yields N sections, each with
// one zero at z=1 and one at z=-1.
func DesignBandPass(params BandParams) (Cascade, error) {
	if err := params.Validate(); err != nil {
		return Cascade{}, err
	}

	n := params.Order
	nyquist := params.SampleRate * nyquistFraction

	// Pre-warp the normalised edges for the bilinear transform.
	wl := bilinearFS2 * math.Tan(math.Pi*(params.Low/nyquist)/2)
	wh := bilinearFS2 * math.Tan(math.Pi*(params.High/nyquist)/2)
	bw := wh - wl
	w0sq := complex(wl*wh, 0)

	// Analog prototype poles on the left half of the unit circle, scaled
	// into the band and split into the upper and lower band-pass poles.
	poles := make([]complex128, 0, 2*n)
	for m := -n + 1; m < n; m += 2 {
		p := -cmplx.Exp(complex(0, math.Pi*float64(m)/float64(2*n)))
		plp := p * complex(bw/2, 0)
		root := cmplx.Sqrt(plp*plp - w0sq)
		poles = append(poles, plp+root, plp-root)
	}

	// Bilinear transform. The N zeros at s=0 map to z=1, and the N excess
	// poles put N zeros at z=-1.
	gain := complex(math.Pow(bw, float64(n)), 0)
	den := complex(1, 0)
	zPoles := make([]complex128, len(poles))
	for i, p := range poles {
		zPoles[i] = (bilinearFS2 + p) / (bilinearFS2 - p)
		den *= bilinearFS2 - p
	}
	gain *= complex(math.Pow(bilinearFS2, float64(n)), 0) / den

	pairs, err := pairPoles(zPoles)
	if err != nil {
		return Cascade{}, err
	}

	sections := make([]biquad.Coefficients, len(pairs))
	for i, pr := range pairs {
		sections[i] = biquad.Coefficients{
			B0: 1,
			B1: 0,
			B2: -1,
			A1: -real(pr[0] + pr[1]),
			A2: real(pr[0] * pr[1]),
		}
	}

	k := real(gain)
	sections[0].B0 *= k
	sections[0].B1 *= k
	sections[0].B2 *= k

	return Cascade{Sections: sections}, nil
}

// pairPoles groups poles into conjugate pairs, then pairs leftover real
// poles with each other.
func pairPoles(poles []complex128) ([][2]complex128, error) {
	var complexPoles, realPoles []complex128
	for _, p := range poles {
		switch {
		case math.Abs(imag(p)) <= realPoleTolerance:
			realPoles = append(realPoles, complex(real(p), 0))
		case imag(p) > 0:
			complexPoles = append(complexPoles, p)
		}
	}

	if len(realPoles)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of real poles (%d)", ErrInvalidBand, len(realPoles))
	}

	// Poles closest to the unit circle go last, as in most SOS layouts.
	sort.Slice(complexPoles, func(i, j int) bool {
		return cmplx.Abs(complexPoles[i]) < cmplx.Abs(complexPoles[j])
	})
	sort.Slice(realPoles, func(i, j int) bool {
		return math.Abs(real(realPoles[i])) < math.Abs(real(realPoles[j]))
	})

	pairs := make([][2]complex128, 0, len(complexPoles)+len(realPoles)/2)
	for i := 0; i+1 < len(realPoles); i += 2 {
		pairs = append(pairs, [2]complex128{realPoles[i], realPoles[i+1]})
	}
	for _, p := range complexPoles {
		pairs = append(pairs, [2]complex128{p, cmplx.Conj(p)})
	}

	return pairs, nil
}
