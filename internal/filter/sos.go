package filter

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
)

// dcGain returns H(1) of a section, or NaN when it has a pole at DC.
func dcGain(s biquad.Coefficients) float64 {
	den := 1 + s.A1 + s.A2
	if den == 0 {
		return math.NaN()
	}
	return (s.B0 + s.B1 + s.B2) / den
}

// steadyState returns the transposed direct-form II state that a unit step
// settles into, so filtering can start without a transient.
func steadyState(s biquad.Coefficients) [2]float64 {
	y := dcGain(s)
	if math.IsNaN(y) {
		return [2]float64{}
	}
	return [2]float64{
		s.B1 + s.B2 - (s.A1+s.A2)*y,
		s.B2 - s.A2*y,
	}
}

// Cascade is a chain of second-order sections applied in order, with a0
// normalised to 1 in each.
type Cascade struct {
	Sections []biquad.Coefficients
}

// Chain returns a fresh biquad chain running the cascade.
func (c Cascade) Chain() *biquad.Chain {
	return biquad.NewChain(c.Sections)
}

// PadLength returns the number of samples FiltFilt mirrors onto each end of
// the signal. Signals must be strictly longer than this.
func (c Cascade) PadLength() int {
	return padFactor * (2*len(c.Sections) + 1)
}

// Filter applies the cascade causally. zi holds the initial state of each
// section and may be nil for a zero initial state.
func (c Cascade) Filter(x []float64, zi [][2]float64) []float64 {
	y := slices.Clone(x)
	if len(y) == 0 {
		return y
	}
	chain := c.Chain()
	if zi != nil {
		chain.SetState(zi)
	}
	chain.ProcessBlock(y)
	return y
}

// initialState returns per-section step-response states scaled for a
// signal that starts at x0. Each section sees the DC output of the sections
// before it.
func (c Cascade) initialState(x0 float64) [][2]float64 {
	zi := make([][2]float64, len(c.Sections))
	scale := x0
	for i, s := range c.Sections {
		ss := steadyState(s)
		zi[i] = [2]float64{ss[0] * scale, ss[1] * scale}
		if g := dcGain(s); !math.IsNaN(g) {
			scale *= g
		}
	}
	return zi
}

// FiltFilt applies the cascade forward and then backward, giving zero phase
// distortion and squared magnitude response.
//
// The signal is extended at both ends by odd reflection about its end
// points, and each pass starts from the steady state for its first sample,
// which keeps edge transients small.
func (c Cascade) FiltFilt(x []float64) ([]float64, error) {
	if len(c.Sections) == 0 {
		return slices.Clone(x), nil
	}

	pad := c.PadLength()
	if len(x) <= pad {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrSignalTooShort, len(x), pad)
	}

	y := oddExtend(x, pad)
	chain := c.Chain()

	chain.SetState(c.initialState(y[0]))
	chain.ProcessBlock(y)

	slices.Reverse(y)
	chain.SetState(c.initialState(y[0]))
	chain.ProcessBlock(y)
	slices.Reverse(y)

	return y[pad : pad+len(x)], nil
}

// oddExtend reflects x about its first and last samples by pad points.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, 0, n+2*pad)

	first, last := x[0], x[n-1]
	for i := pad; i >= 1; i-- {
		ext = append(ext, 2*first-x[i])
	}
	ext = append(ext, x...)
	for i := n - 2; i >= n-1-pad; i-- {
		ext = append(ext, 2*last-x[i])
	}

	return ext
}
