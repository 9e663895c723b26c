package engine

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-pass-index/internal/testutil"
)

const (
	testRate     = 250.0
	testToneFreq = 8.0
)

// TestAnalyticSignal_PeriodicCosine uses a whole number of periods, where the
// FFT method is exact: the analytic signal of cos is e^(jωt).
func TestAnalyticSignal_PeriodicCosine(t *testing.T) {
	for _, n := range []int{250, 251} {
		// 8 cycles over n samples.
		x := make([]float64, n)
		for i := range x {
			x[i] = math.Cos(2 * math.Pi * testToneFreq * float64(i) / float64(n))
		}

		z := AnalyticSignal(x)
		require.Len(t, z, n)
		for i, v := range z {
			want := cmplx.Exp(complex(0, 2*math.Pi*testToneFreq*float64(i)/float64(n)))
			require.InDelta(t, real(want), real(v), 1e-9, "n=%d re[%d]", n, i)
			require.InDelta(t, imag(want), imag(v), 1e-9, "n=%d im[%d]", n, i)
		}
	}
}

func TestAnalyticSignal_RealPartIsInput(t *testing.T) {
	x := testutil.Sine(777, 3.3, testRate, 2, 0.1)
	z := AnalyticSignal(x)
	for i := range x {
		require.InDelta(t, x[i], real(z[i]), 1e-9, "sample %d", i)
	}
}

func TestAnalyticSignal_Empty(t *testing.T) {
	assert.Empty(t, AnalyticSignal(nil))
	assert.Nil(t, NewAnalyticTransformer(0))
}

func TestAnalyticTransformer_Reuse(t *testing.T) {
	tr := NewAnalyticTransformer(128)

	a := testutil.Sine(128, 4, 128, 1, 0)
	b := testutil.Sine(128, 9, 128, 0.5, 1)

	first := tr.Transform(a)
	_ = tr.Transform(b)
	again := tr.Transform(a)

	for i := range first {
		require.InDelta(t, real(first[i]), real(again[i]), 1e-12)
		require.InDelta(t, imag(first[i]), imag(again[i]), 1e-12)
	}
}

func TestInstantaneousPhase_Range(t *testing.T) {
	x := testutil.Sine(1000, testToneFreq, testRate, 1, 0)
	phase := InstantaneousPhase(x)
	require.Len(t, phase, len(x))
	testutil.AssertAllInRange(t, phase, -math.Pi, math.Pi)
}
