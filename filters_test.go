package passindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-pass-index/internal/filter"
	"github.com/tphakala/go-pass-index/internal/testutil"
)

// unitTable returns a table with unit Coord spacing holding sig.
func unitTable(sig []float64) Table {
	coord := testutil.Timestamps(len(sig), 0, 1)
	return Table{Coord: coord, TS: coord, Value: sig}
}

func TestGridFilter_PassesBandAttenuatesOutside(t *testing.T) {
	cfg := requireConfig(t, lineRecording(100, 2), GridOptions())

	const n = 2000
	tests := []struct {
		name    string
		freq    float64 // cycles per unit; sampling rate is 1
		minGain float64
		maxGain float64
	}{
		{"in band", 0.05, 0.97, 1.03},
		{"in band low", 0.02, 0.95, 1.05},
		{"above band", 0.45, 0, 0.01},
		{"below band", 0.0005, 0, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testutil.Sine(n, tt.freq, 1, 1, 0)
			out, err := cfg.FilterBand(unitTable(in), cfg)
			require.NoError(t, err)
			require.Len(t, out, n)
			testutil.AssertNoNaNOrInf(t, out)

			gain := testutil.RMS(middle(out)) / testutil.RMS(middle(in))
			assert.GreaterOrEqual(t, gain, tt.minGain)
			assert.LessOrEqual(t, gain, tt.maxGain)
		})
	}
}

func TestFieldFilter_SampleRateFromMeanSpacing(t *testing.T) {
	// Same signal as a unit-spaced table, on a coordinate scaled by 4: the
	// band scales with it and the output is identical.
	in := testutil.Sine(1000, 0.05, 1, 1, 0)
	base, err := NewFieldFilter(Band{Low: 0.01, High: 0.1})(unitTable(in), nil)
	require.NoError(t, err)

	scaled := unitTable(in)
	scaled.Coord = testutil.Timestamps(1000, 3, 0.25)
	got, err := NewFieldFilter(Band{Low: 0.0025, High: 0.025})(scaled, nil)
	require.NoError(t, err)

	assert.InDeltaSlice(t, base, got, 1e-6)
}

func TestFieldFilter_Errors(t *testing.T) {
	grid := NewFieldFilter(GridBand())

	t.Run("band above Nyquist", func(t *testing.T) {
		tbl := unitTable(make([]float64, 200))
		tbl.Coord = testutil.Timestamps(200, 0, 0.1) // spacing 10, Nyquist 0.05

		_, err := grid(tbl, nil)
		require.ErrorIs(t, err, ErrExternalComputation)
		require.ErrorIs(t, err, filter.ErrInvalidBand)

		var ce *ComputationError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "field-index filter", ce.Op)
		assert.Equal(t, GridBand(), ce.Band)
		assert.InDelta(t, 0.1, ce.SampleRate, 1e-12)
		assert.Contains(t, ce.Error(), "field-index filter")
	})

	t.Run("too short", func(t *testing.T) {
		_, err := grid(unitTable(make([]float64, 15)), nil)
		require.ErrorIs(t, err, ErrExternalComputation)
		require.ErrorIs(t, err, filter.ErrSignalTooShort)
	})

	t.Run("single row", func(t *testing.T) {
		_, err := grid(unitTable([]float64{1}), nil)
		require.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("bad table", func(t *testing.T) {
		_, err := grid(Table{Coord: []float64{0, 1}, TS: []float64{0, 1}, Value: []float64{0}}, nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestLFPFilter_ThetaRoundTrip(t *testing.T) {
	const (
		rate     = 250.0
		freq     = 8.0
		duration = 10.0
	)
	n := int(rate * duration)
	ts := testutil.Timestamps(n, 100, rate)
	sig := testutil.Sine(n, freq, rate, 1, math.Pi/2) // cos(2π·8·t)

	cfg := requireConfig(t, lineRecording(100, 1), GridOptions())
	filtered, phase, err := cfg.LFPFilter(ts, sig)
	require.NoError(t, err)
	require.Len(t, filtered, n)
	require.Len(t, phase, n)

	testutil.AssertAllInRange(t, phase, -math.Pi, math.Pi)

	amplitude := testutil.RMS(middle(filtered)) * math.Sqrt2
	assert.InDelta(t, 1.0, amplitude, 0.05)

	// The analytic phase of cos(ωt) is ωt.
	for i := n / 4; i < 3*n/4; i++ {
		want := 2 * math.Pi * freq * float64(i) / rate
		diff := math.Remainder(phase[i]-want, 2*math.Pi)
		require.InDelta(t, 0, diff, 0.05, "sample %d", i)
	}
}

func TestLFPFilter_ModalSpacingIgnoresGaps(t *testing.T) {
	const rate = 250.0
	ts := testutil.Timestamps(3000, 0, rate)
	// Drop a few samples: the modal spacing still gives 250 Hz.
	ts = append(ts[:1000], ts[1010:]...)
	sig := make([]float64, len(ts))
	for i, v := range ts {
		sig[i] = math.Cos(2 * math.Pi * 8 * v)
	}

	_, _, err := NewLFPFilter(Band{Low: 6, High: 10})(ts, sig)
	require.NoError(t, err)

	_, _, err = NewLFPFilter(Band{Low: 6, High: 200})(ts, sig)
	var ce *ComputationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "LFP filter", ce.Op)
	assert.InDelta(t, rate, ce.SampleRate, 1e-6)
}

func TestLFPFilter_InputErrors(t *testing.T) {
	lfp := NewLFPFilter(Band{Low: 6, High: 10})

	_, _, err := lfp([]float64{0, 1}, []float64{0})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = lfp([]float64{0}, []float64{0})
	require.ErrorIs(t, err, ErrInsufficientData)
}
