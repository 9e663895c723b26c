package passindex

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRecording_Validate(t *testing.T) {
	rec := withLFP(lineRecording(50, 2), 8)
	require.NoError(t, rec.Validate())
	assert.Equal(t, 2, rec.Dim())
	assert.True(t, rec.HasLFP())

	noLFP := lineRecording(50, 3)
	require.NoError(t, noLFP.Validate())
	assert.False(t, noLFP.HasLFP())

	noSpikes := lineRecording(50, 1)
	noSpikes.SpkTS = []float64{}
	assert.NoError(t, noSpikes.Validate(), "an empty spike train is valid")

	gap := lineRecording(50, 2)
	gap.Pos.(*mat.Dense).Set(4, 1, math.NaN())
	assert.NoError(t, gap.Validate(), "NaN marks a missing coordinate")

	assert.Zero(t, Recording{}.Dim())
}

func TestRecording_ValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Recording)
	}{
		{"row mismatch", func(r *Recording) { r.Pos = mat.NewDense(10, 2, nil) }},
		{"no columns", func(r *Recording) { r.Pos = &mat.Dense{} }},
		{"NaN timestamp", func(r *Recording) { r.PosTS[3] = math.NaN() }},
		{"decreasing timestamp", func(r *Recording) { r.PosTS[3] = -1 }},
		{"Inf coordinate", func(r *Recording) { r.Pos.(*mat.Dense).Set(7, 1, math.Inf(1)) }},
		{"negative Inf coordinate", func(r *Recording) { r.Pos.(*mat.Dense).Set(0, 0, math.Inf(-1)) }},
		{"Inf spike", func(r *Recording) { r.SpkTS = []float64{math.Inf(1)} }},
		{"LFP timestamps only", func(r *Recording) { r.LFPSig = nil }},
		{"LFP signal only", func(r *Recording) { r.LFPTS = nil }},
		{"LFP length mismatch", func(r *Recording) { r.LFPSig = r.LFPSig[:len(r.LFPSig)-1] }},
		{"LFP not increasing", func(r *Recording) { r.LFPTS[5] = r.LFPTS[4] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := withLFP(lineRecording(50, 2), 8)
			tt.mutate(&rec)
			assert.ErrorIs(t, rec.Validate(), ErrInvalidArgument)
		})
	}
}

func TestComputationError(t *testing.T) {
	cause := errors.New("pole outside unit circle")
	err := &ComputationError{Op: "LFP filter", Band: Band{Low: 6, High: 10}, SampleRate: 250, Err: cause}

	assert.ErrorIs(t, err, ErrExternalComputation)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "external computation failed: LFP filter (band [6, 10], sample rate 250): pole outside unit circle", err.Error())

	bare := &ComputationError{Op: "rate map", Err: cause}
	assert.Equal(t, "external computation failed: rate map: pole outside unit circle", bare.Error())
}
