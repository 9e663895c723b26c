package passindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-pass-index/internal/testutil"
	"gonum.org/v1/gonum/mat"
)

const (
	testPosRate = 50.0  // position samples per second
	testLFPRate = 250.0 // LFP samples per second
)

// lineRecording returns n position samples moving along a straight line in
// dim dimensions with unit speed along every axis.
func lineRecording(n, dim int) Recording {
	ts := testutil.Timestamps(n, 0, testPosRate)
	pos := mat.NewDense(n, dim, nil)
	for i, t := range ts {
		for d := range dim {
			pos.Set(i, d, t*float64(d+1))
		}
	}
	return Recording{PosTS: ts, Pos: pos, SpkTS: []float64{ts[n/2]}}
}

// trackRecording returns a 1-D run from 0 to length position units at the
// given number of samples, spiking every spikeEvery seconds while the
// animal is inside [fieldLo, fieldHi].
func trackRecording(n int, length, fieldLo, fieldHi, spikeEvery float64) Recording {
	ts := testutil.Timestamps(n, 0, testPosRate)
	pos := mat.NewDense(n, 1, nil)
	speed := length / ts[n-1]
	for i, t := range ts {
		pos.Set(i, 0, speed*t)
	}

	var spikes []float64
	for t := fieldLo / speed; t <= fieldHi/speed; t += spikeEvery {
		spikes = append(spikes, t)
	}
	return Recording{PosTS: ts, Pos: pos, SpkTS: spikes}
}

// withLFP attaches a cosine LFP at freq Hz spanning the position time range.
func withLFP(rec Recording, freq float64) Recording {
	duration := rec.PosTS[len(rec.PosTS)-1] - rec.PosTS[0]
	n := int(duration*testLFPRate) + 1
	rec.LFPTS = testutil.Timestamps(n, rec.PosTS[0], testLFPRate)
	rec.LFPSig = testutil.Sine(n, freq, testLFPRate, 1, math.Pi/2)
	return rec
}

// stubMap returns a rate map in which the first supra bins fire at rate 1
// and every other bin at 5% of that.
func stubMap(shape []int, binSide float64, supra int) *RateMap {
	total := 1
	for _, s := range shape {
		total *= s
	}
	rates := make([]float64, total)
	for i := range rates {
		rates[i] = 0.05
		if i < supra {
			rates[i] = 1
		}
	}
	return &RateMap{
		Rates:   rates,
		Shape:   shape,
		Origin:  make([]float64, len(shape)),
		BinSide: binSide,
	}
}

// countingMapper returns a mapper yielding m and a pointer to its call
// count.
func countingMapper(m *RateMap) (RateMapper, *int) {
	calls := 0
	return RateMapperFunc(func([]float64, mat.Matrix, []float64, float64, float64) (*RateMap, error) {
		calls++
		return m, nil
	}), &calls
}

func middle(s []float64) []float64 {
	return s[len(s)/4 : 3*len(s)/4]
}

func requireConfig(t *testing.T, rec Recording, opts Options) *Config {
	t.Helper()
	cfg, err := Resolve(rec, opts)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	return cfg
}
