package passindex

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tphakala/go-pass-index/internal/engine"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SamplingMode names a built-in sampling strategy.
type SamplingMode string

// Built-in sampling strategies.
const (
	// ArcLength resamples the field index at evenly spaced distances along
	// the trajectory.
	ArcLength SamplingMode = "arc_length"

	// RawTimestamps passes the field index through on the position
	// timestamps.
	RawTimestamps SamplingMode = "raw_ts"
)

// ParseSamplingMode returns the sampling mode with the given name.
func ParseSamplingMode(name string) (SamplingMode, error) {
	mode := SamplingMode(strings.ToLower(strings.TrimSpace(name)))
	if !mode.valid() {
		return "", fmt.Errorf("%w: %s must be %s or %s, got %q",
			ErrInvalidArgument, ParamSampleAlong, ArcLength, RawTimestamps, name)
	}
	return mode, nil
}

func (m SamplingMode) valid() bool {
	return m == ArcLength || m == RawTimestamps
}

// Sampler turns a field-index series aligned to the position timestamps
// into a resampling table.
type Sampler func(posTS []float64, pos mat.Matrix, fieldIndex []float64) (Table, error)

// NewSampler returns the built-in sampler for mode.
func NewSampler(mode SamplingMode) (Sampler, error) {
	switch mode {
	case ArcLength:
		return SampleArcLength, nil
	case RawTimestamps:
		return SampleRawTimestamps, nil
	default:
		return nil, fmt.Errorf("%w: unknown %s strategy %q", ErrInvalidArgument, ParamSampleAlong, mode)
	}
}

// SampleArcLength resamples fieldIndex at len(posTS) evenly spaced points
// along the cumulative path length of pos.
//
// Steps touching a missing coordinate add no distance, and samples that do
// not advance the path are dropped before interpolating. The table's Coord
// column is the arc length, TS the timestamp reached at that distance and
// Value the field index at that timestamp. A trajectory that never moves
// returns ErrInsufficientData.
func SampleArcLength(posTS []float64, pos mat.Matrix, fieldIndex []float64) (Table, error) {
	if err := checkSamplerInputs(posTS, pos, fieldIndex); err != nil {
		return Table{}, err
	}

	arc := engine.ArcLength(pos)
	keep := engine.StrictlyIncreasing(arc)
	if len(keep) < 2 {
		return Table{}, fmt.Errorf("%w: trajectory has %d distinct arc-length points", ErrInsufficientData, len(keep))
	}

	knotArc := make([]float64, len(keep))
	knotTS := make([]float64, len(keep))
	for i, k := range keep {
		knotArc[i] = arc[k]
		knotTS[i] = posTS[k]
	}

	coords := make([]float64, len(posTS))
	floats.Span(coords, knotArc[0], knotArc[len(knotArc)-1])

	ts, err := engine.Interpolate(knotArc, knotTS, coords)
	if err != nil {
		return Table{}, fmt.Errorf("%w: timestamps along arc length: %w", ErrInsufficientData, err)
	}
	values, err := engine.Interpolate(posTS, fieldIndex, ts)
	if err != nil {
		return Table{}, fmt.Errorf("%w: field index along arc length: %w", ErrInsufficientData, err)
	}

	return Table{Coord: coords, TS: ts, Value: values}, nil
}

// SampleRawTimestamps returns the identity table: the position timestamps
// as both coordinate and timestamp, and fieldIndex unchanged.
func SampleRawTimestamps(posTS []float64, pos mat.Matrix, fieldIndex []float64) (Table, error) {
	if err := checkSamplerInputs(posTS, pos, fieldIndex); err != nil {
		return Table{}, err
	}
	return Table{
		Coord: slices.Clone(posTS),
		TS:    slices.Clone(posTS),
		Value: slices.Clone(fieldIndex),
	}, nil
}

// tableSampler returns a sampler that ignores its inputs and yields t.
func tableSampler(t Table) Sampler {
	return func([]float64, mat.Matrix, []float64) (Table, error) {
		return t.clone(), nil
	}
}

func checkSamplerInputs(posTS []float64, pos mat.Matrix, fieldIndex []float64) error {
	if pos == nil {
		return fmt.Errorf("%w: position samples are nil", ErrInvalidArgument)
	}
	if rows, _ := pos.Dims(); rows != len(posTS) {
		return fmt.Errorf("%w: position has %d rows for %d timestamps", ErrInvalidArgument, rows, len(posTS))
	}
	if len(fieldIndex) != len(posTS) {
		return fmt.Errorf("%w: field index has %d entries for %d timestamps",
			ErrInvalidArgument, len(fieldIndex), len(posTS))
	}
	return nil
}
