package mathutil

import (
	"errors"
	"math"
	"slices"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ErrTooFewSamples is returned when a spacing statistic needs at least two
// timestamps.
var ErrTooFewSamples = errors.New("at least two samples are required")

// Diff returns the first differences x[i+1]-x[i].
func Diff(x []float64) []float64 {
	if len(x) < minSpacingSamples {
		return nil
	}
	d := make([]float64, len(x)-1)
	for i := range d {
		d[i] = x[i+1] - x[i]
	}
	return d
}

// MeanSpacing returns the mean of the first differences of x.
func MeanSpacing(x []float64) (float64, error) {
	if len(x) < minSpacingSamples {
		return 0, ErrTooFewSamples
	}
	return stat.Mean(Diff(x), nil), nil
}

// ModalSpacing returns the most common first difference of x.
//
// Spacings are snapped to a nanosecond grid first so that timestamps
// produced by repeated float addition still share a mode. When every
// spacing is unique there is no mode and the median spacing is used. Ties
// resolve to the smallest spacing.
func ModalSpacing(x []float64) (float64, error) {
	if len(x) < minSpacingSamples {
		return 0, ErrTooFewSamples
	}

	d := Diff(x)
	for i, v := range d {
		d[i] = math.Round(v/spacingResolution) * spacingResolution
	}

	modes, err := stats.Mode(d)
	if err != nil {
		return 0, err
	}
	modes = slices.DeleteFunc(modes, func(v float64) bool { return v <= 0 })
	if len(modes) > 0 {
		return slices.Min(modes), nil
	}

	return stats.Median(d)
}
