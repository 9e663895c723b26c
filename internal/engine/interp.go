package engine

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

var (
	// ErrTooFewKnots is returned when fewer than two knots are supplied.
	ErrTooFewKnots = errors.New("linear interpolation needs at least two knots")

	// ErrKnotsNotIncreasing is returned when knot positions are not strictly
	// increasing.
	ErrKnotsNotIncreasing = errors.New("knot positions must be strictly increasing")
)

// Interpolate evaluates the piecewise-linear function through (xs, ys) at
// each query point. Queries outside [xs[0], xs[n-1]] take the value of the
// nearest end knot.
func Interpolate(xs, ys, query []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("knot slices differ in length: %d != %d", len(xs), len(ys))
	}
	if len(xs) < minInterpolationPoints {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKnots, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: xs[%d]=%v, xs[%d]=%v", ErrKnotsNotIncreasing, i-1, xs[i-1], i, xs[i])
		}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, err
	}

	out := make([]float64, len(query))
	for i, q := range query {
		out[i] = pl.Predict(q)
	}
	return out, nil
}
