package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ArcLength returns the cumulative Euclidean path length along the rows of
// pos, starting at zero. Steps that touch a row with a missing (NaN)
// coordinate add nothing to the total.
func ArcLength(pos mat.Matrix) []float64 {
	rows, cols := pos.Dims()
	if rows == 0 {
		return []float64{}
	}

	arc := make([]float64, rows)
	prev := mat.Row(nil, 0, pos)
	cur := make([]float64, cols)
	for i := 1; i < rows; i++ {
		mat.Row(cur, i, pos)
		step := floats.Distance(cur, prev, 2)
		if math.IsNaN(step) {
			step = 0
		}
		arc[i] = arc[i-1] + step
		prev, cur = cur, prev
	}

	return arc
}

// StrictlyIncreasing returns the indices of the points of x that exceed
// every point before them, always keeping the first point.
func StrictlyIncreasing(x []float64) []int {
	if len(x) == 0 {
		return nil
	}
	keep := []int{0}
	last := x[0]
	for i := 1; i < len(x); i++ {
		if x[i] > last {
			keep = append(keep, i)
			last = x[i]
		}
	}
	return keep
}
