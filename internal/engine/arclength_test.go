package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestArcLength_Planar(t *testing.T) {
	pos := mat.NewDense(4, 2, []float64{
		0, 0,
		3, 4,
		3, 4,
		6, 8,
	})

	assert.InDeltaSlice(t, []float64{0, 5, 5, 10}, ArcLength(pos), 1e-12)
}

func TestArcLength_SkipsMissingCoordinates(t *testing.T) {
	nan := math.NaN()
	pos := mat.NewDense(5, 1, []float64{0, 1, nan, 4, 6})

	// Steps into and out of the NaN row add nothing.
	assert.InDeltaSlice(t, []float64{0, 1, 1, 1, 3}, ArcLength(pos), 1e-12)
}

func TestArcLength_Empty(t *testing.T) {
	assert.Empty(t, ArcLength(&mat.Dense{}))
}

func TestStrictlyIncreasing(t *testing.T) {
	assert.Nil(t, StrictlyIncreasing(nil))
	assert.Equal(t, []int{0, 1, 3, 5}, StrictlyIncreasing([]float64{0, 1, 1, 2, 2, 3}))
	assert.Equal(t, []int{0}, StrictlyIncreasing([]float64{0, 0, 0}))
}
