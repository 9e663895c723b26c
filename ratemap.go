package passindex

import (
	"github.com/tphakala/go-pass-index/internal/ratemap"
	"gonum.org/v1/gonum/mat"
)

// RateMap is a spatial firing-rate map over a regular grid.
type RateMap = ratemap.Map

// RateMapper estimates a firing-rate map from position and spike timestamps.
// The resolver calls it when the place method derives its spatial band, and
// the default field index looks positions up in the map it returns.
type RateMapper interface {
	RateMap(posTS []float64, pos mat.Matrix, spkTS []float64, binSide, smoothWidth float64) (*RateMap, error)
}

// RateMapperFunc adapts a function to RateMapper.
type RateMapperFunc func(posTS []float64, pos mat.Matrix, spkTS []float64, binSide, smoothWidth float64) (*RateMap, error)

// RateMap calls f.
func (f RateMapperFunc) RateMap(posTS []float64, pos mat.Matrix, spkTS []float64, binSide, smoothWidth float64) (*RateMap, error) {
	return f(posTS, pos, spkTS, binSide, smoothWidth)
}

// DefaultRateMapper returns the built-in estimator: an occupancy-normalised
// spike histogram with Gaussian smoothing of standard deviation smth_width.
func DefaultRateMapper() RateMapper {
	return estimatorMapper{}
}

type estimatorMapper struct {
	est ratemap.Estimator
}

func (e estimatorMapper) RateMap(posTS []float64, pos mat.Matrix, spkTS []float64, binSide, smoothWidth float64) (*RateMap, error) {
	return e.est.Estimate(posTS, pos, spkTS, binSide, smoothWidth)
}
