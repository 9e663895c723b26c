// Package ratemap estimates spatial firing-rate maps from position and spike
// timestamps: an occupancy-normalised spike histogram over a regular N-D
// grid, smoothed with a separable Gaussian kernel.
package ratemap

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/tphakala/go-pass-index/internal/mathutil"
	"github.com/tphakala/go-pass-index/internal/simdops"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidParams indicates a non-positive bin size or smoothing width.
	ErrInvalidParams = errors.New("invalid rate map parameters")

	// ErrNoCoverage indicates that no position sample has a complete set of
	// coordinates, so nothing can be binned.
	ErrNoCoverage = errors.New("no valid position samples")
)

// Map is a firing-rate map over a regular grid. Bins are stored row-major:
// the last dimension varies fastest. Unvisited bins hold NaN.
type Map struct {
	Rates   []float64
	Shape   []int
	Origin  []float64
	BinSide float64
}

// Dim returns the number of spatial dimensions.
func (m *Map) Dim() int {
	return len(m.Shape)
}

// Peak returns the largest finite rate, or NaN if the map has none.
func (m *Map) Peak() float64 {
	peak := math.NaN()
	for _, r := range m.Rates {
		if math.IsNaN(r) {
			continue
		}
		if math.IsNaN(peak) || r > peak {
			peak = r
		}
	}
	return peak
}

// SupraThresholdCount returns the number of bins whose rate exceeds frac
// times the peak rate.
func (m *Map) SupraThresholdCount(frac float64) int {
	peak := m.Peak()
	if math.IsNaN(peak) {
		return 0
	}
	threshold := frac * peak
	count := 0
	for _, r := range m.Rates {
		if r > threshold {
			count++
		}
	}
	return count
}

// SupraThresholdVolume returns the spatial volume covered by the bins counted
// by SupraThresholdCount: the count times BinSide^Dim.
func (m *Map) SupraThresholdVolume(frac float64) float64 {
	return float64(m.SupraThresholdCount(frac)) * math.Pow(m.BinSide, float64(m.Dim()))
}

// Lookup returns the rate of the bin containing point, or NaN when the point
// lies outside the map, has a missing coordinate, or falls in an unvisited
// bin.
func (m *Map) Lookup(point []float64) float64 {
	idx, ok := m.index(point)
	if !ok {
		return math.NaN()
	}
	return m.Rates[idx]
}

func (m *Map) index(point []float64) (int, bool) {
	if len(point) != len(m.Shape) || !(m.BinSide > 0) {
		return 0, false
	}
	idx := 0
	for d, v := range point {
		if math.IsNaN(v) {
			return 0, false
		}
		b := int(math.Floor((v - m.Origin[d]) / m.BinSide))
		if b < 0 || b >= m.Shape[d] {
			return 0, false
		}
		idx = idx*m.Shape[d] + b
	}
	return idx, true
}

// Estimator builds rate maps. The zero value is ready to use.
type Estimator struct{}

// Estimate bins positions and spikes into cubic bins of side binSide and
// smooths occupancy and spike counts with a Gaussian of standard deviation
// smoothWidth (same units as the positions) before dividing them.
//
// Each position sample contributes the time until the next sample to its
// bin's occupancy; the last sample contributes the mean spacing. A spike is
// assigned to the latest position sample at or before it. Spikes outside the
// position time range are ignored.
func (Estimator) Estimate(posTS []float64, pos mat.Matrix, spkTS []float64, binSide, smoothWidth float64) (*Map, error) {
	if !(binSide > 0) || !(smoothWidth > 0) {
		return nil, fmt.Errorf("%w: binside=%v smth_width=%v must be positive", ErrInvalidParams, binSide, smoothWidth)
	}

	rows, dim := pos.Dims()
	if rows != len(posTS) {
		return nil, fmt.Errorf("%w: %d position rows for %d timestamps", ErrInvalidParams, rows, len(posTS))
	}
	if dim == 0 {
		return nil, fmt.Errorf("%w: position has no coordinate columns", ErrInvalidParams)
	}

	valid := make([]bool, rows)
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	floats.AddConst(math.Inf(1), lo)
	floats.AddConst(math.Inf(-1), hi)

	row := make([]float64, dim)
	nValid := 0
	for i := range rows {
		mat.Row(row, i, pos)
		if floats.HasNaN(row) {
			continue
		}
		for d, v := range row {
			if math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: position[%d][%d] is %v", ErrInvalidParams, i, d, v)
			}
		}
		valid[i] = true
		nValid++
		for d, v := range row {
			lo[d] = math.Min(lo[d], v)
			hi[d] = math.Max(hi[d], v)
		}
	}
	if nValid == 0 {
		return nil, ErrNoCoverage
	}

	m := &Map{
		Shape:   make([]int, dim),
		Origin:  lo,
		BinSide: binSide,
	}
	bins := 1.0
	for d := range dim {
		span := math.Floor((hi[d]-lo[d])/binSide) + 1
		bins *= span
		if !(bins <= maxBins) {
			return nil, fmt.Errorf("%w: more than %d bins at binside=%v", ErrInvalidParams, maxBins, binSide)
		}
		m.Shape[d] = int(span)
	}
	total := int(bins)

	occupancy := make([]float64, total)
	spikes := make([]float64, total)

	dt := sampleDurations(posTS)
	binOf := make([]int, rows)
	for i := range rows {
		binOf[i] = -1
		if !valid[i] {
			continue
		}
		mat.Row(row, i, pos)
		if idx, ok := m.index(row); ok {
			binOf[i] = idx
			occupancy[idx] += dt[i]
		}
	}

	for _, s := range spkTS {
		if rows == 0 || s < posTS[0] || s > posTS[rows-1] {
			continue
		}
		i := sort.SearchFloat64s(posTS, s)
		if i == rows || posTS[i] > s {
			i--
		}
		if binOf[i] >= 0 {
			spikes[binOf[i]]++
		}
	}

	kernel := gaussianKernel(smoothWidth/binSide, slices.Max(m.Shape))
	smoothedOcc := smooth(occupancy, m.Shape, kernel)
	smoothedSpk := smooth(spikes, m.Shape, kernel)

	m.Rates = make([]float64, total)
	for i := range m.Rates {
		if occupancy[i] <= 0 || smoothedOcc[i] < minOccupancy {
			m.Rates[i] = math.NaN()
			continue
		}
		m.Rates[i] = smoothedSpk[i] / smoothedOcc[i]
	}

	return m, nil
}

// sampleDurations returns the time each position sample stands for.
func sampleDurations(ts []float64) []float64 {
	dt := make([]float64, len(ts))
	if len(ts) == 0 {
		return dt
	}
	copy(dt, mathutil.Diff(ts))
	mean, err := mathutil.MeanSpacing(ts)
	if err != nil {
		mean = 1
	}
	dt[len(ts)-1] = mean
	return dt
}

// gaussianKernel returns a normalised Gaussian with standard deviation sigma
// samples, truncated at kernelRadiusSigmas or maxHalf taps either side,
// whichever is shorter.
func gaussianKernel(sigma float64, maxHalf int) []float64 {
	half := maxHalf
	if r := math.Ceil(kernelRadiusSigmas * sigma); r < float64(maxHalf) {
		half = int(r)
	}
	kernel := make([]float64, 2*half+1)
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	ops := simdops.Float64Ops()
	ops.Scale(kernel, kernel, 1/ops.Sum(kernel))
	return kernel
}

// smooth convolves a row-major N-D array with kernel along every axis.
func smooth(data []float64, shape []int, kernel []float64) []float64 {
	ops := simdops.Float64Ops()
	out := append([]float64(nil), data...)

	stride := 1
	for d := len(shape) - 1; d >= 0; d-- {
		n := shape[d]
		line := make([]float64, n)
		block := stride * n
		for start := 0; start < len(out); start += block {
			for off := range stride {
				base := start + off
				for i := range n {
					line[i] = out[base+i*stride]
				}
				filtered := ops.ConvolveSame(line, kernel)
				for i := range n {
					out[base+i*stride] = filtered[i]
				}
			}
		}
		stride = block
	}

	return out
}
