package passindex

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-pass-index/internal/mathutil"
	"github.com/tphakala/go-pass-index/internal/ratemap"
	"gonum.org/v1/gonum/mat"
)

// resolvePass is one step of resolution. Passes run in order and each sees
// the values resolved by the ones before it.
type resolvePass struct {
	name string
	run  func(r *resolver) error
}

var resolvePasses = []resolvePass{
	{ParamBinSide, (*resolver).resolveBinSide},
	{ParamSmoothWidth, (*resolver).resolveSmoothWidth},
	{ParamFilterBand, (*resolver).resolveFilterBand},
	{ParamLFPFilter, (*resolver).resolveLFPFilter},
	{ParamSampleAlong, (*resolver).resolveSampleAlong},
	{ParamFieldIndex, (*resolver).resolveFieldIndex},
	{ParamSlopeBounds, (*resolver).resolveSlopeBounds},
}

// resolver owns the working options and the configuration being built for
// a single Resolve call.
type resolver struct {
	rec     Recording
	opts    Options
	cfg     *Config
	missing []string
}

// Resolve validates rec and opts and turns every auto parameter into a
// concrete value or strategy for the chosen method.
//
// Explicit values are never overridden. Under the custom method there are
// no defaults, so any parameter still auto after the method's function ran
// is an error.
func Resolve(rec Recording, opts Options) (*Config, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(rec); err != nil {
		return nil, err
	}

	r := &resolver{rec: rec, opts: opts}

	if fn := opts.Method.fn; fn != nil {
		r.logf("running custom method")
		if err := fn(rec, &r.opts); err != nil {
			return nil, fmt.Errorf("custom method: %w", err)
		}
		// The callback may only fill in parameters; the method stays custom.
		r.opts.Method = opts.Method
		if err := r.opts.Validate(rec); err != nil {
			return nil, fmt.Errorf("custom method: %w", err)
		}
	}

	mapper := r.opts.RateMapper
	if mapper == nil {
		mapper = DefaultRateMapper()
	}

	supplied := r.opts.suppliedParams()
	using := ParamSet{}
	for _, name := range allParams {
		using.addIf(name, !supplied.Contains(name))
	}

	r.cfg = &Config{
		Method:        r.opts.Method,
		RateMap:       r.opts.rateMap,
		UsingDefaults: using,
		rateMapper:    mapper,
		logger:        r.opts.Logger,
	}

	for _, p := range resolvePasses {
		if err := p.run(r); err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
	}

	if len(r.missing) > 0 {
		return nil, fmt.Errorf("%w: method %s requires explicit %s",
			ErrInvalidArgument, r.cfg.Method.Name(), strings.Join(r.missing, ", "))
	}

	return r.cfg, nil
}

func (r *resolver) logf(format string, args ...any) {
	if r.opts.Logger != nil {
		r.opts.Logger.Printf("passindex: "+format, args...)
	}
}

// derives reports whether name may be given a default value. The method
// must have defaults, and the parameter must either still be in the
// using-defaults set or have been set to Auto explicitly.
func (r *resolver) derives(name string, k paramKind) bool {
	if !r.cfg.Method.HasDefaults() {
		return false
	}
	return r.cfg.UsingDefaults.Contains(name) || k == kindAuto
}

// require records a parameter the method cannot derive.
func (r *resolver) require(name string) {
	r.missing = append(r.missing, name)
}

func (r *resolver) resolveBinSide() error {
	if v, ok := r.opts.BinSide.Value(); ok {
		r.cfg.BinSide = v
		return nil
	}
	if !r.derives(ParamBinSide, r.opts.BinSide.kind) {
		r.require(ParamBinSide)
		return nil
	}
	r.cfg.BinSide = binSidePerDimension * float64(r.rec.Dim())
	r.logf("%s = %g (%d dimensions)", ParamBinSide, r.cfg.BinSide, r.rec.Dim())
	return nil
}

func (r *resolver) resolveSmoothWidth() error {
	if v, ok := r.opts.SmoothWidth.Value(); ok {
		r.cfg.SmoothWidth = v
		return nil
	}
	if !r.derives(ParamSmoothWidth, r.opts.SmoothWidth.kind) {
		r.require(ParamSmoothWidth)
		return nil
	}
	r.cfg.SmoothWidth = smoothPerBinSide * r.cfg.BinSide
	r.logf("%s = %g", ParamSmoothWidth, r.cfg.SmoothWidth)
	return nil
}

func (r *resolver) resolveFilterBand() error {
	p := r.opts.FilterBand
	switch {
	case p.kind == kindStrategy:
		r.cfg.FilterBand = p.fn
		return nil
	case p.kind == kindLiteral:
		r.setFieldBand(p.band)
		return nil
	case !r.derives(ParamFilterBand, p.kind):
		r.require(ParamFilterBand)
		return nil
	case r.cfg.Method.IsPlace():
		band, err := r.placeBand()
		if err != nil {
			return err
		}
		r.setFieldBand(band)
	default:
		r.setFieldBand(GridBand())
	}
	r.logf("%s = [%g, %g]", ParamFilterBand, r.cfg.FieldBand.Low, r.cfg.FieldBand.High)
	return nil
}

func (r *resolver) setFieldBand(b Band) {
	r.cfg.FieldBand = b
	r.cfg.FilterBand = NewFieldFilter(b)
}

// GridBand returns the default spatial band for grid cells, in cycles per
// position unit: [1/(2*170), 8/26.7].
func GridBand() Band {
	return Band{Low: 1 / gridLowPeriod, High: gridHighCycles / gridHighPeriod}
}

// PlaceBand returns the spatial band for a place field whose supra-threshold
// volume equals that of an n-ball of radius r: [1/(6r), 3/r].
func PlaceBand(radius float64) Band {
	return Band{Low: 1 / (placeLowRadii * radius), High: placeHighCycles / radius}
}

// placeBand estimates the rate map and sizes the band to the equivalent
// radius of the bins above placeFieldThreshold of the peak rate.
func (r *resolver) placeBand() (Band, error) {
	m, err := r.rateMap()
	if err != nil {
		return Band{}, err
	}

	count := m.SupraThresholdCount(placeFieldThreshold)
	if count == 0 {
		return Band{}, fmt.Errorf("%w: rate map has no bins above %g of its peak",
			ErrInsufficientData, placeFieldThreshold)
	}

	volume := m.SupraThresholdVolume(placeFieldThreshold)
	radius, err := mathutil.NBallRadius(m.Dim(), volume)
	if err != nil {
		return Band{}, &ComputationError{Op: "place field radius", Err: err}
	}
	r.logf("place field: %d bins, volume %g, radius %g", count, volume, radius)

	return PlaceBand(radius), nil
}

// rateMap returns the cached rate map, estimating it on first use.
func (r *resolver) rateMap() (*RateMap, error) {
	if r.cfg.RateMap != nil {
		return r.cfg.RateMap, nil
	}
	m, err := r.cfg.rateMapper.RateMap(r.rec.PosTS, r.rec.Pos, r.rec.SpkTS, r.cfg.BinSide, r.cfg.SmoothWidth)
	if err != nil {
		return nil, rateMapError(err)
	}
	if m == nil || len(m.Rates) == 0 {
		return nil, fmt.Errorf("%w: rate map is empty", ErrInsufficientData)
	}
	r.logf("rate map: %v bins", m.Shape)
	r.cfg.RateMap = m
	return m, nil
}

// rateMapError classifies a rate-map failure. A recording with no complete
// position sample is degenerate data rather than a failed computation.
func rateMapError(err error) error {
	if errors.Is(err, ratemap.ErrNoCoverage) {
		return fmt.Errorf("%w: rate map: %w", ErrInsufficientData, err)
	}
	return &ComputationError{Op: "rate map", Err: err}
}

func (r *resolver) resolveLFPFilter() error {
	p := r.opts.LFPFilter
	switch p.kind {
	case kindStrategy:
		r.cfg.LFPFilter = p.fn
		return nil
	case kindLiteral:
		r.cfg.LFPBand = p.band
	default:
		r.cfg.LFPBand = Band{Low: defaultLFPLow, High: defaultLFPHigh}
	}
	r.cfg.LFPFilter = NewLFPFilter(r.cfg.LFPBand)
	r.logf("%s = [%g, %g] Hz", ParamLFPFilter, r.cfg.LFPBand.Low, r.cfg.LFPBand.High)
	return nil
}

func (r *resolver) resolveSampleAlong() error {
	p := r.opts.SampleAlong
	switch p.kind {
	case kindStrategy:
		r.cfg.SampleAlong = p.fn
		return nil
	case kindLiteral:
		t := p.table.clone()
		r.cfg.sampleTable = &t
		r.cfg.SampleAlong = tableSampler(t)
		return nil
	}

	mode := p.mode
	if p.kind != kindTag {
		if !r.derives(ParamSampleAlong, p.kind) {
			r.require(ParamSampleAlong)
			return nil
		}
		mode = ArcLength
	}
	sampler, err := NewSampler(mode)
	if err != nil {
		return err
	}
	r.cfg.SampleAlong = sampler
	r.cfg.SamplingMode = mode
	r.logf("%s = %s", ParamSampleAlong, mode)
	return nil
}

func (r *resolver) resolveFieldIndex() error {
	p := r.opts.FieldIndex
	switch {
	case p.kind == kindLiteral:
		r.cfg.FieldIndexValues = p.values
	case p.kind == kindStrategy:
		r.cfg.FieldIndex = p.fn
	case !r.derives(ParamFieldIndex, p.kind):
		r.require(ParamFieldIndex)
	default:
		r.cfg.FieldIndex = RateMapFieldIndex
		r.logf("%s = normalised rate-map lookup", ParamFieldIndex)
	}
	return nil
}

func (r *resolver) resolveSlopeBounds() error {
	if r.opts.SlopeBounds != nil {
		r.cfg.SlopeBounds = append([]float64(nil), r.opts.SlopeBounds...)
	}
	return nil
}

// RateMapFieldIndex is the default field index: the rate-map value at each
// position sample divided by the map's peak. Samples with a missing
// coordinate or outside visited bins get 0. It reuses cfg.RateMap when
// resolution already estimated one.
func RateMapFieldIndex(rec Recording, cfg *Config) ([]float64, error) {
	m := cfg.RateMap
	if m == nil {
		mapper := cfg.rateMapper
		if mapper == nil {
			mapper = DefaultRateMapper()
		}
		var err error
		m, err = mapper.RateMap(rec.PosTS, rec.Pos, rec.SpkTS, cfg.BinSide, cfg.SmoothWidth)
		if err != nil {
			return nil, rateMapError(err)
		}
		if m == nil {
			return nil, fmt.Errorf("%w: rate map is empty", ErrInsufficientData)
		}
	}

	rows, cols := rec.Pos.Dims()
	out := make([]float64, rows)
	peak := m.Peak()
	if !(peak > 0) {
		return out, nil
	}

	row := make([]float64, cols)
	for i := range rows {
		mat.Row(row, i, rec.Pos)
		v := m.Lookup(row) / peak
		if math.IsNaN(v) {
			v = 0
		}
		out[i] = v
	}
	return out, nil
}
