package passindex

import (
	"fmt"
	"log"
	"math"
	"slices"
)

// Options is the caller's sparse parameter set. Every field's zero value
// means "not supplied": the parameter takes the method's default and is
// reported in Config.UsingDefaults.
type Options struct {
	// Method selects the defaults for auto parameters. Zero means grid.
	Method Method

	// BinSide is the rate-map bin width.
	BinSide Scalar

	// SmoothWidth is the rate-map Gaussian smoothing width.
	SmoothWidth Scalar

	FieldIndex  FieldIndexParam
	SampleAlong SamplingParam

	// FilterBand is the spatial band for the field-index filter, in cycles
	// per sampled-along unit.
	FilterBand BandParam

	// LFPFilter is the LFP band in Hz. Zero means 6-10 Hz.
	LFPFilter LFPParam

	// SlopeBounds is an optional [low, high] pair passed through to the
	// downstream regression untouched.
	SlopeBounds []float64

	// RateMapper estimates rate maps. Nil uses DefaultRateMapper.
	RateMapper RateMapper

	// Logger receives one line per resolution step. Nil is silent.
	Logger *log.Logger

	// rateMap carries an already estimated map into a re-resolution.
	rateMap *RateMap
}

// DefaultOptions returns options with every parameter at its library
// default.
func DefaultOptions() Options {
	return Options{}
}

// GridOptions returns options selecting the grid-cell defaults.
func GridOptions() Options {
	return Options{Method: MethodGrid}
}

// PlaceOptions returns options selecting the place-cell defaults.
func PlaceOptions() Options {
	return Options{Method: MethodPlace}
}

// Validate checks every explicitly supplied parameter against rec.
func (o *Options) Validate(rec Recording) error {
	if err := o.Method.validate(); err != nil {
		return err
	}
	if err := o.BinSide.validate(ParamBinSide); err != nil {
		return err
	}
	if err := o.SmoothWidth.validate(ParamSmoothWidth); err != nil {
		return err
	}
	if err := o.FieldIndex.validate(rec); err != nil {
		return err
	}
	if err := o.SampleAlong.validate(); err != nil {
		return err
	}
	if err := o.FilterBand.validate(); err != nil {
		return err
	}
	if err := o.LFPFilter.validate(); err != nil {
		return err
	}
	return validateSlopeBounds(o.SlopeBounds)
}

func validateSlopeBounds(b []float64) error {
	if b == nil {
		return nil
	}
	if len(b) != slopeBoundsLen {
		return fmt.Errorf("%w: %s needs %d values, got %d", ErrInvalidArgument, ParamSlopeBounds, slopeBoundsLen, len(b))
	}
	if math.IsNaN(b[0]) || math.IsNaN(b[1]) || !(b[0] < b[1]) {
		return fmt.Errorf("%w: %s [%v, %v] must be increasing", ErrInvalidArgument, ParamSlopeBounds, b[0], b[1])
	}
	return nil
}

// suppliedParams returns the names of the parameters set in o.
func (o *Options) suppliedParams() ParamSet {
	set := ParamSet{}
	set.addIf(ParamMethod, o.Method.supplied())
	set.addIf(ParamBinSide, o.BinSide.supplied())
	set.addIf(ParamSmoothWidth, o.SmoothWidth.supplied())
	set.addIf(ParamFieldIndex, o.FieldIndex.supplied())
	set.addIf(ParamSampleAlong, o.SampleAlong.supplied())
	set.addIf(ParamFilterBand, o.FilterBand.supplied())
	set.addIf(ParamLFPFilter, o.LFPFilter.supplied())
	set.addIf(ParamSlopeBounds, o.SlopeBounds != nil)
	return set
}

// allParams lists every parameter name in resolution order.
var allParams = []string{
	ParamMethod,
	ParamBinSide,
	ParamSmoothWidth,
	ParamFilterBand,
	ParamLFPFilter,
	ParamSampleAlong,
	ParamFieldIndex,
	ParamSlopeBounds,
}

// ParamSet is a set of parameter names.
type ParamSet map[string]struct{}

// Contains reports whether name is in the set.
func (s ParamSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members in sorted order.
func (s ParamSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (s ParamSet) addIf(name string, ok bool) {
	if ok {
		s[name] = struct{}{}
	}
}

// Config is a fully resolved parameter set. Every strategy field is
// callable; numeric bands and tags have already been turned into filters and
// samplers.
type Config struct {
	Method      Method
	BinSide     float64
	SmoothWidth float64

	// FieldIndexValues holds a precomputed field index; FieldIndex is nil
	// in that case. Otherwise FieldIndex computes it.
	FieldIndexValues []float64
	FieldIndex       FieldIndexFunc

	SampleAlong Sampler

	// SamplingMode is the built-in strategy behind SampleAlong, empty for
	// tables and custom samplers.
	SamplingMode SamplingMode

	FilterBand FieldFilter
	LFPFilter  LFPFilter

	// FieldBand and LFPBand are the numeric bands behind FilterBand and
	// LFPFilter, zero when a custom filter was supplied.
	FieldBand Band
	LFPBand   Band

	SlopeBounds []float64

	// RateMap is the map estimated during resolution, nil if none was
	// needed.
	RateMap *RateMap

	// UsingDefaults names the parameters the caller did not supply.
	UsingDefaults ParamSet

	rateMapper  RateMapper
	sampleTable *Table
	logger      *log.Logger
}

// ComputeFieldIndex returns the field index for rec, one value per position
// sample.
func (c *Config) ComputeFieldIndex(rec Recording) ([]float64, error) {
	var (
		values []float64
		err    error
	)
	if c.FieldIndex != nil {
		values, err = c.FieldIndex(rec, c)
		if err != nil {
			return nil, err
		}
	} else {
		values = slices.Clone(c.FieldIndexValues)
	}
	if len(values) != len(rec.PosTS) {
		return nil, fmt.Errorf("%w: %s has %d entries for %d position samples",
			ErrInvalidArgument, ParamFieldIndex, len(values), len(rec.PosTS))
	}
	return values, nil
}

// Options returns concrete options that resolve back to c without deriving
// anything again: numeric bands and built-in tags are restored as such,
// custom strategies are passed through and any estimated rate map is
// reused.
func (c *Config) Options() Options {
	opts := Options{
		Method:      c.Method.withoutFunc(),
		BinSide:     Fixed(c.BinSide),
		SmoothWidth: Fixed(c.SmoothWidth),
		SlopeBounds: slices.Clone(c.SlopeBounds),
		RateMapper:  c.rateMapper,
		Logger:      c.logger,
		rateMap:     c.RateMap,
	}

	if c.FieldIndex != nil {
		opts.FieldIndex = FieldIndexStrategy(c.FieldIndex)
	} else {
		opts.FieldIndex = FieldIndexValues(c.FieldIndexValues)
	}

	switch {
	case c.SamplingMode != "":
		opts.SampleAlong = SampleAlongTag(c.SamplingMode)
	case c.sampleTable != nil:
		opts.SampleAlong = SampleAlongTable(*c.sampleTable)
	default:
		opts.SampleAlong = SampleAlongFunc(c.SampleAlong)
	}

	if c.FieldBand != (Band{}) {
		opts.FilterBand = BandRange(c.FieldBand.Low, c.FieldBand.High)
	} else {
		opts.FilterBand = BandFunc(c.FilterBand)
	}

	if c.LFPBand != (Band{}) {
		opts.LFPFilter = LFPRange(c.LFPBand.Low, c.LFPBand.High)
	} else {
		opts.LFPFilter = LFPFunc(c.LFPFilter)
	}

	return opts
}
