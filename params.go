package passindex

import (
	"fmt"
	"math"
	"slices"
)

// paramKind is the variant tag of a resolvable parameter. The zero value
// means the caller did not supply the parameter.
type paramKind uint8

const (
	kindDefault paramKind = iota
	kindAuto
	kindLiteral
	kindTag
	kindStrategy
)

// Band is a frequency band. Units depend on where it is used: cycles per
// position unit for the field-index filter, Hz for the LFP filter.
type Band struct {
	Low  float64
	High float64
}

// Validate checks that both edges are finite and Low < High.
func (b Band) Validate() error {
	if math.IsNaN(b.Low) || math.IsNaN(b.High) || math.IsInf(b.Low, 0) || math.IsInf(b.High, 0) {
		return fmt.Errorf("%w: band [%v, %v] must be finite", ErrInvalidArgument, b.Low, b.High)
	}
	if !(b.Low < b.High) {
		return fmt.Errorf("%w: band low %v must be less than high %v", ErrInvalidArgument, b.Low, b.High)
	}
	return nil
}

// Scalar is a positive numeric parameter that may be derived automatically
// (binside, smth_width). The zero value means "not supplied", which
// resolves like Auto.
type Scalar struct {
	kind  paramKind
	value float64
}

// AutoScalar requests automatic derivation.
func AutoScalar() Scalar { return Scalar{kind: kindAuto} }

// Fixed supplies a literal value.
func Fixed(v float64) Scalar { return Scalar{kind: kindLiteral, value: v} }

// IsAuto reports whether the value is still to be derived.
func (s Scalar) IsAuto() bool { return s.kind == kindDefault || s.kind == kindAuto }

// Value returns the literal value, if any.
func (s Scalar) Value() (float64, bool) { return s.value, s.kind == kindLiteral }

func (s Scalar) supplied() bool { return s.kind != kindDefault }

func (s Scalar) validate(name string) error {
	if s.kind == kindLiteral && (!(s.value > 0) || math.IsInf(s.value, 0)) {
		return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidArgument, name, s.value)
	}
	return nil
}

// FieldIndexParam is the field_index parameter: a precomputed vector aligned
// to the position timestamps, a strategy function, or Auto.
type FieldIndexParam struct {
	kind   paramKind
	values []float64
	fn     FieldIndexFunc
}

// AutoFieldIndex requests the method's default field index.
func AutoFieldIndex() FieldIndexParam { return FieldIndexParam{kind: kindAuto} }

// FieldIndexValues supplies a precomputed field index, one value per
// position sample.
func FieldIndexValues(values []float64) FieldIndexParam {
	return FieldIndexParam{kind: kindLiteral, values: slices.Clone(values)}
}

// FieldIndexStrategy supplies a function that computes the field index.
func FieldIndexStrategy(fn FieldIndexFunc) FieldIndexParam {
	return FieldIndexParam{kind: kindStrategy, fn: fn}
}

// IsAuto reports whether the field index is still to be derived.
func (p FieldIndexParam) IsAuto() bool { return p.kind == kindDefault || p.kind == kindAuto }

func (p FieldIndexParam) supplied() bool { return p.kind != kindDefault }

func (p FieldIndexParam) validate(rec Recording) error {
	switch p.kind {
	case kindLiteral:
		if len(p.values) != len(rec.PosTS) {
			return fmt.Errorf("%w: %s has %d entries, want %d (one per position sample)",
				ErrInvalidArgument, ParamFieldIndex, len(p.values), len(rec.PosTS))
		}
	case kindStrategy:
		if p.fn == nil {
			return fmt.Errorf("%w: %s strategy is nil", ErrInvalidArgument, ParamFieldIndex)
		}
	}
	return nil
}

// SamplingParam is the sample_along parameter: a strategy tag, a literal
// resampling table, a custom sampler, or Auto.
type SamplingParam struct {
	kind  paramKind
	mode  SamplingMode
	table Table
	fn    Sampler
}

// AutoSampling requests the method's default sampling strategy.
func AutoSampling() SamplingParam { return SamplingParam{kind: kindAuto} }

// SampleAlongTag selects a built-in sampling strategy.
func SampleAlongTag(mode SamplingMode) SamplingParam {
	return SamplingParam{kind: kindTag, mode: mode}
}

// SampleAlongTable supplies a precomputed resampling table.
func SampleAlongTable(t Table) SamplingParam {
	return SamplingParam{kind: kindLiteral, table: t.clone()}
}

// SampleAlongFunc supplies a custom sampler.
func SampleAlongFunc(fn Sampler) SamplingParam {
	return SamplingParam{kind: kindStrategy, fn: fn}
}

// IsAuto reports whether the strategy is still to be derived.
func (p SamplingParam) IsAuto() bool { return p.kind == kindDefault || p.kind == kindAuto }

func (p SamplingParam) supplied() bool { return p.kind != kindDefault }

func (p SamplingParam) validate() error {
	switch p.kind {
	case kindTag:
		if !p.mode.valid() {
			return fmt.Errorf("%w: unknown %s strategy %q", ErrInvalidArgument, ParamSampleAlong, p.mode)
		}
	case kindLiteral:
		if err := p.table.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ParamSampleAlong, err)
		}
	case kindStrategy:
		if p.fn == nil {
			return fmt.Errorf("%w: %s sampler is nil", ErrInvalidArgument, ParamSampleAlong)
		}
	}
	return nil
}

// BandParam is the filter_band parameter: a numeric band, a custom
// field-index filter, or Auto.
type BandParam struct {
	kind paramKind
	band Band
	fn   FieldFilter
}

// AutoBand requests the method's default spatial band.
func AutoBand() BandParam { return BandParam{kind: kindAuto} }

// BandRange supplies a numeric band in cycles per position unit.
func BandRange(low, high float64) BandParam {
	return BandParam{kind: kindLiteral, band: Band{Low: low, High: high}}
}

// BandFunc supplies a custom field-index filter.
func BandFunc(fn FieldFilter) BandParam { return BandParam{kind: kindStrategy, fn: fn} }

// IsAuto reports whether the band is still to be derived.
func (p BandParam) IsAuto() bool { return p.kind == kindDefault || p.kind == kindAuto }

func (p BandParam) supplied() bool { return p.kind != kindDefault }

func (p BandParam) validate() error {
	switch p.kind {
	case kindLiteral:
		if err := p.band.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ParamFilterBand, err)
		}
	case kindStrategy:
		if p.fn == nil {
			return fmt.Errorf("%w: %s filter is nil", ErrInvalidArgument, ParamFilterBand)
		}
	}
	return nil
}

// LFPParam is the lfp_filter parameter: a band in Hz or a custom LFP filter.
// The zero value is the default band of 6-10 Hz; there is no Auto.
type LFPParam struct {
	kind paramKind
	band Band
	fn   LFPFilter
}

// LFPRange supplies a band in Hz.
func LFPRange(low, high float64) LFPParam {
	return LFPParam{kind: kindLiteral, band: Band{Low: low, High: high}}
}

// LFPFunc supplies a custom LFP filter.
func LFPFunc(fn LFPFilter) LFPParam { return LFPParam{kind: kindStrategy, fn: fn} }

func (p LFPParam) supplied() bool { return p.kind != kindDefault }

func (p LFPParam) validate() error {
	switch p.kind {
	case kindLiteral:
		if err := p.band.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ParamLFPFilter, err)
		}
	case kindStrategy:
		if p.fn == nil {
			return fmt.Errorf("%w: %s filter is nil", ErrInvalidArgument, ParamLFPFilter)
		}
	}
	return nil
}
