package passindex

import (
	"fmt"

	"github.com/tphakala/go-pass-index/internal/engine"
	"github.com/tphakala/go-pass-index/internal/filter"
	"github.com/tphakala/go-pass-index/internal/mathutil"
)

// FieldIndexFunc computes the field index, one value per position sample,
// from a recording and the resolved configuration.
type FieldIndexFunc func(rec Recording, cfg *Config) ([]float64, error)

// FieldFilter filters the Value column of a resampling table.
type FieldFilter func(t Table, cfg *Config) ([]float64, error)

// LFPFilter band-passes an LFP series and returns the filtered signal
// together with its instantaneous phase in radians.
type LFPFilter func(ts, sig []float64) (filtered, phase []float64, err error)

// NewFieldFilter returns a zero-phase Butterworth band-pass over band, in
// cycles per unit of the table's Coord column. The sampling rate is the
// reciprocal of the mean Coord spacing.
func NewFieldFilter(band Band) FieldFilter {
	return func(t Table, _ *Config) ([]float64, error) {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		spacing, err := mathutil.MeanSpacing(t.Coord)
		if err != nil {
			return nil, fmt.Errorf("%w: field-index filter: %w", ErrInsufficientData, err)
		}

		rate := 1 / spacing
		out, err := bandPass(band, rate, t.Value)
		if err != nil {
			return nil, &ComputationError{Op: "field-index filter", Band: band, SampleRate: rate, Err: err}
		}
		return out, nil
	}
}

// NewLFPFilter returns a zero-phase Butterworth band-pass over band in Hz
// followed by Hilbert phase extraction. The sampling rate is the reciprocal
// of the modal timestamp spacing, so dropped samples do not skew it.
func NewLFPFilter(band Band) LFPFilter {
	return func(ts, sig []float64) ([]float64, []float64, error) {
		if len(ts) != len(sig) {
			return nil, nil, fmt.Errorf("%w: LFP has %d timestamps for %d samples",
				ErrInvalidArgument, len(ts), len(sig))
		}
		spacing, err := mathutil.ModalSpacing(ts)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: LFP filter: %w", ErrInsufficientData, err)
		}

		rate := 1 / spacing
		filtered, err := bandPass(band, rate, sig)
		if err != nil {
			return nil, nil, &ComputationError{Op: "LFP filter", Band: band, SampleRate: rate, Err: err}
		}
		return filtered, engine.InstantaneousPhase(filtered), nil
	}
}

func bandPass(band Band, rate float64, x []float64) ([]float64, error) {
	cascade, err := filter.DesignBandPass(filter.BandParams{
		Order:      filter.DefaultOrder,
		Low:        band.Low,
		High:       band.High,
		SampleRate: rate,
	})
	if err != nil {
		return nil, err
	}
	return cascade.FiltFilt(x)
}
