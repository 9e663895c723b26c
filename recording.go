package passindex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Recording holds the series one resolution runs on: position timestamps and
// samples, spike timestamps, and an optional LFP series.
type Recording struct {
	// PosTS are the position timestamps, strictly increasing.
	PosTS []float64

	// Pos holds one row per position timestamp and one column per spatial
	// dimension. NaN marks a missing coordinate; infinities are rejected.
	Pos mat.Matrix

	// SpkTS are the spike timestamps.
	SpkTS []float64

	// LFPTS and LFPSig are the optional LFP timestamps and samples. Supply
	// both or neither.
	LFPTS  []float64
	LFPSig []float64
}

// Dim returns the number of spatial dimensions of Pos.
func (r Recording) Dim() int {
	if r.Pos == nil {
		return 0
	}
	_, c := r.Pos.Dims()
	return c
}

// HasLFP reports whether an LFP series was supplied.
func (r Recording) HasLFP() bool {
	return len(r.LFPTS) > 0
}

// Validate checks shapes and orderings of the series.
func (r Recording) Validate() error {
	if len(r.PosTS) == 0 {
		return fmt.Errorf("%w: position timestamps are empty", ErrInvalidArgument)
	}
	if err := checkIncreasing("position timestamps", r.PosTS); err != nil {
		return err
	}

	if r.Pos == nil {
		return fmt.Errorf("%w: position samples are nil", ErrInvalidArgument)
	}
	rows, cols := r.Pos.Dims()
	if rows != len(r.PosTS) {
		return fmt.Errorf("%w: position has %d rows for %d timestamps", ErrInvalidArgument, rows, len(r.PosTS))
	}
	if cols < 1 {
		return fmt.Errorf("%w: position has no coordinate columns", ErrInvalidArgument)
	}
	for i := range rows {
		for j := range cols {
			if v := r.Pos.At(i, j); math.IsInf(v, 0) {
				return fmt.Errorf("%w: position[%d][%d] is %v", ErrInvalidArgument, i, j, v)
			}
		}
	}

	if r.SpkTS == nil {
		return fmt.Errorf("%w: spike timestamps are nil", ErrInvalidArgument)
	}
	for i, v := range r.SpkTS {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: spike timestamp %d is %v", ErrInvalidArgument, i, v)
		}
	}

	if (len(r.LFPTS) == 0) != (len(r.LFPSig) == 0) {
		return fmt.Errorf("%w: LFP timestamps and signal must be supplied together", ErrInvalidArgument)
	}
	if len(r.LFPTS) != len(r.LFPSig) {
		return fmt.Errorf("%w: LFP has %d timestamps for %d samples", ErrInvalidArgument, len(r.LFPTS), len(r.LFPSig))
	}
	if r.HasLFP() {
		if err := checkIncreasing("LFP timestamps", r.LFPTS); err != nil {
			return err
		}
	}

	return nil
}

func checkIncreasing(what string, ts []float64) error {
	for i, v := range ts {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] is %v", ErrInvalidArgument, what, i, v)
		}
		if i > 0 && !(v > ts[i-1]) {
			return fmt.Errorf("%w: %s not strictly increasing at %d (%v after %v)",
				ErrInvalidArgument, what, i, v, ts[i-1])
		}
	}
	return nil
}
