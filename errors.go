package passindex

import (
	"errors"
	"fmt"
)

// Errors returned by resolution and the pipeline strategies. Match them with
// errors.Is.
var (
	// ErrInvalidArgument indicates a shape, type or range violation on an
	// input series or parameter.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientData indicates a degenerate series, such as a
	// trajectory that never moves or too few samples to interpolate.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrExternalComputation indicates a failure in a numeric primitive or
	// the rate-map estimator.
	ErrExternalComputation = errors.New("external computation failed")
)

// ComputationError describes a failed numeric step together with the band
// and sampling rate it ran with. It matches ErrExternalComputation.
type ComputationError struct {
	// Op names the step, e.g. "field-index filter".
	Op string

	// Band is the frequency band in use, zero if none applies.
	Band Band

	// SampleRate is the sampling rate in use, zero if none applies.
	SampleRate float64

	Err error
}

func (e *ComputationError) Error() string {
	if e.Band == (Band{}) {
		return fmt.Sprintf("%s: %s: %v", ErrExternalComputation, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s (band [%g, %g], sample rate %g): %v",
		ErrExternalComputation, e.Op, e.Band.Low, e.Band.High, e.SampleRate, e.Err)
}

// Unwrap exposes both ErrExternalComputation and the underlying error.
func (e *ComputationError) Unwrap() []error {
	return []error{ErrExternalComputation, e.Err}
}
