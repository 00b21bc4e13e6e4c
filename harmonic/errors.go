package harmonic

import (
	"fmt"

	"github.com/coastref/gotide/astro"
)

// AstronomicalRangeError reports a reference time outside the validity
// window of the astronomical polynomials.
type AstronomicalRangeError = astro.RangeError

// InvalidTimeSpanError reports a time vector whose span is zero or
// negative, making constituent selection impossible.
type InvalidTimeSpanError struct {
	Span float64 // hours
}

func (e *InvalidTimeSpanError) Error() string {
	return fmt.Sprintf("harmonic: time span of %g hours is not positive", e.Span)
}

// UnderdeterminedSystemError reports a regression with too few independent
// samples for the requested model.
type UnderdeterminedSystemError struct {
	Samples    int // samples provided
	Columns    int // regression columns requested
	MinSamples int // minimum samples required
}

func (e *UnderdeterminedSystemError) Error() string {
	return fmt.Sprintf("harmonic: %d samples cannot determine %d regression columns; at least %d samples are required",
		e.Samples, e.Columns, e.MinSamples)
}

// ConstituentConflictError reports two explicitly requested constituents
// that fail the Rayleigh criterion over the analyzed record while automatic
// dropping is disabled.
type ConstituentConflictError struct {
	Kept    string // higher-priority constituent
	Dropped string // constituent that would have been dropped
}

func (e *ConstituentConflictError) Error() string {
	return fmt.Sprintf("harmonic: requested constituents %s and %s are not resolvable over this record length", e.Kept, e.Dropped)
}

// ShapeMismatchError reports inconsistent input dimensions.
type ShapeMismatchError struct {
	What string // which input is mis-shaped
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("harmonic: %s has length %d, want %d", e.What, e.Got, e.Want)
}
