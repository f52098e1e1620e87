package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidDate indicates the requested date could not be parsed.
var ErrInvalidDate = errors.New("invalid date")

// ErrUnknownProvider indicates a lookup named a provider that is not registered.
var ErrUnknownProvider = errors.New("unknown provider")

// ConfigurationError indicates a required credential is missing. It is
// raised before any network call so a misconfigured deployment fails fast.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// NotFoundError indicates the upstream vendor has no matching flight.
// The message explains why data may be absent, keyed off date proximity.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// UpstreamError indicates a vendor returned a non-2xx response after all
// fallbacks were exhausted, or the transport itself failed.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s upstream error: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s responded with status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// upstreamDataHorizonDays is how far ahead vendors typically carry flight
// data. Requests beyond it get a distinct "no data expected yet" message.
const upstreamDataHorizonDays = 7

// NewNoDataError classifies an empty upstream result by how far the
// requested date is from now and returns a NotFoundError whose message the
// handler surfaces verbatim in the 404 payload:
//   - more than 7 days ahead: data is not expected to exist yet
//   - 0-7 days ahead: the aircraft assignment is not finalized
//   - in the past: historical data is unavailable
func NewNoDataError(flightNumber string, date, now time.Time) *NotFoundError {
	daysAhead := int(math.Ceil(date.Sub(now).Hours() / 24))

	switch {
	case daysAhead > upstreamDataHorizonDays:
		return &NotFoundError{Message: fmt.Sprintf(
			"No flight data available yet for %s. Flight data typically only becomes available within %d days of departure; this flight is %d days in the future.",
			flightNumber, upstreamDataHorizonDays, daysAhead)}
	case daysAhead > 0:
		return &NotFoundError{Message: fmt.Sprintf(
			"No flight data available yet for %s. The aircraft assignment may not be finalized this far in advance.",
			flightNumber)}
	default:
		return &NotFoundError{Message: fmt.Sprintf(
			"No flight data available for %s on %s. Historical data for this flight is unavailable.",
			flightNumber, date.Format("2006-01-02"))}
	}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConfiguration reports whether err is a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
