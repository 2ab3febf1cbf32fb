package apod

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound    = errors.New("picture not found")
	ErrUnavailable = errors.New("picture service unavailable")
)

// NotFoundError means upstream answered 404 for the requested date.
type NotFoundError struct {
	Date time.Time
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no picture found for %s", FormatDate(e.Date))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// UnavailableError covers every failure other than a 404: transport
// errors, timeouts, unexpected statuses and undecodable bodies.
type UnavailableError struct {
	StatusCode int // zero when no response was received
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("picture service unavailable: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("picture service unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// Outcome classifies a fetch.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unavailable"
	}
}

// OutcomeOf maps a Fetch error to its Outcome. Errors that are neither
// NotFound nor Unavailable are reported as unavailable.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeUnavailable
	}
}
