package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateFormat    = errors.New("invalid date format")
	ErrSlotUnavailable      = errors.New("slot unavailable")
	ErrInvalidRange         = errors.New("invalid time range")
	ErrSelfOverlap          = errors.New("requested slots overlap each other")
	ErrGuestCountOutOfRange = errors.New("guest count out of range")
)

// ConflictError carries the slot that failed validation alongside the
// sentinel reason, so callers can tell the user which selection to fix.
type ConflictError struct {
	Reason error
	Slot   Slot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s %s-%s", e.Reason, e.Slot.Day, FormatClock(e.Slot.Start), FormatClock(e.Slot.End))
}

func (e *ConflictError) Unwrap() error { return e.Reason }
