package booking

import "errors"

var (
	ErrForbidden               = errors.New("forbidden")
	ErrNotFound                = errors.New("booking not found")
	ErrOverbooking             = errors.New("overbooking constraint violation")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEmptyRequest            = errors.New("no slots requested")
)
