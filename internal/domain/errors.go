package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the domain.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInterval    = errors.New("end date must be after start date")
	ErrStartInPast        = errors.New("start date must be in the future")
	ErrIdentityMismatch   = errors.New("mismatched event ids")
	ErrInvalidTransition  = errors.New("invalid assignment transition")
	ErrStaffUnavailable   = errors.New("staff member is not available in that time window")
	ErrShiftOutsideEvent  = errors.New("shift falls outside the event timeframe")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ShiftOutOfBoundsError reports how many shifts would fall outside the new
// event timeframe when the event dates are narrowed.
type ShiftOutOfBoundsError struct {
	Count int
}

func (e *ShiftOutOfBoundsError) Error() string {
	return fmt.Sprintf("cannot change event dates: %d shift(s) would fall outside the new event timeframe", e.Count)
}
