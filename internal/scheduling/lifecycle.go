package scheduling

import (
	"time"

	"medcoverage/internal/domain"
)

// CheckIn transitions a scheduled assignment to checked-in, stamping the
// check-in time. Any other starting state fails with ErrInvalidTransition.
func CheckIn(a domain.StaffAssignment, now time.Time) (domain.StaffAssignment, error) {
	if a.Status != domain.AssignmentStatusScheduled {
		return domain.StaffAssignment{}, domain.ErrInvalidTransition
	}
	a.Status = domain.AssignmentStatusCheckedIn
	a.CheckInTime = &now
	return a, nil
}

// CheckOut transitions a checked-in assignment to checked-out, stamping the
// check-out time. Any other starting state fails with ErrInvalidTransition.
func CheckOut(a domain.StaffAssignment, now time.Time) (domain.StaffAssignment, error) {
	if a.Status != domain.AssignmentStatusCheckedIn {
		return domain.StaffAssignment{}, domain.ErrInvalidTransition
	}
	a.Status = domain.AssignmentStatusCheckedOut
	a.CheckOutTime = &now
	return a, nil
}

// Cancel cancels an assignment that is scheduled or checked in. Cancelled and
// checked-out assignments are terminal.
func Cancel(a domain.StaffAssignment) (domain.StaffAssignment, error) {
	if a.Status != domain.AssignmentStatusScheduled && a.Status != domain.AssignmentStatusCheckedIn {
		return domain.StaffAssignment{}, domain.ErrInvalidTransition
	}
	a.Status = domain.AssignmentStatusCancelled
	return a, nil
}
