package domain

import (
	"context"
	"time"
)

// AssignmentStatus is the lifecycle status of a staff assignment.
type AssignmentStatus string

const (
	AssignmentStatusScheduled  AssignmentStatus = "scheduled"
	AssignmentStatusCheckedIn  AssignmentStatus = "checked_in"
	AssignmentStatusCheckedOut AssignmentStatus = "checked_out"
	AssignmentStatusCancelled  AssignmentStatus = "cancelled"
)

// StaffAssignment binds one staff member to one shift.
// ShiftStartTime and ShiftEndTime are denormalized from the shift on joined
// reads so the availability check can run without another lookup.
// swagger:model StaffAssignment
type StaffAssignment struct {
	ID             string           `json:"id"`
	ShiftID        string           `json:"shift_id"`
	StaffID        string           `json:"staff_id"`
	Status         AssignmentStatus `json:"status"`
	AssignedAt     time.Time        `json:"assigned_at"`
	CheckInTime    *time.Time       `json:"check_in_time,omitempty"`
	CheckOutTime   *time.Time       `json:"check_out_time,omitempty"`
	ShiftStartTime time.Time        `json:"shift_start_time,omitempty"`
	ShiftEndTime   time.Time        `json:"shift_end_time,omitempty"`
}

// NewStaffAssignment returns a new scheduled StaffAssignment. ID is typically set by the repository on create.
func NewStaffAssignment(shiftID, staffID string, assignedAt time.Time) *StaffAssignment {
	return &StaffAssignment{
		ShiftID:    shiftID,
		StaffID:    staffID,
		Status:     AssignmentStatusScheduled,
		AssignedAt: assignedAt,
	}
}

// StaffAssignmentRepository defines the interface for assignment storage.
// ListActiveByStaffID returns the staff member's non-cancelled assignments
// with shift start/end times populated.
type StaffAssignmentRepository interface {
	Create(ctx context.Context, assignment *StaffAssignment) error
	GetByID(ctx context.Context, id string) (*StaffAssignment, error)
	ListByShiftID(ctx context.Context, shiftID string) ([]*StaffAssignment, error)
	ListByStaffID(ctx context.Context, staffID string) ([]*StaffAssignment, error)
	ListActiveByStaffID(ctx context.Context, staffID string) ([]*StaffAssignment, error)
	Update(ctx context.Context, assignment *StaffAssignment) error
}

// StaffAssignmentService defines the business logic for staff assignments.
type StaffAssignmentService interface {
	// CreateAssignment assigns the staff member to the shift after checking
	// that the shift's time window does not overlap any of the staff member's
	// other active assignments.
	CreateAssignment(ctx context.Context, shiftID, staffID string) (*StaffAssignment, error)
	GetAssignmentByID(ctx context.Context, id string) (*StaffAssignment, error)
	ListAssignmentsByShiftID(ctx context.Context, shiftID string) ([]*StaffAssignment, error)
	ListAssignmentsByStaffID(ctx context.Context, staffID string) ([]*StaffAssignment, error)
	CheckIn(ctx context.Context, assignmentID string) (*StaffAssignment, error)
	CheckOut(ctx context.Context, assignmentID string) (*StaffAssignment, error)
	CancelAssignment(ctx context.Context, assignmentID string) (*StaffAssignment, error)
}
