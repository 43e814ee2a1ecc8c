package domain

import (
	"context"
	"time"
)

// ShiftStatus is the staffing status of a shift. It is bookkeeping maintained
// by the assignment flow, not decided by the scheduling core.
type ShiftStatus string

const (
	ShiftStatusOpen       ShiftStatus = "open"
	ShiftStatusFull       ShiftStatus = "full"
	ShiftStatusInProgress ShiftStatus = "in_progress"
	ShiftStatusCompleted  ShiftStatus = "completed"
	ShiftStatusCancelled  ShiftStatus = "cancelled"
)

// Shift represents a time-bounded staffing need within an event.
// swagger:model Shift
type Shift struct {
	ID            string             `json:"id"`
	EventID       string             `json:"event_id"`
	Name          string             `json:"name"`
	StartTime     time.Time          `json:"start_time"`
	EndTime       time.Time          `json:"end_time"`
	RequiredStaff int                `json:"required_staff"`
	Description   *string            `json:"description,omitempty"`
	Status        ShiftStatus        `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Assignments   []*StaffAssignment `json:"assignments,omitempty"`
}

// NewShift returns a new Shift with the given fields. ID is typically set by the repository on create.
func NewShift(eventID, name string, startTime, endTime time.Time, requiredStaff int) *Shift {
	return &Shift{
		EventID:       eventID,
		Name:          name,
		StartTime:     startTime,
		EndTime:       endTime,
		RequiredStaff: requiredStaff,
		Status:        ShiftStatusOpen,
	}
}

// ShiftRepository defines the interface for shift storage.
type ShiftRepository interface {
	Create(ctx context.Context, shift *Shift) error
	GetByID(ctx context.Context, id string) (*Shift, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Shift, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]*Shift, error)
	Update(ctx context.Context, shift *Shift) error
	Delete(ctx context.Context, id string) error
	CountActiveAssignments(ctx context.Context, shiftID string) (int, error)
}

// ShiftService defines the business logic for shifts.
type ShiftService interface {
	CreateShift(ctx context.Context, shift *Shift) (*Shift, error)
	GetShiftByID(ctx context.Context, id string) (*Shift, error)
	ListShiftsByEventID(ctx context.Context, eventID string) ([]*Shift, error)
	ListUpcomingShifts(ctx context.Context) ([]*Shift, error)
	UpdateShift(ctx context.Context, shift *Shift) (*Shift, error)
	DeleteShift(ctx context.Context, id string) error
}
