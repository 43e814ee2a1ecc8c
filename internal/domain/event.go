package domain

import (
	"context"
	"time"
)

// EventStatus is the lifecycle status of a coverage event.
type EventStatus string

const (
	EventStatusRequested   EventStatus = "requested"
	EventStatusPlanned     EventStatus = "planned"
	EventStatusConfirmed   EventStatus = "confirmed"
	EventStatusActive      EventStatus = "active"
	EventStatusCompleted   EventStatus = "completed"
	EventStatusSendInvoice EventStatus = "send_invoice"
	EventStatusCancelled   EventStatus = "cancelled"
)

// Event represents a time-bounded engagement requiring medical coverage.
// swagger:model Event
type Event struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	StartDate        time.Time   `json:"start_date"`
	EndDate          time.Time   `json:"end_date"`
	Location         string      `json:"location"`
	Description      *string     `json:"description,omitempty"`
	Status           EventStatus `json:"status"`
	ContactPerson    *string     `json:"contact_person,omitempty"`
	ContactPhone     *string     `json:"contact_phone,omitempty"`
	ContactEmail     *string     `json:"contact_email,omitempty"`
	NotificationSent bool        `json:"notification_sent"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	Shifts           []*Shift    `json:"shifts,omitempty"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(name, location string, startDate, endDate time.Time) *Event {
	return &Event{
		Name:      name,
		Location:  location,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    EventStatusRequested,
	}
}

// ContactEmailValue returns the contact email or "" when none is set.
func (e *Event) ContactEmailValue() string {
	if e.ContactEmail == nil {
		return ""
	}
	return *e.ContactEmail
}

// EventRepository defines the interface for event storage.
// GetByID loads the event aggregate including its shifts.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for coverage events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListUpcomingEvents(ctx context.Context) ([]*Event, error)
	// UpdateEvent applies the proposed changes to the stored event, sends any
	// notifications the transition owes, and persists the final state.
	UpdateEvent(ctx context.Context, proposed *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
