package scheduling

import (
	"strings"

	"medcoverage/internal/clock"
	"medcoverage/internal/domain"
)

// SideEffectDecision describes which notifications the caller must attempt
// after a status transition, decoupled from actually sending them. The caller
// sets NotificationSent (and, for the planned case, Status = Confirmed) only
// after a send succeeds.
type SideEffectDecision struct {
	SendPlannedNotification bool
	PromoteToConfirmed      bool
	SendInvoiceNotification bool
}

// transitionRule describes the side effects owed when an event enters a
// status it was not already in. Rules are gated on a non-empty contact email;
// rules with dedupeOnNotificationSent fire at most once per notification flag.
type transitionRule struct {
	to                       domain.EventStatus
	dedupeOnNotificationSent bool
	promoteTo                domain.EventStatus
	apply                    func(*SideEffectDecision)
}

// Every transition that carries side effects. All other status changes are
// pass-through field updates.
var transitionRules = []transitionRule{
	{
		to:                       domain.EventStatusPlanned,
		dedupeOnNotificationSent: true,
		promoteTo:                domain.EventStatusConfirmed,
		apply: func(d *SideEffectDecision) {
			d.SendPlannedNotification = true
			d.PromoteToConfirmed = true
		},
	},
	{
		to: domain.EventStatusSendInvoice,
		apply: func(d *SideEffectDecision) {
			d.SendInvoiceNotification = true
		},
	},
}

// TransitionEngine decides which event status transitions are legal and which
// notification side effects they owe. It performs no I/O.
type TransitionEngine struct {
	clock clock.Clock
}

// NewTransitionEngine returns an engine that stamps UpdatedAt from clk.
func NewTransitionEngine(clk clock.Clock) *TransitionEngine {
	return &TransitionEngine{clock: clk}
}

// ApplyChanges validates the proposed changes against the existing event and
// returns a new event value with the permitted field changes applied, plus
// the side-effect decision for the caller. existing is not modified.
//
// Failures leave no partial state: ErrIdentityMismatch on differing ids,
// ErrInvalidInterval when the proposed dates are not strictly ordered, and
// *ShiftOutOfBoundsError when a date change would orphan existing shifts
// outside the new bounds.
func (e *TransitionEngine) ApplyChanges(existing, proposed *domain.Event) (*domain.Event, SideEffectDecision, error) {
	if existing.ID != proposed.ID {
		return nil, SideEffectDecision{}, domain.ErrIdentityMismatch
	}
	if !NewInterval(proposed.StartDate, proposed.EndDate).Valid() {
		return nil, SideEffectDecision{}, domain.ErrInvalidInterval
	}

	datesChanged := !existing.StartDate.Equal(proposed.StartDate) || !existing.EndDate.Equal(proposed.EndDate)
	if len(existing.Shifts) > 0 && datesChanged {
		windows := make([]Interval, len(existing.Shifts))
		for i, s := range existing.Shifts {
			windows[i] = NewInterval(s.StartTime, s.EndTime)
		}
		if violating := OutOfBoundsShifts(NewInterval(proposed.StartDate, proposed.EndDate), windows); len(violating) > 0 {
			return nil, SideEffectDecision{}, &domain.ShiftOutOfBoundsError{Count: len(violating)}
		}
	}

	originalStatus := existing.Status
	originalNotificationSent := existing.NotificationSent

	// Copy mutable fields onto a fresh value; identity, creation timestamp,
	// notification flag, and loaded shifts stay from the stored event.
	updated := *existing
	updated.Name = proposed.Name
	updated.StartDate = proposed.StartDate
	updated.EndDate = proposed.EndDate
	updated.Location = proposed.Location
	updated.Description = proposed.Description
	updated.Status = proposed.Status
	updated.ContactPerson = proposed.ContactPerson
	updated.ContactPhone = proposed.ContactPhone
	updated.ContactEmail = proposed.ContactEmail
	updated.UpdatedAt = e.clock.Now()

	canContact := strings.TrimSpace(updated.ContactEmailValue()) != ""

	var decision SideEffectDecision
	for _, rule := range transitionRules {
		if originalStatus == rule.to || updated.Status != rule.to {
			continue
		}
		if !canContact {
			continue
		}
		if rule.dedupeOnNotificationSent && originalNotificationSent {
			continue
		}
		rule.apply(&decision)
	}

	return &updated, decision, nil
}

const (
	defaultShiftName        = "Default Shift"
	defaultShiftDescription = "Default shift covering the entire event duration"
	defaultShiftStaff       = 1
)

// InitializeNewEvent validates a new event and prepares it for persistence:
// Status = Requested, NotificationSent = false, and, when the caller supplied
// no shifts, one default open shift spanning the whole event with a single
// required staff member. The start must lie strictly in the future.
func (e *TransitionEngine) InitializeNewEvent(event *domain.Event) (*domain.Event, error) {
	if !NewInterval(event.StartDate, event.EndDate).Valid() {
		return nil, domain.ErrInvalidInterval
	}
	if !event.StartDate.After(e.clock.Now()) {
		return nil, domain.ErrStartInPast
	}

	initialized := *event
	initialized.Status = domain.EventStatusRequested
	initialized.NotificationSent = false

	if len(initialized.Shifts) == 0 {
		desc := defaultShiftDescription
		shift := domain.NewShift("", defaultShiftName, initialized.StartDate, initialized.EndDate, defaultShiftStaff)
		shift.Description = &desc
		initialized.Shifts = []*domain.Shift{shift}
	}

	return &initialized, nil
}
