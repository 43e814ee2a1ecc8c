package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"medcoverage/internal/clock"
	"medcoverage/internal/domain"
	"medcoverage/internal/scheduling"
)

type eventService struct {
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	engine         *scheduling.TransitionEngine
	clock          clock.Clock
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	emailService domain.EmailService,
	clk clock.Clock,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		emailService:   emailService,
		engine:         scheduling.NewTransitionEngine(clk),
		clock:          clk,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	initialized, err := s.engine.InitializeNewEvent(event)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	initialized.CreatedAt = now
	initialized.UpdatedAt = now
	for _, shift := range initialized.Shifts {
		shift.CreatedAt = now
		shift.UpdatedAt = now
	}

	if err := s.eventRepo.Create(ctx, initialized); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return initialized, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) ListUpcomingEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListUpcoming(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// UpdateEvent loads the stored event, lets the transition engine apply the
// proposed changes, attempts the notifications the decision owes, and
// persists the final state. A failed send is logged and never blocks
// persistence; NotificationSent records send-success only, so the next
// qualifying transition retries it.
func (s *eventService) UpdateEvent(ctx context.Context, proposed *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.eventRepo.GetByID(ctx, proposed.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	updated, decision, err := s.engine.ApplyChanges(existing, proposed)
	if err != nil {
		return nil, err
	}

	if decision.SendPlannedNotification {
		data := plannedEmailData(updated)
		if err := s.emailService.SendEventPlannedNotification(ctx, data); err != nil {
			s.logger.ErrorContext(ctx, "failed sending planned notification", "event_id", updated.ID, "err", err)
		} else {
			updated.NotificationSent = true
			if decision.PromoteToConfirmed {
				updated.Status = domain.EventStatusConfirmed
			}
			s.logger.InfoContext(ctx, "planned notification sent", "event_id", updated.ID)
		}
	}

	if decision.SendInvoiceNotification {
		data := invoiceEmailData(updated)
		if err := s.emailService.SendEventInvoiceNotification(ctx, data); err != nil {
			s.logger.ErrorContext(ctx, "failed sending invoice notification", "event_id", updated.ID, "err", err)
		} else {
			updated.NotificationSent = true
			s.logger.InfoContext(ctx, "invoice notification sent", "event_id", updated.ID)
		}
	}

	if err := s.eventRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func plannedEmailData(event *domain.Event) *domain.EventPlannedEmailData {
	return &domain.EventPlannedEmailData{
		Email:         event.ContactEmailValue(),
		ContactPerson: contactPersonOrDefault(event),
		EventName:     event.Name,
		Location:      event.Location,
		StartDate:     event.StartDate,
		EndDate:       event.EndDate,
	}
}

func invoiceEmailData(event *domain.Event) *domain.EventInvoiceEmailData {
	return &domain.EventInvoiceEmailData{
		Email:         event.ContactEmailValue(),
		ContactPerson: contactPersonOrDefault(event),
		EventName:     event.Name,
		Location:      event.Location,
		StartDate:     event.StartDate,
		EndDate:       event.EndDate,
	}
}

func contactPersonOrDefault(event *domain.Event) string {
	if event.ContactPerson != nil && *event.ContactPerson != "" {
		return *event.ContactPerson
	}
	return "Event contact"
}
