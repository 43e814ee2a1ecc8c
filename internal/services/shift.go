package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medcoverage/internal/clock"
	"medcoverage/internal/domain"
	"medcoverage/internal/scheduling"
)

type shiftService struct {
	shiftRepo      domain.ShiftRepository
	eventRepo      domain.EventRepository
	clock          clock.Clock
	contextTimeout time.Duration
}

func NewShiftService(shiftRepo domain.ShiftRepository,
	eventRepo domain.EventRepository,
	clk clock.Clock,
	timeout time.Duration,
) domain.ShiftService {
	return &shiftService{
		shiftRepo:      shiftRepo,
		eventRepo:      eventRepo,
		clock:          clk,
		contextTimeout: timeout,
	}
}

// validateShiftWindow checks that the shift interval is well formed and lies
// within its owning event.
func (s *shiftService) validateShiftWindow(ctx context.Context, shift *domain.Shift) error {
	window := scheduling.NewInterval(shift.StartTime, shift.EndTime)
	if !window.Valid() {
		return domain.ErrInvalidInterval
	}
	event, err := s.eventRepo.GetByID(ctx, shift.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if !scheduling.NewInterval(event.StartDate, event.EndDate).Contains(window) {
		return domain.ErrShiftOutsideEvent
	}
	return nil
}

func (s *shiftService) CreateShift(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if shift.RequiredStaff < 1 {
		shift.RequiredStaff = 1
	}
	if err := s.validateShiftWindow(ctx, shift); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	shift.Status = domain.ShiftStatusOpen
	shift.CreatedAt = now
	shift.UpdatedAt = now
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, fmt.Errorf("create shift: %w", err)
	}
	return shift, nil
}

func (s *shiftService) GetShiftByID(ctx context.Context, id string) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return shift, nil
}

func (s *shiftService) ListShiftsByEventID(ctx context.Context, eventID string) ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	shifts, err := s.shiftRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	if shifts == nil {
		shifts = []*domain.Shift{}
	}
	return shifts, nil
}

func (s *shiftService) ListUpcomingShifts(ctx context.Context) ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	shifts, err := s.shiftRepo.ListUpcoming(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list upcoming shifts: %w", err)
	}
	if shifts == nil {
		shifts = []*domain.Shift{}
	}
	return shifts, nil
}

func (s *shiftService) UpdateShift(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.shiftRepo.GetByID(ctx, shift.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	shift.EventID = existing.EventID
	shift.CreatedAt = existing.CreatedAt
	if err := s.validateShiftWindow(ctx, shift); err != nil {
		return nil, err
	}

	shift.UpdatedAt = s.clock.Now()
	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update shift: %w", err)
	}
	return shift, nil
}

func (s *shiftService) DeleteShift(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}
