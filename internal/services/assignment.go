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

type assignmentService struct {
	assignmentRepo domain.StaffAssignmentRepository
	shiftRepo      domain.ShiftRepository
	eventRepo      domain.EventRepository
	staffRepo      domain.StaffRepository
	emailService   domain.EmailService
	clock          clock.Clock
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewStaffAssignmentService(assignmentRepo domain.StaffAssignmentRepository,
	shiftRepo domain.ShiftRepository,
	eventRepo domain.EventRepository,
	staffRepo domain.StaffRepository,
	emailService domain.EmailService,
	clk clock.Clock,
	logger *slog.Logger,
	timeout time.Duration,
) domain.StaffAssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		shiftRepo:      shiftRepo,
		eventRepo:      eventRepo,
		staffRepo:      staffRepo,
		emailService:   emailService,
		clock:          clk,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateAssignment assigns the staff member to the shift. The staff member
// must have no other active assignment overlapping the shift's time window.
// The storage layer must run the read and write under per-staff serializable
// isolation so two concurrent checks cannot both succeed.
func (s *assignmentService) CreateAssignment(ctx context.Context, shiftID, staffID string) (*domain.StaffAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}

	active, err := s.assignmentRepo.ListActiveByStaffID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("list active assignments: %w", err)
	}
	candidate := scheduling.NewInterval(shift.StartTime, shift.EndTime)
	if !scheduling.IsStaffAvailable(candidate, active, "") {
		return nil, domain.ErrStaffUnavailable
	}

	assignment := domain.NewStaffAssignment(shift.ID, staff.ID, s.clock.Now())
	assignment.ShiftStartTime = shift.StartTime
	assignment.ShiftEndTime = shift.EndTime
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	s.refreshShiftStatus(ctx, shift)
	s.sendAssignmentEmail(ctx, staff, shift)

	return assignment, nil
}

// refreshShiftStatus flips a shift between open and full based on its active
// assignment count. Bookkeeping only; failures are logged and ignored.
func (s *assignmentService) refreshShiftStatus(ctx context.Context, shift *domain.Shift) {
	if shift.Status != domain.ShiftStatusOpen && shift.Status != domain.ShiftStatusFull {
		return
	}
	count, err := s.shiftRepo.CountActiveAssignments(ctx, shift.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed counting assignments", "shift_id", shift.ID, "err", err)
		return
	}
	status := domain.ShiftStatusOpen
	if count >= shift.RequiredStaff {
		status = domain.ShiftStatusFull
	}
	if status == shift.Status {
		return
	}
	shift.Status = status
	shift.UpdatedAt = s.clock.Now()
	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		s.logger.ErrorContext(ctx, "failed updating shift status", "shift_id", shift.ID, "err", err)
	}
}

// sendAssignmentEmail notifies the staff member. Delivery failure never
// blocks the assignment.
func (s *assignmentService) sendAssignmentEmail(ctx context.Context, staff *domain.Staff, shift *domain.Shift) {
	event, err := s.eventRepo.GetByID(ctx, shift.EventID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed loading event for assignment email", "shift_id", shift.ID, "err", err)
		return
	}
	data := &domain.ShiftAssignmentEmailData{
		Email:     staff.Email,
		StaffName: staff.FullName(),
		EventName: event.Name,
		Location:  event.Location,
		ShiftName: shift.Name,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
	}
	if err := s.emailService.SendShiftAssignmentNotification(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "failed sending assignment notification", "staff_id", staff.ID, "shift_id", shift.ID, "err", err)
	}
}

func (s *assignmentService) GetAssignmentByID(ctx context.Context, id string) (*domain.StaffAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return assignment, nil
}

func (s *assignmentService) ListAssignmentsByShiftID(ctx context.Context, shiftID string) ([]*domain.StaffAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	assignments, err := s.assignmentRepo.ListByShiftID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if assignments == nil {
		assignments = []*domain.StaffAssignment{}
	}
	return assignments, nil
}

func (s *assignmentService) ListAssignmentsByStaffID(ctx context.Context, staffID string) ([]*domain.StaffAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	assignments, err := s.assignmentRepo.ListByStaffID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if assignments == nil {
		assignments = []*domain.StaffAssignment{}
	}
	return assignments, nil
}

func (s *assignmentService) CheckIn(ctx context.Context, assignmentID string) (*domain.StaffAssignment, error) {
	return s.transition(ctx, assignmentID, func(a domain.StaffAssignment) (domain.StaffAssignment, error) {
		return scheduling.CheckIn(a, s.clock.Now())
	})
}

func (s *assignmentService) CheckOut(ctx context.Context, assignmentID string) (*domain.StaffAssignment, error) {
	return s.transition(ctx, assignmentID, func(a domain.StaffAssignment) (domain.StaffAssignment, error) {
		return scheduling.CheckOut(a, s.clock.Now())
	})
}

func (s *assignmentService) CancelAssignment(ctx context.Context, assignmentID string) (*domain.StaffAssignment, error) {
	updated, err := s.transition(ctx, assignmentID, func(a domain.StaffAssignment) (domain.StaffAssignment, error) {
		return scheduling.Cancel(a)
	})
	if err != nil {
		return nil, err
	}
	// A cancellation may reopen a previously full shift.
	if shift, err := s.shiftRepo.GetByID(ctx, updated.ShiftID); err == nil {
		s.refreshShiftStatus(ctx, shift)
	}
	return updated, nil
}

func (s *assignmentService) transition(ctx context.Context, assignmentID string,
	fn func(domain.StaffAssignment) (domain.StaffAssignment, error),
) (*domain.StaffAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}

	updated, err := fn(*assignment)
	if err != nil {
		return nil, err
	}
	if err := s.assignmentRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update assignment: %w", err)
	}
	return &updated, nil
}
