package postgres

import (
	"context"
	"database/sql"
	"errors"

	"medcoverage/internal/domain"
)

type assignmentRepository struct {
	DB *sql.DB
}

func NewStaffAssignmentRepository(db *sql.DB) domain.StaffAssignmentRepository {
	return &assignmentRepository{
		DB: db,
	}
}

func (r *assignmentRepository) Create(ctx context.Context, a *domain.StaffAssignment) error {
	query := `
		INSERT INTO staff_assignments (shift_id, staff_id, status, assigned_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, a.ShiftID, a.StaffID, a.Status, a.AssignedAt).Scan(&a.ID)
}

const assignmentColumns = `a.id, a.shift_id, a.staff_id, a.status, a.assigned_at, a.check_in_time, a.check_out_time,
	s.start_time, s.end_time`

func scanAssignment(row interface{ Scan(...interface{}) error }) (*domain.StaffAssignment, error) {
	a := &domain.StaffAssignment{}
	var inNull, outNull sql.NullTime
	err := row.Scan(&a.ID, &a.ShiftID, &a.StaffID, &a.Status, &a.AssignedAt,
		&inNull, &outNull, &a.ShiftStartTime, &a.ShiftEndTime)
	if err != nil {
		return nil, err
	}
	if inNull.Valid {
		a.CheckInTime = &inNull.Time
	}
	if outNull.Valid {
		a.CheckOutTime = &outNull.Time
	}
	return a, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (*domain.StaffAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM staff_assignments a
		JOIN shifts s ON s.id = a.shift_id
		WHERE a.id = $1
	`
	a, err := scanAssignment(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *assignmentRepository) ListByShiftID(ctx context.Context, shiftID string) ([]*domain.StaffAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM staff_assignments a
		JOIN shifts s ON s.id = a.shift_id
		WHERE a.shift_id = $1
		ORDER BY a.assigned_at ASC
	`
	return r.list(ctx, query, shiftID)
}

func (r *assignmentRepository) ListByStaffID(ctx context.Context, staffID string) ([]*domain.StaffAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM staff_assignments a
		JOIN shifts s ON s.id = a.shift_id
		WHERE a.staff_id = $1
		ORDER BY s.start_time ASC
	`
	return r.list(ctx, query, staffID)
}

func (r *assignmentRepository) ListActiveByStaffID(ctx context.Context, staffID string) ([]*domain.StaffAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM staff_assignments a
		JOIN shifts s ON s.id = a.shift_id
		WHERE a.staff_id = $1 AND a.status != 'cancelled'
		ORDER BY s.start_time ASC
	`
	return r.list(ctx, query, staffID)
}

func (r *assignmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.StaffAssignment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	assignments := make([]*domain.StaffAssignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepository) Update(ctx context.Context, a *domain.StaffAssignment) error {
	query := `
		UPDATE staff_assignments
		SET status = $1, check_in_time = $2, check_out_time = $3
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query, a.Status, a.CheckInTime, a.CheckOutTime, a.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
