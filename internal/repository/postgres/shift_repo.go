package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"medcoverage/internal/domain"
)

type shiftRepository struct {
	DB *sql.DB
}

func NewShiftRepository(db *sql.DB) domain.ShiftRepository {
	return &shiftRepository{
		DB: db,
	}
}

func (r *shiftRepository) Create(ctx context.Context, s *domain.Shift) error {
	query := `
		INSERT INTO shifts (event_id, name, start_time, end_time, required_staff, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.EventID, s.Name, s.StartTime, s.EndTime, s.RequiredStaff, s.Description, s.Status, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

const shiftColumns = `id, event_id, name, start_time, end_time, required_staff, description, status, created_at, updated_at`

func scanShift(row interface{ Scan(...interface{}) error }) (*domain.Shift, error) {
	s := &domain.Shift{}
	var descNull sql.NullString
	err := row.Scan(&s.ID, &s.EventID, &s.Name, &s.StartTime, &s.EndTime,
		&s.RequiredStaff, &descNull, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		s.Description = &descNull.String
	}
	return s, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = $1
	`
	s, err := scanShift(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *shiftRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE event_id = $1
		ORDER BY start_time ASC
	`
	return r.list(ctx, query, eventID)
}

func (r *shiftRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE start_time >= $1 AND status != 'cancelled'
		ORDER BY start_time ASC
	`
	return r.list(ctx, query, from)
}

func (r *shiftRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Shift, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *shiftRepository) Update(ctx context.Context, s *domain.Shift) error {
	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, required_staff = $4,
			description = $5, status = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.Name, s.StartTime, s.EndTime, s.RequiredStaff, s.Description, s.Status, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM shifts WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *shiftRepository) CountActiveAssignments(ctx context.Context, shiftID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM staff_assignments
		WHERE shift_id = $1 AND status != 'cancelled'
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, shiftID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
