package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"medcoverage/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// Create inserts the event and its seeded shifts in one transaction.
func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (name, start_date, end_date, location, description, status,
			contact_person, contact_phone, contact_email, notification_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		e.Name, e.StartDate, e.EndDate, e.Location, e.Description, e.Status,
		e.ContactPerson, e.ContactPhone, e.ContactEmail, e.NotificationSent, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return err
	}

	shiftQuery := `
		INSERT INTO shifts (event_id, name, start_time, end_time, required_staff, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	for _, s := range e.Shifts {
		s.EventID = e.ID
		err = tx.QueryRowContext(ctx, shiftQuery,
			s.EventID, s.Name, s.StartTime, s.EndTime, s.RequiredStaff, s.Description, s.Status, s.CreatedAt, s.UpdatedAt,
		).Scan(&s.ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

const eventColumns = `id, name, start_date, end_date, location, description, status,
	contact_person, contact_phone, contact_email, notification_sent, created_at, updated_at`

func scanEvent(row interface{ Scan(...interface{}) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, personNull, phoneNull, emailNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Name, &e.StartDate, &e.EndDate, &e.Location, &descNull, &e.Status,
		&personNull, &phoneNull, &emailNull, &e.NotificationSent, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if personNull.Valid {
		e.ContactPerson = &personNull.String
	}
	if phoneNull.Valid {
		e.ContactPhone = &phoneNull.String
	}
	if emailNull.Valid {
		e.ContactEmail = &emailNull.String
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	shifts, err := r.loadShifts(ctx, []string{e.ID})
	if err != nil {
		return nil, err
	}
	e.Shifts = shifts[e.ID]
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY start_date ASC
	`
	return r.list(ctx, query)
}

func (r *eventRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE end_date >= $1 AND status NOT IN ('cancelled', 'completed')
		ORDER BY start_date ASC
	`
	return r.list(ctx, query, from)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return events, nil
	}

	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	shifts, err := r.loadShifts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		e.Shifts = shifts[e.ID]
	}
	return events, nil
}

// loadShifts returns the shifts of the given events keyed by event id.
func (r *eventRepository) loadShifts(ctx context.Context, eventIDs []string) (map[string][]*domain.Shift, error) {
	query := `
		SELECT id, event_id, name, start_time, end_time, required_staff, description, status, created_at, updated_at
		FROM shifts
		WHERE event_id = ANY($1)
		ORDER BY start_time ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(eventIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	shifts := make(map[string][]*domain.Shift)
	for rows.Next() {
		s := &domain.Shift{}
		var descNull sql.NullString
		if err := rows.Scan(&s.ID, &s.EventID, &s.Name, &s.StartTime, &s.EndTime,
			&s.RequiredStaff, &descNull, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if descNull.Valid {
			s.Description = &descNull.String
		}
		shifts[s.EventID] = append(shifts[s.EventID], s)
	}
	return shifts, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, start_date = $2, end_date = $3, location = $4, description = $5,
			status = $6, contact_person = $7, contact_phone = $8, contact_email = $9,
			notification_sent = $10, updated_at = $11
		WHERE id = $12
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Name, e.StartDate, e.EndDate, e.Location, e.Description,
		e.Status, e.ContactPerson, e.ContactPhone, e.ContactEmail,
		e.NotificationSent, e.UpdatedAt, e.ID,
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

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
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
