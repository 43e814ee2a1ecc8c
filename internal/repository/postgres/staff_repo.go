package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"medcoverage/internal/domain"
)

type staffRepository struct {
	DB *sql.DB
}

func NewStaffRepository(db *sql.DB) domain.StaffRepository {
	return &staffRepository{
		DB: db,
	}
}

func (r *staffRepository) Create(ctx context.Context, s *domain.Staff) error {
	query := `
		INSERT INTO staff (first_name, last_name, email, phone, role, certification_level,
			certification_expiry, is_active, password_hash, salt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.FirstName, s.LastName, s.Email, s.Phone, s.Role, s.CertificationLevel,
		s.CertificationExpiry, s.IsActive, s.PasswordHash, s.Salt, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

const staffColumns = `id, first_name, last_name, email, phone, role, certification_level,
	certification_expiry, is_active, password_hash, salt, created_at, updated_at`

func scanStaff(row interface{ Scan(...interface{}) error }) (*domain.Staff, error) {
	s := &domain.Staff{}
	var phoneNull, certNull sql.NullString
	var certExpNull sql.NullTime
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &phoneNull, &s.Role,
		&certNull, &certExpNull, &s.IsActive, &s.PasswordHash, &s.Salt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if phoneNull.Valid {
		s.Phone = &phoneNull.String
	}
	if certNull.Valid {
		s.CertificationLevel = &certNull.String
	}
	if certExpNull.Valid {
		s.CertificationExpiry = &certExpNull.Time
	}
	return s, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE id = $1
	`
	s, err := scanStaff(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE email = $1
	`
	s, err := scanStaff(r.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *staffRepository) List(ctx context.Context) ([]*domain.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff
		ORDER BY last_name ASC, first_name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	staff := make([]*domain.Staff, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func (r *staffRepository) Update(ctx context.Context, s *domain.Staff) error {
	query := `
		UPDATE staff
		SET first_name = $1, last_name = $2, phone = $3, role = $4, certification_level = $5,
			certification_expiry = $6, is_active = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.FirstName, s.LastName, s.Phone, s.Role, s.CertificationLevel,
		s.CertificationExpiry, s.IsActive, s.UpdatedAt, s.ID,
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
