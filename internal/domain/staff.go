package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateEmail is returned when creating a staff member whose email is already registered.
var ErrDuplicateEmail = errors.New("email already in use")

// StaffRole is the medical role of a staff member.
type StaffRole string

const (
	StaffRoleFirstAider StaffRole = "first_aider"
	StaffRoleTeamLeader StaffRole = "team_leader"
	StaffRoleParamedic  StaffRole = "paramedic"
	StaffRoleDoctor     StaffRole = "doctor"
	StaffRoleVolunteer  StaffRole = "volunteer"
)

// Staff represents a staff member who can be assigned to shifts.
// swagger:model Staff
type Staff struct {
	ID                  string     `json:"id"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Email               string     `json:"email"`
	Phone               *string    `json:"phone,omitempty"`
	Role                StaffRole  `json:"role"`
	CertificationLevel  *string    `json:"certification_level,omitempty"`
	CertificationExpiry *time.Time `json:"certification_expiry,omitempty"`
	IsActive            bool       `json:"is_active"`
	PasswordHash        string     `json:"-"`
	Salt                string     `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// FullName returns the staff member's display name.
func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated staff member.
type TokenIssuer interface {
	Issue(staffID, email string, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated staff ID.
type TokenVerifier interface {
	Verify(token string) (staffID string, err error)
}

// StaffRepository defines the interface for staff storage.
type StaffRepository interface {
	Create(ctx context.Context, staff *Staff) error
	GetByID(ctx context.Context, id string) (*Staff, error)
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	List(ctx context.Context) ([]*Staff, error)
	Update(ctx context.Context, staff *Staff) error
}

// StaffService defines the business logic for staff members.
type StaffService interface {
	CreateStaff(ctx context.Context, staff *Staff, password string) (*Staff, error)
	GetStaffByID(ctx context.Context, id string) (*Staff, error)
	ListStaff(ctx context.Context) ([]*Staff, error)
	UpdateStaff(ctx context.Context, staff *Staff) (*Staff, error)
}

// AuthService defines authentication for staff members.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, staff *Staff, err error)
}
