package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"medcoverage/internal/clock"
	"medcoverage/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type staffService struct {
	staffRepo      domain.StaffRepository
	hasher         domain.PasswordHasher
	clock          clock.Clock
	contextTimeout time.Duration
}

func NewStaffService(staffRepo domain.StaffRepository,
	hasher domain.PasswordHasher,
	clk clock.Clock,
	timeout time.Duration,
) domain.StaffService {
	return &staffService{
		staffRepo:      staffRepo,
		hasher:         hasher,
		clock:          clk,
		contextTimeout: timeout,
	}
}

func (s *staffService) CreateStaff(ctx context.Context, staff *domain.Staff, password string) (*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	staff.Email = strings.TrimSpace(strings.ToLower(staff.Email))
	if !emailRegexp.MatchString(staff.Email) {
		return nil, fmt.Errorf("invalid email format")
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.clock.Now()
	staff.Salt = salt
	staff.PasswordHash = hash
	staff.IsActive = true
	staff.CreatedAt = now
	staff.UpdatedAt = now

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, id string) (*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) ListStaff(ctx context.Context) ([]*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	if staff == nil {
		staff = []*domain.Staff{}
	}
	return staff, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.staffRepo.GetByID(ctx, staff.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	staff.Email = existing.Email
	staff.PasswordHash = existing.PasswordHash
	staff.Salt = existing.Salt
	staff.CreatedAt = existing.CreatedAt
	staff.UpdatedAt = s.clock.Now()

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, fmt.Errorf("update staff: %w", err)
	}
	return staff, nil
}

type authService struct {
	staffRepo      domain.StaffRepository
	hasher         domain.PasswordHasher
	issuer         domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

func NewAuthService(staffRepo domain.StaffRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	timeout time.Duration,
) domain.AuthService {
	return &authService{
		staffRepo:      staffRepo,
		hasher:         hasher,
		issuer:         issuer,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	staff, err := s.staffRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !staff.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(staff.PasswordHash, staff.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(staff.ID, staff.Email, string(staff.Role), s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, staff, nil
}
