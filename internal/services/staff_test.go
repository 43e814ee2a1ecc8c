package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medcoverage/internal/clock"
	"medcoverage/internal/domain"
)

// fakeHasher hashes by concatenation so tests can assert without bcrypt.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type fakeIssuer struct {
	err error
}

func (f *fakeIssuer) Issue(staffID, email string, role string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("token-%s-%s", staffID, role), nil
}

func newStaffService(repo *fakeStaffRepo) domain.StaffService {
	return NewStaffService(repo, fakeHasher{}, clock.NewFixed(testNow), 2*time.Second)
}

func newAuthService(repo *fakeStaffRepo) domain.AuthService {
	return NewAuthService(repo, fakeHasher{}, &fakeIssuer{}, time.Hour, 2*time.Second)
}

func validStaff() *domain.Staff {
	return &domain.Staff{
		FirstName: "Jamie",
		LastName:  "Okafor",
		Email:     "jamie@example.com",
		Phone:     strPtr("+31600000000"),
		Role:      domain.StaffRoleParamedic,
	}
}

func TestStaffService_CreateStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active staff member with hashed password", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := newStaffService(repo)

		created, err := svc.CreateStaff(ctx, validStaff(), "s3cret-pass")
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.True(t, created.IsActive)
		assert.Equal(t, "salt", created.Salt)
		assert.Equal(t, "salt:s3cret-pass", created.PasswordHash)
		assert.Equal(t, testNow, created.CreatedAt)
	})

	t.Run("normalizes the email", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := newStaffService(repo)

		staff := validStaff()
		staff.Email = "  Jamie@Example.COM "
		created, err := svc.CreateStaff(ctx, staff, "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "jamie@example.com", created.Email)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := newStaffService(repo)

		staff := validStaff()
		staff.Email = "not-an-email"
		_, err := svc.CreateStaff(ctx, staff, "s3cret-pass")
		require.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := newStaffService(repo)

		_, err := svc.CreateStaff(ctx, validStaff(), "short")
		require.Error(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := newStaffService(repo)

		_, err := svc.CreateStaff(ctx, validStaff(), "s3cret-pass")
		require.NoError(t, err)
		_, err = svc.CreateStaff(ctx, validStaff(), "s3cret-pass")
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestStaffService_UpdateStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("email and credentials are immutable", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := newStaffService(repo)

		created, err := svc.CreateStaff(ctx, validStaff(), "s3cret-pass")
		require.NoError(t, err)

		modified := *created
		modified.FirstName = "Jay"
		modified.Email = "hijack@example.com"
		modified.PasswordHash = "forged"
		modified.Role = domain.StaffRoleTeamLeader

		updated, err := svc.UpdateStaff(ctx, &modified)
		require.NoError(t, err)
		assert.Equal(t, "Jay", updated.FirstName)
		assert.Equal(t, domain.StaffRoleTeamLeader, updated.Role)
		assert.Equal(t, "jamie@example.com", updated.Email)
		assert.Equal(t, "salt:s3cret-pass", updated.PasswordHash)
	})

	t.Run("unknown staff", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := newStaffService(repo)

		staff := validStaff()
		staff.ID = "staff-missing"
		_, err := svc.UpdateStaff(ctx, staff)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *fakeStaffRepo) *domain.Staff {
		t.Helper()
		created, err := newStaffService(repo).CreateStaff(ctx, validStaff(), "s3cret-pass")
		require.NoError(t, err)
		return created
	}

	t.Run("valid credentials", func(t *testing.T) {
		repo := newFakeStaffRepo()
		created := seed(t, repo)

		token, staff, err := newAuthService(repo).Login(ctx, "Jamie@Example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("token-%s-paramedic", created.ID), token)
		assert.Equal(t, created.ID, staff.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeStaffRepo()
		seed(t, repo)

		_, _, err := newAuthService(repo).Login(ctx, "jamie@example.com", "wrong-pass")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := newFakeStaffRepo()
		_, _, err := newAuthService(repo).Login(ctx, "nobody@example.com", "s3cret-pass")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		repo := newFakeStaffRepo()
		created := seed(t, repo)
		created.IsActive = false
		require.NoError(t, repo.Update(ctx, created))

		_, _, err := newAuthService(repo).Login(ctx, "jamie@example.com", "s3cret-pass")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
