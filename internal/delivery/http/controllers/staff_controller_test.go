package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medcoverage/internal/domain"
)

// fakeStaffService implements domain.StaffService for handler tests.
type fakeStaffService struct {
	createErr    error
	updateErr    error
	staffByID    map[string]*domain.Staff
	listResult   []*domain.Staff
	lastCreated  *domain.Staff
	lastPassword string
	lastUpdated  *domain.Staff
}

func (f *fakeStaffService) CreateStaff(ctx context.Context, staff *domain.Staff, password string) (*domain.Staff, error) {
	f.lastCreated = staff
	f.lastPassword = password
	if f.createErr != nil {
		return nil, f.createErr
	}
	staff.ID = "staff-created"
	staff.IsActive = true
	return staff, nil
}

func (f *fakeStaffService) GetStaffByID(ctx context.Context, id string) (*domain.Staff, error) {
	if s, ok := f.staffByID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStaffService) ListStaff(ctx context.Context) ([]*domain.Staff, error) {
	if f.listResult != nil {
		return f.listResult, nil
	}
	return []*domain.Staff{}, nil
}

func (f *fakeStaffService) UpdateStaff(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	f.lastUpdated = staff
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return staff, nil
}

func TestStaffController_CreateStaff(t *testing.T) {
	valid := `{"first_name":"Jamie","last_name":"Lee","email":"jamie@example.com","password":"supersecret","role":"first_aider"}`

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       valid,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "short password",
			body:       `{"first_name":"Jamie","last_name":"Lee","email":"jamie@example.com","password":"short","role":"first_aider"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "bad role",
			body:       `{"first_name":"Jamie","last_name":"Lee","email":"jamie@example.com","password":"supersecret","role":"wizard"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "malformed email rejected by service",
			body:       valid,
			serviceErr: fmt.Errorf("invalid email format"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "duplicate email",
			body:       valid,
			serviceErr: domain.ErrDuplicateEmail,
			wantStatus: http.StatusConflict,
			wantCode:   "conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeStaffService{createErr: tt.serviceErr}
			ctrl := NewStaffController(testLogger, svc)

			req := authedRequest(http.MethodPost, "/staff", []byte(tt.body))
			rec := httptest.NewRecorder()

			ctrl.CreateStaff(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				apiErr, ok := envelope["error"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, apiErr["code"])
				return
			}
			require.NotNil(t, svc.lastCreated)
			assert.Equal(t, "supersecret", svc.lastPassword)
			data, ok := envelope["data"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "staff-created", data["id"])
		})
	}
}

func TestStaffController_UpdateStaff(t *testing.T) {
	t.Run("email and password not settable", func(t *testing.T) {
		svc := &fakeStaffService{}
		ctrl := NewStaffController(testLogger, svc)

		body := `{"first_name":"Jamie","last_name":"Lee","role":"paramedic","is_active":true,"email":"new@example.com"}`
		req := authedRequest(http.MethodPut, "/staff/staff-1", []byte(body))
		req.SetPathValue("staffID", "staff-1")
		rec := httptest.NewRecorder()

		ctrl.UpdateStaff(rec, req)

		// Unknown field rejected outright.
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.lastUpdated)
	})

	t.Run("updated", func(t *testing.T) {
		svc := &fakeStaffService{}
		ctrl := NewStaffController(testLogger, svc)

		body := `{"first_name":"Jamie","last_name":"Lee","role":"paramedic","is_active":false}`
		req := authedRequest(http.MethodPut, "/staff/staff-1", []byte(body))
		req.SetPathValue("staffID", "staff-1")
		rec := httptest.NewRecorder()

		ctrl.UpdateStaff(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.lastUpdated)
		assert.Equal(t, "staff-1", svc.lastUpdated.ID)
		assert.Equal(t, domain.StaffRoleParamedic, svc.lastUpdated.Role)
		assert.False(t, svc.lastUpdated.IsActive)
		assert.Empty(t, svc.lastUpdated.Email)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeStaffService{updateErr: domain.ErrNotFound}
		ctrl := NewStaffController(testLogger, svc)

		body := `{"first_name":"Jamie","last_name":"Lee","role":"paramedic","is_active":true}`
		req := authedRequest(http.MethodPut, "/staff/missing", []byte(body))
		req.SetPathValue("staffID", "missing")
		rec := httptest.NewRecorder()

		ctrl.UpdateStaff(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStaffController_GetStaffByID(t *testing.T) {
	svc := &fakeStaffService{staffByID: map[string]*domain.Staff{
		"staff-1": {ID: "staff-1", FirstName: "Jamie", LastName: "Lee", Email: "jamie@example.com", Role: domain.StaffRoleFirstAider, IsActive: true},
	}}
	ctrl := NewStaffController(testLogger, svc)

	req := authedRequest(http.MethodGet, "/staff/staff-1", nil)
	req.SetPathValue("staffID", "staff-1")
	rec := httptest.NewRecorder()

	ctrl.GetStaffByID(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "jamie@example.com", data["email"])
}
