package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medcoverage/internal/domain"
)

// fakeShiftService implements domain.ShiftService for handler tests.
type fakeShiftService struct {
	createErr     error
	updateErr     error
	deleteErr     error
	listErr       error
	shiftByID     map[string]*domain.Shift
	listResult    []*domain.Shift
	lastCreated   *domain.Shift
	lastUpdated   *domain.Shift
	lastDeletedID string
}

func (f *fakeShiftService) CreateShift(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	f.lastCreated = shift
	if f.createErr != nil {
		return nil, f.createErr
	}
	shift.ID = "sh-created"
	return shift, nil
}

func (f *fakeShiftService) GetShiftByID(ctx context.Context, id string) (*domain.Shift, error) {
	if s, ok := f.shiftByID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeShiftService) ListShiftsByEventID(ctx context.Context, eventID string) ([]*domain.Shift, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return []*domain.Shift{}, nil
}

func (f *fakeShiftService) ListUpcomingShifts(ctx context.Context) ([]*domain.Shift, error) {
	return f.ListShiftsByEventID(ctx, "")
}

func (f *fakeShiftService) UpdateShift(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	f.lastUpdated = shift
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return shift, nil
}

func (f *fakeShiftService) DeleteShift(ctx context.Context, id string) error {
	f.lastDeletedID = id
	return f.deleteErr
}

func TestShiftController_CreateShift(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       `{"name":"First Aid Morning","start_time":"2025-07-01T09:00:00Z","end_time":"2025-07-01T13:00:00Z","required_staff":2}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"start_time":"2025-07-01T09:00:00Z","end_time":"2025-07-01T13:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "negative required staff",
			body:       `{"name":"x","start_time":"2025-07-01T09:00:00Z","end_time":"2025-07-01T13:00:00Z","required_staff":-1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "outside event window",
			body:       `{"name":"First Aid Morning","start_time":"2025-07-01T09:00:00Z","end_time":"2025-07-01T13:00:00Z","required_staff":2}`,
			serviceErr: domain.ErrShiftOutsideEvent,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "unknown event",
			body:       `{"name":"First Aid Morning","start_time":"2025-07-01T09:00:00Z","end_time":"2025-07-01T13:00:00Z","required_staff":2}`,
			serviceErr: domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "service failure",
			body:       `{"name":"First Aid Morning","start_time":"2025-07-01T09:00:00Z","end_time":"2025-07-01T13:00:00Z","required_staff":2}`,
			serviceErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeShiftService{createErr: tt.serviceErr}
			ctrl := NewShiftController(testLogger, svc)

			req := authedRequest(http.MethodPost, "/events/ev-1/shifts", []byte(tt.body))
			req.SetPathValue("eventID", "ev-1")
			rec := httptest.NewRecorder()

			ctrl.CreateShift(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				apiErr, ok := envelope["error"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, apiErr["code"])
				return
			}
			require.NotNil(t, svc.lastCreated)
			assert.Equal(t, "ev-1", svc.lastCreated.EventID)
			assert.Equal(t, domain.ShiftStatusOpen, svc.lastCreated.Status)
		})
	}
}

func TestShiftController_GetShiftByID(t *testing.T) {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	svc := &fakeShiftService{shiftByID: map[string]*domain.Shift{
		"sh-1": {ID: "sh-1", EventID: "ev-1", Name: "First Aid Morning", StartTime: start, EndTime: start.Add(4 * time.Hour), RequiredStaff: 2, Status: domain.ShiftStatusOpen},
	}}
	ctrl := NewShiftController(testLogger, svc)

	t.Run("found", func(t *testing.T) {
		req := authedRequest(http.MethodGet, "/shifts/sh-1", nil)
		req.SetPathValue("shiftID", "sh-1")
		rec := httptest.NewRecorder()

		ctrl.GetShiftByID(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		data, ok := envelope["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "sh-1", data["id"])
	})

	t.Run("not found", func(t *testing.T) {
		req := authedRequest(http.MethodGet, "/shifts/missing", nil)
		req.SetPathValue("shiftID", "missing")
		rec := httptest.NewRecorder()

		ctrl.GetShiftByID(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestShiftController_UpdateShift(t *testing.T) {
	body := `{"name":"First Aid Morning","start_time":"2025-07-01T08:00:00Z","end_time":"2025-07-01T12:00:00Z","required_staff":3,"status":"open"}`

	t.Run("updated", func(t *testing.T) {
		svc := &fakeShiftService{}
		ctrl := NewShiftController(testLogger, svc)

		req := authedRequest(http.MethodPut, "/shifts/sh-1", []byte(body))
		req.SetPathValue("shiftID", "sh-1")
		rec := httptest.NewRecorder()

		ctrl.UpdateShift(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.lastUpdated)
		assert.Equal(t, "sh-1", svc.lastUpdated.ID)
		assert.Equal(t, 3, svc.lastUpdated.RequiredStaff)
		assert.Empty(t, svc.lastUpdated.EventID)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := &fakeShiftService{}
		ctrl := NewShiftController(testLogger, svc)

		req := authedRequest(http.MethodPut, "/shifts/sh-1", []byte(`{"name":"x","status":"bogus"}`))
		req.SetPathValue("shiftID", "sh-1")
		rec := httptest.NewRecorder()

		ctrl.UpdateShift(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("moved outside event", func(t *testing.T) {
		svc := &fakeShiftService{updateErr: domain.ErrShiftOutsideEvent}
		ctrl := NewShiftController(testLogger, svc)

		req := authedRequest(http.MethodPut, "/shifts/sh-1", []byte(body))
		req.SetPathValue("shiftID", "sh-1")
		rec := httptest.NewRecorder()

		ctrl.UpdateShift(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		apiErr, ok := envelope["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "bad_request", apiErr["code"])
	})
}

func TestShiftController_DeleteShift(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &fakeShiftService{}
		ctrl := NewShiftController(testLogger, svc)

		req := authedRequest(http.MethodDelete, "/shifts/sh-1", nil)
		req.SetPathValue("shiftID", "sh-1")
		rec := httptest.NewRecorder()

		ctrl.DeleteShift(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "sh-1", svc.lastDeletedID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeShiftService{deleteErr: domain.ErrNotFound}
		ctrl := NewShiftController(testLogger, svc)

		req := authedRequest(http.MethodDelete, "/shifts/missing", nil)
		req.SetPathValue("shiftID", "missing")
		rec := httptest.NewRecorder()

		ctrl.DeleteShift(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
