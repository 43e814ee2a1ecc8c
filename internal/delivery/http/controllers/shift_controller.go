package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"medcoverage/internal/delivery/http/helpers"
	"medcoverage/internal/domain"
)

// CreateShiftRequest is the request body for POST /events/{eventID}/shifts.
type CreateShiftRequest struct {
	Name          string    `json:"name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	RequiredStaff int       `json:"required_staff"`
	Description   *string   `json:"description"`
}

// Validate implements Validator.
func (c CreateShiftRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.StartTime.IsZero() {
		errs = append(errs, "start_time is required")
	}
	if c.EndTime.IsZero() {
		errs = append(errs, "end_time is required")
	}
	if c.RequiredStaff < 0 {
		errs = append(errs, "required_staff must not be negative")
	}
	return errs
}

// UpdateShiftRequest is the request body for PUT /shifts/{shiftID}.
type UpdateShiftRequest struct {
	Name          string             `json:"name"`
	StartTime     time.Time          `json:"start_time"`
	EndTime       time.Time          `json:"end_time"`
	RequiredStaff int                `json:"required_staff"`
	Description   *string            `json:"description"`
	Status        domain.ShiftStatus `json:"status"`
}

// Validate implements Validator.
func (u UpdateShiftRequest) Validate() []string {
	var errs []string
	if u.Name == "" {
		errs = append(errs, "name is required")
	}
	switch u.Status {
	case domain.ShiftStatusOpen, domain.ShiftStatusFull, domain.ShiftStatusInProgress,
		domain.ShiftStatusCompleted, domain.ShiftStatusCancelled:
	default:
		errs = append(errs, "status is not a valid shift status")
	}
	return errs
}

// ShiftSuccessResponse is the success envelope for endpoints returning one shift.
type ShiftSuccessResponse struct {
	Data  *domain.Shift     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ShiftListSuccessResponse is the success envelope for endpoints returning a list of shifts.
type ShiftListSuccessResponse struct {
	Data  []*domain.Shift   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ShiftController struct {
	Logger  *slog.Logger
	Service domain.ShiftService
}

func NewShiftController(logger *slog.Logger, svc domain.ShiftService) *ShiftController {
	return &ShiftController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *ShiftController) writeShiftError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidInterval), errors.Is(err, domain.ErrShiftOutsideEvent):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// CreateShift godoc
// @Summary Create a shift for an event
// @Description Create a shift. The shift window must lie within the event timeframe.
// @Tags shifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param shift body CreateShiftRequest true "Shift data"
// @Success 201 {object} controllers.ShiftSuccessResponse "data contains the created shift"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/shifts [post]
func (c *ShiftController) CreateShift(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req CreateShiftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	shift := domain.NewShift(eventID, req.Name, req.StartTime, req.EndTime, req.RequiredStaff)
	shift.Description = req.Description

	created, err := c.Service.CreateShift(r.Context(), shift)
	if err != nil {
		c.writeShiftError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListShiftsByEvent godoc
// @Summary List shifts of an event
// @Tags shifts
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.ShiftListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/shifts [get]
func (c *ShiftController) ListShiftsByEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	shifts, err := c.Service.ListShiftsByEventID(r.Context(), eventID)
	if err != nil {
		c.writeShiftError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shifts)
}

// ListUpcomingShifts godoc
// @Summary List upcoming shifts
// @Description Returns shifts that have not started yet, excluding cancelled ones.
// @Tags shifts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ShiftListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shifts/upcoming [get]
func (c *ShiftController) ListUpcomingShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := c.Service.ListUpcomingShifts(r.Context())
	if err != nil {
		c.writeShiftError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shifts)
}

// GetShiftByID godoc
// @Summary Get a shift by ID
// @Tags shifts
// @Produce json
// @Security BearerAuth
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} controllers.ShiftSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shifts/{shiftID} [get]
func (c *ShiftController) GetShiftByID(w http.ResponseWriter, r *http.Request) {
	shiftID := r.PathValue("shiftID")
	if shiftID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing shiftID")
		return
	}
	shift, err := c.Service.GetShiftByID(r.Context(), shiftID)
	if err != nil {
		c.writeShiftError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shift)
}

// UpdateShift godoc
// @Summary Update a shift
// @Description Update the shift. The window must stay within the owning event; the event binding itself cannot change.
// @Tags shifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shiftID path string true "Shift ID"
// @Param shift body UpdateShiftRequest true "Shift data"
// @Success 200 {object} controllers.ShiftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shifts/{shiftID} [put]
func (c *ShiftController) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shiftID := r.PathValue("shiftID")
	if shiftID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing shiftID")
		return
	}
	var req UpdateShiftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	shift := &domain.Shift{
		ID:            shiftID,
		Name:          req.Name,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		RequiredStaff: req.RequiredStaff,
		Description:   req.Description,
		Status:        req.Status,
	}
	updated, err := c.Service.UpdateShift(r.Context(), shift)
	if err != nil {
		c.writeShiftError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteShift godoc
// @Summary Delete a shift
// @Tags shifts
// @Produce json
// @Security BearerAuth
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shifts/{shiftID} [delete]
func (c *ShiftController) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftID := r.PathValue("shiftID")
	if shiftID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing shiftID")
		return
	}
	if err := c.Service.DeleteShift(r.Context(), shiftID); err != nil {
		c.writeShiftError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": shiftID})
}
