package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"medcoverage/internal/delivery/http/helpers"
	"medcoverage/internal/domain"
)

// CreateAssignmentRequest is the request body for POST /shifts/{shiftID}/assignments.
type CreateAssignmentRequest struct {
	StaffID string `json:"staff_id"`
}

// Validate implements Validator.
func (c CreateAssignmentRequest) Validate() []string {
	var errs []string
	if c.StaffID == "" {
		errs = append(errs, "staff_id is required")
	}
	return errs
}

// AssignmentSuccessResponse is the success envelope for endpoints returning one assignment.
type AssignmentSuccessResponse struct {
	Data  *domain.StaffAssignment `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// AssignmentListSuccessResponse is the success envelope for endpoints returning a list of assignments.
type AssignmentListSuccessResponse struct {
	Data  []*domain.StaffAssignment `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

type AssignmentController struct {
	Logger  *slog.Logger
	Service domain.StaffAssignmentService
}

func NewAssignmentController(logger *slog.Logger, svc domain.StaffAssignmentService) *AssignmentController {
	return &AssignmentController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *AssignmentController) writeAssignmentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrStaffUnavailable), errors.Is(err, domain.ErrInvalidTransition):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// CreateAssignment godoc
// @Summary Assign a staff member to a shift
// @Description Assigns the staff member after checking that the shift window does not overlap any of their other active assignments. Back-to-back shifts are allowed.
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shiftID path string true "Shift ID"
// @Param assignment body CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} controllers.AssignmentSuccessResponse "data contains the created assignment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (staff member is not available)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shifts/{shiftID}/assignments [post]
func (c *AssignmentController) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	shiftID := r.PathValue("shiftID")
	if shiftID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing shiftID")
		return
	}
	var req CreateAssignmentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	assignment, err := c.Service.CreateAssignment(r.Context(), shiftID, req.StaffID)
	if err != nil {
		c.writeAssignmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, assignment)
}

// ListAssignmentsByShift godoc
// @Summary List assignments of a shift
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} controllers.AssignmentListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shifts/{shiftID}/assignments [get]
func (c *AssignmentController) ListAssignmentsByShift(w http.ResponseWriter, r *http.Request) {
	shiftID := r.PathValue("shiftID")
	if shiftID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing shiftID")
		return
	}
	assignments, err := c.Service.ListAssignmentsByShiftID(r.Context(), shiftID)
	if err != nil {
		c.writeAssignmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, assignments)
}

// ListAssignmentsByStaff godoc
// @Summary List assignments of a staff member
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param staffID path string true "Staff ID"
// @Success 200 {object} controllers.AssignmentListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff/{staffID}/assignments [get]
func (c *AssignmentController) ListAssignmentsByStaff(w http.ResponseWriter, r *http.Request) {
	staffID := r.PathValue("staffID")
	if staffID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing staffID")
		return
	}
	assignments, err := c.Service.ListAssignmentsByStaffID(r.Context(), staffID)
	if err != nil {
		c.writeAssignmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, assignments)
}

// CheckIn godoc
// @Summary Check in for an assignment
// @Description Moves a scheduled assignment to checked_in and records the check-in time.
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} controllers.AssignmentSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not in a state that allows check-in)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /assignments/{assignmentID}/check-in [post]
func (c *AssignmentController) CheckIn(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.PathValue("assignmentID")
	if assignmentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing assignmentID")
		return
	}
	assignment, err := c.Service.CheckIn(r.Context(), assignmentID)
	if err != nil {
		c.writeAssignmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, assignment)
}

// CheckOut godoc
// @Summary Check out of an assignment
// @Description Moves a checked_in assignment to checked_out and records the check-out time.
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} controllers.AssignmentSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not checked in)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /assignments/{assignmentID}/check-out [post]
func (c *AssignmentController) CheckOut(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.PathValue("assignmentID")
	if assignmentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing assignmentID")
		return
	}
	assignment, err := c.Service.CheckOut(r.Context(), assignmentID)
	if err != nil {
		c.writeAssignmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, assignment)
}

// CancelAssignment godoc
// @Summary Cancel an assignment
// @Description Cancels a scheduled or checked_in assignment. Cancelling may reopen a previously full shift.
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} controllers.AssignmentSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already checked out or cancelled)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /assignments/{assignmentID}/cancel [post]
func (c *AssignmentController) CancelAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.PathValue("assignmentID")
	if assignmentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing assignmentID")
		return
	}
	assignment, err := c.Service.CancelAssignment(r.Context(), assignmentID)
	if err != nil {
		c.writeAssignmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, assignment)
}
