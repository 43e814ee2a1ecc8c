package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"medcoverage/internal/delivery/http/helpers"
	"medcoverage/internal/domain"
)

func validRole(role domain.StaffRole) bool {
	switch role {
	case domain.StaffRoleFirstAider, domain.StaffRoleTeamLeader, domain.StaffRoleParamedic,
		domain.StaffRoleDoctor, domain.StaffRoleVolunteer:
		return true
	}
	return false
}

// CreateStaffRequest is the request body for POST /staff.
type CreateStaffRequest struct {
	FirstName           string           `json:"first_name"`
	LastName            string           `json:"last_name"`
	Email               string           `json:"email"`
	Password            string           `json:"password"`
	Phone               *string          `json:"phone"`
	Role                domain.StaffRole `json:"role"`
	CertificationLevel  *string          `json:"certification_level"`
	CertificationExpiry *time.Time       `json:"certification_expiry"`
}

// Validate implements Validator.
func (c CreateStaffRequest) Validate() []string {
	var errs []string
	if c.FirstName == "" {
		errs = append(errs, "first_name is required")
	}
	if c.LastName == "" {
		errs = append(errs, "last_name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	if c.Password == "" {
		errs = append(errs, "password is required")
	} else if len(c.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	if !validRole(c.Role) {
		errs = append(errs, "role is not a valid staff role")
	}
	return errs
}

// UpdateStaffRequest is the request body for PUT /staff/{staffID}. Email and
// password are immutable through this endpoint.
type UpdateStaffRequest struct {
	FirstName           string           `json:"first_name"`
	LastName            string           `json:"last_name"`
	Phone               *string          `json:"phone"`
	Role                domain.StaffRole `json:"role"`
	CertificationLevel  *string          `json:"certification_level"`
	CertificationExpiry *time.Time       `json:"certification_expiry"`
	IsActive            bool             `json:"is_active"`
}

// Validate implements Validator.
func (u UpdateStaffRequest) Validate() []string {
	var errs []string
	if u.FirstName == "" {
		errs = append(errs, "first_name is required")
	}
	if u.LastName == "" {
		errs = append(errs, "last_name is required")
	}
	if !validRole(u.Role) {
		errs = append(errs, "role is not a valid staff role")
	}
	return errs
}

// StaffSuccessResponse is the success envelope for endpoints returning one staff member.
type StaffSuccessResponse struct {
	Data  *domain.Staff     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StaffListSuccessResponse is the success envelope for endpoints returning a list of staff.
type StaffListSuccessResponse struct {
	Data  []*domain.Staff   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type StaffController struct {
	Logger  *slog.Logger
	Service domain.StaffService
}

func NewStaffController(logger *slog.Logger, svc domain.StaffService) *StaffController {
	return &StaffController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *StaffController) writeStaffError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "staff member not found")
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// CreateStaff godoc
// @Summary Register a staff member
// @Description Create a new staff member. The password is stored hashed; the account starts active.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staff body CreateStaffRequest true "Staff data"
// @Success 201 {object} controllers.StaffSuccessResponse "data contains the created staff member"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff [post]
func (c *StaffController) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req CreateStaffRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	staff := &domain.Staff{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		Role:                req.Role,
		CertificationLevel:  req.CertificationLevel,
		CertificationExpiry: req.CertificationExpiry,
	}
	created, err := c.Service.CreateStaff(r.Context(), staff, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "invalid email") || strings.Contains(err.Error(), "password must be") {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.writeStaffError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// GetStaffByID godoc
// @Summary Get a staff member by ID
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param staffID path string true "Staff ID"
// @Success 200 {object} controllers.StaffSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff/{staffID} [get]
func (c *StaffController) GetStaffByID(w http.ResponseWriter, r *http.Request) {
	staffID := r.PathValue("staffID")
	if staffID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing staffID")
		return
	}
	staff, err := c.Service.GetStaffByID(r.Context(), staffID)
	if err != nil {
		c.writeStaffError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, staff)
}

// ListStaff godoc
// @Summary List all staff members
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.StaffListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff [get]
func (c *StaffController) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := c.Service.ListStaff(r.Context())
	if err != nil {
		c.writeStaffError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, staff)
}

// UpdateStaff godoc
// @Summary Update a staff member
// @Description Update profile fields. Email and password cannot be changed through this endpoint.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staffID path string true "Staff ID"
// @Param staff body UpdateStaffRequest true "Staff data"
// @Success 200 {object} controllers.StaffSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /staff/{staffID} [put]
func (c *StaffController) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID := r.PathValue("staffID")
	if staffID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing staffID")
		return
	}
	var req UpdateStaffRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	staff := &domain.Staff{
		ID:                  staffID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Phone:               req.Phone,
		Role:                req.Role,
		CertificationLevel:  req.CertificationLevel,
		CertificationExpiry: req.CertificationExpiry,
		IsActive:            req.IsActive,
	}
	updated, err := c.Service.UpdateStaff(r.Context(), staff)
	if err != nil {
		c.writeStaffError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}
