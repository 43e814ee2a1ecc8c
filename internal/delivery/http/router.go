package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"medcoverage/internal/delivery/http/controllers"
	"medcoverage/internal/delivery/http/middleware"
	"medcoverage/internal/domain"
)

// Controllers bundles the controllers the router wires up.
type Controllers struct {
	Event      *controllers.EventController
	Shift      *controllers.ShiftController
	Assignment *controllers.AssignmentController
	Staff      *controllers.StaffController
	Auth       *controllers.AuthController
}

// NewRouter initializes the HTTP router with all application routes.
// Everything except login and swagger requires a bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(verifier, logger)

	// Events
	mux.HandleFunc("POST /events", authed(c.Event.CreateEvent))
	mux.HandleFunc("GET /events", authed(c.Event.ListEvents))
	mux.HandleFunc("GET /events/upcoming", authed(c.Event.ListUpcomingEvents))
	mux.HandleFunc("GET /events/{eventID}", authed(c.Event.GetEventByID))
	mux.HandleFunc("PUT /events/{eventID}", authed(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", authed(c.Event.DeleteEvent))

	// Shifts
	mux.HandleFunc("POST /events/{eventID}/shifts", authed(c.Shift.CreateShift))
	mux.HandleFunc("GET /events/{eventID}/shifts", authed(c.Shift.ListShiftsByEvent))
	mux.HandleFunc("GET /shifts/upcoming", authed(c.Shift.ListUpcomingShifts))
	mux.HandleFunc("GET /shifts/{shiftID}", authed(c.Shift.GetShiftByID))
	mux.HandleFunc("PUT /shifts/{shiftID}", authed(c.Shift.UpdateShift))
	mux.HandleFunc("DELETE /shifts/{shiftID}", authed(c.Shift.DeleteShift))

	// Assignments
	mux.HandleFunc("POST /shifts/{shiftID}/assignments", authed(c.Assignment.CreateAssignment))
	mux.HandleFunc("GET /shifts/{shiftID}/assignments", authed(c.Assignment.ListAssignmentsByShift))
	mux.HandleFunc("GET /staff/{staffID}/assignments", authed(c.Assignment.ListAssignmentsByStaff))
	mux.HandleFunc("POST /assignments/{assignmentID}/check-in", authed(c.Assignment.CheckIn))
	mux.HandleFunc("POST /assignments/{assignmentID}/check-out", authed(c.Assignment.CheckOut))
	mux.HandleFunc("POST /assignments/{assignmentID}/cancel", authed(c.Assignment.CancelAssignment))

	// Staff
	mux.HandleFunc("POST /staff", authed(c.Staff.CreateStaff))
	mux.HandleFunc("GET /staff", authed(c.Staff.ListStaff))
	mux.HandleFunc("GET /staff/{staffID}", authed(c.Staff.GetStaffByID))
	mux.HandleFunc("PUT /staff/{staffID}", authed(c.Staff.UpdateStaff))

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
