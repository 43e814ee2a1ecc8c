package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"medcoverage/config"
	_ "medcoverage/docs"
	"medcoverage/internal/adapters/auth"
	"medcoverage/internal/adapters/email"
	"medcoverage/internal/clock"
	httpdelivery "medcoverage/internal/delivery/http"
	"medcoverage/internal/delivery/http/controllers"
	"medcoverage/internal/delivery/http/middleware"
	"medcoverage/internal/repository/postgres"
	"medcoverage/internal/services"

	"golang.org/x/crypto/bcrypt"
)

const serviceTimeout = 5 * time.Second

// @title MedCoverage API
// @version 1.0
// @description Event medical coverage staffing and scheduling API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to reach database", "error", err)
		os.Exit(1)
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	shiftRepo := postgres.NewShiftRepository(db)
	assignmentRepo := postgres.NewStaffAssignmentRepository(db)
	staffRepo := postgres.NewStaffRepository(db)

	// Adapters
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	clk := clock.NewSystem()

	// Services
	emailService := services.NewEmailService(mailer, renderer)
	eventService := services.NewEventService(eventRepo, emailService, clk, logger, serviceTimeout)
	shiftService := services.NewShiftService(shiftRepo, eventRepo, clk, serviceTimeout)
	assignmentService := services.NewStaffAssignmentService(assignmentRepo, shiftRepo, eventRepo, staffRepo, emailService, clk, logger, serviceTimeout)
	staffService := services.NewStaffService(staffRepo, hasher, clk, serviceTimeout)
	authService := services.NewAuthService(staffRepo, hasher, issuer, cfg.JWTExpiry, serviceTimeout)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Event:      controllers.NewEventController(logger, eventService),
		Shift:      controllers.NewShiftController(logger, shiftService),
		Assignment: controllers.NewAssignmentController(logger, assignmentService),
		Staff:      controllers.NewStaffController(logger, staffService),
		Auth:       controllers.NewAuthController(logger, authService),
	}, verifier, logger)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSOrigins, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.Environment)
		srvErr <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("server stopped")
}
