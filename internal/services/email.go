package services

import (
	"context"
	"fmt"
	"log"

	"medcoverage/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendEventPlannedNotification sends the planning update email for an event
// using the "event_planned" template.
func (s *emailService) SendEventPlannedNotification(ctx context.Context, data *domain.EventPlannedEmailData) error {
	if data == nil {
		return fmt.Errorf("event planned data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("event_planned", data)
	if err != nil {
		return fmt.Errorf("failed to render event_planned template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send event planned email: %w", err)
	}
	log.Printf("[EMAIL] Event planned notification sent to %s", data.Email)
	return nil
}

// SendEventInvoiceNotification sends the invoice notice email using the
// "event_invoice" template.
func (s *emailService) SendEventInvoiceNotification(ctx context.Context, data *domain.EventInvoiceEmailData) error {
	if data == nil {
		return fmt.Errorf("event invoice data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("event_invoice", data)
	if err != nil {
		return fmt.Errorf("failed to render event_invoice template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send event invoice email: %w", err)
	}
	log.Printf("[EMAIL] Event invoice notification sent to %s", data.Email)
	return nil
}

// SendShiftAssignmentNotification notifies a staff member about a new shift
// assignment using the "shift_assignment" template.
func (s *emailService) SendShiftAssignmentNotification(ctx context.Context, data *domain.ShiftAssignmentEmailData) error {
	if data == nil {
		return fmt.Errorf("shift assignment data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("shift_assignment", data)
	if err != nil {
		return fmt.Errorf("failed to render shift_assignment template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send shift assignment email: %w", err)
	}
	log.Printf("[EMAIL] Shift assignment notification sent to %s", data.Email)
	return nil
}
