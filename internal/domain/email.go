package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventPlannedEmailData holds data for the event planned/confirmation email.
type EventPlannedEmailData struct {
	Email         string
	ContactPerson string
	EventName     string
	Location      string
	StartDate     time.Time
	EndDate       time.Time
}

// EventInvoiceEmailData holds data for the invoice notice email.
type EventInvoiceEmailData struct {
	Email         string
	ContactPerson string
	EventName     string
	Location      string
	StartDate     time.Time
	EndDate       time.Time
}

// ShiftAssignmentEmailData holds data for the shift assignment email sent to staff.
type ShiftAssignmentEmailData struct {
	Email     string
	StaffName string
	EventName string
	Location  string
	ShiftName string
	StartTime time.Time
	EndTime   time.Time
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventPlannedNotification(ctx context.Context, data *EventPlannedEmailData) error
	SendEventInvoiceNotification(ctx context.Context, data *EventInvoiceEmailData) error
	SendShiftAssignmentNotification(ctx context.Context, data *ShiftAssignmentEmailData) error
}
