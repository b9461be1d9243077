package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ConfirmationEmailData holds data for the registration confirmation email.
type ConfirmationEmailData struct {
	Email          string
	FirstName      string
	RegistrationID string
}

// TeamConfirmationEmailData holds data for the team registration confirmation email.
type TeamConfirmationEmailData struct {
	Email          string
	TeamName       string
	ContactName    string
	RegistrationID string
}

// EmailService defines the contract for sending domain-level emails.
// All sends are best-effort relative to the ledger: a failure here is logged
// by the caller and never reverses a stored registration.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *ConfirmationEmailData) error
	SendTeamConfirmation(ctx context.Context, data *TeamConfirmationEmailData) error
}
