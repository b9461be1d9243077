package services

import (
	"context"
	"fmt"
	"log"

	"techfestbackend/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendRegistrationConfirmation sends the attendee confirmation email using
// the "confirmation" template and the given data.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.ConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Confirmation %s sent to %s", data.RegistrationID, data.Email)
	return nil
}

// SendTeamConfirmation sends the team confirmation email using the
// "team_confirmation" template.
func (s *emailService) SendTeamConfirmation(ctx context.Context, data *domain.TeamConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("team confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("team_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render team_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send team confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Team confirmation %s sent to %s", data.RegistrationID, data.Email)
	return nil
}
