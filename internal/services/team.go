package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"techfestbackend/internal/domain"
	"techfestbackend/internal/metrics"
)

const (
	minTeamMembers = 1
	maxTeamMembers = 6
)

type teamService struct {
	repo         domain.TeamRegistrationRepository
	allocator    domain.Allocator
	emailService domain.EmailService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewTeamService creates the team registration ledger. It shares the
// attendee ledger's allocator but numbers from the independent team scope.
func NewTeamService(
	repo domain.TeamRegistrationRepository,
	alloc domain.Allocator,
	emailService domain.EmailService,
	m *metrics.Metrics,
	logger *slog.Logger,
) domain.TeamService {
	return &teamService{
		repo:         repo,
		allocator:    alloc,
		emailService: emailService,
		metrics:      m,
		logger:       logger,
	}
}

func (s *teamService) Register(ctx context.Context, input domain.TeamRegistrationInput) (*domain.TeamRegistration, error) {
	normalizeTeamInput(&input)
	if err := validateTeamInput(input); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByContactEmail(ctx, input.ContactEmail); err == nil {
		s.metrics.IncDuplicateRejected()
		return nil, domain.ErrDuplicateRegistration
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing team registration: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		registrationID, err := s.allocator.Next(ctx, domain.ScopeTeam)
		if err != nil {
			return nil, fmt.Errorf("allocate team registration id: %w", err)
		}
		reg := domain.NewTeamRegistration(input, registrationID, time.Now().UTC())
		err = s.repo.Create(ctx, reg)
		if err == nil {
			s.metrics.IncRegistrationCreated(domain.ScopeTeam)
			if s.emailService != nil {
				go s.sendConfirmation(reg)
			}
			return reg, nil
		}
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			s.metrics.IncDuplicateRejected()
			return nil, domain.ErrDuplicateRegistration
		}
		if errors.Is(err, domain.ErrAllocationConflict) {
			s.metrics.IncAllocationConflict(domain.ScopeTeam)
			s.logger.WarnContext(ctx, "team registration id conflict, reallocating",
				"registration_id", registrationID, "attempt", attempt+1)
			lastErr = err
			continue
		}
		return nil, fmt.Errorf("create team registration: %w", err)
	}
	return nil, fmt.Errorf("allocate team registration id after %d attempts: %w", maxAllocationAttempts, lastErr)
}

func (s *teamService) sendConfirmation(reg *domain.TeamRegistration) {
	data := &domain.TeamConfirmationEmailData{
		Email:          reg.ContactEmail,
		TeamName:       reg.TeamName,
		ContactName:    reg.ContactFirstName,
		RegistrationID: reg.RegistrationID,
	}
	if err := s.emailService.SendTeamConfirmation(context.Background(), data); err != nil {
		s.metrics.IncConfirmationFailed()
		s.logger.Error("team confirmation email failed",
			"registration_id", reg.RegistrationID, "err", err)
	}
}

func (s *teamService) Lookup(ctx context.Context, registrationID string) (*domain.TeamRegistration, error) {
	reg, err := s.repo.GetByRegistrationID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get team registration: %w", err)
	}
	return reg, nil
}

func normalizeTeamInput(input *domain.TeamRegistrationInput) {
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.ContactEmail = strings.ToLower(strings.TrimSpace(input.ContactEmail))
	input.ContactFirstName = strings.TrimSpace(input.ContactFirstName)
	input.ContactLastName = strings.TrimSpace(input.ContactLastName)
	input.ContactPhone = strings.TrimSpace(input.ContactPhone)
}

func validateTeamInput(input domain.TeamRegistrationInput) error {
	var fields []domain.FieldError
	if input.TeamName == "" {
		fields = append(fields, domain.FieldError{Field: "team_name", Message: "is required"})
	}
	if input.ContactFirstName == "" {
		fields = append(fields, domain.FieldError{Field: "contact_first_name", Message: "is required"})
	}
	if input.ContactLastName == "" {
		fields = append(fields, domain.FieldError{Field: "contact_last_name", Message: "is required"})
	}
	if input.ContactPhone == "" {
		fields = append(fields, domain.FieldError{Field: "contact_phone", Message: "is required"})
	}
	if input.ContactEmail == "" {
		fields = append(fields, domain.FieldError{Field: "contact_email", Message: "is required"})
	} else if !emailRegexp.MatchString(input.ContactEmail) {
		fields = append(fields, domain.FieldError{Field: "contact_email", Message: "invalid email format"})
	}
	if input.MemberCount < minTeamMembers || input.MemberCount > maxTeamMembers {
		fields = append(fields, domain.FieldError{Field: "member_count", Message: fmt.Sprintf("must be between %d and %d", minTeamMembers, maxTeamMembers)})
	}
	if !input.AgreedToTerms {
		fields = append(fields, domain.FieldError{Field: "agreed_to_terms", Message: "must be accepted"})
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
