package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"techfestbackend/internal/domain"
	"techfestbackend/internal/metrics"
)

// maxAllocationAttempts bounds the retry loop around identifier allocation.
// A unique violation on registration_id means the storage layer detected a
// race, not a real duplicate, so we allocate again.
const maxAllocationAttempts = 3

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var affiliationTypes = map[string]bool{
	domain.AffiliationCompany:    true,
	domain.AffiliationUniversity: true,
	domain.AffiliationSchool:     true,
}

type registrationService struct {
	repo         domain.RegistrationRepository
	allocator    domain.Allocator
	emailService domain.EmailService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewRegistrationService creates the attendee registration ledger.
func NewRegistrationService(
	repo domain.RegistrationRepository,
	alloc domain.Allocator,
	emailService domain.EmailService,
	m *metrics.Metrics,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		repo:         repo,
		allocator:    alloc,
		emailService: emailService,
		metrics:      m,
		logger:       logger,
	}
}

func (s *registrationService) Register(ctx context.Context, input domain.RegistrationInput) (*domain.Registration, error) {
	normalizeRegistrationInput(&input)
	if err := validateRegistrationInput(input); err != nil {
		return nil, err
	}

	// Fast-path duplicate check. The unique constraint on email is the
	// authoritative guard; this read just turns the common case into a clean
	// rejection before an identifier is allocated.
	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		s.metrics.IncDuplicateRejected()
		return nil, domain.ErrDuplicateRegistration
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	reg, err := s.allocateAndStore(ctx, input)
	if err != nil {
		return nil, err
	}
	s.metrics.IncRegistrationCreated(domain.ScopeRegistration)

	// Confirmation is fire-and-forget: the record is already durable and a
	// notifier failure must never affect the response.
	if s.emailService != nil {
		go s.sendConfirmation(reg)
	}
	return reg, nil
}

func (s *registrationService) allocateAndStore(ctx context.Context, input domain.RegistrationInput) (*domain.Registration, error) {
	var lastErr error
	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		registrationID, err := s.allocator.Next(ctx, domain.ScopeRegistration)
		if err != nil {
			return nil, fmt.Errorf("allocate registration id: %w", err)
		}
		reg := domain.NewRegistration(input, registrationID, time.Now().UTC())
		err = s.repo.Create(ctx, reg)
		if err == nil {
			return reg, nil
		}
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			// Lost the race to another submit with the same email.
			s.metrics.IncDuplicateRejected()
			return nil, domain.ErrDuplicateRegistration
		}
		if errors.Is(err, domain.ErrAllocationConflict) {
			s.metrics.IncAllocationConflict(domain.ScopeRegistration)
			s.logger.WarnContext(ctx, "registration id conflict, reallocating",
				"registration_id", registrationID, "attempt", attempt+1)
			lastErr = err
			continue
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return nil, fmt.Errorf("allocate registration id after %d attempts: %w", maxAllocationAttempts, lastErr)
}

func (s *registrationService) sendConfirmation(reg *domain.Registration) {
	data := &domain.ConfirmationEmailData{
		Email:          reg.Email,
		FirstName:      reg.FirstName,
		RegistrationID: reg.RegistrationID,
	}
	if err := s.emailService.SendRegistrationConfirmation(context.Background(), data); err != nil {
		s.metrics.IncConfirmationFailed()
		s.logger.Error("confirmation email failed",
			"registration_id", reg.RegistrationID, "err", err)
	}
}

func (s *registrationService) Lookup(ctx context.Context, registrationID string) (*domain.Registration, error) {
	reg, err := s.repo.GetByRegistrationID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}

func normalizeRegistrationInput(input *domain.RegistrationInput) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.AffiliationType = strings.ToLower(strings.TrimSpace(input.AffiliationType))
	input.InstitutionName = strings.TrimSpace(input.InstitutionName)
	input.InterestedEvents = normalizeTags(input.InterestedEvents)
}

// normalizeTags trims, lowercases, dedups, and sorts event tags. Insertion
// order carries no meaning.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func validateRegistrationInput(input domain.RegistrationInput) error {
	var fields []domain.FieldError
	if input.FirstName == "" {
		fields = append(fields, domain.FieldError{Field: "first_name", Message: "is required"})
	}
	if input.LastName == "" {
		fields = append(fields, domain.FieldError{Field: "last_name", Message: "is required"})
	}
	if input.Phone == "" {
		fields = append(fields, domain.FieldError{Field: "phone", Message: "is required"})
	}
	if input.Email == "" {
		fields = append(fields, domain.FieldError{Field: "email", Message: "is required"})
	} else if !emailRegexp.MatchString(input.Email) {
		fields = append(fields, domain.FieldError{Field: "email", Message: "invalid email format"})
	}
	if input.AffiliationType == "" {
		fields = append(fields, domain.FieldError{Field: "affiliation_type", Message: "is required"})
	} else if !affiliationTypes[input.AffiliationType] {
		fields = append(fields, domain.FieldError{Field: "affiliation_type", Message: "must be one of company, university, school"})
	}
	if input.InstitutionName == "" {
		fields = append(fields, domain.FieldError{Field: "institution_name", Message: "is required"})
	}
	if !input.AgreedToTerms {
		fields = append(fields, domain.FieldError{Field: "agreed_to_terms", Message: "must be accepted"})
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
