package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"techfestbackend/internal/domain"
)

const adminTokenExpiry = 12 * time.Hour

type adminService struct {
	adminEmail       string
	passcodeHash     string
	passcodeVerifier domain.PasscodeVerifier
	tokenIssuer      domain.TokenIssuer
	registrationRepo domain.RegistrationRepository
	sequenceRepo     domain.SequenceRepository
}

// NewAdminService creates the service behind the admin API. adminEmail and
// passcodeHash come from configuration; there is a single admin identity.
func NewAdminService(
	adminEmail, passcodeHash string,
	passcodeVerifier domain.PasscodeVerifier,
	tokenIssuer domain.TokenIssuer,
	registrationRepo domain.RegistrationRepository,
	sequenceRepo domain.SequenceRepository,
) domain.AdminService {
	return &adminService{
		adminEmail:       strings.ToLower(strings.TrimSpace(adminEmail)),
		passcodeHash:     passcodeHash,
		passcodeVerifier: passcodeVerifier,
		tokenIssuer:      tokenIssuer,
		registrationRepo: registrationRepo,
		sequenceRepo:     sequenceRepo,
	}
}

func (s *adminService) Login(ctx context.Context, email, passcode string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.adminEmail == "" || s.passcodeHash == "" {
		return "", domain.ErrInvalidCredentials
	}
	if email != s.adminEmail {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.passcodeVerifier.Compare(s.passcodeHash, passcode); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue("admin", email, adminTokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *adminService) ListRegistrations(ctx context.Context, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	regs, total, err := s.registrationRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}
	return regs, total, nil
}

func (s *adminService) Counters(ctx context.Context) ([]domain.CounterStatus, error) {
	scopes := []string{domain.ScopeRegistration, domain.ScopeTeam}
	statuses := make([]domain.CounterStatus, 0, len(scopes))
	for _, scope := range scopes {
		value, err := s.sequenceRepo.Current(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("read counter %q: %w", scope, err)
		}
		statuses = append(statuses, domain.CounterStatus{Scope: scope, Value: value})
	}
	return statuses, nil
}
