package domain

import (
	"context"
	"time"
)

// TeamRegistration is a team's festival registration (hackathon / competition
// entry). Same ledger semantics as attendee registrations, numbered from its
// own counter scope.
// swagger:model TeamRegistration
type TeamRegistration struct {
	ID               string    `json:"id"`
	RegistrationID   string    `json:"registration_id"`
	TeamName         string    `json:"team_name"`
	ContactEmail     string    `json:"contact_email"`
	ContactFirstName string    `json:"contact_first_name"`
	ContactLastName  string    `json:"contact_last_name"`
	ContactPhone     string    `json:"contact_phone"`
	MemberCount      int       `json:"member_count"`
	AgreedToTerms    bool      `json:"agreed_to_terms"`
	CreatedAt        time.Time `json:"created_at"`
}

// TeamRegistrationInput holds the candidate fields of a team registration.
type TeamRegistrationInput struct {
	TeamName         string
	ContactEmail     string
	ContactFirstName string
	ContactLastName  string
	ContactPhone     string
	MemberCount      int
	AgreedToTerms    bool
}

// NewTeamRegistration builds a TeamRegistration from validated input and an
// allocated identifier. ID is set by the repository on create.
func NewTeamRegistration(input TeamRegistrationInput, registrationID string, createdAt time.Time) *TeamRegistration {
	return &TeamRegistration{
		RegistrationID:   registrationID,
		TeamName:         input.TeamName,
		ContactEmail:     input.ContactEmail,
		ContactFirstName: input.ContactFirstName,
		ContactLastName:  input.ContactLastName,
		ContactPhone:     input.ContactPhone,
		MemberCount:      input.MemberCount,
		AgreedToTerms:    input.AgreedToTerms,
		CreatedAt:        createdAt,
	}
}

// TeamRegistrationRepository defines storage operations for team
// registrations. Unique constraints on contact_email and registration_id map
// to ErrDuplicateRegistration and ErrAllocationConflict respectively.
type TeamRegistrationRepository interface {
	Create(ctx context.Context, reg *TeamRegistration) error
	GetByRegistrationID(ctx context.Context, registrationID string) (*TeamRegistration, error)
	GetByContactEmail(ctx context.Context, email string) (*TeamRegistration, error)
}

// TeamService defines the team registration ledger operations.
type TeamService interface {
	Register(ctx context.Context, input TeamRegistrationInput) (*TeamRegistration, error)
	Lookup(ctx context.Context, registrationID string) (*TeamRegistration, error)
}
