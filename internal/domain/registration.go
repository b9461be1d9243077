package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for registration operations.
var (
	ErrNotFound              = errors.New("not found")
	ErrDuplicateRegistration = errors.New("email already registered")
	ErrAllocationConflict    = errors.New("registration id already issued")
)

// Affiliation types accepted on a registration.
const (
	AffiliationCompany    = "company"
	AffiliationUniversity = "university"
	AffiliationSchool     = "school"
)

// FieldError describes a single invalid input field.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every invalid field of a rejected input, not just
// the first one found.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// Registration is an attendee's festival registration. Records are
// append-only: once created they are never updated or deleted.
// swagger:model Registration
type Registration struct {
	ID               string    `json:"id"`
	RegistrationID   string    `json:"registration_id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            string    `json:"phone"`
	AffiliationType  string    `json:"affiliation_type"`
	InstitutionName  string    `json:"institution_name"`
	InterestedEvents []string  `json:"interested_events"`
	AgreedToTerms    bool      `json:"agreed_to_terms"`
	CreatedAt        time.Time `json:"created_at"`
}

// RegistrationInput holds the candidate fields of a registration before
// validation and identifier allocation.
type RegistrationInput struct {
	Email            string
	FirstName        string
	LastName         string
	Phone            string
	AffiliationType  string
	InstitutionName  string
	InterestedEvents []string
	AgreedToTerms    bool
}

// NewRegistration builds a Registration from validated input and an
// allocated identifier. ID is set by the repository on create.
func NewRegistration(input RegistrationInput, registrationID string, createdAt time.Time) *Registration {
	return &Registration{
		RegistrationID:   registrationID,
		Email:            input.Email,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Phone:            input.Phone,
		AffiliationType:  input.AffiliationType,
		InstitutionName:  input.InstitutionName,
		InterestedEvents: input.InterestedEvents,
		AgreedToTerms:    input.AgreedToTerms,
		CreatedAt:        createdAt,
	}
}

// RegistrationRepository defines storage operations for attendee registrations.
//
// Create must rely on storage-level unique constraints: a second writer with
// the same email gets ErrDuplicateRegistration, a reused registration_id gets
// ErrAllocationConflict. The insert is all-or-nothing; no partial record is
// ever observable.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByRegistrationID(ctx context.Context, registrationID string) (*Registration, error)
	GetByEmail(ctx context.Context, email string) (*Registration, error)
	List(ctx context.Context, params PaginationParams) ([]*Registration, int, error)
}

// RegistrationService defines the registration ledger operations.
type RegistrationService interface {
	// Register validates the input, rejects duplicate emails, allocates the
	// next registration identifier, and durably stores the record before
	// returning it. The confirmation email is sent out-of-band and never
	// affects the result.
	Register(ctx context.Context, input RegistrationInput) (*Registration, error)
	// Lookup returns the registration with the given identifier, or
	// ErrNotFound. The identifier is looked up as-is.
	Lookup(ctx context.Context, registrationID string) (*Registration, error)
}
