package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned when an admin login fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(subject, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasscodeVerifier compares a stored passcode hash against a candidate.
type PasscodeVerifier interface {
	Compare(hash, passcode string) error
}

// CounterStatus is the current state of one sequence counter scope.
// swagger:model CounterStatus
type CounterStatus struct {
	Scope string `json:"scope"`
	Value int64  `json:"value"`
}

// AdminService defines the operations behind the admin API.
type AdminService interface {
	Login(ctx context.Context, email, passcode string) (token string, err error)
	ListRegistrations(ctx context.Context, params PaginationParams) ([]*Registration, int, error)
	Counters(ctx context.Context) ([]CounterStatus, error)
}
