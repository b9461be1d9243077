package domain

import "context"

// Counter scopes. Each registration kind numbers independently.
const (
	ScopeRegistration = "registration"
	ScopeTeam         = "team"
)

// SequenceRepository provides monotonic per-scope counters.
//
// Next must be an atomic increment-and-fetch in the underlying store: two
// concurrent calls for the same scope never observe the same value, even
// across processes. Application-level read-then-write is not a valid
// implementation.
type SequenceRepository interface {
	Next(ctx context.Context, scope string) (int64, error)
	// Current returns the last issued value for the scope, or 0 if the scope
	// has never issued.
	Current(ctx context.Context, scope string) (int64, error)
}

// Allocator produces never-before-issued, human-readable registration
// identifiers of the form <PREFIX>-<zero-padded sequence>.
type Allocator interface {
	Next(ctx context.Context, scope string) (string, error)
}
