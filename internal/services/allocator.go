package services

import (
	"context"
	"fmt"

	"techfestbackend/internal/domain"
)

type allocator struct {
	sequenceRepo domain.SequenceRepository
	prefixes     map[string]string
}

// NewAllocator creates an Allocator that numbers each scope from its own
// counter and formats identifiers as <prefix>-<6-digit zero-padded sequence>.
// prefixes maps counter scope to identifier prefix (e.g. "registration" ->
// "BTF25").
func NewAllocator(sequenceRepo domain.SequenceRepository, prefixes map[string]string) domain.Allocator {
	return &allocator{
		sequenceRepo: sequenceRepo,
		prefixes:     prefixes,
	}
}

// Next issues the next identifier for the scope. Uniqueness comes from the
// sequence repository's atomic increment; this layer only formats. Sequences
// past 999999 widen the numeric field rather than wrap.
func (a *allocator) Next(ctx context.Context, scope string) (string, error) {
	prefix, ok := a.prefixes[scope]
	if !ok {
		return "", fmt.Errorf("no identifier prefix configured for scope %q", scope)
	}
	seq, err := a.sequenceRepo.Next(ctx, scope)
	if err != nil {
		return "", fmt.Errorf("next sequence for scope %q: %w", scope, err)
	}
	return fmt.Sprintf("%s-%06d", prefix, seq), nil
}
