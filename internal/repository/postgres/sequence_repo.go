package postgres

import (
	"context"
	"database/sql"
	"errors"

	"techfestbackend/internal/domain"
)

type sequenceRepository struct {
	DB *sql.DB
}

func NewSequenceRepository(db *sql.DB) domain.SequenceRepository {
	return &sequenceRepository{DB: db}
}

// Next increments and returns the counter for the scope in a single
// statement. The upsert makes the read-modify-write indivisible, so two
// concurrent callers always observe distinct values, regardless of how many
// server processes share the database.
func (r *sequenceRepository) Next(ctx context.Context, scope string) (int64, error) {
	query := `
		INSERT INTO sequence_counters (scope, value)
		VALUES ($1, 1)
		ON CONFLICT (scope) DO UPDATE
		SET value = sequence_counters.value + 1
		RETURNING value
	`
	var value int64
	if err := r.DB.QueryRowContext(ctx, query, scope).Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}

func (r *sequenceRepository) Current(ctx context.Context, scope string) (int64, error) {
	query := `
		SELECT value FROM sequence_counters WHERE scope = $1
	`
	var value int64
	err := r.DB.QueryRowContext(ctx, query, scope).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return value, nil
}
