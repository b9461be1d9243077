package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"techfestbackend/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations
			(registration_id, email, first_name, last_name, phone, affiliation_type, institution_name, interested_events, agreed_to_terms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		reg.RegistrationID, reg.Email, reg.FirstName, reg.LastName, reg.Phone,
		reg.AffiliationType, reg.InstitutionName, pq.Array(reg.InterestedEvents),
		reg.AgreedToTerms, reg.CreatedAt,
	).Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Which unique constraint fired decides the sentinel: a reused
			// registration_id is a transient allocation race, a reused email
			// is a real duplicate.
			if pqErr.Constraint == "registrations_registration_id_key" {
				return domain.ErrAllocationConflict
			}
			return domain.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func (r *registrationRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Registration, error) {
	query := `
		SELECT id, registration_id, email, first_name, last_name, phone, affiliation_type, institution_name, interested_events, agreed_to_terms, created_at
		FROM registrations
		WHERE registration_id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, registrationID))
}

func (r *registrationRepository) GetByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	query := `
		SELECT id, registration_id, email, first_name, last_name, phone, affiliation_type, institution_name, interested_events, agreed_to_terms, created_at
		FROM registrations
		WHERE email = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *registrationRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, registration_id, email, first_name, last_name, phone, affiliation_type, institution_name, interested_events, agreed_to_terms, created_at
		FROM registrations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var regs []*domain.Registration
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(
			&reg.ID, &reg.RegistrationID, &reg.Email, &reg.FirstName, &reg.LastName,
			&reg.Phone, &reg.AffiliationType, &reg.InstitutionName,
			pq.Array(&reg.InterestedEvents), &reg.AgreedToTerms, &reg.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, total, nil
}

func (r *registrationRepository) scanOne(row *sql.Row) (*domain.Registration, error) {
	reg := &domain.Registration{}
	err := row.Scan(
		&reg.ID, &reg.RegistrationID, &reg.Email, &reg.FirstName, &reg.LastName,
		&reg.Phone, &reg.AffiliationType, &reg.InstitutionName,
		pq.Array(&reg.InterestedEvents), &reg.AgreedToTerms, &reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}
