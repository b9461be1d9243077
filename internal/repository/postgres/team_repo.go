package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"techfestbackend/internal/domain"
)

type teamRegistrationRepository struct {
	DB *sql.DB
}

func NewTeamRegistrationRepository(db *sql.DB) domain.TeamRegistrationRepository {
	return &teamRegistrationRepository{DB: db}
}

func (r *teamRegistrationRepository) Create(ctx context.Context, reg *domain.TeamRegistration) error {
	query := `
		INSERT INTO team_registrations
			(registration_id, team_name, contact_email, contact_first_name, contact_last_name, contact_phone, member_count, agreed_to_terms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		reg.RegistrationID, reg.TeamName, reg.ContactEmail, reg.ContactFirstName,
		reg.ContactLastName, reg.ContactPhone, reg.MemberCount, reg.AgreedToTerms,
		reg.CreatedAt,
	).Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "team_registrations_registration_id_key" {
				return domain.ErrAllocationConflict
			}
			return domain.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func (r *teamRegistrationRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*domain.TeamRegistration, error) {
	query := `
		SELECT id, registration_id, team_name, contact_email, contact_first_name, contact_last_name, contact_phone, member_count, agreed_to_terms, created_at
		FROM team_registrations
		WHERE registration_id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, registrationID))
}

func (r *teamRegistrationRepository) GetByContactEmail(ctx context.Context, email string) (*domain.TeamRegistration, error) {
	query := `
		SELECT id, registration_id, team_name, contact_email, contact_first_name, contact_last_name, contact_phone, member_count, agreed_to_terms, created_at
		FROM team_registrations
		WHERE contact_email = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *teamRegistrationRepository) scanOne(row *sql.Row) (*domain.TeamRegistration, error) {
	reg := &domain.TeamRegistration{}
	err := row.Scan(
		&reg.ID, &reg.RegistrationID, &reg.TeamName, &reg.ContactEmail,
		&reg.ContactFirstName, &reg.ContactLastName, &reg.ContactPhone,
		&reg.MemberCount, &reg.AgreedToTerms, &reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}
