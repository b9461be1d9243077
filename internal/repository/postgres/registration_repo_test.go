package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"techfestbackend/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	baseReg := func() *domain.Registration {
		return &domain.Registration{
			RegistrationID:   "BTF25-000001",
			Email:            "ada@example.com",
			FirstName:        "Ada",
			LastName:         "Lovelace",
			Phone:            "123",
			AffiliationType:  domain.AffiliationUniversity,
			InstitutionName:  "BITS",
			InterestedEvents: []string{"robotics", "hackathon"},
			AgreedToTerms:    true,
			CreatedAt:        now,
		}
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success returns generated id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WithArgs("BTF25-000001", "ada@example.com", "Ada", "Lovelace", "123",
						domain.AffiliationUniversity, "BITS", sqlmock.AnyArg(), true, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("reg-uuid-1"))
			},
		},
		{
			name: "duplicate email unique violation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "registrations_email_key"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateRegistration,
		},
		{
			name: "registration id unique violation is an allocation conflict",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "registrations_registration_id_key"})
			},
			wantErr: true,
			errIs:   domain.ErrAllocationConflict,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			reg := baseReg()
			err = repo.Create(ctx, reg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, "reg-uuid-1", reg.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_GetByRegistrationID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	columns := []string{
		"id", "registration_id", "email", "first_name", "last_name", "phone",
		"affiliation_type", "institution_name", "interested_events", "agreed_to_terms", "created_at",
	}

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM registrations`).
			WithArgs("BTF25-000042").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				"reg-uuid-1", "BTF25-000042", "ada@example.com", "Ada", "Lovelace", "123",
				domain.AffiliationUniversity, "BITS", "{robotics,hackathon}", true, now,
			))

		repo := NewRegistrationRepository(db)
		reg, err := repo.GetByRegistrationID(ctx, "BTF25-000042")
		require.NoError(t, err)
		require.Equal(t, "BTF25-000042", reg.RegistrationID)
		require.Equal(t, "ada@example.com", reg.Email)
		require.Equal(t, []string{"robotics", "hackathon"}, reg.InterestedEvents)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM registrations`).
			WithArgs("BTF25-999999").
			WillReturnError(sql.ErrNoRows)

		repo := NewRegistrationRepository(db)
		_, err = repo.GetByRegistrationID(ctx, "BTF25-999999")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRegistrationRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM registrations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT (.+) FROM registrations`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "registration_id", "email", "first_name", "last_name", "phone",
			"affiliation_type", "institution_name", "interested_events", "agreed_to_terms", "created_at",
		}).
			AddRow("r2", "BTF25-000002", "b@example.com", "B", "Bee", "2", domain.AffiliationSchool, "S", "{}", true, now).
			AddRow("r1", "BTF25-000001", "a@example.com", "A", "Aye", "1", domain.AffiliationCompany, "C", "{}", true, now))

	repo := NewRegistrationRepository(db)
	regs, total, err := repo.List(ctx, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, regs, 2)
	require.Equal(t, "BTF25-000002", regs[0].RegistrationID)
	require.NoError(t, mock.ExpectationsWereMet())
}
