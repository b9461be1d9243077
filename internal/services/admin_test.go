package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"techfestbackend/internal/domain"
)

type fakePasscodeVerifier struct {
	valid string
}

func (f *fakePasscodeVerifier) Compare(hash, passcode string) error {
	if passcode == f.valid {
		return nil
	}
	return errors.New("mismatch")
}

type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(subject, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + email, nil
}

func TestAdminService_Login(t *testing.T) {
	seq := newMockSequenceRepository()
	repo := newMockRegistrationRepository()

	tests := []struct {
		name      string
		email     string
		passcode  string
		wantToken string
		wantErr   error
	}{
		{
			name:      "success with normalized email",
			email:     " Admin@Fest.org ",
			passcode:  "opensesame",
			wantToken: "token-for-admin@fest.org",
		},
		{
			name:     "wrong email",
			email:    "someone@else.org",
			passcode: "opensesame",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong passcode",
			email:    "admin@fest.org",
			passcode: "guess",
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAdminService(
				"admin@fest.org", "$2a$10$fakehash",
				&fakePasscodeVerifier{valid: "opensesame"},
				&fakeTokenIssuer{},
				repo, seq,
			)
			token, err := svc.Login(context.Background(), tt.email, tt.passcode)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAdminService_Login_Unconfigured(t *testing.T) {
	svc := NewAdminService(
		"", "",
		&fakePasscodeVerifier{valid: "anything"},
		&fakeTokenIssuer{},
		newMockRegistrationRepository(), newMockSequenceRepository(),
	)
	_, err := svc.Login(context.Background(), "admin@fest.org", "anything")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminService_Counters(t *testing.T) {
	seq := newMockSequenceRepository()
	seq.values[domain.ScopeRegistration] = 41
	svc := NewAdminService(
		"admin@fest.org", "hash",
		&fakePasscodeVerifier{}, &fakeTokenIssuer{},
		newMockRegistrationRepository(), seq,
	)

	statuses, err := svc.Counters(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.CounterStatus{
		{Scope: domain.ScopeRegistration, Value: 41},
		{Scope: domain.ScopeTeam, Value: 0},
	}, statuses)
}
