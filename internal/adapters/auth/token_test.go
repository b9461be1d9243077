package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTTokens_RoundTrip(t *testing.T) {
	issuer, verifier := NewJWTTokens("test-secret")

	token, err := issuer.Issue("admin", "admin@fest.org", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "admin", subject)
}

func TestJWTTokens_Expired(t *testing.T) {
	issuer, verifier := NewJWTTokens("test-secret")

	token, err := issuer.Issue("admin", "admin@fest.org", -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTTokens_WrongSecret(t *testing.T) {
	issuer, _ := NewJWTTokens("secret-a")
	_, verifier := NewJWTTokens("secret-b")

	token, err := issuer.Issue("admin", "admin@fest.org", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTTokens_Garbage(t *testing.T) {
	_, verifier := NewJWTTokens("test-secret")
	_, err := verifier.Verify("not.a.token")
	require.Error(t, err)
}
