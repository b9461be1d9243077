package auth

import (
	"golang.org/x/crypto/bcrypt"
	"techfestbackend/internal/domain"
)

type bcryptVerifier struct{}

// NewBcryptVerifier returns a PasscodeVerifier that compares a bcrypt hash
// against a plaintext passcode.
func NewBcryptVerifier() domain.PasscodeVerifier {
	return &bcryptVerifier{}
}

func (v *bcryptVerifier) Compare(hash, passcode string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode))
}
