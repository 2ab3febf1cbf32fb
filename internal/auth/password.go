package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/secure/precis"
)

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword compares a bcrypt digest with a plaintext candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// NormalizeUsername applies the PRECIS UsernameCasePreserved profile so
// visually identical names (e.g. full-width letters) map to one account.
func NormalizeUsername(name string) (string, error) {
	out, err := precis.UsernameCasePreserved.String(name)
	if err != nil || out == "" {
		return "", ErrInvalidUsername
	}
	return out, nil
}
