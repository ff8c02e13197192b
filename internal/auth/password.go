package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when a login targets a nonexistent email,
// so both failure paths do comparable work.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("cardlink-dummy"), bcrypt.DefaultCost)

// HashPassword creates a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against a stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// BurnPasswordCheck runs a bcrypt comparison that always fails.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
