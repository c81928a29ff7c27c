package auth

import (
	"crypto/sha256"
	"crypto/subtle"
)

// Checker decides whether a username/password pair may enter the admin area
type Checker interface {
	Check(user, password string) bool
}

// StaticCredentials accepts exactly one configured pair
type StaticCredentials struct {
	userHash     [sha256.Size]byte
	passwordHash [sha256.Size]byte
}

// NewStaticCredentials creates a checker for the given pair
func NewStaticCredentials(user, password string) *StaticCredentials {
	return &StaticCredentials{
		userHash:     sha256.Sum256([]byte(user)),
		passwordHash: sha256.Sum256([]byte(password)),
	}
}

// Check compares both values in constant time.
// Both sides are hashed so the compared slices always have equal length.
func (s *StaticCredentials) Check(user, password string) bool {
	u := sha256.Sum256([]byte(user))
	p := sha256.Sum256([]byte(password))

	userOK := subtle.ConstantTimeCompare(u[:], s.userHash[:])
	passOK := subtle.ConstantTimeCompare(p[:], s.passwordHash[:])
	return userOK&passOK == 1
}
