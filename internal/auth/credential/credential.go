// Package credential verifies submitted login credentials against a trusted
// user source.
//
// Verification is deliberately silent about why it failed: the caller cannot
// tell an unknown email from a wrong password, which keeps the login surface
// from leaking which accounts exist.
package credential

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"strings"
)

// ErrUnknownUser is returned by a UserSource when no record matches.
var ErrUnknownUser = errors.New("unknown user")

// Identity is the minimal result of a successful verification.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// User is a trusted credential record.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// UserSource looks up trusted credential records by email.
type UserSource interface {
	UserByEmail(ctx context.Context, email string) (User, error)
}

// Verifier checks a submitted credential pair.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (Identity, bool)
}

// StoreVerifier verifies credentials against a UserSource.
//
// TODO: store salted password hashes and compare digests once account
// signup replaces the seeded demo user.
type StoreVerifier struct {
	users UserSource
}

// NewStoreVerifier creates a verifier backed by the given user source.
func NewStoreVerifier(users UserSource) *StoreVerifier {
	return &StoreVerifier{users: users}
}

// Verify checks the pair against the trusted source and returns the minimal
// identity on an exact match. Empty inputs are valid and simply fail to
// match. Lookup failures are reported as a plain mismatch.
func (v *StoreVerifier) Verify(ctx context.Context, email, password string) (Identity, bool) {
	if v == nil || v.users == nil {
		return Identity{}, false
	}

	user, err := v.users.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, ErrUnknownUser) {
			log.Printf("credential: user lookup: %v", err)
		}
		// Run a comparison anyway so unknown emails cost the same as
		// known ones.
		subtle.ConstantTimeCompare([]byte(password), []byte(password))
		return Identity{}, false
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(user.Password)) != 1 {
		return Identity{}, false
	}

	return Identity{ID: user.ID, Name: user.Name, Email: user.Email}, true
}
