// Package session issues and resolves authenticated web sessions.
//
// A session is carried by a signed token (HS256) holding the user identity
// and an expiry. The manager keeps a server-side revocation set so logout
// invalidates a token before its expiry.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/msantanna/atelier.page/internal/platform/id"
)

// DefaultTTL bounds session lifetime when the caller does not configure one.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken indicates a token that is missing, malformed, expired,
// tampered with, or revoked. Callers treat all of these as "no session".
var ErrInvalidToken = errors.New("invalid session token")

// Session describes an authenticated visitor.
type Session struct {
	UserID      string
	DisplayName string
	Email       string
}

// claims is the token payload for a web session.
type claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs, resolves and revokes session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time

	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewManager creates a session manager with the given signing secret.
// A non-positive ttl falls back to DefaultTTL.
func NewManager(secret []byte, ttl time.Duration) (*Manager, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret:  secret,
		ttl:     ttl,
		clock:   time.Now,
		revoked: make(map[string]time.Time),
	}, nil
}

// Issue creates a signed session token for the given identity.
func (m *Manager) Issue(sess Session) (string, error) {
	if m == nil {
		return "", fmt.Errorf("session manager is not configured")
	}
	if strings.TrimSpace(sess.UserID) == "" {
		return "", fmt.Errorf("user id is required")
	}

	tokenID, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	now := m.clock().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name:  sess.DisplayName,
		Email: sess.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   sess.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Resolve validates a token and returns the session it carries.
func (m *Manager) Resolve(token string) (*Session, error) {
	if m == nil || strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.clock() }))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if m.isRevoked(parsed.ID) {
		return nil, ErrInvalidToken
	}

	return &Session{
		UserID:      parsed.Subject,
		DisplayName: parsed.Name,
		Email:       parsed.Email,
	}, nil
}

// Revoke invalidates a token for the remainder of its lifetime.
func (m *Manager) Revoke(token string) {
	if m == nil || strings.TrimSpace(token) == "" {
		return
	}

	var parsed claims
	if _, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.clock() })); err != nil {
		return
	}
	if parsed.ID == "" {
		return
	}

	expiry := m.clock().Add(m.ttl)
	if parsed.ExpiresAt != nil {
		expiry = parsed.ExpiresAt.Time
	}

	m.mu.Lock()
	m.revoked[parsed.ID] = expiry
	m.pruneLocked()
	m.mu.Unlock()
}

func (m *Manager) isRevoked(tokenID string) bool {
	if tokenID == "" {
		return false
	}
	m.mu.RLock()
	_, revoked := m.revoked[tokenID]
	m.mu.RUnlock()
	return revoked
}

// pruneLocked drops revocation entries whose tokens have expired anyway.
func (m *Manager) pruneLocked() {
	now := m.clock()
	for tokenID, expiry := range m.revoked {
		if now.After(expiry) {
			delete(m.revoked, tokenID)
		}
	}
}
