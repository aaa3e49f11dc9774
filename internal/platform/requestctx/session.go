// Package requestctx carries per-request identity through context values.
package requestctx

import (
	"context"

	"github.com/msantanna/atelier.page/internal/session"
)

// sessionContextKey is the context key for the authenticated session.
type sessionContextKey struct{}

// WithSession stores an authenticated session in context.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext returns the session stored in context, or nil.
func SessionFromContext(ctx context.Context) *session.Session {
	if ctx == nil {
		return nil
	}
	value, _ := ctx.Value(sessionContextKey{}).(*session.Session)
	return value
}
