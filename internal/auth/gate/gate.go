// Package gate decides route access for incoming requests.
//
// Decide is a pure function of the request path and the current session; it
// performs no I/O and never creates or destroys sessions. Callers translate
// Deny into a redirect to the login surface.
package gate

import (
	"strings"

	"github.com/msantanna/atelier.page/internal/session"
)

const (
	// ProtectedPrefix guards the admin dashboard routes.
	ProtectedPrefix = "/dashboard"
	// LoginPath is where denied visitors are sent.
	LoginPath = "/login"
	// DashboardPath is where authenticated visitors land.
	DashboardPath = "/dashboard"
)

// Action is the kind of access decision.
type Action int

const (
	// ActionAllow lets the request through.
	ActionAllow Action = iota
	// ActionDeny blocks the request; the caller sends the visitor to login.
	ActionDeny
	// ActionRedirect sends the visitor to Decision.Target.
	ActionRedirect
)

// Decision is the outcome of route authorization.
type Decision struct {
	Action Action
	Target string
}

// Allow grants access.
var Allow = Decision{Action: ActionAllow}

// Deny blocks access to a protected route.
var Deny = Decision{Action: ActionDeny}

// RedirectTo sends the visitor to another path.
func RedirectTo(target string) Decision {
	return Decision{Action: ActionRedirect, Target: target}
}

// Decide evaluates whether a visitor may reach path with the given session.
//
// Protected routes require a session. Authenticated visitors on public routes
// are pushed to the dashboard so the login and portfolio pages never render
// for a signed-in admin.
func Decide(path string, sess *session.Session) Decision {
	if isProtected(path) {
		if sess != nil {
			return Allow
		}
		return Deny
	}
	if sess != nil {
		return RedirectTo(DashboardPath)
	}
	return Allow
}

// isProtected reports whether path falls under the protected prefix.
func isProtected(path string) bool {
	return path == ProtectedPrefix || strings.HasPrefix(path, ProtectedPrefix+"/")
}
