package gate

import (
	"testing"

	"github.com/msantanna/atelier.page/internal/session"
)

func TestDecideProtectedWithoutSession(t *testing.T) {
	paths := []string{
		"/dashboard",
		"/dashboard/",
		"/dashboard/invoices",
		"/dashboard/invoices/abc/edit",
	}
	for _, path := range paths {
		if got := Decide(path, nil); got != Deny {
			t.Errorf("Decide(%q, nil) = %+v, want Deny", path, got)
		}
	}
}

func TestDecideProtectedWithSession(t *testing.T) {
	sess := &session.Session{UserID: "u1"}
	paths := []string{
		"/dashboard",
		"/dashboard/invoices",
		"/dashboard/invoices/abc/edit",
	}
	for _, path := range paths {
		if got := Decide(path, sess); got != Allow {
			t.Errorf("Decide(%q, session) = %+v, want Allow", path, got)
		}
	}
}

func TestDecidePublicWithSession(t *testing.T) {
	sess := &session.Session{UserID: "u1"}
	paths := []string{"/", "/login", "/about"}
	for _, path := range paths {
		got := Decide(path, sess)
		if got.Action != ActionRedirect {
			t.Errorf("Decide(%q, session).Action = %v, want redirect", path, got.Action)
		}
		if got.Target != DashboardPath {
			t.Errorf("Decide(%q, session).Target = %q, want %q", path, got.Target, DashboardPath)
		}
	}
}

func TestDecidePublicWithoutSession(t *testing.T) {
	paths := []string{"/", "/login", "/about"}
	for _, path := range paths {
		if got := Decide(path, nil); got != Allow {
			t.Errorf("Decide(%q, nil) = %+v, want Allow", path, got)
		}
	}
}

func TestDecideSimilarPrefixIsPublic(t *testing.T) {
	// "/dashboardx" shares a string prefix with the protected area but is not
	// under it.
	if got := Decide("/dashboardx", nil); got != Allow {
		t.Fatalf("Decide(/dashboardx, nil) = %+v, want Allow", got)
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	sess := &session.Session{UserID: "u1"}
	first := Decide("/dashboard/invoices", sess)
	for i := 0; i < 10; i++ {
		if got := Decide("/dashboard/invoices", sess); got != first {
			t.Fatalf("decision changed between calls: %+v vs %+v", first, got)
		}
	}
}
