package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := E(KindNotFound, "invoice not found")
	if err.Error() != "invoice not found" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "invoice not found")
	}

	empty := Error{Kind: KindForbidden}
	if empty.Error() != "forbidden" {
		t.Fatalf("Error() = %q, want %q", empty.Error(), "forbidden")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid input", E(KindInvalidInput, "bad field"), http.StatusBadRequest},
		{"unauthorized", E(KindUnauthorized, "login required"), http.StatusUnauthorized},
		{"forbidden", E(KindForbidden, "no access"), http.StatusForbidden},
		{"unavailable", E(KindUnavailable, "store down"), http.StatusServiceUnavailable},
		{"not found", E(KindNotFound, "missing"), http.StatusNotFound},
		{"unknown kind", E(KindUnknown, "boom"), http.StatusInternalServerError},
		{"untyped", fmt.Errorf("plain failure"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestHTTPStatusWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", E(KindNotFound, "missing invoice"))
	if got := HTTPStatus(wrapped); got != http.StatusNotFound {
		t.Fatalf("HTTPStatus = %d, want %d", got, http.StatusNotFound)
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(E(KindInvalidInput, "x")); got != KindInvalidInput {
		t.Fatalf("KindOf = %q, want %q", got, KindInvalidInput)
	}
	if got := KindOf(fmt.Errorf("plain")); got != KindUnknown {
		t.Fatalf("KindOf = %q, want %q", got, KindUnknown)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Fatalf("KindOf = %q, want %q", got, KindUnknown)
	}
}
