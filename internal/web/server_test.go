package web

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", got.HTTPAddr)
	}
	if got.DBPath != "data/atelier.db" {
		t.Errorf("DBPath = %q, want data/atelier.db", got.DBPath)
	}
	if got.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %s, want 24h", got.SessionTTL)
	}
	if got.SubmitTimeout != 15*time.Second {
		t.Errorf("SubmitTimeout = %s, want 15s", got.SubmitTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ATELIER_HTTP_ADDR", ":9090")
	t.Setenv("ATELIER_SESSION_TTL", "1h")

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want :9090", got.HTTPAddr)
	}
	if got.SessionTTL != time.Hour {
		t.Errorf("SessionTTL = %s, want 1h", got.SessionTTL)
	}
}
