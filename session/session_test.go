package session

import (
	"errors"
	"testing"
)

func TestZeroValueIsInactive(t *testing.T) {
	var s Session

	if s.Active() {
		t.Error("zero value should not be active")
	}

	_, err := s.Token()
	if !errors.Is(err, ErrMissingSession) {
		t.Errorf("expected ErrMissingSession, got %v", err)
	}
}

func TestNewMintsToken(t *testing.T) {
	s := New()

	if !s.Active() {
		t.Fatal("expected active session")
	}

	token, err := s.Token()
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}

	other := New()
	otherToken, _ := other.Token()
	if token == otherToken {
		t.Error("expected distinct tokens per session")
	}
}

func TestFromToken(t *testing.T) {
	s := FromToken("issued-by-host")

	token, err := s.Token()
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if token != "issued-by-host" {
		t.Errorf("expected wrapped token, got %q", token)
	}
}
