package config

import (
	"os"
	"testing"
)

func TestNewValidProvider(t *testing.T) {
	settings, err := New("openai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.LLM.Provider != "openai" {
		t.Errorf("expected provider 'openai', got %q", settings.LLM.Provider)
	}
	if settings.Agent.ToolTimeoutSecs != 30 {
		t.Errorf("expected default tool timeout 30, got %d", settings.Agent.ToolTimeoutSecs)
	}
}

func TestNewWithAlias(t *testing.T) {
	settings, err := New("claude")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.LLM.Provider != "anthropic" {
		t.Errorf("expected provider 'anthropic' (normalized from 'claude'), got %q", settings.LLM.Provider)
	}
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New("unknown_provider")
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewDefaultProvider(t *testing.T) {
	original := os.Getenv("LEXKEEP_PROVIDER")
	os.Unsetenv("LEXKEEP_PROVIDER")
	defer os.Setenv("LEXKEEP_PROVIDER", original)

	settings, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.LLM.Provider != "anthropic" {
		t.Errorf("expected default provider 'anthropic', got %q", settings.LLM.Provider)
	}
}

func TestNewProviderFromEnv(t *testing.T) {
	original := os.Getenv("LEXKEEP_PROVIDER")
	os.Setenv("LEXKEEP_PROVIDER", "gemini")
	defer os.Setenv("LEXKEEP_PROVIDER", original)

	settings, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.LLM.Provider != "gemini" {
		t.Errorf("expected provider 'gemini' from environment, got %q", settings.LLM.Provider)
	}
}

func TestNewDBPathFromEnv(t *testing.T) {
	original := os.Getenv("LEXKEEP_DB")
	os.Setenv("LEXKEEP_DB", "/tmp/test.db")
	defer os.Setenv("LEXKEEP_DB", original)

	settings, err := New("openai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.DBPath != "/tmp/test.db" {
		t.Errorf("expected db path from environment, got %q", settings.DBPath)
	}
}

func TestNewWithInvalidEnvVar(t *testing.T) {
	original := os.Getenv("LLM_MAX_TOKENS")
	os.Setenv("LLM_MAX_TOKENS", "not-a-number")
	defer os.Setenv("LLM_MAX_TOKENS", original)

	_, err := New("openai")
	if err == nil {
		t.Error("expected error for invalid LLM_MAX_TOKENS")
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown provider")
		}
	}()
	MustNew("unknown_provider")
}
