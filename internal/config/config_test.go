package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "GROUP_ORDER_SEED_FILE",
		"GEMINI_API_KEY", "GENAI_MODEL", "ASSISTANT_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.ShutdownTimeout != 15*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.LogLevel != "info" {
		t.Fatalf("LogLevel default")
	}
	if c.SeedFile != "" {
		t.Fatalf("SeedFile default")
	}
	if c.AssistantEnabled() {
		t.Fatalf("assistant must be disabled without an API key")
	}
	if c.GenAIModel != "gemini-2.0-flash" || c.AssistantTimeout != 30*time.Second {
		t.Fatalf("assistant defaults")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GROUP_ORDER_SEED_FILE", "/etc/seed.yaml")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("GENAI_MODEL", "gemini-2.5-pro")
	t.Setenv("ASSISTANT_TIMEOUT", "500ms")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
	if c.LogLevel != "debug" || c.SeedFile != "/etc/seed.yaml" {
		t.Fatalf("log/seed env")
	}
	if !c.AssistantEnabled() || c.GenAIModel != "gemini-2.5-pro" || c.AssistantTimeout != 500*time.Millisecond {
		t.Fatalf("assistant env")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
