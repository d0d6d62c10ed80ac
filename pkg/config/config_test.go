package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file must fall back to defaults: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("institution: TestBank\npageSize: 5\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Institution != "TestBank" {
		t.Fatalf("expected institution overridden, got %q", cfg.Institution)
	}
	if cfg.PageSize != 5 {
		t.Fatalf("expected page size overridden, got %d", cfg.PageSize)
	}
	if cfg.Endpoint != Default().Endpoint {
		t.Fatalf("expected default endpoint retained, got %q", cfg.Endpoint)
	}
	if cfg.Currency != Default().Currency {
		t.Fatalf("expected default currency retained, got %q", cfg.Currency)
	}
}

func TestLoadDumpRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := Default()
	want.Institution = "Elsewhere"
	want.OutputDir = "/tmp/exports"

	if err := Dump(path, want); err != nil {
		t.Fatalf("Dump returned error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestCredentials(t *testing.T) {
	t.Setenv(EnvAccessToken, "tok")
	t.Setenv(EnvIdentityID, "identity-1")

	token, identityID, err := Credentials()
	if err != nil {
		t.Fatalf("Credentials returned error: %v", err)
	}
	if token != "tok" || identityID != "identity-1" {
		t.Fatalf("unexpected credentials: %q, %q", token, identityID)
	}

	t.Setenv(EnvAccessToken, "")
	if _, _, err := Credentials(); err == nil {
		t.Fatal("expected error with no access token set")
	}
}
