package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("unexpected backend URL: %q", cfg.BackendURL)
	}
	if cfg.SubmitPolicy != SubmitBlock {
		t.Errorf("expected block policy by default, got %q", cfg.SubmitPolicy)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mentor.yaml")
	data := "backend_url: http://backend:9000\nsubmit_policy: race\nrequest_timeout: 10s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BackendURL != "http://backend:9000" {
		t.Errorf("unexpected backend URL: %q", cfg.BackendURL)
	}
	if cfg.SubmitPolicy != SubmitRace {
		t.Errorf("expected race policy, got %q", cfg.SubmitPolicy)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.RequestTimeout)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AgentID != "tutor" {
		t.Errorf("expected default agent, got %q", cfg.AgentID)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MENTOR_BACKEND_URL", "http://env:1234")
	t.Setenv("MENTOR_SUBMIT_POLICY", "race")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BackendURL != "http://env:1234" {
		t.Errorf("expected env override, got %q", cfg.BackendURL)
	}
	if cfg.SubmitPolicy != SubmitRace {
		t.Errorf("expected race policy from env, got %q", cfg.SubmitPolicy)
	}
}

func TestInvalidPolicyRejected(t *testing.T) {
	t.Setenv("MENTOR_SUBMIT_POLICY", "sometimes")

	if _, err := Load(""); err == nil {
		t.Error("expected error for invalid submit policy")
	}
}
