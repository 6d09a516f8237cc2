package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingKey(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RAPIDAPI_KEY", "") // empty counts as unset

	if _, err := Load(); err == nil {
		t.Fatal("expected error when RAPIDAPI_KEY is absent")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RAPIDAPI_KEY", "env-key")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.API.Key != "env-key" {
		t.Errorf("API.Key = %q, want env-key", cfg.API.Key)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("API.Timeout = %v, want 3s", cfg.API.Timeout)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := "# vehicleinfo credentials\n" +
		"\n" +
		"RAPIDAPI_KEY=\"file-key\"\n" +
		"REPORTS_DIR=out\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(envFile), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	chdir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.API.Key != "file-key" {
		t.Errorf("API.Key = %q, want file-key (quotes stripped)", cfg.API.Key)
	}
	if cfg.Report.Dir != "out" {
		t.Errorf("Report.Dir = %q, want out", cfg.Report.Dir)
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RAPIDAPI_KEY", "k")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.API.Host != "vehicle-rc-information-v2.p.rapidapi.com" {
		t.Errorf("API.Host = %q", cfg.API.Host)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("API.Timeout = %v, want 10s", cfg.API.Timeout)
	}
	if cfg.Report.Dir != "reports" {
		t.Errorf("Report.Dir = %q, want reports", cfg.Report.Dir)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("HTTP.Port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
}

// chdir moves into dir for the duration of the test so Load picks up (or
// misses) the .env file deterministically.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
