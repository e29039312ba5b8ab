package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}

	if cfg.Refresh.IntervalMinutes != 15 {
		t.Errorf("default interval: got %d, want 15", cfg.Refresh.IntervalMinutes)
	}
	if !cfg.AutoRefresh() {
		t.Error("auto refresh must default to enabled")
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("default listen addr: got %s", cfg.Server.ListenAddr)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("default theme: got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
data_source:
  base_url: http://localhost:5000/api
refresh:
  auto: false
  interval_minutes: 5
ui:
  theme: dark
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REFRESH_INTERVAL_MINUTES", "30")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.BaseURL != "http://localhost:5000/api" {
		t.Errorf("base url: got %s", cfg.DataSource.BaseURL)
	}
	if cfg.AutoRefresh() {
		t.Error("auto refresh disabled in file must stay disabled")
	}
	if cfg.Refresh.IntervalMinutes != 30 {
		t.Errorf("env must override file: got %d, want 30", cfg.Refresh.IntervalMinutes)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme: got %s", cfg.UI.Theme)
	}
}

func TestSettings_Record(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.DataSource.BaseURL = "http://localhost:5000/api"
	cfg.Telegram.Enabled = true

	s := cfg.Settings()
	if s.APIEndpoint != "http://localhost:5000/api" {
		t.Errorf("api endpoint: got %s", s.APIEndpoint)
	}
	if !s.EnableAutoRefresh || !s.EnableNotifications {
		t.Errorf("unexpected flags: %+v", s)
	}
	if s.RefreshInterval != 15 || s.Theme != "light" {
		t.Errorf("unexpected settings record: %+v", s)
	}
}

func TestValidate_Errors(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	cfg.Telegram.Enabled = true
	if err := cfg.Validate(); err == nil {
		t.Error("telegram enabled without token must fail validation")
	}
	cfg.Telegram.Enabled = false

	cfg.UI.Theme = "solarized"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown theme must fail validation")
	}
	cfg.UI.Theme = "light"

	cfg.Refresh.IntervalMinutes = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero interval must fail validation")
	}
}
