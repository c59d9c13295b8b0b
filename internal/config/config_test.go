package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dir := filepath.Join(home, DefaultConfigDir)
	if cfg.ConfigDir != dir {
		t.Errorf("expected config dir %s, got %s", dir, cfg.ConfigDir)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected config dir to be created: %v", err)
	}
	if info.Mode().Perm() != 0700 {
		t.Errorf("expected 0700, got %o", info.Mode().Perm())
	}
	if cfg.PolicyPath != filepath.Join(dir, DefaultPolicyFile) {
		t.Errorf("unexpected policy path %s", cfg.PolicyPath)
	}
	if cfg.LogPath != filepath.Join(dir, DefaultLogFile) {
		t.Errorf("unexpected log path %s", cfg.LogPath)
	}
	if cfg.PacksDir != filepath.Join(dir, DefaultPacksDir) {
		t.Errorf("unexpected packs dir %s", cfg.PacksDir)
	}

	want := Settings{SafetyLevel: SafetyMedium}
	if cfg.Settings != want {
		t.Errorf("expected %+v, got %+v", want, cfg.Settings)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	configPath := filepath.Join(dir, "c.yaml")
	content := "dry_run: true\nauto_execute: true\nsafety_level: high\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath, filepath.Join(dir, "p.yaml"), filepath.Join(dir, "a.jsonl"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Settings.DryRun || !cfg.Settings.AutoExecute || cfg.Settings.SafetyLevel != SafetyHigh {
		t.Errorf("unexpected settings %+v", cfg.Settings)
	}
	if cfg.PolicyPath != filepath.Join(dir, "p.yaml") || cfg.LogPath != filepath.Join(dir, "a.jsonl") {
		t.Errorf("path overrides ignored: %s %s", cfg.PolicyPath, cfg.LogPath)
	}
}

func TestReadSettings_InvalidSafetyLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("safety_level: extreme\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSettings(path); err == nil {
		t.Fatal("expected error for invalid safety level")
	}
}

func TestReadSettings_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("auto_execute: true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	s, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.AutoExecute || s.DryRun || s.SafetyLevel != SafetyMedium {
		t.Errorf("unexpected settings %+v", s)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Settings.Set("safety_level", "HIGH"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Settings.Set("dry_run", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	again, err := Load("", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Settings.SafetyLevel != SafetyHigh || !again.Settings.DryRun {
		t.Errorf("settings not persisted: %+v", again.Settings)
	}
}

func TestSettings_SetErrors(t *testing.T) {
	s := DefaultSettings()
	tests := []struct{ key, value string }{
		{"dry_run", "maybe"},
		{"safety_level", "max"},
		{"color", "on"},
	}
	for _, tt := range tests {
		if err := s.Set(tt.key, tt.value); err == nil {
			t.Errorf("set %s=%s: expected error", tt.key, tt.value)
		}
	}
	if s != DefaultSettings() {
		t.Errorf("failed sets must not change settings, got %+v", s)
	}
}
