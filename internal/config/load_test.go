package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingOptionalFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Discovery.MinDriveSizeGB != def.Discovery.MinDriveSizeGB {
		t.Fatalf("expected default threshold, got %d", cfg.Discovery.MinDriveSizeGB)
	}
	if len(cfg.Bundles) != 2 {
		t.Fatalf("expected default bundles, got %d", len(cfg.Bundles))
	}
}

func TestLoadMissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), true)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "missing config file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[discovery]
min_drive_size_gb = 32
candidates = ["Games/Steam/steamapps/common/Team Fortress 2/hl2.exe"]

[log]
dir = "/var/log/neodefaults"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Discovery.MinDriveBytes() != 32<<30 {
		t.Fatalf("unexpected threshold %d", cfg.Discovery.MinDriveBytes())
	}
	if len(cfg.Discovery.Candidates) != 1 {
		t.Fatalf("expected candidates to be replaced, got %v", cfg.Discovery.Candidates)
	}
	if cfg.Discovery.DataDir != "tf" {
		t.Fatalf("expected default data dir, got %q", cfg.Discovery.DataDir)
	}
	if cfg.Config.Dest != "neodefaults.cfg" {
		t.Fatalf("expected default dest, got %q", cfg.Config.Dest)
	}
	if cfg.Log.Dir != "/var/log/neodefaults" {
		t.Fatalf("unexpected log dir %q", cfg.Log.Dir)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[discovery]\nmin_drive_gb = 3\n"), "test.toml")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseRejectsInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("[discovery"), "test.toml")
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrConfigValidation) {
		t.Fatalf("syntax errors must not be reported as validation errors: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid config test.toml") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseBundles(t *testing.T) {
	content := `
[[bundles]]
id = "hud"
name = "HUD"
archive = "rayshud.zip"
dir = "rayshud"
`
	cfg, err := Parse([]byte(content), "test.toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	hud, ok := cfg.Bundle("hud")
	if !ok {
		t.Fatalf("expected hud bundle")
	}
	if hud.Archive != "rayshud.zip" || hud.Dir != "rayshud" {
		t.Fatalf("unexpected bundle %+v", hud)
	}
	if _, ok := cfg.Bundle("hitsound"); ok {
		t.Fatalf("bundles list should replace the defaults")
	}
}
