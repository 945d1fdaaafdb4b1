package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig("")
	if cfg.Web.Port == 0 {
		t.Error("expected default web port")
	}
	if cfg.System.Workdir == "" {
		t.Error("expected default workdir")
	}
	if cfg.Backup.Cron == "" {
		t.Error("expected default backup schedule")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "web:\n  port: 9090\nsystem:\n  workdir: /tmp/sa-test\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	if cfg.Web.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Web.Port)
	}
	if cfg.System.Workdir != "/tmp/sa-test" {
		t.Errorf("expected workdir override, got %q", cfg.System.Workdir)
	}
	// untouched sections keep defaults
	if cfg.Logger.Mode == "" {
		t.Error("expected default logger mode preserved")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NONA_WEB_PORT", "7070")
	t.Setenv("NONA_SYSTEM_WORKDIR", "/tmp/sa-env")

	cfg := LoadConfig("")
	if cfg.Web.Port != 7070 {
		t.Errorf("expected env port 7070, got %d", cfg.Web.Port)
	}
	if cfg.System.Workdir != "/tmp/sa-env" {
		t.Errorf("expected env workdir, got %q", cfg.System.Workdir)
	}
}
