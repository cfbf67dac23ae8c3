package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CONTACT_EMAIL", "IMAGES_DIR", "CONTENT_FILE", "REVEAL_SPEED", "REVEAL_PRE_DELAY", "LOG_LEVEL", "LOG_FORMAT", "LOG_HASH_SALT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.ImagesDir != "./images" {
		t.Errorf("ImagesDir = %q", cfg.ImagesDir)
	}
	if cfg.RevealSpeed != 80*time.Millisecond || cfg.RevealPreDelay != 300*time.Millisecond {
		t.Errorf("reveal timing = %s/%s", cfg.RevealSpeed, cfg.RevealPreDelay)
	}
	if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
		t.Errorf("logging = %v/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CONTACT_EMAIL", "hire@example.org")
	t.Setenv("REVEAL_SPEED", "120ms")
	t.Setenv("REVEAL_PRE_DELAY", "0s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "9000" || cfg.ContactEmail != "hire@example.org" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.RevealSpeed != 120*time.Millisecond || cfg.RevealPreDelay != 0 {
		t.Errorf("reveal timing = %s/%s", cfg.RevealSpeed, cfg.RevealPreDelay)
	}
	if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
		t.Errorf("logging = %v/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LOG_FORMAT", "xml"},
		{"REVEAL_SPEED", "0s"},
		{"REVEAL_SPEED", "fast"},
		{"REVEAL_PRE_DELAY", "-1s"},
		{"LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := loadConfig(); err == nil {
				t.Fatalf("loadConfig accepted %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadSite(t *testing.T) {
	site, err := loadSite("", "override@example.com")
	if err != nil {
		t.Fatalf("loadSite: %v", err)
	}
	if site.Contact.Email != "override@example.com" {
		t.Errorf("Contact.Email = %q, want override", site.Contact.Email)
	}

	if _, err := loadSite(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("loadSite accepted a missing file")
	}
}

func TestRunExport(t *testing.T) {
	t.Setenv("IMAGES_DIR", filepath.Join(t.TempDir(), "none"))
	t.Setenv("LOG_LEVEL", "error")
	out := t.TempDir()

	if err := run([]string{"--export", out}); err != nil {
		t.Fatalf("run --export: %v", err)
	}
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "data-mailto-to") {
		t.Error("exported index is not in static mode")
	}
}

func TestRunHelp(t *testing.T) {
	if err := run([]string{"--help"}); err != nil {
		t.Fatalf("run --help: %v", err)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	if err := run([]string{"--nope"}); err == nil {
		t.Fatal("run accepted an unknown flag")
	}
}
