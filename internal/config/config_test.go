package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("want default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidHeadMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte("x11_head_mode: bogus\nlog_level: info\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for bogus x11_head_mode")
	}
}

func TestSafeConfigRoundTrip(t *testing.T) {
	sc := NewSafeConfig(Default())
	sc.Set(Config{LogLevel: "debug"})
	if got := sc.Get().LogLevel; got != "debug" {
		t.Fatalf("got %q, want debug", got)
	}
}
