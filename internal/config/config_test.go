package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// newFlagSet 注册与 scan 命令一致的参数。
func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool(KeyDetailed, false, "")
	flags.String(KeyFormat, "table", "")
	flags.String(KeyOutput, "", "")
	flags.String(KeyIgnoreFile, "", "")
	flags.String(KeyLogLevel, "warn", "")
	flags.Bool(KeyLogJSON, false, "")
	flags.String(KeyConfig, "", "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	testChdir(t, t.TempDir())

	cfg, err := Load(newFlagSet())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Format != "table" || cfg.Detailed || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	content := "format: html\ndetailed: true\nlog-level: info\n"
	if err := os.WriteFile(filepath.Join(dir, ".codecounter.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	t.Setenv("CODECOUNTER_LOG_LEVEL", "debug")

	flags := newFlagSet()
	if err := flags.Parse([]string{"--format", "json"}); err != nil {
		t.Fatalf("parse flags failed: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Format != "json" {
		t.Fatalf("flag must override config file, got %q", cfg.Format)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env must override config file, got %q", cfg.LogLevel)
	}
	if !cfg.Detailed {
		t.Fatalf("config file value must apply when flag is unset")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CODECOUNTER_IGNORE_FILE=custom.ignore\n"), 0o644); err != nil {
		t.Fatalf("write .env failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("CODECOUNTER_IGNORE_FILE") })

	cfg, err := Load(newFlagSet())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.IgnoreFile != "custom.ignore" {
		t.Fatalf("expected .env value, got %q", cfg.IgnoreFile)
	}
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	testChdir(t, t.TempDir())

	flags := newFlagSet()
	if err := flags.Parse([]string{"--config", "missing.yaml"}); err != nil {
		t.Fatalf("parse flags failed: %v", err)
	}
	if _, err := Load(flags); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}
