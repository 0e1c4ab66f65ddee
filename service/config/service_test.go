package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/relware/distpub/model"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("host: releases.example.net\nuser: pubwww\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Host != "releases.example.net" || cfg.User != "pubwww" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if cfg.Port != 22 || cfg.RemoteBase != "electrum-downloads" || cfg.Workers != 1 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Target != model.TargetSFTP {
		t.Fatalf("expected default target sftp, got %q", cfg.Target)
	}
}

func TestLoadExplicitMissingPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config path")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("host: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMergePrefersFlags(t *testing.T) {
	cfg := Config{Host: "cfg-host", User: "cfg-user", Port: 22, RemoteBase: "downloads", Workers: 2}
	flags := model.Flags{Host: "flag-host", Workers: 0}

	merged := Merge(flags, cfg)
	if merged.Host != "flag-host" {
		t.Fatalf("flag value should win, got %q", merged.Host)
	}
	if merged.User != "cfg-user" || merged.Port != 22 || merged.RemoteBase != "downloads" {
		t.Fatalf("config fallback not applied: %+v", merged)
	}
	if merged.Workers != 2 {
		t.Fatalf("expected config workers 2, got %d", merged.Workers)
	}
}
