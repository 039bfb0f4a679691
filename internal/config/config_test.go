package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := Default()
	cfg.App.Port = 4242
	cfg.Probe.ReqPerSec = 2.5
	cfg.Auth.TokenAccount = "work"

	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.App.Port != 4242 || got.Probe.ReqPerSec != 2.5 || got.Auth.TokenAccount != "work" {
		t.Errorf("round trip: %+v", got)
	}
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := SaveAtomic(path, Default()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	cfg := Default()
	cfg.App.Port = 5151
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("backup missing: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.App.Port != 5151 {
		t.Errorf("port = %d", got.App.Port)
	}
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := Default()
	cfg.App.Port = -1
	if err := SaveAtomic(path, cfg); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid config was written")
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.Auth.TokenAccount = "  work  "
	got, v := NormalizeAndValidate(cfg)
	if !v.OK() {
		t.Fatalf("errors: %v", v.Errors)
	}
	if got.Auth.TokenAccount != "work" {
		t.Errorf("token account = %q", got.Auth.TokenAccount)
	}

	cfg = Default()
	cfg.App.Port = 0
	if _, v := NormalizeAndValidate(cfg); v.OK() {
		t.Error("port 0 accepted")
	}

	cfg = Default()
	cfg.Probe.Enabled = true
	cfg.Probe.ReqPerSec = 0
	if _, v := NormalizeAndValidate(cfg); v.OK() {
		t.Error("zero rate accepted for enabled probe")
	}

	cfg = Default()
	cfg.Probe.Enabled = true
	cfg.Probe.ReqPerSec = 20
	cfg.Probe.Burst = 20
	if _, v := NormalizeAndValidate(cfg); len(v.Warnings) == 0 {
		t.Error("expected a rate warning")
	}
}

func TestEnsureUserConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path, err := EnsureUserConfig(dir, filepath.Join(dir, "no-such-default.yml"))
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.App.Port != Default().App.Port {
		t.Errorf("port = %d", got.App.Port)
	}
}
