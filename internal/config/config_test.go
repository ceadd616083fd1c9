package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvWorkers, EnvOutputDir, EnvReport, EnvSeed, "BVEC_LOG_LEVEL", "BVEC_LOG_FORMAT", "BVEC_LOG_SOURCE", "BVEC_LOG_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	d := Defaults()
	if cfg.Output != d.Output || cfg.Preview != d.Preview || cfg.Batch != d.Batch {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, d)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bvec.yaml")
	data := `
compiler:
  seed: 42
  strict: true
batch:
  workers: 3
  progress_interval: 500ms
preview:
  size: 128
output:
  dir: build
  compress: false
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Compiler.Seed != 42 || !cfg.Compiler.Strict {
		t.Errorf("compiler = %+v", cfg.Compiler)
	}
	if cfg.Batch.Workers != 3 || cfg.Batch.ProgressInterval != 500*time.Millisecond {
		t.Errorf("batch = %+v", cfg.Batch)
	}
	if cfg.Preview.Size != 128 || cfg.Preview.Supersample != 2 {
		t.Errorf("preview = %+v", cfg.Preview)
	}
	if cfg.Output.Dir != "build" || cfg.Output.Compress || cfg.Output.Manifest != "manifest.json" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("batch: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvAndFlagPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWorkers, "7")
	t.Setenv(EnvOutputDir, "env-out")
	t.Setenv(EnvSeed, "99")
	t.Setenv("BVEC_LOG_LEVEL", "warn")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Batch.Workers != 7 || cfg.Output.Dir != "env-out" || cfg.Compiler.Seed != 99 || cfg.Log.Level != "warn" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	cfg.Resolve(Flags{Workers: 2, Report: "r.db", Strict: true})
	if cfg.Batch.Workers != 2 || cfg.Output.Report != "r.db" || !cfg.Compiler.Strict {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Output.Dir != "env-out" {
		t.Errorf("unset flag overrode env: %q", cfg.Output.Dir)
	}
}

func TestBackgroundColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#00000000", color.NRGBA{}, true},
		{"#ff8000", color.NRGBA{255, 128, 0, 255}, true},
		{"10203040", color.NRGBA{0x10, 0x20, 0x30, 0x40}, true},
		{"#12", color.NRGBA{}, false},
		{"#zzzzzz", color.NRGBA{}, false},
	} {
		c := Config{Preview: PreviewConfig{Background: tc.in}}
		got, err := c.BackgroundColor()
		if (err == nil) != tc.ok || got != tc.want {
			t.Errorf("BackgroundColor(%q) = %v, %v", tc.in, got, err)
		}
	}
}
