// Package config loads compiler settings from YAML, the environment and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"bve-compiler/internal/log"
)

type CompilerConfig struct {
	Seed   int64 `yaml:"seed"` // 0 seeds from the clock
	Strict bool  `yaml:"strict"`
}

type BatchConfig struct {
	Workers          int           `yaml:"workers"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
}

type PreviewConfig struct {
	Size        int    `yaml:"size"`
	Supersample int    `yaml:"supersample"`
	Background  string `yaml:"background"` // #RRGGBB or #RRGGBBAA
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Compress bool   `yaml:"compress"`
	Report   string `yaml:"report"` // sqlite path, empty disables
	Manifest string `yaml:"manifest"`
}

type Config struct {
	Compiler CompilerConfig `yaml:"compiler"`
	Batch    BatchConfig    `yaml:"batch"`
	Preview  PreviewConfig  `yaml:"preview"`
	Output   OutputConfig   `yaml:"output"`
	Log      log.Options    `yaml:"log"`
}

// Env var names used as overrides.
const (
	EnvWorkers   = "BVEC_WORKERS"
	EnvOutputDir = "BVEC_OUTPUT_DIR"
	EnvReport    = "BVEC_REPORT"
	EnvSeed      = "BVEC_SEED"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Batch:   BatchConfig{Workers: runtime.NumCPU(), ProgressInterval: 2 * time.Second},
		Preview: PreviewConfig{Size: 512, Supersample: 2, Background: "#00000000"},
		Output:  OutputConfig{Dir: "out", Compress: true, Manifest: "manifest.json"},
		Log:     log.Options{Level: "info", Format: "text"},
	}
}

// Load reads a YAML config file over the defaults and applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Batch.Workers = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		cfg.Output.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvReport)); v != "" {
		cfg.Output.Report = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Compiler.Seed = n
		}
	}
	cfg.Log = cfg.Log.Merge(log.FromEnv())
}

// Flags holds CLI flag values that override config file settings. Zero
// values mean "not given".
type Flags struct {
	Workers   int
	OutputDir string
	Report    string
	Strict    bool
	Seed      int64
	Size      int
}

// Resolve applies flags over c and fills in anything still unset.
func (c *Config) Resolve(flags Flags) {
	if flags.Workers > 0 {
		c.Batch.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.Output.Dir = flags.OutputDir
	}
	if flags.Report != "" {
		c.Output.Report = flags.Report
	}
	if flags.Strict {
		c.Compiler.Strict = true
	}
	if flags.Seed != 0 {
		c.Compiler.Seed = flags.Seed
	}
	if flags.Size > 0 {
		c.Preview.Size = flags.Size
	}

	d := Defaults()
	if c.Batch.Workers <= 0 {
		c.Batch.Workers = d.Batch.Workers
	}
	if c.Batch.ProgressInterval <= 0 {
		c.Batch.ProgressInterval = d.Batch.ProgressInterval
	}
	if c.Preview.Size <= 0 {
		c.Preview.Size = d.Preview.Size
	}
	if c.Preview.Supersample <= 0 {
		c.Preview.Supersample = 1
	}
	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
	if c.Output.Manifest == "" {
		c.Output.Manifest = d.Output.Manifest
	}
}

// BackgroundColor parses Preview.Background.
func (c *Config) BackgroundColor() (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(c.Preview.Background), "#")
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if len(s) != 8 || err != nil {
		return color.NRGBA{}, fmt.Errorf("config: preview background %q is not a colour", c.Preview.Background)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
