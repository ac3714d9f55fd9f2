// Package config loads and saves the annealer's tuning knobs as a TOML
// file, the same load-with-defaults shape the rest of this family of
// tools uses for its application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/CGLemon/2025NCTU-placement/internal/anneal"
	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

// FileConfig is the TOML-serializable form of anneal.Config. Durations
// are stored as strings ("30s", "5m") since TOML has no native duration
// type. OnOuterStep is a runtime-only hook and has no TOML counterpart.
type FileConfig struct {
	K                   int     `toml:"k"`
	CoolingFactor       float64 `toml:"cooling_factor"`
	TemperatureMin      float64 `toml:"temperature_min"`
	ContinuousRejectMax int     `toml:"continuous_reject_max"`
	Alpha               float64 `toml:"alpha"`
	Beta                float64 `toml:"beta"`
	Seed                uint64  `toml:"seed"`
	TimeBudget          string  `toml:"time_budget"`
	DefaultAxis         string  `toml:"default_axis"`
}

// DefaultConfigDir returns the default directory for this tool's
// configuration. On all platforms this is ~/.placer/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".placer")
}

// DefaultConfigPath returns the default path for the anneal config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "anneal.toml")
}

// ToFile converts a Config into its TOML-serializable form.
func ToFile(cfg anneal.Config) FileConfig {
	return FileConfig{
		K:                   cfg.K,
		CoolingFactor:       cfg.CoolingFactor,
		TemperatureMin:      cfg.TemperatureMin,
		ContinuousRejectMax: cfg.ContinuousRejectMax,
		Alpha:               cfg.Alpha,
		Beta:                cfg.Beta,
		Seed:                cfg.Seed,
		TimeBudget:          cfg.TimeBudget.String(),
		DefaultAxis:         cfg.DefaultAxis.String(),
	}
}

// ToConfig converts a FileConfig back into an anneal.Config.
func (f FileConfig) ToConfig() (anneal.Config, error) {
	cfg := anneal.Config{
		K:                   f.K,
		CoolingFactor:       f.CoolingFactor,
		TemperatureMin:      f.TemperatureMin,
		ContinuousRejectMax: f.ContinuousRejectMax,
		Alpha:               f.Alpha,
		Beta:                f.Beta,
		Seed:                f.Seed,
		DefaultAxis:         model.Vertical,
	}
	if f.TimeBudget != "" {
		d, err := time.ParseDuration(f.TimeBudget)
		if err != nil {
			return anneal.Config{}, fmt.Errorf("parse time_budget: %w", err)
		}
		cfg.TimeBudget = d
	}
	if f.DefaultAxis != "" {
		axis, ok := model.ParseAxis(f.DefaultAxis)
		if !ok {
			return anneal.Config{}, fmt.Errorf("parse default_axis: unknown axis %q", f.DefaultAxis)
		}
		cfg.DefaultAxis = axis
	}
	return cfg, nil
}

// SaveAnnealConfig persists cfg to path as TOML. It creates any missing
// parent directories automatically.
func SaveAnnealConfig(path string, cfg anneal.Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(ToFile(cfg)); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// LoadAnnealConfig reads a Config from path. If the file does not exist,
// it returns anneal.DefaultConfig with no error.
func LoadAnnealConfig(path string) (anneal.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return anneal.DefaultConfig(), nil
		}
		return anneal.Config{}, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return anneal.Config{}, fmt.Errorf("decode config file: %w", err)
	}
	return fc.ToConfig()
}
