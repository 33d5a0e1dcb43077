// Package config loads the gigset TOML configuration: where the
// catalog database lives, the per-string pitch window used for path
// planning, and the closeness policy used when `analyze` is run
// without explicit flags. Every field is optional; Default() is a
// complete working configuration on its own.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/gigset/closeness"
	"github.com/katalvlaran/gigset/tuning"
)

// Config is the full file layout.
type Config struct {
	Database  DatabaseConfig  `toml:"database"`
	Bounds    BoundsConfig    `toml:"bounds"`
	Closeness ClosenessConfig `toml:"closeness"`
}

// DatabaseConfig locates the catalog.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// BoundsConfig holds the per-string pitch window as note names with
// octaves, listed string 6 (lowest) to string 1 (highest). Empty
// slices mean "use the standard window".
type BoundsConfig struct {
	Min []string `toml:"min,omitempty"`
	Max []string `toml:"max,omitempty"`
}

// ClosenessConfig is the default analysis policy.
type ClosenessConfig struct {
	MaxChangedStrings  int `toml:"max_changed_strings"`
	MaxPitchChange     int `toml:"max_pitch_change"`
	MaxTotalDifference int `toml:"max_total_difference"`
}

// Default returns a complete working configuration: catalog under
// the user config dir, the standard pitch window, and a moderate
// closeness policy.
func Default() Config {
	return Config{
		Database: DatabaseConfig{Path: DefaultDBPath()},
		Closeness: ClosenessConfig{
			MaxChangedStrings:  2,
			MaxPitchChange:     2,
			MaxTotalDifference: 4,
		},
	}
}

// DefaultConfigPath returns ~/.config/gigset/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}

	return filepath.Join(home, ".config", "gigset", "config.toml")
}

// DefaultDBPath returns ~/.config/gigset/gigset.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gigset.db"
	}

	return filepath.Join(home, ".config", "gigset", "gigset.db")
}

// Load reads path over the defaults. A missing file is not an error:
// the defaults stand. A present but unreadable or invalid file is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err = toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if _, err = cfg.ResolvedBounds(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Policy converts the closeness section to the analysis policy.
func (c Config) Policy() closeness.Policy {
	return closeness.Policy{
		MaxChangedStrings:  c.Closeness.MaxChangedStrings,
		MaxPitchChange:     c.Closeness.MaxPitchChange,
		MaxTotalDifference: c.Closeness.MaxTotalDifference,
	}
}

// ResolvedBounds builds the pitch window from the bounds section,
// starting from the standard window and overriding per string. Either
// list may be empty; a non-empty list must name all six strings.
func (c Config) ResolvedBounds() (tuning.Bounds, error) {
	b := tuning.StandardBounds()

	if err := applyBoundList(c.Bounds.Min, "min", &b, (tuning.Bounds).WithMin); err != nil {
		return b, err
	}
	if err := applyBoundList(c.Bounds.Max, "max", &b, (tuning.Bounds).WithMax); err != nil {
		return b, err
	}
	for i, iv := range b {
		if iv.Min > iv.Max {
			return b, fmt.Errorf("bounds: string %d window is empty (min %d > max %d)", i, iv.Min, iv.Max)
		}
	}

	return b, nil
}

func applyBoundList(notes []string, side string, b *tuning.Bounds, set func(tuning.Bounds, int, string) (tuning.Bounds, error)) error {
	if len(notes) == 0 {
		return nil
	}
	if len(notes) != tuning.StringCount {
		return fmt.Errorf("bounds.%s: want %d notes, got %d", side, tuning.StringCount, len(notes))
	}

	for i, note := range notes {
		next, err := set(*b, i, note)
		if err != nil {
			return fmt.Errorf("bounds.%s: %w", side, err)
		}
		*b = next
	}

	return nil
}
