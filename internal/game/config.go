package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/questfield/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible maps and
	// battles. A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// WalkDuration is the time taken to cross one cell.
	WalkDuration time.Duration `yaml:"walkDuration"`
	// AttackDuration is how long each side's attack plays out in battle.
	AttackDuration time.Duration `yaml:"attackDuration"`

	PlayerName string `yaml:"playerName"`
}

// DefaultConfig returns the standard 64x48 overworld settings.
func DefaultConfig() Config {
	return Config{
		Width:          world.DefaultWidth,
		Height:         world.DefaultHeight,
		WalkDuration:   150 * time.Millisecond,
		AttackDuration: 600 * time.Millisecond,
		PlayerName:     "Hero",
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig. A missing
// file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	// the spawn block is 3x3
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("map size %dx%d is smaller than 3x3", c.Width, c.Height)
	}
	if c.WalkDuration < 0 || c.AttackDuration < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if c.PlayerName == "" {
		return fmt.Errorf("player name is empty")
	}
	return nil
}
