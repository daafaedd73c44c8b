package sweep

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultChannel is the channel candidates are published on when none is configured.
const DefaultChannel = "collisions:candidates"

type Config struct {
	// Channel is the name candidate lists are published under.
	Channel string `toml:"channel"`
	// Axes is the number of tracked axes, starting at x: 2 for 2D, 3 for 3D.
	Axes int `toml:"axes"`
	// MaxTrackers bounds how many tracker ids may be issued over the broad phase's lifetime.
	MaxTrackers uint32 `toml:"max_trackers"`
	// PairPersistence is how many steps a pair record survives without overlapping on the primary axis.
	PairPersistence uint64 `toml:"pair_persistence"`
}

func DefaultConfig() Config {
	return Config{
		Channel:         DefaultChannel,
		Axes:            2,
		MaxTrackers:     math.MaxUint32,
		PairPersistence: 3,
	}
}

func (cfg Config) Validate() error {
	if cfg.Axes < 1 || cfg.Axes > MaxAxes {
		return fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidAxes, cfg.Axes, MaxAxes)
	}
	if cfg.Channel == "" {
		return fmt.Errorf("sweep: empty channel name")
	}
	if cfg.MaxTrackers == 0 {
		return fmt.Errorf("sweep: max_trackers must be positive")
	}
	return nil
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys it does not know are ignored.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
