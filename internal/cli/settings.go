package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jakecoffman/sweep"
)

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Settings is the sweepsim settings file: broad phase keys at the top level plus a [logging] table.
type Settings struct {
	BroadPhase sweep.Config
	Logging    LoggingConfig
}

type settingsFile struct {
	Logging LoggingConfig `toml:"logging"`
}

func defaultSettings() *Settings {
	return &Settings{
		BroadPhase: sweep.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// loadSettings reads path, or returns the defaults when path is empty.
func loadSettings(path string) (*Settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}

	cfg, err := sweep.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	s.BroadPhase = cfg

	file := settingsFile{Logging: s.Logging}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	s.Logging = file.Logging
	return s, nil
}

func newLogger(cfg LoggingConfig, verbose bool) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
