package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/timewaster.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It mirrors the embedded
// YAML and is used when that fails to parse.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			DBPath:   "~/.timewaster/saves.db",
			SaveName: "ultimate-time-waster-state",
		},
		Game: GameConfig{
			IdleCheckInterval: 60 * time.Second,
			FrameRate:         20,
			GridColumns:       10,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 2 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.timewaster/timewaster.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
