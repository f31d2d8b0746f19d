// Package config provides YAML-based configuration loading with
// environment overrides for the time waster.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-timewaster/internal/badges"
)

// Config is the full application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
	Game    GameConfig    `yaml:"game" envPrefix:"GAME_"`
	SSH     SSHConfig     `yaml:"ssh" envPrefix:"SSH_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
}

// StorageConfig says where progress is saved.
type StorageConfig struct {
	DBPath   string `yaml:"db_path" env:"DB_PATH"`
	SaveName string `yaml:"save_name" env:"SAVE_NAME"` // local save slot
}

// GameConfig tunes the play loop.
type GameConfig struct {
	IdleCheckInterval time.Duration `yaml:"idle_check_interval" env:"IDLE_CHECK_INTERVAL"`
	FrameRate         int           `yaml:"frame_rate" env:"FRAME_RATE"`
	GridColumns       int           `yaml:"grid_columns" env:"GRID_COLUMNS"`
}

// SSHConfig configures `timewaster serve`.
type SSHConfig struct {
	Address     string        `yaml:"address" env:"ADDRESS"`
	HostKey     string        `yaml:"host_key" env:"HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
}

// LogConfig configures the charm logger.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate fills zero values with defaults and rejects values that make
// no sense. A zero ssh.idle_timeout is kept: it means no timeout.
func (c *Config) Validate() error {
	d := Default()

	if c.Storage.DBPath == "" {
		c.Storage.DBPath = d.Storage.DBPath
	}
	if c.Storage.SaveName == "" {
		c.Storage.SaveName = d.Storage.SaveName
	}
	if c.Game.IdleCheckInterval == 0 {
		c.Game.IdleCheckInterval = d.Game.IdleCheckInterval
	}
	if c.Game.FrameRate == 0 {
		c.Game.FrameRate = d.Game.FrameRate
	}
	if c.Game.GridColumns == 0 {
		c.Game.GridColumns = d.Game.GridColumns
	}
	if c.SSH.Address == "" {
		c.SSH.Address = d.SSH.Address
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = d.Log.File
	}

	var errs []error
	if c.Game.IdleCheckInterval < time.Second {
		errs = append(errs, fmt.Errorf("game.idle_check_interval must be at least 1s, got %s", c.Game.IdleCheckInterval))
	}
	if c.Game.FrameRate < 1 || c.Game.FrameRate > 120 {
		errs = append(errs, fmt.Errorf("game.frame_rate must be between 1 and 120, got %d", c.Game.FrameRate))
	}
	if c.Game.GridColumns < 1 || c.Game.GridColumns > 20 {
		errs = append(errs, fmt.Errorf("game.grid_columns must be between 1 and 20, got %d", c.Game.GridColumns))
	}
	// 0 disables the timeout
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout))
	} else if c.SSH.IdleTimeout > 0 && c.SSH.IdleTimeout < badges.LoiterIdle {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must be 0 or at least %s for the loiterer badge, got %s", badges.LoiterIdle, c.SSH.IdleTimeout))
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}
	return errors.Join(errs...)
}
