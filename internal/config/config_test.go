package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-timewaster/internal/badges"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadFile("")
	if err != nil {
		t.Fatalf("loadFile() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Embedded YAML and Default() disagree:\n yaml    %+v\n default %+v", cfg, Default())
	}
}

func TestDefaultYAMLParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("DefaultYAML() does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("DefaultYAML() and Default() disagree:\n yaml    %+v\n default %+v", cfg, Default())
	}
}

func TestLoadCustomPathFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
game:
  frame_rate: 30
log:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.FrameRate != 30 || cfg.Log.Level != "debug" {
		t.Errorf("File values not applied: %+v", cfg)
	}
	if cfg.Game.IdleCheckInterval != 60*time.Second {
		t.Errorf("Expected default idle interval, got %s", cfg.Game.IdleCheckInterval)
	}
	if cfg.Storage.SaveName != "ultimate-time-waster-state" {
		t.Errorf("Expected default save name, got %q", cfg.Storage.SaveName)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".timewaster")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("game:\n  grid_columns: 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.GridColumns != 5 {
		t.Errorf("Expected grid columns from user config, got %d", cfg.Game.GridColumns)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "game:\n  frame_rate: 30\n")
	t.Setenv("TIMEWASTER_GAME_FRAME_RATE", "15")
	t.Setenv("TIMEWASTER_GAME_IDLE_CHECK_INTERVAL", "5s")
	t.Setenv("TIMEWASTER_STORAGE_DB_PATH", "/tmp/other.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.FrameRate != 15 {
		t.Errorf("Env should win over the file, got frame rate %d", cfg.Game.FrameRate)
	}
	if cfg.Game.IdleCheckInterval != 5*time.Second {
		t.Errorf("Expected 5s idle interval, got %s", cfg.Game.IdleCheckInterval)
	}
	if cfg.Storage.DBPath != "/tmp/other.db" {
		t.Errorf("Expected env db path, got %q", cfg.Storage.DBPath)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom config")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "game: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"tiny idle interval", func(c *Config) { c.Game.IdleCheckInterval = time.Millisecond }, "idle_check_interval"},
		{"frame rate too high", func(c *Config) { c.Game.FrameRate = 500 }, "frame_rate"},
		{"negative columns", func(c *Config) { c.Game.GridColumns = -1 }, "grid_columns"},
		{"negative ssh timeout", func(c *Config) { c.SSH.IdleTimeout = -time.Second }, "idle_timeout"},
		{"ssh timeout shorter than loitering", func(c *Config) { c.SSH.IdleTimeout = 30 * time.Minute }, "idle_timeout"},
		{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() failed: %v", err)
				}
				if cfg != Default() {
					t.Errorf("Expected defaults after Validate(), got %+v", cfg)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFillsZeroValues(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	want := Default()
	want.SSH.IdleTimeout = 0 // zero means no timeout and is kept
	if cfg != want {
		t.Errorf("Expected defaults after Validate(), got %+v", cfg)
	}
}

func TestSSHIdleTimeoutAllowsLoitering(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.SSH.IdleTimeout != 0 && cfg.SSH.IdleTimeout < badges.LoiterWindow {
		t.Errorf("Default ssh.idle_timeout %s drops players before the %s loiter window", cfg.SSH.IdleTimeout, badges.LoiterWindow)
	}

	tests := []struct {
		name    string
		body    string
		want    time.Duration
		wantErr bool
	}{
		{"disabled", "ssh:\n  idle_timeout: 0s\n", 0, false},
		{"long enough", "ssh:\n  idle_timeout: 3h\n", 3 * time.Hour, false},
		{"exactly the idle window", "ssh:\n  idle_timeout: 48m\n", badges.LoiterIdle, false},
		{"too short", "ssh:\n  idle_timeout: 30m\n", 0, true},
		{"left out keeps default", "game:\n  frame_rate: 30\n", Default().SSH.IdleTimeout, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "idle_timeout") {
					t.Errorf("Load() error = %v, want an idle_timeout error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.SSH.IdleTimeout != tt.want {
				t.Errorf("IdleTimeout = %s, want %s", cfg.SSH.IdleTimeout, tt.want)
			}
		})
	}
}

func TestSSHIdleTimeoutEnvDisable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TIMEWASTER_SSH_IDLE_TIMEOUT", "0s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.SSH.IdleTimeout != 0 {
		t.Errorf("Env should disable the timeout, got %s", cfg.SSH.IdleTimeout)
	}
}
