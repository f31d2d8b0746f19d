// timewaster is the ultimate time waster, in your terminal.
//
// Usage:
//
//	timewaster               - Start wasting time (same as play)
//	timewaster play          - Start wasting time
//	timewaster serve         - Start SSH server for remote time wasting
//	timewaster levels        - List the level catalog
//	timewaster badges        - Show earned and unearned badges
//	timewaster stats         - Show how much time you have wasted
//	timewaster reset         - Delete a save
//	timewaster config        - Print the configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--db <path>         - Set database path (default: ~/.timewaster/saves.db)
//	--player <name>     - Use the save of an SSH player instead of the local one
//	--log-file <path>   - Where the TUI writes its log
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timewaster/internal/config"
	"github.com/vovakirdan/tui-timewaster/internal/platform/tui"
	"github.com/vovakirdan/tui-timewaster/internal/progress"
	"github.com/vovakirdan/tui-timewaster/internal/state"
	"github.com/vovakirdan/tui-timewaster/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagPlayer   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "timewaster",
	Short: "The Ultimate Time Waster - because your time is worthless anyway",
	Long: `The Ultimate Time Waster is a collection of pointless mini-games
played in your terminal. Click buttons, watch progress bars, drag sliders,
hunt for a single pixel and abuse your spacebar. Earn badges for it.

Available commands:
  play     - Start wasting time (default)
  serve    - Start SSH server for remote time wasting
  levels   - List the level catalog
  badges   - Show earned and unearned badges
  stats    - Show how much time you have wasted
  reset    - Delete a save
  config   - Print the configuration

Examples:
  timewaster
  timewaster serve --ssh :2222
  timewaster levels --kind slider
  timewaster stats --player alice`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to saves database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "SSH player whose save to use")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for the TUI (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the global flag overrides.
// Exits on error.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// saveName picks the save slot: the --player save or the local one.
func saveName(cfg config.Config) string {
	if flagPlayer != "" {
		return tui.SaveNameFor(flagPlayer)
	}
	return cfg.Storage.SaveName
}

// newLogger creates a charm logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "timewaster",
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// mustOpenStore opens the saves database. Exits on error.
func mustOpenStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// loadProgress reads the state of the selected save without starting a session.
func loadProgress(cfg config.Config, store *storage.Store, logger *log.Logger) state.State {
	gw := progress.NewGateway(store, saveName(cfg), "", logger)
	return gw.Load(time.Now())
}
