package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/platform/tui"
	"github.com/vovakirdan/tui-timewaster/internal/progress"
	"github.com/vovakirdan/tui-timewaster/internal/storage"
)

var (
	flagSeed       int64
	flagMonochrome bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start wasting time",
	Long: `Open the level grid and start wasting time.

Controls:
  Arrows/WASD  - Move around the grid, slider and pixel field
  Enter        - Open a level, click the button, start waiting
  C/Mouse      - Click the button
  Space        - Press the spacebar (a lot)
  B/Tab        - Badges
  Esc          - Back to the grid
  Q/Ctrl+C     - Quit

Progress is saved after every action. The log goes to the log file
(see --log-file) so it does not disturb the screen.

Examples:
  timewaster play
  timewaster play --player alice
  timewaster play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the pixel hunts (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagMonochrome, "mono", false, "Use the monochrome theme")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Log to a file; the alt screen owns the terminal
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg)

	// Get terminal size early for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open save storage
	var blobs progress.BlobStore
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		logger.Warn("playing without saves", "error", err)
		// Continue without storage - progress lives in memory
	} else {
		blobs = store
	}

	sessionID := uuid.NewString()
	sessionLog := logger.With("session", sessionID)
	gw := progress.NewGateway(blobs, saveName(cfg), sessionID, sessionLog)
	tracker := progress.NewTracker(gw, progress.WithLogger(sessionLog))
	sessionLog.Info("session started", "save", gw.Name())

	runErr := tui.Run(tracker, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Game.FrameRate,
			Seed:     flagSeed,
		},
		IdleCheckInterval: cfg.Game.IdleCheckInterval,
		GridColumns:       cfg.Game.GridColumns,
		Player:            flagPlayer,
		Monochrome:        flagMonochrome,
	})
	sessionLog.Info("session ended", "wasted", tracker.State().TotalTimeWasted)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
