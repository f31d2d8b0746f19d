package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/progress"
	"github.com/vovakirdan/tui-timewaster/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures `timewaster serve`.
type SSHServerConfig struct {
	Address     string        // listen address, e.g. ":23234"
	HostKeyPath string        // empty means ~/.timewaster/host_key, generated on first start
	IdleTimeout time.Duration // idle connections are dropped after this, 0 keeps them

	// Game holds the per-session play options. Screen size, seed and
	// player are filled in per connection.
	Game Options
}

// DefaultSSHServerConfig mirrors the ssh section of the default config.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 2 * time.Hour,
		Game: Options{
			Runtime:           core.DefaultConfig(),
			IdleCheckInterval: time.Minute,
			GridColumns:       10,
		},
	}
}

// SaveNameFor returns the save slot used for an SSH user.
func SaveNameFor(user string) string {
	return "player:" + user
}

// SSHServer hosts time wasting sessions over Wish. Every connection gets
// its own App and tracker bound to the save of its SSH user.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer prepares the server. store may be nil, in which case
// progress is kept in memory only. The caller keeps ownership of store.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "timewaster-ssh",
		})
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, store: store, logger: logger}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		// Middlewares run last to first
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.sessionLog,
		),
	}
	// 0 keeps idle players connected
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	s.srv, err = wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".timewaster", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested, nothing to waste time on", "user", sess.User())
		return nil, nil
	}

	app := s.newSession(sess.User(), pty.Window.Width, pty.Window.Height)
	return app, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// newSession builds the App for one connection of user.
func (s *SSHServer) newSession(user string, width, height int) App {
	sessionID := uuid.NewString()
	logger := s.logger.With("user", user, "session", sessionID)

	// A nil *storage.Store must not end up inside the interface
	var blobs progress.BlobStore
	if s.store != nil {
		blobs = s.store
	}
	gw := progress.NewGateway(blobs, SaveNameFor(user), sessionID, logger)
	tracker := progress.NewTracker(gw, progress.WithLogger(logger))

	opts := s.cfg.Game
	opts.Runtime.ScreenW = width
	opts.Runtime.ScreenH = height
	opts.Runtime.Seed = time.Now().UnixNano()
	opts.Player = user

	return NewApp(tracker, opts)
}

// sessionLog reports connects and disconnects with the session length.
func (s *SSHServer) sessionLog(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		n := s.active.Add(1)
		s.logger.Info("connected", "user", sess.User(), "remote", remote, "active", n)

		next(sess)

		n = s.active.Add(-1)
		s.logger.Info("disconnected",
			"user", sess.User(),
			"remote", remote,
			"wasted", time.Since(start).Round(time.Second),
			"active", n,
		)
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve serves until ctx is done or the listener fails.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.cfg.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.active.Load())
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits briefly for open ones.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}

// Active returns the number of open sessions.
func (s *SSHServer) Active() int64 {
	return s.active.Load()
}
