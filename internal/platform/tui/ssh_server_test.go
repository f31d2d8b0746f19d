package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-timewaster/internal/storage"
)

func TestNewSSHServerSession(t *testing.T) {
	dir := t.TempDir()

	store, err := storage.Open(filepath.Join(dir, "saves.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")

	srv, err := NewSSHServer(cfg, store, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.Active() != 0 {
		t.Errorf("Active() = %d, want 0", srv.Active())
	}

	app := srv.newSession("alice", 120, 40)
	if app.opts.Player != "alice" {
		t.Errorf("Player = %q, want alice", app.opts.Player)
	}
	if app.width != 120 || app.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", app.width, app.height)
	}

	// Clicking through level 1 persists under the player's save
	app.tracker.AddClicks(3)
	if _, err := store.LoadSave(SaveNameFor("alice")); err != nil {
		t.Errorf("LoadSave(player:alice) error: %v", err)
	}
}

func TestNewSSHServerWithoutStore(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, nil, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}

	app := srv.newSession("bob", 80, 24)
	app.tracker.AddClicks(1)
	if got := app.tracker.State().TotalClicks; got != 1 {
		t.Errorf("TotalClicks = %d, want 1", got)
	}
}
