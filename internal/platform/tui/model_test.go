package tui

import (
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-timewaster/internal/badges"
	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/progress"
	"github.com/vovakirdan/tui-timewaster/internal/state"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestApp(t *testing.T) (App, *progress.Tracker, *fakeClock) {
	t.Helper()
	c := &fakeClock{t: epoch}
	logger := log.New(io.Discard)
	gw := progress.NewGateway(nil, "test", "session", logger)
	tr := progress.NewTracker(gw, progress.WithClock(c.now), progress.WithLogger(logger))

	app := NewApp(tr, Options{
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 20, Seed: 42},
	})
	return app, tr, c
}

func send(t *testing.T, m App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		app, ok := next.(App)
		if !ok {
			t.Fatalf("Update returned %T, want App", next)
		}
		m = app
	}
	return m
}

func repeatKey(k string, n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = keyMsg(k)
	}
	return msgs
}

func TestNewAppStartsOnCurrentLevel(t *testing.T) {
	m, _, _ := newTestApp(t)
	if m.screen != screenGrid || m.cursor != 0 {
		t.Errorf("Expected grid at level 1, got %v cursor %d", m.screen, m.cursor)
	}
	if cmd := m.Init(); cmd == nil {
		t.Error("Init should schedule the frame and idle ticks")
	}
}

func TestGridNavigation(t *testing.T) {
	m, _, _ := newTestApp(t)

	tests := []struct {
		key  string
		want int
	}{
		{"left", 0}, // first column
		{"up", 0},   // first row
		{"right", 1},
		{"down", 11},
		{"left", 10},
		{"left", 10},
		{"up", 0},
		{"right", 1},
	}

	for i, tt := range tests {
		m = send(t, m, keyMsg(tt.key))
		if m.cursor != tt.want {
			t.Fatalf("Step %d (%s): cursor = %d, want %d", i, tt.key, m.cursor, tt.want)
		}
	}

	m.cursor = 9
	m = send(t, m, keyMsg("right"))
	if m.cursor != 9 {
		t.Errorf("Right should stop at the row end, got %d", m.cursor)
	}
	m.cursor = 95
	m = send(t, m, keyMsg("down"))
	if m.cursor != 95 {
		t.Errorf("Down should stop at the last row, got %d", m.cursor)
	}
}

func TestOpenLockedAndPlaceholderLevels(t *testing.T) {
	m, _, _ := newTestApp(t)

	m.cursor = 1
	m = send(t, m, keyMsg("enter"))
	if m.screen != screenGrid || !strings.Contains(m.message, "locked") {
		t.Errorf("Level 2 should be locked, screen %v message %q", m.screen, m.message)
	}

	m.cursor = 60
	m = send(t, m, keyMsg("enter"))
	if m.screen != screenGrid || !strings.Contains(m.message, "Coming Soon (Never)") {
		t.Errorf("Level 61 should be a placeholder, screen %v message %q", m.screen, m.message)
	}
}

func TestPlayClickLevel(t *testing.T) {
	m, tr, c := newTestApp(t)

	m = send(t, m, keyMsg("enter"))
	if m.screen != screenPlay || m.game == nil {
		t.Fatalf("Expected the click game, screen %v", m.screen)
	}
	if tr.State().CurrentLevel != 1 {
		t.Errorf("Opening a level should set the current level")
	}

	c.t = epoch.Add(42 * time.Second)
	m = send(t, m, repeatKey("c", 100)...)
	m = send(t, m, FrameMsg(c.t))

	st := tr.State()
	if st.TotalClicks != 100 {
		t.Errorf("Expected 100 clicks, got %d", st.TotalClicks)
	}
	if !slices.Equal(st.CompletedLevels, []int{1}) || st.UnlockedLevels != 2 {
		t.Errorf("Level 1 should be completed, got %v unlocked %d", st.CompletedLevels, st.UnlockedLevels)
	}
	if st.TotalTimeWasted != 42 {
		t.Errorf("Expected 42s wasted, got %d", st.TotalTimeWasted)
	}
	if m.screen != screenGrid || m.cursor != 1 {
		t.Errorf("Expected grid on level 2 after completion, got %v cursor %d", m.screen, m.cursor)
	}

	b, ok := tr.PendingBadge()
	if !ok || b.ID != badges.FirstLevel {
		t.Fatalf("Expected the first level badge, got %v %v", b.ID, ok)
	}
	if !strings.Contains(m.View(), b.Name) {
		t.Error("Popup should show the badge name")
	}

	// Any key dismisses the popup without moving the cursor
	m = send(t, m, keyMsg("right"))
	if _, ok := tr.PendingBadge(); ok {
		t.Error("Popup should be dismissed")
	}
	if m.cursor != 1 {
		t.Errorf("Dismissing key should be swallowed, cursor = %d", m.cursor)
	}
}

func TestMouseClicksCount(t *testing.T) {
	m, tr, c := newTestApp(t)
	m = send(t, m, keyMsg("enter"))

	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = send(t, m, click, click, click, FrameMsg(c.t))

	if got := tr.State().TotalClicks; got != 3 {
		t.Errorf("Expected 3 clicks, got %d", got)
	}
	if m.screen != screenPlay {
		t.Errorf("Three clicks should not finish level 1")
	}
}

func TestPlaySpacebarLevel(t *testing.T) {
	m, tr, c := newTestApp(t)
	tr.Apply(state.Delta{UnlockedLevels: state.Ptr(5)})

	m.cursor = 4
	m = send(t, m, keyMsg("enter"))
	m = send(t, m, repeatKey(" ", 200)...)
	m = send(t, m, FrameMsg(c.t))

	st := tr.State()
	if st.TotalSpacebars != 200 || !st.HasCompleted(5) {
		t.Errorf("Expected 200 spacebars and level 5 done, got %d %v", st.TotalSpacebars, st.CompletedLevels)
	}
	if b, _ := tr.PendingBadge(); b.ID != badges.SpacebarWarrior {
		t.Errorf("Expected the spacebar badge first, got %q", b.ID)
	}
}

func TestPlayWaitLevelUsesFrameTime(t *testing.T) {
	m, tr, _ := newTestApp(t)
	tr.Apply(state.Delta{UnlockedLevels: state.Ptr(2)})

	m.cursor = 1
	m = send(t, m, keyMsg("enter"), keyMsg("enter"))

	now := epoch
	m = send(t, m, FrameMsg(now))
	for _, step := range []time.Duration{31 * time.Second, time.Second, time.Second} {
		now = now.Add(step)
		m = send(t, m, FrameMsg(now))
		if m.screen != screenPlay {
			t.Fatalf("Wait level finished too early after %s", now.Sub(epoch))
		}
	}

	now = now.Add(time.Second)
	m = send(t, m, FrameMsg(now))
	if m.screen != screenGrid || !tr.State().HasCompleted(2) {
		t.Errorf("Wait level should be done, screen %v completed %v", m.screen, tr.State().CompletedLevels)
	}
}

func TestBackLeavesGame(t *testing.T) {
	m, tr, c := newTestApp(t)
	m = send(t, m, keyMsg("enter"), keyMsg("c"), keyMsg("esc"), FrameMsg(c.t))

	if m.screen != screenGrid || m.game != nil {
		t.Errorf("Esc should return to the grid, got %v", m.screen)
	}
	if tr.State().TotalClicks != 0 {
		t.Error("Input collected before leaving must be dropped")
	}
}

func TestKeysStampActivity(t *testing.T) {
	m, tr, c := newTestApp(t)

	c.t = epoch.Add(10 * time.Minute)
	send(t, m, keyMsg("z"))

	if !tr.State().LastActiveTime.Equal(c.t) {
		t.Errorf("Unbound keys should still count as activity, got %v", tr.State().LastActiveTime)
	}
}

func TestIdleTickAwardsLoiterer(t *testing.T) {
	m, tr, c := newTestApp(t)

	c.t = epoch.Add(30 * time.Minute)
	m = send(t, m, IdleMsg(c.t))
	if tr.PendingCount() != 0 {
		t.Fatal("No badge expected after 30 idle minutes")
	}

	c.t = epoch.Add(61 * time.Minute)
	next, cmd := m.Update(IdleMsg(c.t))
	if cmd == nil {
		t.Error("Idle tick should reschedule itself")
	}
	if b, ok := tr.PendingBadge(); !ok || b.ID != badges.CertifiedLoiterer {
		t.Errorf("Expected the loiterer badge, got %q", b.ID)
	}
	if !strings.Contains(next.View(), "Certified Loiterer") {
		t.Error("Popup should show the loiterer badge")
	}
}

func TestBadgeScreen(t *testing.T) {
	m, _, _ := newTestApp(t)

	m = send(t, m, keyMsg("b"))
	if m.screen != screenBadges {
		t.Fatalf("Expected the badge screen, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "BADGES - 0 of 10") {
		t.Error("Badge screen should count earned badges")
	}

	m = send(t, m, keyMsg("down"), keyMsg("esc"))
	if m.screen != screenGrid {
		t.Errorf("Esc should return to the grid, got %v", m.screen)
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestApp(t)

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if next.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestViewGrid(t *testing.T) {
	m, _, _ := newTestApp(t)
	view := m.View()

	for _, want := range []string{"Level 1: The Beginning of Your Downfall", "Completed:", "of your life wasted"} {
		if !strings.Contains(view, want) {
			t.Errorf("Grid view is missing %q", want)
		}
	}
}

func TestPopupClosesItself(t *testing.T) {
	m, tr, _ := newTestApp(t)
	tr.Apply(state.Delta{TotalTimeWasted: state.Ptr(int64(301))})

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(App)
	if cmd == nil || !m.popupArmed {
		t.Fatal("A new popup should start its close timer")
	}

	// A timer from an earlier popup does nothing
	m = send(t, m, popupExpiredMsg{seq: m.popupSeq - 1})
	if _, ok := tr.PendingBadge(); !ok {
		t.Fatal("Stale timer closed the popup")
	}

	m = send(t, m, popupExpiredMsg{seq: m.popupSeq})
	if _, ok := tr.PendingBadge(); ok {
		t.Error("Popup should close when its timer fires")
	}
	if m.popupArmed {
		t.Error("Timer should be disarmed after closing")
	}
}

func TestPopupDoesNotEatGameInput(t *testing.T) {
	m, tr, c := newTestApp(t)
	m = send(t, m, keyMsg("enter"))
	tr.Apply(state.Delta{TotalTimeWasted: state.Ptr(int64(301))})

	m = send(t, m, keyMsg("c"), keyMsg(" "), keyMsg("c"), FrameMsg(c.t))

	if got := tr.State().TotalClicks; got != 2 {
		t.Errorf("Clicks under a popup should count, got %d", got)
	}
	if b, ok := tr.PendingBadge(); !ok || b.ID != badges.FiveMinutesGone {
		t.Fatalf("Popup should stay up during play, got %q %v", b.ID, ok)
	}

	view := m.View()
	for _, want := range []string{"Five Minutes Gone", "Level 1:"} {
		if !strings.Contains(view, want) {
			t.Errorf("Play view with popup is missing %q", want)
		}
	}
}

func TestMouseMotionStampsActivity(t *testing.T) {
	m, tr, c := newTestApp(t)
	motion := tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}

	c.t = epoch.Add(10 * time.Minute)
	m = send(t, m, motion)
	if !tr.State().LastActiveTime.Equal(c.t) {
		t.Fatalf("Mouse motion should count as activity, got %v", tr.State().LastActiveTime)
	}

	stamped := c.t
	c.t = c.t.Add(motionTouchEvery / 2)
	send(t, m, motion)
	if !tr.State().LastActiveTime.Equal(stamped) {
		t.Errorf("Motion right after activity should not stamp again, got %v", tr.State().LastActiveTime)
	}
}
