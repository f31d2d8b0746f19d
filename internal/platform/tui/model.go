package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
	"github.com/vovakirdan/tui-timewaster/internal/minigame"
	"github.com/vovakirdan/tui-timewaster/internal/progress"
)

// motionTouchEvery throttles how often mouse motion stamps activity.
const motionTouchEvery = time.Second

// Options configures an App.
type Options struct {
	Runtime           core.RuntimeConfig
	IdleCheckInterval time.Duration // how often time-only badges are re-checked
	GridColumns       int
	Player            string // shown in the header, empty for local play
	Monochrome        bool
}

type screen int

const (
	screenGrid screen = iota
	screenPlay
	screenBadges
)

func (s screen) String() string {
	switch s {
	case screenGrid:
		return "grid"
	case screenPlay:
		return "play"
	case screenBadges:
		return "badges"
	default:
		return "unknown"
	}
}

// App is the Bubble Tea model for a whole time wasting session:
// level grid, mini-game, badge board and badge popups.
type App struct {
	tracker   *progress.Tracker
	opts      Options
	theme     Theme
	keyMapper *KeyMapper
	help      help.Model
	bar       progressbar.Model
	board     BadgeBoard

	screen    screen
	cursor    int // index into the level grid
	game      minigame.Game
	input     core.InputFrame
	lastFrame time.Time
	plays     int64 // games started this session, mixed into the seed
	message   string

	popupSeq   int
	popupArmed bool // a close timer runs for the popup on screen

	width    int
	height   int
	quitting bool
}

// NewApp creates the session model around tracker.
func NewApp(tracker *progress.Tracker, opts Options) App {
	defaults := core.DefaultConfig()
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = defaults.TickRate
	}
	if opts.Runtime.ScreenW <= 0 {
		opts.Runtime.ScreenW = defaults.ScreenW
	}
	if opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenH = defaults.ScreenH
	}
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.IdleCheckInterval <= 0 {
		opts.IdleCheckInterval = time.Minute
	}
	if opts.GridColumns <= 0 {
		opts.GridColumns = 10
	}

	theme := DefaultTheme()
	if opts.Monochrome {
		theme = MonochromeTheme()
	}

	st := tracker.State()
	cursor := min(max(st.CurrentLevel-1, 0), levels.TotalCount-1)

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return App{
		tracker:   tracker,
		opts:      opts,
		theme:     theme,
		keyMapper: NewKeyMapper(),
		help:      h,
		bar:       progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithWidth(40)),
		board:     NewBadgeBoard(theme, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		cursor:    cursor,
		input:     core.NewInputFrame(),
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
	}
}

// Init starts the frame loop and the idle badge check.
func (m App) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.opts.Runtime.TickRate),
		idleCmd(m.opts.IdleCheckInterval),
	)
}

// Update handles messages and updates the model state.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	if arm := m.armPopup(); arm != nil {
		cmd = tea.Batch(cmd, arm)
	}
	return m, cmd
}

func (m App) update(msg tea.Msg) (App, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keyMapper.MapKey(msg))

	case tea.MouseMsg:
		action := m.keyMapper.MapMouse(msg)
		if action == core.ActionNone {
			if msg.Action == tea.MouseActionMotion {
				m.tracker.TouchAfter(motionTouchEvery)
			}
			return m, nil
		}
		return m.handleAction(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.board = m.board.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case IdleMsg:
		m.tracker.CheckIdle()
		return m, idleCmd(m.opts.IdleCheckInterval)

	case popupExpiredMsg:
		if m.popupArmed && msg.seq == m.popupSeq {
			m.dismissPopup()
		}
		return m, nil
	}

	return m, nil
}

// armPopup starts the close timer when a new badge popup comes up.
func (m *App) armPopup() tea.Cmd {
	if m.popupArmed {
		return nil
	}
	if _, ok := m.tracker.PendingBadge(); !ok {
		return nil
	}
	m.popupSeq++
	m.popupArmed = true
	return popupCmd(m.popupSeq)
}

func (m *App) dismissPopup() {
	m.tracker.DismissBadge()
	m.popupArmed = false
}

// handleAction routes one input action to the active screen.
func (m App) handleAction(action core.Action) (App, tea.Cmd) {
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Outside a game a pending popup swallows the key. In a game the
	// input goes through and the popup closes on its timer.
	if _, ok := m.tracker.PendingBadge(); ok && m.screen != screenPlay {
		m.dismissPopup()
		m.tracker.Touch()
		return m, nil
	}

	switch m.screen {
	case screenPlay:
		m.playAction(action)
	case screenBadges:
		m.badgesAction(action)
	default:
		m.gridAction(action)
	}
	return m, nil
}

// gridAction handles input on the level grid.
func (m *App) gridAction(action core.Action) {
	cols := m.opts.GridColumns

	switch action {
	case core.ActionUp:
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case core.ActionDown:
		if m.cursor+cols < levels.TotalCount {
			m.cursor += cols
		}
	case core.ActionLeft:
		if m.cursor%cols > 0 {
			m.cursor--
		}
	case core.ActionRight:
		if (m.cursor+1)%cols != 0 && m.cursor+1 < levels.TotalCount {
			m.cursor++
		}
	case core.ActionConfirm, core.ActionClick, core.ActionSpace:
		m.openLevel(m.cursor + 1)
		return
	case core.ActionBadges:
		m.board = m.board.Refresh(m.tracker.State())
		m.screen = screenBadges
	}

	m.message = ""
	m.tracker.Touch()
}

// openLevel starts the mini-game for id if the player may play it.
func (m *App) openLevel(id int) {
	st := m.tracker.State()

	switch err := levels.CheckPlayable(id); {
	case errors.Is(err, levels.ErrNotPlayable):
		m.message = fmt.Sprintf("Level %d: Coming Soon (Never)", id)
		m.tracker.Touch()
		return
	case err != nil:
		m.message = err.Error()
		m.tracker.Touch()
		return
	case !st.IsUnlocked(id):
		m.message = fmt.Sprintf("Level %d is locked. Waste more time first.", id)
		m.tracker.Touch()
		return
	}

	m.plays++
	g, err := minigame.New(id, m.opts.Runtime.Seed+m.plays)
	if err != nil {
		m.message = err.Error()
		m.tracker.Touch()
		return
	}

	m.game = g
	m.input.Clear()
	m.screen = screenPlay
	m.message = ""
	m.tracker.OpenLevel(id)
}

// playAction collects input for the next mini-game step.
func (m *App) playAction(action core.Action) {
	switch action {
	case core.ActionBack:
		m.leaveGame()
		m.tracker.Touch()
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionConfirm, core.ActionClick, core.ActionSpace:
		// Counted at the next frame, which also stamps activity
		m.input.Set(action)
	default:
		m.tracker.Touch()
	}
}

// badgesAction handles input on the badge board.
func (m *App) badgesAction(action core.Action) {
	switch action {
	case core.ActionUp:
		m.board = m.board.Scroll(-1)
	case core.ActionDown:
		m.board = m.board.Scroll(1)
	case core.ActionBack, core.ActionBadges, core.ActionConfirm:
		m.screen = screenGrid
	}
	m.tracker.Touch()
}

// handleFrame advances the mini-game by the time since the last frame.
func (m App) handleFrame(now time.Time) (App, tea.Cmd) {
	dt := time.Second / time.Duration(m.opts.Runtime.TickRate)
	if !m.lastFrame.IsZero() {
		dt = max(now.Sub(m.lastFrame), 0)
	}
	m.lastFrame = now

	if m.screen == screenPlay && m.game != nil {
		m.stepGame(dt)
	}

	// Continue ticking
	return m, frameCmd(m.opts.Runtime.TickRate)
}

// stepGame runs one mini-game step and feeds its counters to the tracker.
func (m *App) stepGame(dt time.Duration) {
	hadInput := false
	for _, n := range m.input.Actions {
		if n > 0 {
			hadInput = true
			break
		}
	}

	res := m.game.Step(m.input, dt)
	m.input.Clear()

	counted := false
	if res.Clicks > 0 {
		m.tracker.AddClicks(res.Clicks)
		counted = true
	}
	if res.Spacebars > 0 {
		m.tracker.AddSpacebars(res.Spacebars)
		counted = true
	}

	if res.Completed {
		id := m.game.Level().ID
		if _, err := m.tracker.CompleteLevel(id); err != nil {
			m.message = err.Error()
		} else {
			wasted := m.tracker.State().TotalTimeWasted
			m.message = fmt.Sprintf("Level %d complete! %s of your life, gone.", id, formatDuration(wasted))
		}
		m.leaveGame()
		m.cursor = min(id, levels.TotalCount-1)
		return
	}

	if hadInput && !counted {
		m.tracker.Touch()
	}
}

func (m *App) leaveGame() {
	m.game = nil
	m.input.Clear()
	m.screen = screenGrid
}

// View renders the current state to a string for display.
func (m App) View() string {
	if m.quitting {
		return ""
	}

	if b, ok := m.tracker.PendingBadge(); ok {
		more := m.tracker.PendingCount() - 1
		if m.screen == screenPlay {
			return renderPopupOver(m.theme, b, more, m.width, m.viewPlay())
		}
		return renderPopup(m.theme, b, more, m.width, m.height)
	}

	switch m.screen {
	case screenPlay:
		return m.viewPlay()
	case screenBadges:
		return m.board.View(m.help)
	default:
		return m.viewGrid()
	}
}

// Run starts the Bubble Tea program for a local session.
func Run(tracker *progress.Tracker, opts Options) error {
	model := NewApp(tracker, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Clicks count on the button levels, motion counts as activity
	)

	_, err := p.Run()
	return err
}
