package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-timewaster/internal/badges"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
	"github.com/vovakirdan/tui-timewaster/internal/state"
)

// tileState is how a level is drawn on the grid.
type tileState int

const (
	tileLocked tileState = iota
	tileUnlocked
	tileCompleted
	tilePlaceholder
)

func levelTile(s state.State, lvl levels.Level) tileState {
	switch {
	case !lvl.Playable():
		return tilePlaceholder
	case s.HasCompleted(lvl.ID):
		return tileCompleted
	case s.IsUnlocked(lvl.ID):
		return tileUnlocked
	default:
		return tileLocked
	}
}

// viewGrid renders the level picker with the stats header.
func (m App) viewGrid() string {
	st := m.tracker.State()
	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("T H E   U L T I M A T E   T I M E   W A S T E R"), m.width))
	b.WriteString("\n")
	subtitle := "Because your time is worthless anyway"
	if m.opts.Player != "" {
		subtitle = fmt.Sprintf("Welcome back, %s. %s", m.opts.Player, subtitle)
	}
	b.WriteString(centerText(m.theme.Subtitle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	// Stats
	b.WriteString(centerText(m.renderStats(st), m.width))
	b.WriteString("\n")
	life := st.LifeWastePercent()
	lifeLine := m.bar.ViewAs(life/100) + m.theme.StatLabel.Render(" of your life wasted")
	b.WriteString(centerText(lifeLine, m.width))
	b.WriteString("\n\n")

	// Level grid
	b.WriteString(centerBlock(m.renderTiles(st), m.width))
	b.WriteString("\n\n")

	// Selected level
	lvl, _ := levels.Get(m.cursor + 1)
	b.WriteString(centerText(m.theme.LevelTitle.Render(fmt.Sprintf("Level %d: %s", lvl.ID, lvl.Title)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Description.Render(m.tileCaption(st, lvl)), m.width))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Message.Render(m.message), m.width))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(helpKeys(gridHelp(m.keyMapper.Keys())))), m.width))

	return b.String()
}

func (m App) renderStats(st state.State) string {
	sep := m.theme.Separator.Render("  |  ")
	stat := func(label, value string) string {
		return m.theme.StatLabel.Render(label+" ") + m.theme.StatValue.Render(value)
	}

	return strings.Join([]string{
		stat("Time wasted:", formatDuration(st.TotalTimeWasted)),
		stat("Clicks:", humanize.Comma(int64(st.TotalClicks))),
		stat("Spacebars:", humanize.Comma(int64(st.TotalSpacebars))),
		stat("Completed:", fmt.Sprintf("%d/%d", len(st.CompletedLevels), levels.PlayableCount)),
		stat("Badges:", fmt.Sprintf("%d/%d", len(st.Badges), len(badges.All()))),
	}, sep)
}

// renderTiles draws the level numbers in rows of GridColumns.
func (m App) renderTiles(st state.State) string {
	var b strings.Builder
	cols := m.opts.GridColumns

	for i, lvl := range levels.All() {
		if i > 0 && i%cols == 0 {
			b.WriteString("\n")
		}

		label := fmt.Sprintf(" %3d ", lvl.ID)
		style := m.theme.TileLocked
		switch levelTile(st, lvl) {
		case tileUnlocked:
			style = m.theme.TileUnlocked
		case tileCompleted:
			label = fmt.Sprintf(" ✓%2d ", lvl.ID)
			style = m.theme.TileCompleted
		case tilePlaceholder:
			label = "  ·  "
			style = m.theme.TilePlaceholder
		}
		if i == m.cursor {
			style = m.theme.TileCursor
		}
		b.WriteString(style.Render(label))
	}
	return b.String()
}

// tileCaption describes the level under the cursor.
func (m App) tileCaption(st state.State, lvl levels.Level) string {
	switch levelTile(st, lvl) {
	case tilePlaceholder:
		return lvl.Description
	case tileLocked:
		return "Locked. Finish the previous level first."
	case tileCompleted:
		times := 0
		for _, id := range st.CompletedLevels {
			if id == lvl.ID {
				times++
			}
		}
		return fmt.Sprintf("%s (completed %s)", lvl.Description, plural(times, "time"))
	default:
		return lvl.Description
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// gridHelp lists the bindings shown under the grid.
func gridHelp(k KeyMap) []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Confirm, k.Badges, k.Quit}
}
