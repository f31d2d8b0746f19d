package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-timewaster/internal/badges"
	"github.com/vovakirdan/tui-timewaster/internal/state"
)

// Badge board layout constants
const (
	iconColWidth   = 4
	nameColWidth   = 24
	statusColWidth = 8
	minDescWidth   = 20
)

// BadgeBoard lists every badge, earned ones first.
type BadgeBoard struct {
	theme  Theme
	table  table.Model
	earned int
	total  int
	width  int
	height int
}

// NewBadgeBoard creates an empty badge board.
func NewBadgeBoard(theme Theme, width, height int) BadgeBoard {
	b := BadgeBoard{
		theme:  theme,
		total:  len(badges.All()),
		width:  width,
		height: height,
	}
	b.table = b.createTable()
	return b
}

// createTable creates a new table with appropriate columns.
func (b BadgeBoard) createTable() table.Model {
	descWidth := max(b.width-iconColWidth-nameColWidth-statusColWidth-12, minDescWidth)
	columns := []table.Column{
		{Title: "", Width: iconColWidth},
		{Title: "Badge", Width: nameColWidth},
		{Title: "Description", Width: descWidth},
		{Title: "Status", Width: statusColWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the rows from s.
func (b BadgeBoard) Refresh(s state.State) BadgeBoard {
	earned, unearned := badges.Split(s)
	b.earned = len(earned)

	rows := make([]table.Row, 0, len(earned)+len(unearned))
	for _, badge := range earned {
		rows = append(rows, table.Row{badge.Icon, badge.Name, badge.Description, "Earned"})
	}
	for _, badge := range unearned {
		rows = append(rows, table.Row{"🔒", badge.Name, badge.Description, "Locked"})
	}
	b.table.SetRows(rows)

	// Reset cursor to top
	b.table.GotoTop()
	return b
}

// Resize rebuilds the table for a new terminal size.
func (b BadgeBoard) Resize(width, height int) BadgeBoard {
	rows := b.table.Rows()
	b.width = width
	b.height = height
	b.table = b.createTable()
	b.table.SetRows(rows)
	return b
}

// Scroll moves the table cursor by delta rows.
func (b BadgeBoard) Scroll(delta int) BadgeBoard {
	if delta < 0 {
		b.table.MoveUp(-delta)
	} else {
		b.table.MoveDown(delta)
	}
	return b
}

// View renders the board with h as the help bar.
func (b BadgeBoard) View(h help.Model) string {
	var sb strings.Builder

	title := fmt.Sprintf("BADGES - %d of %d", b.earned, b.total)
	sb.WriteString(b.theme.Title.MarginBottom(1).Render(centerText(title, b.width)))
	sb.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	sb.WriteString(centerBlock(tableStyle.Render(b.table.View()), b.width))

	// Help bar
	sb.WriteString("\n")
	keys := DefaultKeyMap()
	sb.WriteString(b.theme.Help.Render(h.View(helpKeys([]key.Binding{keys.Up, keys.Down, keys.Back, keys.Quit}))))

	return sb.String()
}
