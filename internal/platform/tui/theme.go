package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all visual styles for the time waster screens.
type Theme struct {
	// Level grid tiles
	TileLocked      lipgloss.Style
	TileUnlocked    lipgloss.Style
	TileCompleted   lipgloss.Style
	TilePlaceholder lipgloss.Style
	TileCursor      lipgloss.Style

	// Header styles
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Separator lipgloss.Style

	// Play screen
	LevelTitle  lipgloss.Style
	Description lipgloss.Style
	Status      lipgloss.Style
	Button      lipgloss.Style
	Field       lipgloss.Style
	Cursor      lipgloss.Style
	Knob        lipgloss.Style
	Track       lipgloss.Style

	// Badge popup
	PopupBorder lipgloss.Style
	PopupTitle  lipgloss.Style
	PopupText   lipgloss.Style

	// Footer
	Help    lipgloss.Style
	Message lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		TileLocked:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TileUnlocked:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		TileCompleted:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		TilePlaceholder: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		TileCursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),

		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		StatLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		LevelTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Italic(true),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("161")).
			Bold(true).
			Padding(1, 4),
		Field:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Knob:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Track:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		PopupBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(1, 3),
		PopupTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		PopupText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.TileCompleted = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true)
	theme.TileCursor = lipgloss.NewStyle().Reverse(true)
	theme.Title = lipgloss.NewStyle().Bold(true)
	theme.Status = lipgloss.NewStyle().Italic(true)
	theme.Button = theme.Button.Background(lipgloss.Color("240"))
	return theme
}
