// Package tui provides the Bubble Tea front end for the time waster.
// It handles the terminal UI loop, input mapping and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the running mini-game.
type FrameMsg time.Time

// IdleMsg is sent to re-check badges that only depend on elapsed time.
type IdleMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// idleCmd schedules the next idle badge check.
func idleCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return IdleMsg(t)
	})
}

// PopupTimeout is how long a badge popup stays up on its own.
const PopupTimeout = 5 * time.Second

// popupExpiredMsg closes the popup armed with the same seq.
type popupExpiredMsg struct{ seq int }

func popupCmd(seq int) tea.Cmd {
	return tea.Tick(PopupTimeout, func(time.Time) tea.Msg {
		return popupExpiredMsg{seq: seq}
	})
}
