// Package state defines the player's progress record and the partial
// update (Delta) merged into it. Nothing here knows about badges or storage.
package state

import (
	"slices"
	"time"
)

// State is a player's cumulative progress.
type State struct {
	CurrentLevel    int
	UnlockedLevels  int
	CompletedLevels []int    // completion order, replays append again
	Badges          []string // earn order, unique

	TotalTimeWasted int64 // seconds
	TotalClicks     int
	TotalSpacebars  int

	GameStartTime    time.Time
	SessionStartTime time.Time
	LastActiveTime   time.Time
}

// Default returns the progress of a brand new player at now.
func Default(now time.Time) State {
	return State{
		CurrentLevel:     1,
		UnlockedLevels:   1,
		CompletedLevels:  []int{},
		Badges:           []string{},
		GameStartTime:    now,
		SessionStartTime: now,
		LastActiveTime:   now,
	}
}

// Clone returns a deep copy so snapshots never share slices.
func (s State) Clone() State {
	s.CompletedLevels = slices.Clone(s.CompletedLevels)
	s.Badges = slices.Clone(s.Badges)
	if s.CompletedLevels == nil {
		s.CompletedLevels = []int{}
	}
	if s.Badges == nil {
		s.Badges = []string{}
	}
	return s
}

// HasCompleted reports whether levelID appears in CompletedLevels.
func (s State) HasCompleted(levelID int) bool {
	return slices.Contains(s.CompletedLevels, levelID)
}

// HasBadge reports whether the badge id was already earned.
func (s State) HasBadge(id string) bool {
	return slices.Contains(s.Badges, id)
}

// IsUnlocked reports whether levelID is reachable from the grid.
func (s State) IsUnlocked(levelID int) bool {
	return levelID >= 1 && levelID <= s.UnlockedLevels
}

// WithBadges returns a copy of s with ids appended, skipping ones already held.
func (s State) WithBadges(ids ...string) State {
	out := s.Clone()
	for _, id := range ids {
		if !out.HasBadge(id) {
			out.Badges = append(out.Badges, id)
		}
	}
	return out
}

// SessionElapsed returns the whole seconds since the session started.
func (s State) SessionElapsed(now time.Time) int64 {
	d := now.Sub(s.SessionStartTime)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

// LifeWastePercent maps total time wasted onto 0..100 where an hour is 100.
func (s State) LifeWastePercent() float64 {
	pct := float64(s.TotalTimeWasted) / 3600 * 100
	if pct > 100 {
		return 100
	}
	return pct
}
