// Package progress owns a player's progress for one session. Every change
// to the state goes through Tracker.Apply, which evaluates badges, queues
// them for display and persists the result.
package progress

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-timewaster/internal/badges"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
	"github.com/vovakirdan/tui-timewaster/internal/state"
)

// Tracker is the single owner of a session's progress state.
// It is not safe for concurrent use; drive it from one event loop.
type Tracker struct {
	state   state.State
	pending []badges.Badge
	gateway *Gateway
	now     func() time.Time
	logger  *log.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithLogger sets the logger used for badge and level events.
func WithLogger(logger *log.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// NewTracker loads progress through gw and starts a new session.
func NewTracker(gw *Gateway, opts ...Option) *Tracker {
	t := &Tracker{
		gateway: gw,
		now:     time.Now,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.gateway == nil {
		t.gateway = NewGateway(nil, "", "", t.logger)
	}
	t.state = t.gateway.Load(t.now())
	return t
}

// State returns a copy of the current progress.
func (t *Tracker) State() state.State {
	return t.state.Clone()
}

// Apply merges d into the state, stamps activity and commits any badges
// the merged state has earned. The new badges are returned in table order.
func (t *Tracker) Apply(d state.Delta) []badges.Badge {
	now := t.now()
	prev := t.state

	next := state.Merge(prev, d)
	next.LastActiveTime = now

	return t.commit(next, prev, now)
}

// CompleteLevel records a finished level. Unknown and placeholder ids are
// rejected before they reach the state.
func (t *Tracker) CompleteLevel(levelID int) ([]badges.Badge, error) {
	if err := levels.CheckPlayable(levelID); err != nil {
		return nil, err
	}

	cur := t.state
	completed := append(slices.Clone(cur.CompletedLevels), levelID)
	wasted := cur.TotalTimeWasted + cur.SessionElapsed(t.now())

	t.logger.Debug("level completed", "level", levelID, "wasted", wasted)

	return t.Apply(state.Delta{
		CompletedLevels: completed,
		UnlockedLevels:  state.Ptr(max(cur.UnlockedLevels, levelID+1)),
		TotalTimeWasted: state.Ptr(wasted),
	}), nil
}

// AddClicks counts n more clicks.
func (t *Tracker) AddClicks(n int) []badges.Badge {
	if n <= 0 {
		return t.Touch()
	}
	return t.Apply(state.Delta{TotalClicks: state.Ptr(t.state.TotalClicks + n)})
}

// AddSpacebars counts n more spacebar presses.
func (t *Tracker) AddSpacebars(n int) []badges.Badge {
	if n <= 0 {
		return t.Touch()
	}
	return t.Apply(state.Delta{TotalSpacebars: state.Ptr(t.state.TotalSpacebars + n)})
}

// OpenLevel remembers the level the player is looking at.
func (t *Tracker) OpenLevel(levelID int) []badges.Badge {
	return t.Apply(state.Delta{CurrentLevel: state.Ptr(levelID)})
}

// Touch records user activity without changing any counter.
func (t *Tracker) Touch() []badges.Badge {
	return t.Apply(state.Delta{})
}

// TouchAfter records activity only if the last one is at least d old.
// It keeps chatty sources like mouse motion from saving on every event.
func (t *Tracker) TouchAfter(d time.Duration) []badges.Badge {
	if t.now().Sub(t.state.LastActiveTime) < d {
		return nil
	}
	return t.Touch()
}

// CheckIdle re-evaluates badges against the unchanged state. It catches
// badges that depend on wall-clock time alone. Activity is not stamped.
func (t *Tracker) CheckIdle() []badges.Badge {
	now := t.now()
	earned := badges.Evaluate(t.state, t.state, now)
	if len(earned) == 0 {
		return nil
	}
	return t.commit(t.state, t.state, now)
}

// commit evaluates next against prev, appends new badges, queues them and saves.
func (t *Tracker) commit(next, prev state.State, now time.Time) []badges.Badge {
	earned := badges.Evaluate(next, prev, now)
	ids := badges.IDs(earned)
	if len(earned) > 0 {
		next = next.WithBadges(ids...)
		t.pending = append(t.pending, earned...)
		t.logger.Info("badges earned", "badges", ids)
	}

	t.state = next
	t.gateway.Save(t.state)
	t.gateway.RecordBadges(ids)
	return earned
}

// PendingBadge returns the badge at the head of the display queue.
func (t *Tracker) PendingBadge() (badges.Badge, bool) {
	if len(t.pending) == 0 {
		return badges.Badge{}, false
	}
	return t.pending[0], true
}

// PendingCount returns how many badges wait to be shown.
func (t *Tracker) PendingCount() int {
	return len(t.pending)
}

// DismissBadge drops the head of the display queue.
func (t *Tracker) DismissBadge() {
	if len(t.pending) > 0 {
		t.pending = t.pending[1:]
	}
}
