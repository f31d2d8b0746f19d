// Package badges evaluates the fixed achievement table against progress.
package badges

import (
	"time"

	"github.com/vovakirdan/tui-timewaster/internal/state"
)

// ID identifies a badge in saves and in the rule table.
type ID = string

const (
	FiveMinutesGone      ID = "five_minutes_gone"
	ButtonMasher         ID = "button_masher"
	PixelWhisperer       ID = "pixel_whisperer"
	CertifiedLoiterer    ID = "certified_loiterer"
	MasterProcrastinator ID = "master_procrastinator"
	SpacebarWarrior      ID = "spacebar_warrior"
	SliderEnthusiast     ID = "slider_enthusiast"
	FirstLevel           ID = "first_level"
	TenLevels            ID = "ten_levels"
	HalfWay              ID = "half_way"
)

// Thresholds used by the rule table.
const (
	FiveMinutes       = 300 // seconds
	ButtonMasherCount = 1000
	SpacebarCount     = 200
	LoiterWindow      = time.Hour
	LoiterIdle        = LoiterWindow * 4 / 5
)

// Badge is the display metadata of an achievement.
type Badge struct {
	ID          ID
	Name        string
	Description string
	Icon        string
}

// Predicate decides whether a badge is earned. It must be pure.
type Predicate func(next, prev state.State, now time.Time) bool

// Rule pairs a badge with its predicate.
type Rule struct {
	Badge     Badge
	Predicate Predicate
}

func completed(levelID int) Predicate {
	return func(next, _ state.State, _ time.Time) bool {
		return next.HasCompleted(levelID)
	}
}

func completedAtLeast(n int) Predicate {
	return func(next, _ state.State, _ time.Time) bool {
		return len(next.CompletedLevels) >= n
	}
}

func loitering(next, _ state.State, now time.Time) bool {
	sinceStart := now.Sub(next.SessionStartTime)
	sinceActive := now.Sub(next.LastActiveTime)
	return sinceStart >= LoiterWindow && sinceActive >= LoiterIdle
}

// rules is evaluated top to bottom; the order is the popup order.
var rules = []Rule{
	{
		Badge: Badge{FiveMinutesGone, "Five Minutes Gone", "You have successfully wasted 5 minutes of your life on this app.", "⏰"},
		Predicate: func(next, _ state.State, _ time.Time) bool {
			return next.TotalTimeWasted >= FiveMinutes
		},
	},
	{
		Badge: Badge{ButtonMasher, "A True Button Masher", "You have clicked a total of 1,000 buttons across all levels.", "🖱️"},
		Predicate: func(next, _ state.State, _ time.Time) bool {
			return next.TotalClicks >= ButtonMasherCount
		},
	},
	{
		Badge:     Badge{PixelWhisperer, "Pixel Whisperer", "You have found the hidden pixel. Congratulations? You've earned this entirely meaningless badge.", "🔍"},
		Predicate: completed(4),
	},
	{
		Badge:     Badge{CertifiedLoiterer, "Certified Loiterer", "You've left this app open for an entire hour without any interaction.", "🪑"},
		Predicate: loitering,
	},
	{
		Badge:     Badge{MasterProcrastinator, "Master Procrastinator", "You successfully avoided doing something productive by completing Level 7.", "🏆"},
		Predicate: completed(7),
	},
	{
		Badge: Badge{SpacebarWarrior, "Spacebar Warrior", "You pressed the spacebar 200 times. Your keyboard is judging you.", "⌨️"},
		Predicate: func(next, _ state.State, _ time.Time) bool {
			return next.TotalSpacebars >= SpacebarCount
		},
	},
	{
		Badge:     Badge{SliderEnthusiast, "Slider Enthusiast", "You dragged a slider back and forth 10 times. Peak entertainment.", "🎚️"},
		Predicate: completed(3),
	},
	{
		Badge:     Badge{FirstLevel, "Baby Steps", "You completed your first level. This is the beginning of the end.", "👶"},
		Predicate: completedAtLeast(1),
	},
	{
		Badge:     Badge{TenLevels, "Double Digits", "You've completed 10 levels. There's no going back now.", "🔟"},
		Predicate: completedAtLeast(10),
	},
	{
		Badge:     Badge{HalfWay, "Halfway to Nowhere", "You've completed 25 levels. You're officially committed to this nonsense.", "🎯"},
		Predicate: completedAtLeast(25),
	},
}

// Evaluate returns the badges that next qualifies for and does not hold yet,
// in table order. It never modifies either state; callers commit the result.
func Evaluate(next, prev state.State, now time.Time) []Badge {
	var earned []Badge
	for _, r := range rules {
		if next.HasBadge(r.Badge.ID) {
			continue
		}
		if r.Predicate(next, prev, now) {
			earned = append(earned, r.Badge)
		}
	}
	return earned
}

// IDs extracts the identifiers of bs in order.
func IDs(bs []Badge) []ID {
	ids := make([]ID, len(bs))
	for i, b := range bs {
		ids[i] = b.ID
	}
	return ids
}

// All returns every badge in table order.
func All() []Badge {
	out := make([]Badge, len(rules))
	for i, r := range rules {
		out[i] = r.Badge
	}
	return out
}

// Lookup finds a badge by id.
func Lookup(id ID) (Badge, bool) {
	for _, r := range rules {
		if r.Badge.ID == id {
			return r.Badge, true
		}
	}
	return Badge{}, false
}

// Split partitions the table into badges s has earned and those it has not.
// Both halves keep table order.
func Split(s state.State) (earned, unearned []Badge) {
	for _, r := range rules {
		if s.HasBadge(r.Badge.ID) {
			earned = append(earned, r.Badge)
		} else {
			unearned = append(unearned, r.Badge)
		}
	}
	return earned, unearned
}
