// Package levels holds the static catalog of time-wasting levels.
// The catalog is generated once at init and never changes afterwards.
package levels

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies which mini-game a level uses.
type Kind int

const (
	KindPlaceholder Kind = iota
	KindClick
	KindWait
	KindSlider
	KindPixel
	KindSpacebar
)

// String returns the lowercase kind name used by the CLI and the save format.
func (k Kind) String() string {
	switch k {
	case KindClick:
		return "click"
	case KindWait:
		return "wait"
	case KindSlider:
		return "slider"
	case KindPixel:
		return "pixel"
	case KindSpacebar:
		return "spacebar"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindClick, KindWait, KindSlider, KindPixel, KindSpacebar, KindPlaceholder} {
		if k.String() == s {
			return k, nil
		}
	}
	return KindPlaceholder, fmt.Errorf("levels: unknown kind %q", s)
}

const (
	// PlayableCount is the number of levels that can actually be played.
	PlayableCount = 50
	// TotalCount is the size of the grid, placeholders included.
	TotalCount = 100
)

var (
	// ErrUnknownLevel is returned for ids outside the catalog.
	ErrUnknownLevel = errors.New("levels: level not found")
	// ErrNotPlayable is returned for placeholder levels.
	ErrNotPlayable = errors.New("levels: level is not playable")
)

// Level describes one entry of the grid.
// Only the parameters relevant to Kind are set.
type Level struct {
	ID          int
	Kind        Kind
	Title       string
	Description string

	Target        int           // click and spacebar levels
	Duration      time.Duration // wait levels
	SliderRepeats int           // slider levels
}

// Playable reports whether the level has a mini-game behind it.
func (l Level) Playable() bool {
	return l.Kind != KindPlaceholder
}

var catalog = build()

// Get returns the level with the given id.
func Get(id int) (Level, bool) {
	if id < 1 || id > len(catalog) {
		return Level{}, false
	}
	return catalog[id-1], true
}

// All returns a copy of the full catalog ordered by id.
func All() []Level {
	out := make([]Level, len(catalog))
	copy(out, catalog)
	return out
}

// Count returns the number of levels in the catalog.
func Count() int {
	return len(catalog)
}

// CheckPlayable returns nil if id names a playable level,
// ErrUnknownLevel if the id is not in the catalog and ErrNotPlayable
// for placeholders.
func CheckPlayable(id int) error {
	lvl, ok := Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}
	if !lvl.Playable() {
		return fmt.Errorf("%w: %d", ErrNotPlayable, id)
	}
	return nil
}

// handmade are the first ten levels with their own flavor text.
var handmade = []Level{
	{
		ID:          1,
		Kind:        KindClick,
		Title:       "The Beginning of Your Downfall",
		Description: "Click the button 100 times. The button will offer unhelpful advice.",
		Target:      100,
	},
	{
		ID:          2,
		Kind:        KindWait,
		Title:       "The Cruel Joke",
		Description: "Wait for the progress bar to fill. Spoiler: it won't.",
		Duration:    30 * time.Second,
	},
	{
		ID:            3,
		Kind:          KindSlider,
		Title:         "Sisyphean Slider",
		Description:   "Drag the slider from 0% to 100% and back, 10 times. It has a mind of its own.",
		SliderRepeats: 10,
	},
	{
		ID:          4,
		Kind:        KindPixel,
		Title:       "Needle in a Digital Haystack",
		Description: "Find the hidden pixel. Move your cursor around until you find it.",
	},
	{
		ID:          5,
		Kind:        KindSpacebar,
		Title:       "Spacebar Symphony",
		Description: "Press the spacebar 200 times. The screen will shake with your futility.",
		Target:      200,
	},
	{
		ID:          6,
		Kind:        KindClick,
		Title:       "Double Trouble",
		Description: "Click the button 200 times. Twice the clicking, twice the regret.",
		Target:      200,
	},
	{
		ID:          7,
		Kind:        KindWait,
		Title:       "The Procrastination Station",
		Description: "Wait 45 seconds while contemplating your life choices.",
		Duration:    45 * time.Second,
	},
	{
		ID:            8,
		Kind:          KindSlider,
		Title:         "Slider Madness Returns",
		Description:   "Drag the rebellious slider 15 times. It's even more stubborn now.",
		SliderRepeats: 15,
	},
	{
		ID:          9,
		Kind:        KindPixel,
		Title:       "The Invisible Dot",
		Description: "Find another hidden pixel. Because you enjoyed it so much the first time.",
	},
	{
		ID:          10,
		Kind:        KindSpacebar,
		Title:       "Spacebar Encore",
		Description: "Press spacebar 300 times. Your keyboard is crying.",
		Target:      300,
	},
}

// cycle is the round-robin used for generated levels 11..50.
var cycle = [...]Kind{KindClick, KindWait, KindSlider, KindPixel, KindSpacebar}

func build() []Level {
	out := make([]Level, 0, TotalCount)
	out = append(out, handmade...)

	for id := len(handmade) + 1; id <= PlayableCount; id++ {
		out = append(out, generated(id))
	}

	for id := PlayableCount + 1; id <= TotalCount; id++ {
		out = append(out, Level{
			ID:          id,
			Kind:        KindPlaceholder,
			Title:       fmt.Sprintf("Level %d", id),
			Description: "Coming Soon (Never)",
		})
	}
	return out
}

// generated builds level id (11..50) from the round-robin cycle.
func generated(id int) Level {
	kind := cycle[(id-11)%len(cycle)]
	lvl := Level{ID: id, Kind: kind}

	switch kind {
	case KindClick:
		lvl.Target = 50 + id*10
		lvl.Title = fmt.Sprintf("Click Fest %d", id)
		lvl.Description = fmt.Sprintf("Click %d times. Your finger is getting stronger... or more numb.", lvl.Target)
	case KindWait:
		secs := 15 + id
		lvl.Duration = time.Duration(secs) * time.Second
		lvl.Title = fmt.Sprintf("Waiting Game %d", id)
		lvl.Description = fmt.Sprintf("Wait %d seconds. Time moves slower when you're wasting it.", secs)
	case KindSlider:
		lvl.SliderRepeats = 5 + id/2
		lvl.Title = fmt.Sprintf("Slider Challenge %d", id)
		lvl.Description = fmt.Sprintf("Move the slider %d times. It's getting more rebellious.", lvl.SliderRepeats)
	case KindPixel:
		lvl.Title = fmt.Sprintf("Pixel Hunt %d", id)
		lvl.Description = "Find the hidden pixel. It's hiding better this time."
	case KindSpacebar:
		lvl.Target = 100 + id*20
		lvl.Title = fmt.Sprintf("Spacebar Marathon %d", id)
		lvl.Description = fmt.Sprintf("Press spacebar %d times. Your keyboard is filing a complaint.", lvl.Target)
	}
	return lvl
}
