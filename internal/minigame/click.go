package minigame

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
)

func init() {
	Register(levels.KindClick, func(lvl levels.Level, _ int64) Game {
		return NewClick(lvl)
	})
}

// Click counts button presses up to the level target.
type Click struct {
	level  levels.Level
	clicks int
}

// NewClick creates a click counter for lvl.
func NewClick(lvl levels.Level) *Click {
	return &Click{level: lvl}
}

func (g *Click) Level() levels.Level { return g.level }

// Clicks returns the presses counted so far.
func (g *Click) Clicks() int { return g.clicks }

func (g *Click) Step(in core.InputFrame, _ time.Duration) Result {
	if g.Done() {
		return Result{}
	}

	n := in.Count(core.ActionClick) + in.Count(core.ActionConfirm)
	if n == 0 {
		return Result{}
	}
	if remaining := g.level.Target - g.clicks; n > remaining {
		n = remaining
	}
	g.clicks += n

	return Result{Clicks: n, Completed: g.Done()}
}

func (g *Click) Progress() float64 {
	return ratio(float64(g.clicks), float64(g.level.Target))
}

func (g *Click) Done() bool {
	return g.clicks >= g.level.Target
}

func (g *Click) Status() string {
	remaining := g.level.Target - g.clicks
	switch {
	case remaining <= 0:
		return "You did it. The button is as unimpressed as everyone else."
	case g.clicks == 0:
		return "Go on. Click it. The button believes in you (it doesn't)."
	case remaining == 1:
		return "ONE MORE. Your finger's legacy depends on it."
	case remaining <= 10:
		return fmt.Sprintf("Only %d left. Have you considered a hobby?", remaining)
	case g.Progress() >= 0.5:
		return "Past halfway. The button suggests stretching your wrist."
	default:
		return "Tip from the button: clicking faster does not make time go faster."
	}
}
