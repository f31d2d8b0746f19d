package minigame

import (
	"time"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
)

func init() {
	Register(levels.KindWait, func(lvl levels.Level, _ int64) Game {
		return NewWait(lvl)
	})
}

// The bar stops at 99%, hangs for a second, snaps back to zero and only
// then completes.
const (
	waitStall     = 0.99
	waitHangTime  = time.Second
	waitGotchaFor = 2 * time.Second
)

type waitPhase int

const (
	waitIdle waitPhase = iota
	waitFilling
	waitHanging
	waitGotcha
	waitDone
)

// Wait is a progress bar that has to be watched until it fills.
type Wait struct {
	level   levels.Level
	phase   waitPhase
	elapsed time.Duration // time spent in the current phase
	fill    float64
}

// NewWait creates a wait bar for lvl. It starts on Confirm.
func NewWait(lvl levels.Level) *Wait {
	return &Wait{level: lvl}
}

func (g *Wait) Level() levels.Level { return g.level }

// Started reports whether the player has started the wait.
func (g *Wait) Started() bool { return g.phase != waitIdle }

func (g *Wait) Step(in core.InputFrame, dt time.Duration) Result {
	switch g.phase {
	case waitIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionSpace) || in.Has(core.ActionClick) {
			g.phase = waitFilling
			g.elapsed = 0
		}
		return Result{}

	case waitFilling:
		g.elapsed += dt
		g.fill = ratio(float64(g.elapsed), float64(g.level.Duration))
		if g.fill >= waitStall {
			g.fill = waitStall
			g.phase = waitHanging
			g.elapsed = 0
		}

	case waitHanging:
		g.elapsed += dt
		if g.elapsed >= waitHangTime {
			g.fill = 0
			g.phase = waitGotcha
			g.elapsed = 0
		}

	case waitGotcha:
		g.elapsed += dt
		if g.elapsed >= waitGotchaFor {
			g.fill = 1
			g.phase = waitDone
			return Result{Completed: true}
		}
	}
	return Result{}
}

func (g *Wait) Progress() float64 {
	return g.fill
}

func (g *Wait) Done() bool {
	return g.phase == waitDone
}

func (g *Wait) Status() string {
	switch g.phase {
	case waitIdle:
		return "Press Enter and then... just wait. Do nothing. Contemplate your choices."
	case waitHanging:
		return "Almost there... not!"
	case waitGotcha:
		return "Gotcha! Starting over..."
	case waitDone:
		return "Fine. You waited. Have a checkmark."
	}

	switch {
	case g.fill < 0.2:
		return "This is taking forever..."
	case g.fill < 0.4:
		return "Still waiting... like your life has meaning"
	case g.fill < 0.6:
		return "Halfway there! (To nowhere)"
	case g.fill < 0.8:
		return "Almost done wasting time!"
	default:
		return "So close to meaningless completion!"
	}
}
