package minigame

import (
	"fmt"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
)

func init() {
	Register(levels.KindSpacebar, func(lvl levels.Level, _ int64) Game {
		return NewSpacebar(lvl)
	})
}

const (
	MaxShake = 20.0

	shakeSpringFreq = 12.0
	shakeSpringDamp = 0.3
)

// Spacebar counts space presses. The screen shakes harder the closer
// the player gets to the target.
type Spacebar struct {
	level   levels.Level
	presses int

	shake    float64
	shakeVel float64
	kickSign float64
}

// NewSpacebar creates a spacebar counter for lvl.
func NewSpacebar(lvl levels.Level) *Spacebar {
	return &Spacebar{level: lvl, kickSign: 1}
}

func (g *Spacebar) Level() levels.Level { return g.level }

// Presses returns the presses counted so far.
func (g *Spacebar) Presses() int { return g.presses }

// Intensity is the current shake strength in [0, MaxShake].
func (g *Spacebar) Intensity() float64 {
	return ratio(float64(g.presses), float64(g.level.Target)) * MaxShake
}

// Offset is the current horizontal shake displacement.
func (g *Spacebar) Offset() float64 { return g.shake }

func (g *Spacebar) Step(in core.InputFrame, dt time.Duration) Result {
	var res Result

	if n := in.Count(core.ActionSpace); n > 0 && !g.Done() {
		if remaining := g.level.Target - g.presses; n > remaining {
			n = remaining
		}
		g.presses += n
		g.shakeVel += g.kickSign * g.Intensity() * 10
		g.kickSign = -g.kickSign
		res = Result{Spacebars: n, Completed: g.Done()}
	}

	if dt > 0 {
		spring := harmonica.NewSpring(dt.Seconds(), shakeSpringFreq, shakeSpringDamp)
		g.shake, g.shakeVel = spring.Update(g.shake, g.shakeVel, 0)
		if g.shake > MaxShake {
			g.shake = MaxShake
		} else if g.shake < -MaxShake {
			g.shake = -MaxShake
		}
	}
	return res
}

func (g *Spacebar) Progress() float64 {
	return ratio(float64(g.presses), float64(g.level.Target))
}

func (g *Spacebar) Done() bool {
	return g.presses >= g.level.Target
}

func (g *Spacebar) Status() string {
	remaining := g.level.Target - g.presses
	switch {
	case remaining <= 0:
		return "Your spacebar has filed for early retirement."
	case g.presses == 0:
		return "Press space. Lots. Your neighbours will love it."
	case remaining <= 10:
		return fmt.Sprintf("%d to go! The keyboard is begging for mercy.", remaining)
	case g.presses >= 150:
		return "Keyboard warranty: voided."
	case g.presses >= 100:
		return "Your spacebar is starting to hate you."
	case g.presses >= 50:
		return "The screen is shaking. That's not a good sign."
	default:
		return "Keep going! Your spacebar is warming up."
	}
}
