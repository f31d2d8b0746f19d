package minigame

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
)

func init() {
	Register(levels.KindSlider, func(lvl levels.Level, seed int64) Game {
		return NewSlider(lvl, seed)
	})
}

const (
	SliderMin  = 0.0
	SliderMax  = 100.0
	SliderPush = 8.0 // movement per key press

	sliderRebelChance = 0.15
	sliderRebelFor    = time.Second
	sliderSpringFreq  = 6.0
	sliderSpringDamp  = 0.5
)

// Slider must be dragged all the way up and back down, repeatedly.
// Every push has a chance to make the knob rebel and spring off towards
// a random spot for a moment.
type Slider struct {
	level levels.Level
	rng   *rand.Rand

	pos     float64
	vel     float64
	wantLow bool // reached the top, now heading for zero
	repeats int

	rebelChance float64
	rebelTarget float64
	rebelLeft   time.Duration
	rebellions  int
}

// NewSlider creates a slider for lvl.
func NewSlider(lvl levels.Level, seed int64) *Slider {
	return &Slider{
		level:       lvl,
		rng:         rand.New(rand.NewPCG(uint64(seed), 0x5eed)),
		rebelChance: sliderRebelChance,
	}
}

func (g *Slider) Level() levels.Level { return g.level }

// Position returns the knob position in [SliderMin, SliderMax].
func (g *Slider) Position() float64 { return g.pos }

// Repeats returns the completed up-and-down cycles.
func (g *Slider) Repeats() int { return g.repeats }

// Rebelling reports whether the knob is currently ignoring the player.
func (g *Slider) Rebelling() bool { return g.rebelLeft > 0 }

func (g *Slider) Step(in core.InputFrame, dt time.Duration) Result {
	if g.Done() {
		return Result{}
	}

	push := float64(in.Count(core.ActionRight)-in.Count(core.ActionLeft)) * SliderPush
	if push != 0 {
		g.pos = clampSlider(g.pos + push)
		if g.track() {
			return Result{Completed: true}
		}
		if g.rebelLeft <= 0 && g.rng.Float64() < g.rebelChance {
			g.rebelTarget = SliderMin + g.rng.Float64()*(SliderMax-SliderMin)
			g.rebelLeft = sliderRebelFor
			g.rebellions++
		}
	}

	if g.rebelLeft > 0 && dt > 0 {
		spring := harmonica.NewSpring(dt.Seconds(), sliderSpringFreq, sliderSpringDamp)
		g.pos, g.vel = spring.Update(g.pos, g.vel, g.rebelTarget)
		g.pos = clampSlider(g.pos)
		g.rebelLeft -= dt
		if g.rebelLeft <= 0 {
			g.vel = 0
		}
		if g.track() {
			return Result{Completed: true}
		}
	}
	return Result{}
}

// track counts a repeat when the knob reaches the far end of its cycle.
func (g *Slider) track() bool {
	switch {
	case !g.wantLow && g.pos >= SliderMax:
		g.wantLow = true
	case g.wantLow && g.pos <= SliderMin:
		g.wantLow = false
		g.repeats++
	}
	return g.Done()
}

func (g *Slider) Progress() float64 {
	done := float64(g.repeats)
	if g.wantLow {
		done += 0.5
	}
	return ratio(done, float64(g.level.SliderRepeats))
}

func (g *Slider) Done() bool {
	return g.repeats >= g.level.SliderRepeats
}

func (g *Slider) Status() string {
	switch {
	case g.Done():
		return "The slider gives up. So should you, honestly."
	case g.Rebelling():
		return "The slider has a mind of its own!"
	case g.wantLow:
		return fmt.Sprintf("Now all the way back to 0. Cycle %d of %d.", g.repeats+1, g.level.SliderRepeats)
	case g.repeats == 0 && g.pos == SliderMin:
		return "Slide it to 100 with the arrow keys, then back to 0. Riveting."
	default:
		return fmt.Sprintf("Up to 100. Cycle %d of %d.", g.repeats+1, g.level.SliderRepeats)
	}
}

func clampSlider(v float64) float64 {
	if v < SliderMin {
		return SliderMin
	}
	if v > SliderMax {
		return SliderMax
	}
	return v
}
