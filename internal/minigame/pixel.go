package minigame

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
)

func init() {
	Register(levels.KindPixel, func(lvl levels.Level, seed int64) Game {
		return NewPixel(lvl, seed)
	})
}

// Search field size in cells.
const (
	PixelFieldW = 40
	PixelFieldH = 14
)

// Cell is a position in the search field.
type Cell struct{ X, Y int }

// Pixel hides a single cell in the field. The player walks a cursor
// around and gets temperature hints until they step on it.
type Pixel struct {
	level    levels.Level
	cursor   Cell
	hidden   Cell
	attempts int
	found    bool
}

// NewPixel creates a search field for lvl with the pixel placed by seed.
func NewPixel(lvl levels.Level, seed int64) *Pixel {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x91e1))
	g := &Pixel{
		level:  lvl,
		cursor: Cell{X: PixelFieldW / 2, Y: PixelFieldH / 2},
	}
	for {
		g.hidden = Cell{X: rng.IntN(PixelFieldW), Y: rng.IntN(PixelFieldH)}
		if g.hidden != g.cursor {
			break
		}
	}
	return g
}

func (g *Pixel) Level() levels.Level { return g.level }

// Cursor returns the cursor cell.
func (g *Pixel) Cursor() Cell { return g.cursor }

// Attempts returns how many moves the player has made.
func (g *Pixel) Attempts() int { return g.attempts }

// Distance is the Manhattan distance from the cursor to the pixel.
func (g *Pixel) Distance() int {
	return abs(g.cursor.X-g.hidden.X) + abs(g.cursor.Y-g.hidden.Y)
}

func (g *Pixel) Step(in core.InputFrame, _ time.Duration) Result {
	if g.found {
		return Result{}
	}

	dx := in.Count(core.ActionRight) - in.Count(core.ActionLeft)
	dy := in.Count(core.ActionDown) - in.Count(core.ActionUp)
	if dx == 0 && dy == 0 {
		return Result{}
	}

	next := Cell{
		X: clampInt(g.cursor.X+dx, 0, PixelFieldW-1),
		Y: clampInt(g.cursor.Y+dy, 0, PixelFieldH-1),
	}
	if next == g.cursor {
		return Result{}
	}
	g.cursor = next
	g.attempts++

	if g.cursor == g.hidden {
		g.found = true
		return Result{Completed: true}
	}
	return Result{}
}

// Progress is closeness to the pixel; it only reaches 1 when found.
func (g *Pixel) Progress() float64 {
	if g.found {
		return 1
	}
	maxDist := float64(PixelFieldW + PixelFieldH)
	return ratio(maxDist-float64(g.Distance()), maxDist) * 0.95
}

func (g *Pixel) Done() bool { return g.found }

func (g *Pixel) Status() string {
	if g.found {
		return "You found it! A single pixel. Frame it."
	}
	switch {
	case g.attempts >= 200:
		return "200 moves. The pixel has started a support group for you."
	case g.attempts >= 100:
		return "100 moves! The pixel is laughing at you."
	case g.attempts >= 50:
		return "50 moves in. Maybe try looking harder?"
	}

	switch d := g.Distance(); {
	case d <= 2:
		return "Burning hot! It's right there!"
	case d <= 5:
		return "Warm. Getting warmer."
	case d <= 10:
		return "Lukewarm. Like your enthusiasm."
	case d <= 20:
		return "Cold. Very cold."
	default:
		return "Freezing. The pixel is nowhere near here."
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
