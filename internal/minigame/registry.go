// Package minigame implements the mechanics behind each level kind.
// Games contain pure logic with no Bubble Tea dependency; the platform
// feeds them input frames and elapsed time and renders their state.
package minigame

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
)

// Game is one running mini-game.
type Game interface {
	// Level returns the catalog entry this game was created for.
	Level() levels.Level

	// Step advances the game by dt with the actions collected since the
	// previous step.
	Step(in core.InputFrame, dt time.Duration) Result

	// Progress reports completion in [0, 1] for progress bars.
	Progress() float64

	// Done reports whether the level has been beaten.
	Done() bool

	// Status is the current line of encouragement (or lack thereof).
	Status() string
}

// Result is returned by Game.Step.
type Result struct {
	Clicks    int  // clicks counted this step
	Spacebars int  // spacebar presses counted this step
	Completed bool // true only on the step that finishes the level
}

// Factory creates a game for a level. seed drives any randomness.
type Factory func(lvl levels.Level, seed int64) Game

var (
	factories = make(map[levels.Kind]Factory)
	mu        sync.RWMutex
)

// Register adds a factory for a level kind.
// Panics if the kind already has one.
func Register(kind levels.Kind, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("minigame: kind %q already registered", kind))
	}
	factories[kind] = f
}

// New creates the game for level id.
// Unknown and placeholder levels fail with the levels package errors.
func New(id int, seed int64) (Game, error) {
	if err := levels.CheckPlayable(id); err != nil {
		return nil, err
	}
	lvl, _ := levels.Get(id)

	mu.RLock()
	f, ok := factories[lvl.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("minigame: no game for kind %q", lvl.Kind)
	}
	return f(lvl, seed), nil
}

// ratio clamps n/d to [0, 1].
func ratio(n, d float64) float64 {
	if d <= 0 {
		return 1
	}
	r := n / d
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
