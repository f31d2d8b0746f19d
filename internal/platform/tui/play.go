package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-timewaster/internal/minigame"
)

const sliderTrackWidth = 50

// viewPlay renders the running mini-game.
func (m App) viewPlay() string {
	if m.game == nil {
		return ""
	}
	lvl := m.game.Level()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.LevelTitle.Render(fmt.Sprintf("Level %d: %s", lvl.ID, lvl.Title)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Description.Render(lvl.Description), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(m.renderGame(), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.bar.ViewAs(m.game.Progress()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Status.Render(m.game.Status()), m.width))
	b.WriteString("\n\n")

	keys := m.keyMapper.Keys()
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(helpKeys(playHelp(m.game, keys)))), m.width))

	return b.String()
}

// renderGame draws the body of each kind of mini-game.
func (m App) renderGame() string {
	switch g := m.game.(type) {
	case *minigame.Click:
		return m.theme.Button.Render("CLICK ME") + "\n\n" +
			fmt.Sprintf("%s / %s clicks", humanize.Comma(int64(g.Clicks())), humanize.Comma(int64(g.Level().Target)))

	case *minigame.Wait:
		if !g.Started() {
			return m.theme.Button.Render("START WAITING")
		}
		return m.theme.Subtitle.Render(fmt.Sprintf("%.0f%%", g.Progress()*100))

	case *minigame.Slider:
		return m.renderSlider(g)

	case *minigame.Pixel:
		return m.renderPixelField(g)

	case *minigame.Spacebar:
		pad := int(math.Round(g.Offset() + minigame.MaxShake))
		text := m.theme.Button.Render("S P A C E")
		lines := strings.Split(text, "\n")
		for i := range lines {
			lines[i] = strings.Repeat(" ", pad) + lines[i]
		}
		return strings.Join(lines, "\n") + "\n\n" +
			fmt.Sprintf("%s / %s presses", humanize.Comma(int64(g.Presses())), humanize.Comma(int64(g.Level().Target)))
	}
	return ""
}

func (m App) renderSlider(g *minigame.Slider) string {
	knob := int(math.Round(g.Position() / minigame.SliderMax * float64(sliderTrackWidth-1)))

	var track strings.Builder
	track.WriteString(m.theme.Track.Render("0 ├"))
	track.WriteString(m.theme.Track.Render(strings.Repeat("─", knob)))
	track.WriteString(m.theme.Knob.Render("●"))
	track.WriteString(m.theme.Track.Render(strings.Repeat("─", sliderTrackWidth-1-knob)))
	track.WriteString(m.theme.Track.Render("┤ 100"))

	return track.String() + "\n\n" +
		fmt.Sprintf("Position %3.0f   Cycles %d/%d", g.Position(), g.Repeats(), g.Level().SliderRepeats)
}

func (m App) renderPixelField(g *minigame.Pixel) string {
	cursor := g.Cursor()
	var b strings.Builder

	for y := range minigame.PixelFieldH {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := range minigame.PixelFieldW {
			if x == cursor.X && y == cursor.Y {
				b.WriteString(m.theme.Cursor.Render("@"))
				continue
			}
			b.WriteString(m.theme.Field.Render("·"))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Moves: %d", g.Attempts()))
	return b.String()
}

// playHelp lists the bindings that matter for the running game.
func playHelp(g minigame.Game, k KeyMap) []key.Binding {
	switch g.(type) {
	case *minigame.Click:
		return []key.Binding{k.Confirm, k.Click, k.Back, k.Quit}
	case *minigame.Wait:
		return []key.Binding{k.Confirm, k.Back, k.Quit}
	case *minigame.Slider:
		return []key.Binding{k.Left, k.Right, k.Back, k.Quit}
	case *minigame.Pixel:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Back, k.Quit}
	case *minigame.Spacebar:
		return []key.Binding{k.Space, k.Back, k.Quit}
	}
	return []key.Binding{k.Back, k.Quit}
}
