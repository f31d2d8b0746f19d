package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timewaster/internal/levels"
)

var (
	flagKind string
	flagAll  bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every playable level with its mini-game and goal.

Examples:
  timewaster levels
  timewaster levels --kind pixel
  timewaster levels --all          # include the levels that are coming soon (never)`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagKind, "kind", "", "Only show one kind: click, wait, slider, pixel, spacebar")
	levelsCmd.Flags().BoolVar(&flagAll, "all", false, "Include placeholder levels")
}

func runLevels(_ *cobra.Command, _ []string) {
	var kind levels.Kind
	if flagKind != "" {
		k, err := levels.ParseKind(flagKind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		kind = k
	}

	var shown []levels.Level
	for _, lvl := range levels.All() {
		if flagKind != "" && lvl.Kind != kind {
			continue
		}
		if !flagAll && !lvl.Playable() && flagKind == "" {
			continue
		}
		shown = append(shown, lvl)
	}

	if len(shown) == 0 {
		fmt.Println("No levels match.")
		return
	}

	// Calculate column widths
	maxTitleLen := 5 // "Title" header
	for _, lvl := range shown {
		if len(lvl.Title) > maxTitleLen {
			maxTitleLen = len(lvl.Title)
		}
	}

	// Print header
	fmt.Printf("  %-4s  %-11s  %-*s  %s\n", "ID", "Kind", maxTitleLen, "Title", "Goal")
	fmt.Printf("  %-4s  %-11s  %-*s  %s\n", "--", "----", maxTitleLen, "-----", "----")

	// Print levels
	for _, lvl := range shown {
		fmt.Printf("  %-4d  %-11s  %-*s  %s\n", lvl.ID, lvl.Kind, maxTitleLen, lvl.Title, levelGoal(lvl))
	}

	fmt.Println()
	fmt.Printf("%d of %d levels are playable. Run 'timewaster' to start.\n", levels.PlayableCount, levels.TotalCount)
}

// levelGoal describes what a level asks for.
func levelGoal(lvl levels.Level) string {
	switch lvl.Kind {
	case levels.KindClick:
		return humanize.Comma(int64(lvl.Target)) + " clicks"
	case levels.KindWait:
		return "wait " + lvl.Duration.String()
	case levels.KindSlider:
		return fmt.Sprintf("%d slider cycles", lvl.SliderRepeats)
	case levels.KindPixel:
		return "find the pixel"
	case levels.KindSpacebar:
		return humanize.Comma(int64(lvl.Target)) + " spacebar presses"
	default:
		return "-"
	}
}
