package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timewaster/internal/badges"
	"github.com/vovakirdan/tui-timewaster/internal/levels"
)

var flagListSaves bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how much time you have wasted",
	Long: `Summarize the progress stored in a save.

Examples:
  timewaster stats
  timewaster stats --player alice
  timewaster stats --saves          # list every save in the database`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagListSaves, "saves", false, "List all saves instead")
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg)

	store := mustOpenStore(cfg)
	defer store.Close()

	if flagListSaves {
		saves, err := store.Saves()
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error listing saves: %v\n", err)
			os.Exit(1)
		}
		if len(saves) == 0 {
			fmt.Println("No saves yet. Run 'timewaster' to create one.")
			return
		}
		fmt.Printf("  %-32s  %-8s  %s\n", "Save", "Size", "Updated")
		fmt.Printf("  %-32s  %-8s  %s\n", "----", "----", "-------")
		for _, s := range saves {
			fmt.Printf("  %-32s  %-8s  %s\n", s.Name, humanize.Bytes(uint64(s.Size)), humanize.Time(s.UpdatedAt))
		}
		return
	}

	st := loadProgress(cfg, store, logger)

	unique := slices.Clone(st.CompletedLevels)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	fmt.Printf("Progress - %s\n", saveName(cfg))
	fmt.Println()
	fmt.Printf("  Time wasted:      %s (%.1f%% of your life)\n", humanize.Comma(st.TotalTimeWasted)+" seconds", st.LifeWastePercent())
	fmt.Printf("  Levels completed: %d/%d (%d distinct)\n", len(st.CompletedLevels), levels.PlayableCount, len(unique))
	fmt.Printf("  Levels unlocked:  %d\n", min(st.UnlockedLevels, levels.PlayableCount))
	fmt.Printf("  Clicks:           %s\n", humanize.Comma(int64(st.TotalClicks)))
	fmt.Printf("  Spacebar presses: %s\n", humanize.Comma(int64(st.TotalSpacebars)))
	fmt.Printf("  Badges:           %d/%d\n", len(st.Badges), len(badges.All()))
	if !st.GameStartTime.IsZero() {
		fmt.Printf("  First wasted:     %s\n", humanize.Time(st.GameStartTime))
	}
}
