package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timewaster/internal/badges"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned and unearned badges",
	Long: `Display every badge, the ones you earned first, with when you earned them.

Examples:
  timewaster badges
  timewaster badges --player alice`,
	Args: cobra.NoArgs,
	Run:  runBadges,
}

func runBadges(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg)

	store := mustOpenStore(cfg)
	defer store.Close()

	st := loadProgress(cfg, store, logger)
	name := saveName(cfg)

	history, err := store.BadgeHistory(name)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving badge history: %v\n", err)
		os.Exit(1)
	}
	// First unlock wins
	earnedAt := make(map[string]string, len(history))
	for _, e := range history {
		if _, seen := earnedAt[e.BadgeID]; !seen && !e.EarnedAt.IsZero() {
			earnedAt[e.BadgeID] = humanize.Time(e.EarnedAt)
		}
	}

	earned, unearned := badges.Split(st)

	fmt.Printf("Badges - %s (%d of %d)\n", name, len(earned), len(earned)+len(unearned))
	fmt.Println()

	for _, b := range earned {
		when := earnedAt[b.ID]
		if when == "" {
			when = "earned"
		}
		fmt.Printf("  %s  %-24s  %s\n", b.Icon, b.Name, when)
		fmt.Printf("      %s\n", b.Description)
	}

	if len(unearned) > 0 {
		if len(earned) > 0 {
			fmt.Println()
		}
		for _, b := range unearned {
			fmt.Printf("  ??  %-24s  locked\n", b.Name)
			fmt.Printf("      %s\n", b.Description)
		}
	}
}
