package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a save",
	Long: `Delete all progress and the badge history of a save.
All that wasted time, wasted again.

Examples:
  timewaster reset
  timewaster reset --player alice --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
}

func runReset(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	name := saveName(cfg)

	if !flagYes {
		fmt.Printf("This deletes all progress in %q. Type 'yes' to continue: ", name)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
			fmt.Println("Nothing deleted. Your wasted time is safe.")
			return
		}
	}

	store := mustOpenStore(cfg)
	defer store.Close()

	deleted, err := store.DeleteSave(name)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error deleting save: %v\n", err)
		os.Exit(1)
	}

	if !deleted {
		fmt.Printf("No save named %q.\n", name)
		return
	}
	fmt.Printf("Deleted %q. Time to waste it all over again.\n", name)
}
