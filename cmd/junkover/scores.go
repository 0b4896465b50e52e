package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/junkover/internal/games/junkover"
	"github.com/vovakirdan/junkover/internal/storage"
)

var (
	flagCauses bool
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished runs, or which junk ends runs most often.

Examples:
  junkover scores
  junkover scores --limit 25
  junkover scores --causes
  junkover scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagCauses, "causes", false, "Group runs by the obstacle that ended them")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(junkover.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagCauses {
		printCauses(store)
		return
	}

	scores, err := store.TopScores(junkover.ID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Junkover")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'junkover play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Hit by", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		cause := entry.Cause
		if cause == "" {
			cause = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %s\n", i+1, entry.Score, cause, dateStr)
	}

	if stats, err := store.GetGameStats(junkover.ID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

func printCauses(store *storage.Store) {
	causes, err := store.CauseStats(junkover.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving causes: %v\n", err)
		return
	}

	fmt.Println("Deaths by cause - Junkover")
	fmt.Println()

	if len(causes) == 0 {
		fmt.Println("Nothing has hit you yet.")
		return
	}

	fmt.Printf("  %-12s  %-6s  %s\n", "Obstacle", "Deaths", "Best")
	fmt.Printf("  %-12s  %-6s  %s\n", "--------", "------", "----")
	for _, c := range causes {
		fmt.Printf("  %-12s  %-6d  %d\n", c.Cause, c.Deaths, c.BestScore)
	}
}
