package main

import (
	"fmt"
	"os"

	"github.com/gonewx/powerlawn/internal/storage"
	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the high score table",
	Long: `Display the top 10 runs, optionally filtered to one level.

Examples:
  powerlawn scores
  powerlawn scores 1-2`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if levelID == "" {
		fmt.Println("High Scores - all levels")
	} else {
		fmt.Printf("High Scores - level %s\n", levelID)
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'powerlawn play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %-6s  %-5s  %s\n", "Rank", "Level", "Score", "Mowed", "Time", "Done", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %-6s  %-5s  %s\n", "----", "-----", "-----", "-----", "----", "----", "----")

	for i, entry := range scores {
		done := "no"
		if entry.Completed {
			done = "yes"
		}
		fmt.Printf("  %-4d  %-7s  %-8d  %5.1f%%  %6.1f  %-5s  %s\n",
			i+1, entry.LevelID, entry.Score, entry.Percent, entry.Duration, done,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
