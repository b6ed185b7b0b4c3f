package main

import (
	"fmt"
	"os"

	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/game"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and their unlock state",
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	ids, err := config.ListLevelIDs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing levels: %v\n", err)
		os.Exit(1)
	}

	progress := game.GetGameState().GetProgressManager()

	fmt.Printf("  %-7s  %-22s  %-8s  %-8s  %s\n", "Level", "Name", "Target", "Limit", "Status")
	fmt.Printf("  %-7s  %-22s  %-8s  %-8s  %s\n", "-----", "----", "------", "-----", "------")

	for _, id := range ids {
		level, err := config.LoadLevelByID(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading level %s: %v\n", id, err)
			continue
		}

		limit := "none"
		if level.TimeLimit > 0 {
			limit = fmt.Sprintf("%.0fs", level.TimeLimit)
		}

		status := "locked"
		if progress.IsLevelUnlocked(ids, id) {
			status = "open"
			if percent, ok := progress.BestPercentFor(id); ok {
				status = fmt.Sprintf("best %.1f%%", percent)
			}
		}

		name := level.Name
		if level.TwoPlayer {
			name += " (2P)"
		}
		fmt.Printf("  %-7s  %-22s  %7.0f%%  %-8s  %s\n", id, name, level.TargetPercent, limit, status)
	}
}
