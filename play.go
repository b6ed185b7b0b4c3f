package main

import (
	"fmt"
	"os"

	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a level",
	Long: `Start the game directly in a level, skipping the main menu.

Examples:
  powerlawn play
  powerlawn play --level 1-3
  powerlawn play --level 2-1 --two-player`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagLevel, "level", "l", "1-1", "Level to play (e.g. 1-2)")
	playCmd.Flags().BoolVar(&flagTwoPlayer, "two-player", false, "Enable local two-player mode")
}

func runPlay(cmd *cobra.Command, args []string) {
	if _, _, err := config.ParseLevelID(flagLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'powerlawn levels' to see available levels.")
		os.Exit(1)
	}
	runGame(flagLevel)
}
