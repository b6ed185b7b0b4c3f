// powerlawn is an arcade lawn-mowing game.
//
// Usage:
//
//	powerlawn                  - Start the game at the main menu
//	powerlawn play             - Jump straight into a level
//	powerlawn levels           - List levels and their unlock state
//	powerlawn scores [level]   - Show the high score table
//
// Global flags:
//
//	--verbose       - Enable debug logging
//	--db <path>     - Set score database path (default: ~/.powerlawn/scores.db)
//	--seed <value>  - Set RNG seed for reproducible clipping bursts
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/pkg/app"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagVerbose bool
	flagSeed    int64
	flagDBPath  string

	// play flags
	flagLevel      string
	flagTwoPlayer  bool
	flagFullscreen bool
)

func main() {
	embedded.Init(dataFS)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "powerlawn",
	Short: "Powerlawn - arcade lawn mowing",
	Long: `Powerlawn is an arcade game about mowing every last blade of grass.

Steer the mower with the arrow keys (player 2 uses WASD), dodge the
rocks, and clear the target percentage before the clock runs out.

Examples:
  powerlawn
  powerlawn play --level 1-2
  powerlawn play --two-player
  powerlawn levels
  powerlawn scores 1-1`,
	Run: func(cmd *cobra.Command, args []string) {
		runGame("")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.powerlawn/scores.db", "Path to score database")
	rootCmd.PersistentFlags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runGame 装配应用并启动游戏循环
// level 非空时跳过主菜单直接进入该关卡
func runGame(level string) {
	application, err := app.NewApp(app.Config{
		Verbose:    flagVerbose,
		Level:      level,
		TwoPlayer:  flagTwoPlayer,
		Fullscreen: flagFullscreen,
		DBPath:     flagDBPath,
		Seed:       flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Powerlawn")

	if err := ebiten.RunGame(application); err != nil {
		log.Fatalf("[Main] Game loop ended with error: %v", err)
	}
}
