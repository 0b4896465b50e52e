// junkover is a terminal dodger: steer a ship through incoming junk and
// collect stars for points.
//
// Usage:
//
//	junkover play            - Play a round straight away
//	junkover menu            - Start the title screen
//	junkover serve           - Start SSH server for remote play
//	junkover scores          - Show high scores
//	junkover config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.junkover/scores.db)
//	--log-file <path>    - Append logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the scene to register it
	_ "github.com/vovakirdan/junkover/internal/games/junkover"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "junkover",
	Short: "Junkover - dodge space junk in your terminal",
	Long: `Junkover is a terminal dodger. Junk and stars fly in from the right;
tilt the ship with the arrow keys or WASD, collect stars and keep still
to earn points. One hit ends the round and a new one starts shortly after.

Available commands:
  play     - Play a round directly
  menu     - Title screen with scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  junkover play
  junkover play --difficulty hard --audio
  junkover menu
  junkover serve --ssh :2222
  junkover scores --causes`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.junkover/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
