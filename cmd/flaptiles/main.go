// flaptiles runs several flappy bird games side by side and composites them
// into one tiled view.
//
// Usage:
//
//	flaptiles watch              - Watch pilots fly a grid of games in the terminal
//	flaptiles play               - Fly tile #1 yourself, pilots fly the rest
//	flaptiles window             - Same as watch, in a desktop window (-tags ebiten)
//	flaptiles snapshot           - Render one composited frame to a PNG file
//	flaptiles pilots             - List available pilots
//	flaptiles config             - Print the default configuration
//
// Global flags:
//
//	--config <path>      - Configuration file (default: discovered, then embedded)
//	--instances <n>      - Number of tiles, 1..16
//	--seed <value>       - RNG seed for reproducible runs
//	--pilot <id>         - Pilot flying the non-human tiles
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig      string
	flagInstances   int
	flagSeed        int64
	flagPilot       string
	flagTPS         int
	flagDifficulty  string
	flagAssets      string
	flagActivateKey string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flaptiles",
	Short: "flaptiles - many flappy birds, one screen",
	Long: `flaptiles runs up to 16 flappy bird games in lockstep and draws them as a
grid of tiles, each with its own reward overlay.

Available commands:
  watch     - Watch pilots play in the terminal
  play      - Play tile #1 yourself
  window    - Open a desktop window (needs -tags ebiten)
  snapshot  - Export a composited frame as PNG
  pilots    - List pilots
  config    - Print the default configuration

Examples:
  flaptiles watch --instances 9
  flaptiles play --difficulty hard
  flaptiles snapshot --ticks 120 --out frame.png
  flaptiles watch --config ./my-flaptiles.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagInstances, "instances", 0, "Number of tiles, 1..16 (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagPilot, "pilot", "", "Pilot for the non-human tiles (see 'flaptiles pilots')")
	pf.IntVar(&flagTPS, "tps", 0, "Simulation ticks per second (0 = from config)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagAssets, "assets", "", "Sprite directory (default: procedural sprites)")
	pf.StringVar(&flagActivateKey, "key", "", "Activate key (default: from config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(pilotsCmd)
	rootCmd.AddCommand(configCmd)
}
