package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flaptiles/internal/platform/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch pilots fly a grid of games in the terminal",
	Long: `Run the arena in the terminal with every tile flown by a pilot.

Controls:
  P/Esc      - Pause
  R          - Restart all tiles
  +/-        - More/fewer tiles
  Tab        - Toggle reward overlays
  S          - Toggle the stats panel
  ?          - Full help
  Q/Ctrl+C   - Quit

Examples:
  flaptiles watch
  flaptiles watch --instances 16 --pilot random
  flaptiles watch --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTerminal(cmd, false)
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly tile #1 yourself",
	Long: `Run the arena in the terminal with tile #1 under your control.
The other tiles are flown by the configured pilot.

Controls:
  Space      - Flap (also a left click on the board)
  P/Esc      - Pause
  R          - Restart all tiles
  +/-        - More/fewer tiles
  Tab        - Toggle reward overlays
  Q/Ctrl+C   - Quit

Examples:
  flaptiles play
  flaptiles play --instances 1
  flaptiles play --key enter --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTerminal(cmd, true)
	},
}

func runTerminal(cmd *cobra.Command, human bool) error {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.close()

	set, err := a.sprites(cmd.Context())
	if err != nil {
		return err
	}
	ar, err := a.newArena(human)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	a.logger.Info("starting terminal host", "instances", ar.Instances(), "human", human,
		"width", width, "height", height)

	err = tui.Run(tui.Options{
		Arena:       ar,
		Sprites:     set,
		ActivateKey: a.cfg.ActivateKey(),
		TickRate:    a.cfg.Display.TickRate,
		Supersample: a.cfg.Display.Supersample,
		ShowRewards: a.cfg.Display.ShowRewards,
		Render:      a.renderOptions(),
		Width:       width,
		Height:      height,
		Logger:      a.logger,
	})
	if err != nil {
		return fmt.Errorf("terminal host: %w", err)
	}

	for i, st := range ar.Stats() {
		who := st.Pilot
		if st.Human {
			who = "you"
		}
		fmt.Printf("#%-2d %-10s episodes %-4d best %d\n", i+1, who, st.Episode, st.Best)
	}
	return nil
}
