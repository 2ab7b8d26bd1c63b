package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flaptiles/internal/platform/window"
)

var flagWindowHuman bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run the arena in a desktop window",
	Long: `Open a desktop window showing the tiled arena.
Requires a binary built with -tags ebiten.

Controls:
  Space, click, touch  - Flap (with --human)
  P                    - Pause
  R                    - Restart all tiles
  +/-                  - More/fewer tiles
  Tab                  - Toggle reward overlays
  Q/Esc                - Quit

Examples:
  flaptiles window --instances 9
  flaptiles window --human`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowHuman, "human", false, "Fly tile #1 yourself")
}

func runWindow(cmd *cobra.Command, args []string) error {
	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.close()

	set, err := a.sprites(cmd.Context())
	if err != nil {
		return err
	}
	ar, err := a.newArena(flagWindowHuman)
	if err != nil {
		return err
	}

	return window.Run(window.Options{
		Arena:       ar,
		Sprites:     set,
		ActivateKey: a.cfg.ActivateKey(),
		TickRate:    a.cfg.Display.TickRate,
		ShowRewards: a.cfg.Display.ShowRewards,
		Render:      a.renderOptions(),
		Width:       a.cfg.Display.Width / 2,
		Height:      a.cfg.Display.Height / 2,
		Logger:      a.logger,
	})
}
