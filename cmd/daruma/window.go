package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/daruma/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a 600x600 window.

Controls:
  Left/A/H, d-pad left    - Steer left
  Right/D/L, d-pad right  - Steer right
  P                       - Pause
  Any key or button       - Start or retry
  Q/Esc                   - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	game, keeper, store, err := newGame()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	return gui.Run(game, keeper, flagFPS, logger)
}
