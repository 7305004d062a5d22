package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/daruma/internal/platform/tui"
	"github.com/vovakirdan/daruma/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the run history interactively",
	Long: `Open an interactive table of recorded runs.

Controls:
  Up/Down      - Scroll
  Tab          - Switch between best and most recent runs
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	legacy, err := storage.ReadHighScore(flagScoreFile)
	if err != nil {
		logger.Warn("could not read score file", "path", flagScoreFile, "error", err)
	}

	return tui.RunScoreboard(store, legacy, width, height)
}
