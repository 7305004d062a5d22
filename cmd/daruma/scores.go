package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/daruma/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the best runs",
	Long: `Display the top 10 runs from the run history, the best recorded
score and the score kept in the high score file.

Examples:
  daruma scores
  daruma scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and reset the high score file")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		if err := storage.WriteHighScore(flagScoreFile, 0); err != nil {
			return err
		}
		logger.Info("run history cleared", "db", flagDBPath, "score_file", flagScoreFile)
		fmt.Fprintln(out, "Run history and high score cleared.")
		return nil
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		return err
	}

	legacy, err := storage.ReadHighScore(flagScoreFile)
	if err != nil {
		logger.Warn("could not read score file", "path", flagScoreFile, "error", err)
	}

	fmt.Fprintln(out, "High Scores - Daruma Otoshi")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'daruma play' to set the first high score!")
	} else {
		fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-20s  %s\n", "Rank", "Score", "Mileage", "Seed", "Date")
		fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-20s  %s\n", "----", "-----", "-------", "----", "----")
		for i, r := range runs {
			fmt.Fprintf(out, "  %-4d  %-8d  %-8.2f  %-20d  %s\n",
				i+1, r.Score, r.Mileage, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintln(out)
	if best, err := store.HighScore(); err == nil && best > 0 {
		fmt.Fprintf(out, "Best run:   %d\n", best)
	}
	fmt.Fprintf(out, "High score: %d (%s)\n", legacy, flagScoreFile)
	return nil
}
