// daruma is a Daruma Otoshi reflex game for the terminal and a desktop window.
//
// Usage:
//
//	daruma play              - Play in the terminal
//	daruma window            - Play in a 600x600 window
//	daruma scores            - Print the best runs
//	daruma board             - Browse the run history interactively
//	daruma config            - Print the default game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set run history path (default: ~/.daruma/runs.db)
//	--score-file <path>   - Set high score file (default: ~/.daruma/score)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/daruma/internal/config"
	"github.com/vovakirdan/daruma/internal/games/daruma"
	"github.com/vovakirdan/daruma/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoreFile  string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// logger is configured by the root command before any subcommand runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "daruma",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "daruma",
	Short: "Daruma Otoshi - steer a falling plane through gapped barriers",
	Long: `Daruma Otoshi is a reflex game: a plane falls through an endless
stack of barriers and you steer it through the gaps. The further you
fall, the higher the score.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - Print the best runs
  board    - Browse the run history interactively
  config   - Print the default game configuration

Examples:
  daruma play
  daruma play --difficulty hard
  daruma window --seed 42
  daruma scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.daruma/runs.db", "Path to run history database")
	pf.StringVar(&flagScoreFile, "score-file", "~/.daruma/score", "Path to high score file")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger applies --log-level and --log-file. Terminal play defaults
// to ~/.daruma/daruma.log so log lines do not tear the game screen.
func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	path := flagLogFile
	if path == "" && cmd == playCmd {
		path = "~/.daruma/daruma.log"
	}
	if path == "" {
		return nil
	}

	out, err := openLogFile(path)
	if err != nil {
		return err
	}
	logger.SetOutput(out)
	return nil
}

func openLogFile(path string) (io.Writer, error) {
	path, err := storage.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// loadGameConfig resolves --config and --difficulty.
func loadGameConfig() (config.DarumaConfig, error) {
	cfg, err := config.LoadDaruma(flagConfig)
	if err != nil {
		return config.DarumaConfig{}, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.DarumaConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openStore opens the run history. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newGame builds a game, its keeper and the store backing it.
// The caller closes the store when it is not nil.
func newGame() (*daruma.Game, *storage.Keeper, *storage.Store, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := openStore()
	keeper := storage.NewKeeper(store, flagScoreFile, logger)
	game := daruma.New(cfg, config.NewDifficultyManager(cfg.Difficulty), seed, keeper.LoadHighScore())

	logger.Info("game ready",
		"seed", seed,
		"difficulty", flagDifficulty,
		"high", game.Session().HighScore)
	return game, keeper, store, nil
}
