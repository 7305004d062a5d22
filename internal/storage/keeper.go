package storage

import (
	"github.com/charmbracelet/log"
)

// Keeper ties the best score to the score file and finished runs to the
// run history. The run history is optional; a nil store only disables it.
// Failures are logged and never interrupt play.
type Keeper struct {
	store     *Store
	scoreFile string
	logger    *log.Logger
}

// NewKeeper creates a keeper. store may be nil.
func NewKeeper(store *Store, scoreFile string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Keeper{
		store:     store,
		scoreFile: scoreFile,
		logger:    logger,
	}
}

// LoadHighScore returns the best score known to either the score file or
// the run history.
func (k *Keeper) LoadHighScore() int {
	best, err := ReadHighScore(k.scoreFile)
	if err != nil {
		k.logger.Warn("could not read score file, starting from 0", "path", k.scoreFile, "error", err)
	}

	if k.store != nil {
		dbBest, err := k.store.HighScore()
		if err != nil {
			k.logger.Warn("could not query run history", "error", err)
		}
		best = max(best, dbBest)
	}

	k.logger.Debug("loaded high score", "score", best)
	return best
}

// RecordRun stores a finished run. Runs that scored nothing are skipped.
func (k *Keeper) RecordRun(score int, mileage float64, seed int64) {
	if k.store == nil || score <= 0 {
		return
	}
	id, err := k.store.SaveRun(score, mileage, seed)
	if err != nil {
		k.logger.Warn("could not save run", "score", score, "error", err)
		return
	}
	k.logger.Info("run recorded", "id", id, "score", score, "mileage", mileage)
}

// SaveHighScore writes the best score back to the score file.
func (k *Keeper) SaveHighScore(score int) error {
	if err := WriteHighScore(k.scoreFile, score); err != nil {
		return err
	}
	k.logger.Debug("saved high score", "path", k.scoreFile, "score", score)
	return nil
}
