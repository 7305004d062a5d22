package storage

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestKeeperWithoutStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score")
	k := NewKeeper(nil, path, quietLogger())

	if got := k.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() without files = %d, expected 0", got)
	}

	k.RecordRun(50, 10, 1)

	if err := k.SaveHighScore(50); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if got := k.LoadHighScore(); got != 50 {
		t.Errorf("LoadHighScore() = %d, expected 50", got)
	}
}

func TestKeeperPrefersBestSource(t *testing.T) {
	store := openTestStore(t)
	path := filepath.Join(t.TempDir(), "score")
	k := NewKeeper(store, path, quietLogger())

	if err := WriteHighScore(path, 120); err != nil {
		t.Fatal(err)
	}
	k.RecordRun(80, 16, 1)
	if got := k.LoadHighScore(); got != 120 {
		t.Errorf("LoadHighScore() = %d, expected score file value 120", got)
	}

	k.RecordRun(300, 60, 2)
	if got := k.LoadHighScore(); got != 300 {
		t.Errorf("LoadHighScore() = %d, expected run history value 300", got)
	}
}

func TestKeeperSkipsEmptyRuns(t *testing.T) {
	store := openTestStore(t)
	k := NewKeeper(store, filepath.Join(t.TempDir(), "score"), quietLogger())

	k.RecordRun(0, 0.1, 1)
	k.RecordRun(10, 2, 1)

	stats, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 1 {
		t.Errorf("Expected 1 recorded run, got %d", stats.Runs)
	}
}
