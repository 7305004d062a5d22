package storage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// ErrBadScoreFile is returned when a score file exists but does not hold a
// usable score.
var ErrBadScoreFile = errors.New("storage: malformed score file")

// ScoreFileSize is the size of a score file: one little-endian int32.
const ScoreFileSize = 4

// ReadHighScore reads the best score from a raw score file.
// A missing file yields 0 and no error. A short or negative file yields 0
// and ErrBadScoreFile. Bytes past the first four are ignored.
func ReadHighScore(path string) (int, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read score file: %w", err)
	}

	score, err := decodeScore(data)
	if err != nil {
		return 0, err
	}
	return score, nil
}

// WriteHighScore replaces the score file with the given score. Scores
// beyond the int32 range are clamped.
func WriteHighScore(path string, score int) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, encodeScore(score), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write score file: %w", err)
	}
	return nil
}

func encodeScore(score int) []byte {
	v := int32(min(max(score, 0), math.MaxInt32))

	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = binary.Write(&buf, binary.LittleEndian, v)
	return buf.Bytes()
}

func decodeScore(data []byte) (int, error) {
	var v int32
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &v); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: %d bytes, expected %d", ErrBadScoreFile, len(data), ScoreFileSize)
		}
		return 0, fmt.Errorf("storage: cannot decode score file: %w", err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative score %d", ErrBadScoreFile, v)
	}
	return int(v), nil
}
