// Package config provides YAML-based game configuration loading and
// difficulty management for Daruma Otoshi.
package config

import (
	"errors"
	"fmt"
)

// DarumaConfig contains all configuration for the game.
type DarumaConfig struct {
	Lane       LaneConfig       `yaml:"lane"`
	Barriers   BarrierConfig    `yaml:"barriers"`
	Plane      PlaneConfig      `yaml:"plane"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LaneConfig describes the playfield in lane-normalized units.
type LaneConfig struct {
	SideWallWidth float64 `yaml:"side_wall_width"` // Solid margin on each side
	PlanePosY     float64 `yaml:"plane_pos_y"`     // Fixed vertical position of the plane
}

// BarrierConfig defines barrier geometry and placement.
type BarrierConfig struct {
	HoleWidth     float64 `yaml:"hole_width"`     // Width of a slit gap
	Interval      float64 `yaml:"interval"`       // Vertical spacing between barriers
	InitialHeight float64 `yaml:"initial_height"` // Barrier height at difficulty 0
	MaxHeight     float64 `yaml:"max_height"`     // Barrier height at difficulty 1
	AnchorMin     float64 `yaml:"anchor_min"`     // Lower bound of the gap anchor draw
	AnchorMax     float64 `yaml:"anchor_max"`     // Upper bound of the gap anchor draw
}

// PlaneConfig defines how the falling plane moves.
type PlaneConfig struct {
	BaseSpeed       float64 `yaml:"base_speed"`        // Speed per tick at zero mileage
	SpeedPerMileage float64 `yaml:"speed_per_mileage"` // Speed added per unit of mileage
	MaxDirection    int     `yaml:"max_direction"`     // Steering steps on each side of straight down
}

// ScoringConfig defines how mileage converts to score.
type ScoringConfig struct {
	Scale float64 `yaml:"scale"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "mileage" or "none"
	MaxAt float64 `yaml:"max_at"` // Mileage at which max difficulty is reached
}

// Validate reports every setting that would break level generation.
func (c DarumaConfig) Validate() error {
	var errs []error

	if c.Lane.SideWallWidth < 0 || c.Lane.SideWallWidth >= 0.5 {
		errs = append(errs, fmt.Errorf("lane.side_wall_width must be in [0, 0.5), got %g", c.Lane.SideWallWidth))
	}
	if c.Lane.PlanePosY <= 0 || c.Lane.PlanePosY >= 1 {
		errs = append(errs, fmt.Errorf("lane.plane_pos_y must be in (0, 1), got %g", c.Lane.PlanePosY))
	}

	b := c.Barriers
	if b.HoleWidth <= 0 || b.HoleWidth >= 1 {
		errs = append(errs, fmt.Errorf("barriers.hole_width must be in (0, 1), got %g", b.HoleWidth))
	}
	if b.Interval <= 0 {
		errs = append(errs, fmt.Errorf("barriers.interval must be positive, got %g", b.Interval))
	}
	if b.InitialHeight <= 0 || b.MaxHeight < b.InitialHeight {
		errs = append(errs, fmt.Errorf("barriers heights must satisfy 0 < initial_height <= max_height, got %g and %g", b.InitialHeight, b.MaxHeight))
	}
	if b.MaxHeight >= b.Interval {
		errs = append(errs, fmt.Errorf("barriers.max_height must be below interval, got %g >= %g", b.MaxHeight, b.Interval))
	}
	if b.AnchorMin > b.AnchorMax {
		errs = append(errs, fmt.Errorf("barriers anchors inverted: %g > %g", b.AnchorMin, b.AnchorMax))
	}
	// Slits may be centred on the anchor or start at it from either side.
	wall := c.Lane.SideWallWidth
	if b.AnchorMin-b.HoleWidth/2 < wall || b.AnchorMax+b.HoleWidth > 1-wall || b.AnchorMin < b.HoleWidth+wall {
		errs = append(errs, errors.New("barriers anchors leave no reachable gap inside the side walls"))
	}

	if c.Plane.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("plane.base_speed must be positive, got %g", c.Plane.BaseSpeed))
	}
	if c.Plane.SpeedPerMileage < 0 {
		errs = append(errs, fmt.Errorf("plane.speed_per_mileage must not be negative, got %g", c.Plane.SpeedPerMileage))
	}
	if c.Plane.MaxDirection < 1 || c.Plane.MaxDirection > 3 {
		errs = append(errs, fmt.Errorf("plane.max_direction must be in [1, 3], got %d", c.Plane.MaxDirection))
	}

	if c.Scoring.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scoring.scale must be positive, got %g", c.Scoring.Scale))
	}

	switch c.Difficulty.Progression.Type {
	case "mileage", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be mileage or none, got %q", c.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown or empty values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *DarumaConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
