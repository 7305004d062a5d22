package config

import (
	_ "embed"
)

//go:embed defaults/daruma.yaml
var defaultDarumaYAML []byte

// DefaultDarumaConfig returns the built-in configuration.
// It mirrors defaults/daruma.yaml and is used when the embedded copy cannot be parsed.
func DefaultDarumaConfig() DarumaConfig {
	return DarumaConfig{
		Lane: LaneConfig{
			SideWallWidth: 0.1,
			PlanePosY:     0.2,
		},
		Barriers: BarrierConfig{
			HoleWidth:     0.25,
			Interval:      0.5,
			InitialHeight: 0.1,
			MaxHeight:     0.3,
			AnchorMin:     0.4,
			AnchorMax:     0.6,
		},
		Plane: PlaneConfig{
			BaseSpeed:       5e-3,
			SpeedPerMileage: 5e-5,
			MaxDirection:    3,
		},
		Scoring: ScoringConfig{
			Scale: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "mileage",
				MaxAt: 100,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDarumaYAML
}
