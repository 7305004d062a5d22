package daruma

import (
	"math"

	"github.com/vovakirdan/daruma/internal/core"
)

// SceneID identifies one of the game's screens.
type SceneID int

const (
	SceneTitle SceneID = iota
	ScenePlaying
	SceneGameOver
)

// String returns the scene name.
func (id SceneID) String() string {
	switch id {
	case SceneTitle:
		return "Title"
	case ScenePlaying:
		return "Playing"
	case SceneGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// scene is one entry of the scene table. enter may be nil.
type scene struct {
	enter  func(*Session)
	update func(*Session, core.InputFrame) SceneID
	render func(*Session, *core.Screen)
}

func sceneTable() map[SceneID]scene {
	return map[SceneID]scene{
		SceneTitle: {
			update: waitForAnyKey(SceneTitle),
			render: renderTitle,
		},
		ScenePlaying: {
			enter:  (*Session).startRun,
			update: updatePlaying,
			render: renderPlaying,
		},
		SceneGameOver: {
			update: waitForAnyKey(SceneGameOver),
			render: renderGameOver,
		},
	}
}

// waitForAnyKey stays on the current scene until any key starts a run.
func waitForAnyKey(current SceneID) func(*Session, core.InputFrame) SceneID {
	return func(_ *Session, in core.InputFrame) SceneID {
		if in.Has(core.ActionAny) {
			return ScenePlaying
		}
		return current
	}
}

// updatePlaying steers the plane, tests for a crash and scrolls the level.
// A crashing tick does not scroll.
func updatePlaying(s *Session, in core.InputFrame) SceneID {
	if in.Has(core.ActionPause) {
		s.Paused = !s.Paused
	}
	if s.Paused {
		return ScenePlaying
	}

	s.Plane.Steer(in.Has(core.ActionLeft), in.Has(core.ActionRight), s.cfg.Plane.MaxDirection)

	angle := s.Plane.Angle()
	speed := s.speed()
	s.Plane.X += math.Sin(angle) * speed

	if s.Level.Hit(s.Plane.X) {
		s.Crashed = true
		return SceneGameOver
	}

	s.Level.Update(math.Cos(angle) * speed)
	s.HighScore = max(s.HighScore, s.Score())
	return ScenePlaying
}
