// Package daruma implements Daruma Otoshi, a reflex game where a falling
// plane is steered through a scrolling field of gapped barriers.
//
// The game is a small state machine over three scenes (Title, Playing,
// GameOver). All scenes share one Session; the Game drives the active
// scene and performs transitions.
package daruma

import (
	"github.com/vovakirdan/daruma/internal/config"
	"github.com/vovakirdan/daruma/internal/core"
)

// Game implements the Daruma Otoshi game logic.
type Game struct {
	session *Session
	scenes  map[SceneID]scene
	seed    int64
}

// New creates a game on the title screen. highScore is the best score
// from previous sessions.
func New(cfg config.DarumaConfig, diff *config.DifficultyManager, seed int64, highScore int) *Game {
	if diff == nil {
		diff = config.NewDifficultyManager(cfg.Difficulty)
	}
	return &Game{
		session: newSession(cfg, diff, seed, highScore),
		scenes:  sceneTable(),
		seed:    seed,
	}
}

// NewDefault creates a game with the built-in configuration.
func NewDefault(seed int64, highScore int) *Game {
	return New(config.DefaultDarumaConfig(), nil, seed, highScore)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "daruma"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Daruma Otoshi"
}

// Seed returns the seed the game's random source was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Session exposes the shared scene state to frontends for drawing.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	s.Crashed = false

	if next := g.scenes[s.Scene].update(s, in); next != s.Scene {
		g.changeScene(next)
	}

	return core.StepResult{State: g.State(), RunEnded: s.Crashed}
}

func (g *Game) changeScene(id SceneID) {
	g.session.Scene = id
	if enter := g.scenes[id].enter; enter != nil {
		enter(g.session)
	}
}

// Render draws the active scene to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.scenes[g.session.Scene].render(g.session, dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Scene:     s.Scene.String(),
		Score:     s.Score(),
		HighScore: s.HighScore,
		Mileage:   s.Mileage(),
		GameOver:  s.Scene == SceneGameOver,
		Paused:    s.Paused,
	}
}
