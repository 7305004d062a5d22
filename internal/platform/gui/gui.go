// Package gui provides an Ebiten window frontend for Daruma Otoshi.
package gui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/daruma/internal/core"
	"github.com/vovakirdan/daruma/internal/games/daruma"
	"github.com/vovakirdan/daruma/internal/storage"
)

// Window layout
const (
	WindowSize = 600
	PlaneSize  = 50

	glyphW = 6 // debug font cell width
	glyphH = 16
)

var (
	backgroundColor = color.Black
	laneColor       = color.White
	barrierColor    = color.Black
	planeColor      = color.RGBA{R: 0xff, A: 0xff}
	panelColor      = color.RGBA{A: 0xd0}
)

// App implements ebiten.Game around one daruma.Game.
type App struct {
	game     *daruma.Game
	keeper   *storage.Keeper
	logger   *log.Logger
	frame    core.InputFrame
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	buttons  []ebiten.GamepadButton
}

// NewApp creates a window frontend for game. keeper may be nil.
func NewApp(game *daruma.Game, keeper *storage.Keeper, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		game:   game,
		keeper: keeper,
		logger: logger,
		frame:  core.NewInputFrame(),
	}
}

// Update advances the game by one tick.
func (a *App) Update() error {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	if quitRequested(a.keys) {
		return ebiten.Termination
	}

	a.frame.Clear()
	MapKeys(a.keys, &a.frame)
	a.readGamepads()

	res := a.game.Step(a.frame)
	if res.RunEnded {
		a.logger.Debug("run ended", "score", res.State.Score, "mileage", res.State.Mileage)
		if a.keeper != nil {
			a.keeper.RecordRun(res.State.Score, res.State.Mileage, a.game.Seed())
		}
	}
	return nil
}

// readGamepads adds d-pad steering and any-button presses from every
// connected standard gamepad.
func (a *App) readGamepads() {
	a.gamepads = ebiten.AppendGamepadIDs(a.gamepads[:0])
	for _, id := range a.gamepads {
		a.buttons = inpututil.AppendJustPressedGamepadButtons(id, a.buttons[:0])
		if len(a.buttons) > 0 {
			a.frame.Set(core.ActionAny)
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			a.frame.Set(core.ActionLeft)
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			a.frame.Set(core.ActionRight)
		}
	}
}

// Draw renders the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s := a.game.Session()

	switch s.Scene {
	case daruma.SceneTitle:
		drawMessage(screen, daruma.TitleText, daruma.StartText)
		if s.HighScore > 0 {
			drawCentered(screen, fmt.Sprintf("HIGHSCORE %d", s.HighScore), WindowSize-3*glyphH)
		}
	case daruma.ScenePlaying:
		drawLane(screen, s)
		if s.Paused {
			drawMessage(screen, daruma.PausedText, daruma.ResumeText)
		}
	case daruma.SceneGameOver:
		drawLane(screen, s)
		drawMessage(screen, daruma.GameOverText, daruma.RetryText)
	}
}

// Layout fixes the logical screen to the window size.
func (a *App) Layout(_, _ int) (int, int) {
	return WindowSize, WindowSize
}

func drawLane(screen *ebiten.Image, s *daruma.Session) {
	cfg := s.Config()
	wall := cfg.Lane.SideWallWidth

	vector.DrawFilledRect(screen, px(wall), 0, px(1-2*wall), WindowSize, laneColor, false)

	if s.Level != nil {
		for _, b := range s.Level.Barriers() {
			lo, hi := b.Open()
			y, h := px(b.YPos), px(b.Height)
			if lo > 0 {
				vector.DrawFilledRect(screen, 0, y, px(lo), h, barrierColor, false)
			}
			if hi < 1 {
				vector.DrawFilledRect(screen, px(hi), y, px(1-hi), h, barrierColor, false)
			}
		}
	}

	cx, cy := px(s.Plane.X), px(cfg.Lane.PlanePosY)
	vector.DrawFilledRect(screen, cx-PlaneSize/2, cy-PlaneSize/2, PlaneSize, PlaneSize, planeColor, false)

	vector.DrawFilledRect(screen, 0, 0, WindowSize, glyphH+4, panelColor, false)
	drawCentered(screen, daruma.HUDText(s.Score(), s.HighScore), 2)
}

func drawMessage(screen *ebiten.Image, title, subtitle string) {
	w := float32((max(len(title), len(subtitle)) + 4) * glyphW)
	h := float32(4 * glyphH)
	vector.DrawFilledRect(screen, (WindowSize-w)/2, (WindowSize-h)/2, w, h, panelColor, false)

	drawCentered(screen, title, WindowSize/2-glyphH)
	drawCentered(screen, subtitle, WindowSize/2)
}

func drawCentered(screen *ebiten.Image, text string, y int) {
	ebitenutil.DebugPrintAt(screen, text, (WindowSize-len(text)*glyphW)/2, y)
}

// px converts a lane-normalized length to window pixels.
func px(v float64) float32 {
	return float32(v * WindowSize)
}

// Run opens the game window and plays until it is closed.
// The best score is written back through the keeper on exit.
func Run(game *daruma.Game, keeper *storage.Keeper, tps int, logger *log.Logger) error {
	app := NewApp(game, keeper, logger)

	ebiten.SetWindowSize(WindowSize, WindowSize)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(max(1, tps))

	runErr := ebiten.RunGame(app)

	if keeper != nil {
		if err := keeper.SaveHighScore(game.Session().HighScore); err != nil {
			app.logger.Error("could not save high score", "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("gui: %w", runErr)
	}
	return nil
}
