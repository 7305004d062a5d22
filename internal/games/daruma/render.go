package daruma

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/daruma/internal/core"
	"github.com/vovakirdan/daruma/internal/games/daruma/level"
)

// Visual characters for rendering
const (
	WallChar  = '█'
	PlaneChar = '▼'
)

// Text shown by the title and game over screens.
const (
	TitleText    = "DARUMA OTOSHI"
	StartText    = "PRESS ANY KEY TO START"
	GameOverText = "GAME OVER"
	RetryText    = "PRESS ANY KEY TO RETRY"
	PausedText   = "PAUSED"
	ResumeText   = "PRESS P TO RESUME"
)

// HUDText formats the score line drawn on the top row.
func HUDText(score, highScore int) string {
	return fmt.Sprintf("SCORE %d  HIGHSCORE %d", score, highScore)
}

func renderTitle(s *Session, dst *core.Screen) {
	dst.Clear()
	drawMessage(dst, TitleText, StartText)
	if s.HighScore > 0 {
		dst.DrawTextCentered(dst.Height()-2, fmt.Sprintf("HIGHSCORE %d", s.HighScore), core.ColorGray)
	}
}

func renderPlaying(s *Session, dst *core.Screen) {
	dst.Clear()
	drawLane(s, dst)
	if s.Paused {
		drawMessage(dst, PausedText, ResumeText)
	}
}

func renderGameOver(s *Session, dst *core.Screen) {
	dst.Clear()
	drawLane(s, dst)
	drawMessage(dst, GameOverText, RetryText)
}

// drawLane draws walls, barriers, the plane and the HUD.
func drawLane(s *Session, dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	wall := s.cfg.Lane.SideWallWidth

	dst.FillRect(core.LaneRect(0, 0, wall, 1, w, h), WallChar, core.ColorGray)
	dst.FillRect(core.LaneRect(1-wall, 0, 1, 1, w, h), WallChar, core.ColorGray)

	if s.Level != nil {
		for _, b := range s.Level.Barriers() {
			drawBarrier(dst, b)
		}
	}

	px := core.Clamp(core.LaneToCell(s.Plane.X, w), 0, max(0, w-1))
	py := core.LaneToCell(s.cfg.Lane.PlanePosY, h)
	dst.SetCell(px, py, core.Cell{Rune: PlaneChar, Color: core.ColorRed})

	dst.DrawTextCentered(0, HUDText(s.Score(), s.HighScore), core.ColorYellow)
}

// drawBarrier fills the solid parts of one barrier row.
func drawBarrier(dst *core.Screen, b level.Barrier) {
	w, h := dst.Width(), dst.Height()
	lo, hi := b.Open()
	top, bottom := b.YPos, b.Bottom()

	if lo > 0 {
		dst.FillRect(core.LaneRect(0, top, lo, bottom, w, h), WallChar, core.ColorWhite)
	}
	if hi < 1 {
		dst.FillRect(core.LaneRect(hi, top, 1, bottom, w, h), WallChar, core.ColorWhite)
	}
}

// drawMessage draws a boxed two-line message in the centre of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
