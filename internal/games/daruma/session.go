package daruma

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/daruma/internal/config"
	"github.com/vovakirdan/daruma/internal/games/daruma/level"
)

// Steering angles indexed by |direction|, measured from straight down.
var angles = [...]float64{0, math.Pi / 6, math.Pi / 4, math.Pi / 3}

// Plane is the falling object the player steers.
type Plane struct {
	X         float64 // Lane-normalized horizontal position
	Direction int     // Steering step, negative is left
}

// Steer moves the direction one step toward the pressed side. Pressing
// both sides or neither keeps the current direction.
func (p *Plane) Steer(left, right bool, maxDirection int) {
	if left == right {
		return
	}
	if left {
		p.Direction = max(p.Direction-1, -maxDirection)
	} else {
		p.Direction = min(p.Direction+1, maxDirection)
	}
}

// Angle returns the heading in radians for the current direction.
func (p Plane) Angle() float64 {
	d := p.Direction
	if d < 0 {
		return -angles[min(-d, len(angles)-1)]
	}
	return angles[min(d, len(angles)-1)]
}

// Session is the state shared by all scenes for one process lifetime.
type Session struct {
	Scene     SceneID
	Level     *level.Level // nil until the first run starts
	Plane     Plane
	HighScore int
	Paused    bool
	Runs      int  // Runs started so far
	Crashed   bool // Set only on the tick a run ends

	rng        *rand.Rand
	cfg        config.DarumaConfig
	difficulty *config.DifficultyManager
}

func newSession(cfg config.DarumaConfig, diff *config.DifficultyManager, seed int64, highScore int) *Session {
	return &Session{
		Scene:      SceneTitle,
		HighScore:  max(0, highScore),
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg,
		difficulty: diff,
	}
}

// Score returns the score of the current or last run.
func (s *Session) Score() int {
	return int(s.Mileage() * s.cfg.Scoring.Scale)
}

// Mileage returns the distance covered in the current or last run.
func (s *Session) Mileage() float64 {
	if s.Level == nil {
		return 0
	}
	return s.Level.Mileage()
}

// Config returns the game configuration the session runs with.
func (s *Session) Config() config.DarumaConfig {
	return s.cfg
}

// speed is the plane's distance per tick at the current mileage.
func (s *Session) speed() float64 {
	return s.cfg.Plane.BaseSpeed + s.cfg.Plane.SpeedPerMileage*s.Mileage()
}

// startRun replaces the level and puts the plane back in the middle.
func (s *Session) startRun() {
	s.Level = level.New(s.rng, &s.cfg, s.difficulty)
	s.Plane = Plane{X: 0.5}
	s.Paused = false
	s.Runs++
}
