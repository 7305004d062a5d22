package level

import (
	"slices"

	"github.com/vovakirdan/daruma/internal/config"
)

// Rand is the random source used for barrier generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Level owns the window of barriers ahead of and around the plane.
// The front of the window is the oldest barrier (the next to retire),
// the back is the most recently generated one.
type Level struct {
	barriers   []Barrier
	mileage    float64
	retired    int
	rng        Rand
	lane       config.LaneConfig
	cfg        config.BarrierConfig
	difficulty *config.DifficultyManager
}

// New creates a level seeded with a centred slit at the bottom edge and
// pre-filled until the window covers one lane height.
func New(rng Rand, cfg *config.DarumaConfig, diff *config.DifficultyManager) *Level {
	l := &Level{
		barriers:   make([]Barrier, 0, 4),
		rng:        rng,
		lane:       cfg.Lane,
		cfg:        cfg.Barriers,
		difficulty: diff,
	}

	l.barriers = append(l.barriers, Barrier{
		Type:      Slit,
		GapOffset: 0.5 - l.cfg.HoleWidth/2,
		HoleWidth: l.cfg.HoleWidth,
		Height:    l.cfg.InitialHeight,
		YPos:      1.0,
	})

	for covered := 0.0; covered < 1.0; covered += l.cfg.Interval {
		l.addBarrier()
	}
	return l
}

// NewDefault creates a level with the built-in configuration.
func NewDefault(rng Rand) *Level {
	cfg := config.DefaultDarumaConfig()
	return New(rng, &cfg, config.NewDifficultyManager(cfg.Difficulty))
}

// Update scrolls the level by scrollDelta and retires at most one barrier.
// It reports whether a barrier was retired.
func (l *Level) Update(scrollDelta float64) bool {
	if scrollDelta < 0 {
		panic("level: negative scroll delta")
	}

	l.mileage += scrollDelta
	for i := range l.barriers {
		l.barriers[i].YPos -= scrollDelta
	}

	if l.barriers[0].IsVisible() {
		return false
	}

	copy(l.barriers, l.barriers[1:])
	l.barriers = l.barriers[:len(l.barriers)-1]
	l.retired++
	l.addBarrier()
	return true
}

// Hit reports whether the plane at horizontal position x touches a side
// wall or any barrier. It does not modify the level.
func (l *Level) Hit(x float64) bool {
	if x < l.lane.SideWallWidth || x > 1.0-l.lane.SideWallWidth {
		return true
	}
	for _, b := range l.barriers {
		if b.Hit(x, l.lane.PlanePosY) {
			return true
		}
	}
	return false
}

// Mileage returns the total distance scrolled.
func (l *Level) Mileage() float64 {
	return l.mileage
}

// Retired returns how many barriers have left the window.
func (l *Level) Retired() int {
	return l.retired
}

// Barriers returns a copy of the current window, front first.
func (l *Level) Barriers() []Barrier {
	return slices.Clone(l.barriers)
}

// Lane returns the lane geometry the level was built with.
func (l *Level) Lane() config.LaneConfig {
	return l.lane
}

// addBarrier appends one barrier behind the current back of the window.
// The type depends on the previous barrier so that a Left never follows a
// Left and a Right never follows a Right.
func (l *Level) addBarrier() {
	prev := l.barriers[len(l.barriers)-1]
	pos := l.cfg.AnchorMin + l.rng.Float64()*(l.cfg.AnchorMax-l.cfg.AnchorMin)

	var (
		typ BarrierType
		gap float64
	)
	switch prev.Type {
	case Left:
		typ = pick(l.rng, Right, Slit)
		gap = pos
	case Right:
		typ = pick(l.rng, Left, Slit)
		gap = 1.0 - pos
	default:
		typ = pick(l.rng, Left, Right, Slit)
		gap = pos - l.cfg.HoleWidth/2
	}

	l.barriers = append(l.barriers, Barrier{
		Type:      typ,
		GapOffset: gap,
		HoleWidth: l.cfg.HoleWidth,
		Height:    l.difficulty.BarrierHeight(l.cfg.InitialHeight, l.cfg.MaxHeight, l.mileage),
		YPos:      prev.YPos + l.cfg.Interval,
	})
}

func pick(rng Rand, types ...BarrierType) BarrierType {
	return types[rng.Intn(len(types))]
}
