package daruma

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/daruma/internal/core"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startedGame returns a game that has just left the title screen.
func startedGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewDefault(seed, 0)
	g.Step(press(core.ActionAny))
	if g.Session().Scene != ScenePlaying {
		t.Fatalf("expected Playing after any key, got %v", g.Session().Scene)
	}
	return g
}

// crashLeft steers hard left until the plane hits the left wall.
func crashLeft(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 3; i++ {
		if res := g.Step(press(core.ActionLeft)); res.RunEnded {
			return res
		}
	}
	for i := 0; i < 1000; i++ {
		if res := g.Step(core.NewInputFrame()); res.RunEnded {
			return res
		}
	}
	t.Fatal("plane never crashed")
	return core.StepResult{}
}

func TestTitleWaitsForAnyKey(t *testing.T) {
	g := NewDefault(1, 0)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Scene != SceneTitle {
		t.Fatalf("title should wait without input, got %v", g.Session().Scene)
	}
	if g.Session().Level != nil {
		t.Error("no level should exist before the first run")
	}

	res := g.Step(press(core.ActionAny))
	if res.State.Scene != "Playing" {
		t.Errorf("State.Scene = %q, expected Playing", res.State.Scene)
	}

	s := g.Session()
	if s.Level == nil || s.Level.Mileage() != 0 {
		t.Error("entering Playing should build a fresh level")
	}
	if s.Plane != (Plane{X: 0.5}) {
		t.Errorf("plane should start centred and straight, got %+v", s.Plane)
	}
	if s.Runs != 1 {
		t.Errorf("Runs = %d, expected 1", s.Runs)
	}
}

func TestStraightFlightScrolls(t *testing.T) {
	g := startedGame(t, 3)

	res := g.Step(core.NewInputFrame())
	if res.State.Mileage != 0.005 {
		t.Errorf("first tick mileage = %g, expected base speed 0.005", res.State.Mileage)
	}
	if g.Session().Plane.X != 0.5 {
		t.Errorf("straight flight should not move sideways, X = %g", g.Session().Plane.X)
	}
}

func TestCrashEndsRunOnce(t *testing.T) {
	g := startedGame(t, 5)

	res := crashLeft(t, g)
	if !res.State.GameOver || res.State.Scene != "GameOver" {
		t.Fatalf("crash should enter GameOver, got %+v", res.State)
	}
	if x := g.Session().Plane.X; x >= 0.1 {
		t.Errorf("plane should have crossed into the left wall, X = %g", x)
	}

	for i := 0; i < 20; i++ {
		if g.Step(core.NewInputFrame()).RunEnded {
			t.Fatal("RunEnded reported more than once")
		}
	}
	if g.Session().Scene != SceneGameOver {
		t.Error("GameOver should wait for a key")
	}
}

func TestCrashTickDoesNotScroll(t *testing.T) {
	g := startedGame(t, 6)

	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionLeft))

	prev := g.State().Mileage
	for i := 0; i < 1000; i++ {
		res := g.Step(core.NewInputFrame())
		if res.RunEnded {
			if res.State.Mileage != prev {
				t.Errorf("crash tick scrolled from %g to %g", prev, res.State.Mileage)
			}
			return
		}
		prev = res.State.Mileage
	}
	t.Fatal("plane never crashed")
}

func TestRetryStartsFreshRun(t *testing.T) {
	g := startedGame(t, 7)
	crashLeft(t, g)

	scored := g.State().Score
	high := g.State().HighScore
	if high < scored {
		t.Errorf("HighScore %d below last score %d", high, scored)
	}

	res := g.Step(press(core.ActionAny))
	if res.State.Scene != "Playing" {
		t.Fatalf("any key should retry, got %q", res.State.Scene)
	}
	if res.State.Mileage != 0 || res.State.Score != 0 {
		t.Errorf("retry should reset the run, got %+v", res.State)
	}
	if res.State.HighScore != high {
		t.Errorf("retry should keep HighScore %d, got %d", high, res.State.HighScore)
	}
	if g.Session().Runs != 2 {
		t.Errorf("Runs = %d, expected 2", g.Session().Runs)
	}
}

func TestHighScoreTracksScore(t *testing.T) {
	g := startedGame(t, 9)

	for i := 0; i < 300; i++ {
		res := g.Step(core.NewInputFrame())
		if res.RunEnded {
			break
		}
		if res.State.HighScore != res.State.Score {
			t.Fatalf("tick %d: HighScore %d, Score %d", i, res.State.HighScore, res.State.Score)
		}
		if expected := int(res.State.Mileage * 5); res.State.Score != expected {
			t.Fatalf("tick %d: Score %d, expected %d", i, res.State.Score, expected)
		}
	}
}

func TestPreviousHighScoreKept(t *testing.T) {
	g := NewDefault(10, 1000)
	g.Step(press(core.ActionAny))
	crashLeft(t, g)

	if g.State().HighScore != 1000 {
		t.Errorf("HighScore = %d, expected 1000", g.State().HighScore)
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g := startedGame(t, 11)
	g.Step(core.NewInputFrame())
	mileage := g.State().Mileage

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("P should pause the run")
	}
	for i := 0; i < 30; i++ {
		g.Step(press(core.ActionLeft))
	}
	if g.State().Mileage != mileage {
		t.Error("paused run should not scroll")
	}
	if g.Session().Plane.Direction != 0 {
		t.Error("paused run should ignore steering")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Fatal("second P should resume")
	}
	if g.State().Mileage <= mileage {
		t.Error("resumed run should scroll again")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%50 == 0:
			inputs[i].Set(core.ActionAny)
		case i%7 == 0:
			inputs[i].Set(core.ActionLeft)
		case i%11 == 0:
			inputs[i].Set(core.ActionRight)
		}
	}

	g1 := NewDefault(777, 0)
	g2 := NewDefault(777, 0)
	for i, in := range inputs {
		r1, r2 := g1.Step(in), g2.Step(in)
		if r1 != r2 {
			t.Fatalf("tick %d: results differ: %+v vs %+v", i, r1, r2)
		}
		if g1.Session().Plane != g2.Session().Plane {
			t.Fatalf("tick %d: planes differ", i)
		}
	}

	b1, b2 := g1.Session().Level.Barriers(), g2.Session().Level.Barriers()
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Fatalf("barrier %d differs: %+v vs %+v", i, b1[i], b2[i])
		}
	}
}

func TestPlaneSteer(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		left, right bool
		expected    int
	}{
		{"left", 0, true, false, -1},
		{"right", 0, false, true, 1},
		{"both cancel", 2, true, true, 2},
		{"neither", -1, false, false, -1},
		{"clamped left", -3, true, false, -3},
		{"clamped right", 3, false, true, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Plane{Direction: tc.start}
			p.Steer(tc.left, tc.right, 3)
			if p.Direction != tc.expected {
				t.Errorf("Direction = %d, expected %d", p.Direction, tc.expected)
			}
		})
	}
}

func TestPlaneAngle(t *testing.T) {
	tests := map[int]float64{
		0:  0,
		1:  math.Pi / 6,
		-2: -math.Pi / 4,
		3:  math.Pi / 3,
		-3: -math.Pi / 3,
	}
	for dir, expected := range tests {
		if got := (Plane{Direction: dir}).Angle(); got != expected {
			t.Errorf("Angle() at direction %d = %g, expected %g", dir, got, expected)
		}
	}
}

func TestRenderTitle(t *testing.T) {
	g := NewDefault(1, 42)
	scr := core.NewScreen(60, 20)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{TitleText, StartText, "HIGHSCORE 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("title screen missing %q", want)
		}
	}
}

func TestRenderPlaying(t *testing.T) {
	g := startedGame(t, 2)
	scr := core.NewScreen(40, 20)
	g.Render(scr)

	if c := scr.GetCell(20, 4); c.Rune != PlaneChar || c.Color != core.ColorRed {
		t.Errorf("plane cell = %+v, expected red %q", c, PlaneChar)
	}
	if scr.Get(0, 10) != WallChar || scr.Get(39, 10) != WallChar {
		t.Error("side walls should be drawn")
	}
	if scr.Get(20, 10) != ' ' {
		t.Error("lane should be empty before barriers scroll in")
	}
	if !strings.Contains(scr.Row(0), HUDText(0, 0)) {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
}

func TestRenderBarrierRow(t *testing.T) {
	g := startedGame(t, 4)

	// Bring the centred slit to the middle of the screen.
	g.Session().Level.Update(0.5)

	scr := core.NewScreen(40, 20)
	g.Render(scr)

	// Slit at y 0.5..0.6 with its gap over 0.375..0.625.
	row := []rune(scr.Row(10))
	if row[8] != WallChar || row[31] != WallChar {
		t.Errorf("solid slit sides missing in row %q", string(row))
	}
	if row[20] != ' ' {
		t.Errorf("slit gap should be open in row %q", string(row))
	}
}

func TestRenderGameOver(t *testing.T) {
	g := startedGame(t, 8)
	crashLeft(t, g)

	scr := core.NewScreen(60, 20)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, GameOverText) || !strings.Contains(out, RetryText) {
		t.Error("game over screen should show the retry message")
	}
	if !strings.Contains(scr.Row(0), "SCORE") {
		t.Error("game over screen should keep the HUD")
	}
}
