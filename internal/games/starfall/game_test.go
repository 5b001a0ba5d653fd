package starfall

import (
	"testing"

	"github.com/velikanov/astro-arcade/internal/core"
	"github.com/velikanov/astro-arcade/internal/registry"
)

func runTicks(g *Game, n int) {
	var in core.Control
	for i := 0; i < n; i++ {
		in.Clear()
		switch {
		case i%9 < 4:
			in.AxisX = 1
		case i%9 < 7:
			in.AxisX = -1
		}
		in.Fire = i%11 == 0
		g.Step(in)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed must produce identical states and
	// identical rendered frames.
	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	runTicks(g1, 500)
	runTicks(g2, 500)

	s1, s2 := g1.State(), g2.State()
	if s1 != s2 {
		t.Errorf("state mismatch: %+v vs %+v", s1, s2)
	}

	scr1 := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	scr2 := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g1.Render(scr1)
	g2.Render(scr2)
	if scr1.String() != scr2.String() {
		t.Error("rendered frames differ for identical runs")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24}
	g := New()
	g.Reset(cfg)
	runTicks(g, 100)

	g.Step(core.Control{Pause: true})
	if !g.State().Paused {
		t.Fatal("pause key did not pause")
	}

	tick := g.session.Tick()
	for i := 0; i < 50; i++ {
		g.Step(core.Control{AxisX: 1, Fire: true})
	}
	if g.session.Tick() != tick {
		t.Errorf("simulation advanced while paused: %d -> %d", tick, g.session.Tick())
	}

	// Resuming steps the simulation in the same tick.
	g.Step(core.Control{Pause: true})
	if g.State().Paused {
		t.Fatal("pause key did not resume")
	}
	if g.session.Tick() != tick+1 {
		t.Errorf("simulation did not resume: tick %d, want %d", g.session.Tick(), tick+1)
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24}
	g := New()
	g.Reset(cfg)
	runTicks(g, 200)

	// Mid-game restart request is ignored.
	tick := g.session.Tick()
	g.Step(core.Control{Restart: true})
	if g.session.Tick() != tick+1 {
		t.Error("restart mid-game did not step normally")
	}

	// Force game over through the engine, then restart.
	g.session.Player.Health = 0
	g.state = StateGameOver
	g.Step(core.Control{Restart: true})

	if g.State().GameOver {
		t.Error("still game over after restart")
	}
	if g.session.Tick() != 0 {
		t.Errorf("session not reset: tick %d", g.session.Tick())
	}
	if g.State().Score != 0 {
		t.Errorf("score survived restart: %d", g.State().Score)
	}
}

func TestSmallScreenIsSafe(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 8}
	g := New()
	g.Reset(cfg)

	// Step and render must not panic or advance anything.
	g.Step(core.Control{AxisX: 1, Fire: true})
	scr := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(scr)

	if g.State().GameOver {
		t.Error("small screen reported game over")
	}
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{"starfall", "starfall_blitz"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestBlitzIdentity(t *testing.T) {
	g := NewBlitz()
	if g.ID() != "starfall_blitz" || g.Title() == New().Title() {
		t.Errorf("blitz identity wrong: id=%q title=%q", g.ID(), g.Title())
	}
}
