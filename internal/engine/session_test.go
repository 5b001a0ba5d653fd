package engine

import "testing"

// scriptedRun steps a fresh session for n ticks with a deterministic
// control script and returns it.
func scriptedRun(t *testing.T, seed int64, n int) *Session {
	t.Helper()
	cfg := DefaultConfig(80, 24)
	cfg.Seed = seed
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for i := 0; i < n; i++ {
		var in Control
		switch {
		case i%7 < 3:
			in.AxisX = 1
		case i%7 < 5:
			in.AxisX = -1
		}
		in.Fire = i%13 == 0
		s.Step(in)
	}
	return s
}

func TestSessionDeterminism(t *testing.T) {
	// Same seed, same control script: every observable must match
	// tick for tick. 2000 ticks crosses a level boundary and plenty
	// of spawns, hits and reclaims.
	a := scriptedRun(t, 12345, 2000)
	b := scriptedRun(t, 12345, 2000)

	if a.Tick() != b.Tick() {
		t.Errorf("tick mismatch: %d vs %d", a.Tick(), b.Tick())
	}
	if a.Score() != b.Score() {
		t.Errorf("score mismatch: %d vs %d", a.Score(), b.Score())
	}
	if a.Level() != b.Level() {
		t.Errorf("level mismatch: %d vs %d", a.Level(), b.Level())
	}
	if a.Player.X != b.Player.X || a.Player.Health != b.Player.Health || a.Player.Ammo != b.Player.Ammo {
		t.Errorf("player mismatch: %+v vs %+v", a.Player, b.Player)
	}

	snapA := a.Snapshot(nil)
	snapB := b.Snapshot(nil)
	if len(snapA) != len(snapB) {
		t.Fatalf("snapshot length mismatch: %d vs %d", len(snapA), len(snapB))
	}
	for i := range snapA {
		if snapA[i] != snapB[i] {
			t.Fatalf("snapshot entity %d mismatch: %+v vs %+v", i, snapA[i], snapB[i])
		}
	}
}

func TestSessionSeedsDiverge(t *testing.T) {
	a := scriptedRun(t, 1, 1500)
	b := scriptedRun(t, 2, 1500)

	snapA := a.Snapshot(nil)
	snapB := b.Snapshot(nil)
	if len(snapA) == len(snapB) {
		same := true
		for i := range snapA {
			if snapA[i] != snapB[i] {
				same = false
				break
			}
		}
		if same && a.Score() == b.Score() {
			t.Error("different seeds produced identical runs")
		}
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := scriptedRun(t, 99, 1000)
	s.Reset(99)

	if s.Tick() != 0 || s.Score() != 0 || s.Level() != 1 || s.Over() {
		t.Errorf("reset state: tick=%d score=%d level=%d over=%v",
			s.Tick(), s.Score(), s.Level(), s.Over())
	}
	if got := s.Snapshot(nil); len(got) != 0 {
		t.Errorf("entities survived reset: %d", len(got))
	}
	if s.Player.Health != s.cfg.Player.MaxHealth || s.Player.Ammo != s.cfg.Player.StartAmmo {
		t.Errorf("player not restored: %+v", s.Player)
	}

	// A reset run must replay identically to a fresh one.
	fresh := scriptedRun(t, 99, 500)
	for i := 0; i < 500; i++ {
		var in Control
		switch {
		case i%7 < 3:
			in.AxisX = 1
		case i%7 < 5:
			in.AxisX = -1
		}
		in.Fire = i%13 == 0
		s.Step(in)
	}
	if s.Score() != fresh.Score() || s.Player.X != fresh.Player.X {
		t.Errorf("replay after reset diverged: score %d vs %d, x %g vs %g",
			s.Score(), fresh.Score(), s.Player.X, fresh.Player.X)
	}
}

func TestGameOverMakesSessionInert(t *testing.T) {
	s := newTestSession(t)
	s.Player.Health = s.cfg.Player.HitDamage
	placeAsteroid(s, s.Player.CenterX(), s.Player.CenterY(), ClassNormal)
	s.rebuildGrid()
	s.resolveCollisions()
	if !s.Over() {
		t.Fatal("setup failed to end the session")
	}

	tick := s.Tick()
	score := s.Score()
	events := s.Step(Control{AxisX: 1, Fire: true})
	if len(events) != 0 {
		t.Errorf("inert session emitted %d events", len(events))
	}
	if s.Tick() != tick || s.Score() != score {
		t.Error("inert session advanced state")
	}
}

func TestGameOverIsTerminalEvent(t *testing.T) {
	s := newTestSession(t)

	// Arrange a lethal hit on the exact tick the level would roll
	// over: the rollover must not fire, and nothing may follow the
	// GameOver event in the tick's slice.
	s.levelTick = s.cfg.Level.Duration - 1
	s.Player.Health = s.cfg.Player.HitDamage
	s.Player.Invuln = 0
	placeAsteroid(s, s.Player.CenterX(), s.Player.CenterY(), ClassNormal)

	events := s.Step(Control{})
	if !s.Over() {
		t.Fatal("lethal hit did not end the session")
	}
	if countEvents(events, EventLevelUp) != 0 {
		t.Error("level-up emitted on the game-over tick")
	}
	if len(events) == 0 || events[len(events)-1].Kind != EventGameOver {
		t.Errorf("GameOver is not the final event: %+v", events)
	}
	if s.Level() != 1 {
		t.Errorf("level advanced after game over: %d", s.Level())
	}
}

func TestFiringConsumesAmmo(t *testing.T) {
	s := newTestSession(t)
	start := s.Player.Ammo

	s.Step(Control{Fire: true})
	if s.Player.Ammo != start-1 {
		t.Errorf("ammo = %d, want %d", s.Player.Ammo, start-1)
	}
	if s.bullets.ActiveCount() != 1 {
		t.Errorf("bullets active = %d, want 1", s.bullets.ActiveCount())
	}
}

func TestFiringWithoutAmmo(t *testing.T) {
	s := newTestSession(t)
	s.Player.Ammo = 0

	events := s.Step(Control{Fire: true})
	if s.bullets.ActiveCount() != 0 {
		t.Error("bullet spawned with no ammo")
	}
	if countEvents(events, EventFloatingText) == 0 {
		t.Error("no feedback event for firing without ammo")
	}
}

func TestRapidFireCooldownPacesShots(t *testing.T) {
	s := newTestSession(t)
	s.Player.Rapid = 10000
	s.Player.Ammo = 1000

	for i := 0; i < 60; i++ {
		s.Step(Control{Fire: true})
	}
	fired := 1000 - s.Player.Ammo
	// One shot per cooldown window, not one per tick.
	maxShots := 60/s.cfg.PowerUp.RapidCooldown + 1
	if fired > maxShots {
		t.Errorf("rapid fire produced %d shots in 60 ticks, cooldown allows at most %d", fired, maxShots)
	}
	if fired == 0 {
		t.Error("rapid fire produced no shots")
	}
}

func TestLevelProgression(t *testing.T) {
	cfg := DefaultConfig(80, 24)
	cfg.Level.Duration = 50 // shorten for the test
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var levelUps int
	for i := 0; i < 120; i++ {
		for _, ev := range s.Step(Control{}) {
			if ev.Kind == EventLevelUp {
				levelUps++
			}
		}
	}
	if s.Level() != 3 {
		t.Errorf("level after 120 ticks of 50-tick levels = %d, want 3", s.Level())
	}
	if levelUps != 2 {
		t.Errorf("got %d level-up events, want 2", levelUps)
	}
	if s.spawnInterval >= cfg.Spawn.AsteroidInterval {
		t.Errorf("spawn interval did not tighten: %d", s.spawnInterval)
	}
	if s.friction >= cfg.Player.Friction {
		t.Errorf("friction did not tighten: %g", s.friction)
	}
}

func TestDifficultyFloors(t *testing.T) {
	cfg := DefaultConfig(80, 24)
	cfg.Level.Duration = 10
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	// Race through many levels; the interval and friction must stop
	// at their floors instead of going non-positive.
	for i := 0; i < 2000 && !s.Over(); i++ {
		s.Step(Control{})
	}
	if s.spawnInterval < cfg.Spawn.MinAsteroidInterval {
		t.Errorf("spawn interval %d fell below floor %d", s.spawnInterval, cfg.Spawn.MinAsteroidInterval)
	}
	if s.friction < cfg.Level.MinFriction {
		t.Errorf("friction %g fell below floor %g", s.friction, cfg.Level.MinFriction)
	}
}

func TestDestroyedEntitiesReturnToPool(t *testing.T) {
	s := newTestSession(t)

	placeAsteroid(s, 40, 10, ClassNormal)
	placeBullet(s, 40, 10.5)

	s.rebuildGrid()
	s.resolveCollisions()

	// Flagged but not yet reclaimed: still counted active.
	if s.asteroids.ActiveCount() != 1 || s.bullets.ActiveCount() != 1 {
		t.Fatal("entities reclaimed before the reclaim phase")
	}
	s.reclaim()
	if s.asteroids.ActiveCount() != 0 || s.bullets.ActiveCount() != 0 {
		t.Errorf("pools not drained after reclaim: asteroids %d bullets %d",
			s.asteroids.ActiveCount(), s.bullets.ActiveCount())
	}
}

func TestPoolExhaustionDropsSpawns(t *testing.T) {
	cfg := DefaultConfig(80, 24)
	cfg.Pools.Asteroids = 2
	cfg.Spawn.AsteroidInterval = 1
	cfg.Spawn.MinAsteroidInterval = 1
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	// Spawn every tick into a 2-slot pool: the count must saturate
	// without error or growth.
	for i := 0; i < 50; i++ {
		s.Step(Control{})
		if got := s.asteroids.ActiveCount(); got > 2 {
			t.Fatalf("tick %d: asteroid pool grew past capacity: %d", i, got)
		}
	}
	if s.asteroids.ActiveCount() != 2 {
		t.Errorf("asteroid pool not saturated: %d", s.asteroids.ActiveCount())
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero world", func(c *Config) { c.WorldW = 0 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"friction above one", func(c *Config) { c.Player.Friction = 1.5 }},
		{"zero max speed", func(c *Config) { c.Player.MaxSpeed = 0 }},
		{"zero bullet speed", func(c *Config) { c.Bullet.Speed = 0 }},
		{"zero pool", func(c *Config) { c.Pools.Particles = 0 }},
		{"zero level duration", func(c *Config) { c.Level.Duration = 0 }},
		{"zero asteroid interval", func(c *Config) { c.Spawn.AsteroidInterval = 0 }},
		{"zero ammo interval", func(c *Config) { c.Spawn.AmmoInterval = 0 }},
		{"zero health interval", func(c *Config) { c.Spawn.HealthInterval = 0 }},
		{"zero powerup interval", func(c *Config) { c.Spawn.PowerUpInterval = 0 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig(80, 24)
		tc.mutate(&cfg)
		if _, err := NewSession(cfg); err == nil {
			t.Errorf("%s: NewSession succeeded, want error", tc.name)
		}
	}
}
