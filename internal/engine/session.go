package engine

import (
	"fmt"
	"math/rand"
)

// Control is the per-tick input vector a session consumes. The driver
// samples whatever input source it has (keyboard, SSH session, a test
// script) into this form before stepping.
type Control struct {
	AxisX int // -1, 0 or 1
	Fire  bool
}

// Session is one run of the simulation: the player, the entity pools,
// the spatial index, and the level/score state. All motion is
// fixed-timestep; given the same seed and the same control sequence,
// two sessions produce identical states tick for tick.
//
// A Session is not safe for concurrent use. The driver owns it and
// calls Step from a single goroutine.
type Session struct {
	cfg Config
	rng *rand.Rand

	Player Player

	bullets   *Pool
	asteroids *Pool
	fragments *Pool
	pickups   *Pool
	particles *Pool
	grid      *Grid

	tick      uint64
	score     int
	level     int
	levelTick int
	over      bool

	// Per-level difficulty state, derived from cfg at reset and
	// scaled as levels pass.
	spawnInterval int
	targetSpeed   float64
	friction      float64

	events   []Event
	queryBuf []*Entity
}

// NewSession validates the config, allocates the pools and the grid
// once, and resets to tick zero with the configured seed. All later
// restarts reuse these allocations.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{cfg: cfg}

	var err error
	if s.bullets, err = NewPool(KindBullet, cfg.Pools.Bullets); err != nil {
		return nil, err
	}
	if s.asteroids, err = NewPool(KindAsteroid, cfg.Pools.Asteroids); err != nil {
		return nil, err
	}
	if s.fragments, err = NewPool(KindFragment, cfg.Pools.Fragments); err != nil {
		return nil, err
	}
	if s.pickups, err = NewPool(KindPickup, cfg.Pools.Pickups); err != nil {
		return nil, err
	}
	if s.particles, err = NewPool(KindParticle, cfg.Pools.Particles); err != nil {
		return nil, err
	}
	if s.grid, err = NewGrid(cfg.WorldW, cfg.WorldH, cfg.CellSize); err != nil {
		return nil, err
	}

	s.Reset(cfg.Seed)
	return s, nil
}

// Reset returns the session to tick zero with a fresh RNG stream. The
// pools and the grid keep their allocations.
func (s *Session) Reset(seed int64) {
	s.bullets.ReleaseAll()
	s.asteroids.ReleaseAll()
	s.fragments.ReleaseAll()
	s.pickups.ReleaseAll()
	s.particles.ReleaseAll()
	s.grid.Clear()

	s.Player.reset(&s.cfg.Player, s.cfg.WorldW, s.cfg.WorldH)
	s.rng = rand.New(rand.NewSource(seed))

	s.tick = 0
	s.score = 0
	s.level = 1
	s.levelTick = 0
	s.over = false

	s.spawnInterval = s.cfg.Spawn.AsteroidInterval
	s.targetSpeed = s.cfg.Asteroid.BaseSpeed
	s.friction = s.cfg.Player.Friction

	s.events = s.events[:0]
}

// Step advances the simulation by exactly one tick and returns the
// events it produced. The returned slice is reused on the next call.
//
// The phases run in a fixed order: input, spawning, motion, grid
// rebuild, collision, reclamation, then level progression. Collision
// reads the grid built from post-motion positions, and reclamation is
// the only point where flagged entities return to their pools, so a
// destroyed entity stays addressable for the whole tick it died in.
//
// After game over the session is inert: Step returns no events and
// changes nothing until Reset.
func (s *Session) Step(in Control) []Event {
	s.events = s.events[:0]
	if s.over {
		return s.events
	}
	s.tick++

	s.sampleInput(in)
	s.runSpawns()
	s.advanceMotion(in.AxisX)
	s.rebuildGrid()
	s.resolveCollisions()
	s.reclaim()
	s.progressLevel()

	return s.events
}

// sampleInput applies the tick's discrete actions. Axis movement is
// handled in the motion phase.
func (s *Session) sampleInput(in Control) {
	if in.Fire {
		s.fireBullet()
	}
}

// fireBullet spawns a projectile from the player's nose if ammo
// allows. Rapid fire holds the trigger: a short cooldown paces it so
// a held key does not drain the pool in one burst.
func (s *Session) fireBullet() {
	p := &s.Player
	if p.Ammo <= 0 {
		s.emit(Event{Kind: EventFloatingText, X: p.CenterX(), Y: p.Y, Text: "NO AMMO"})
		return
	}
	if p.RapidFire() && p.RapidCooldown > 0 {
		return
	}

	e, ok := s.bullets.Acquire()
	if !ok {
		return
	}
	e.Shape = ShapeCircle
	e.Radius = s.cfg.Bullet.Radius
	e.X = p.CenterX()
	e.Y = p.Y - 1
	e.VY = -s.cfg.Bullet.Speed
	p.Ammo--
	if p.RapidFire() {
		p.RapidCooldown = s.cfg.PowerUp.RapidCooldown
	}
}

// advanceMotion moves the player first, then every pooled entity, so
// homing asteroids chase this tick's player position.
func (s *Session) advanceMotion(axis int) {
	s.Player.advance(axis, &s.cfg.Player, s.friction, s.cfg.WorldW)

	env := motionEnv{
		worldW:       s.cfg.WorldW,
		worldH:       s.cfg.WorldH,
		targetX:      s.Player.CenterX(),
		hasTarget:    true,
		asteroid:     &s.cfg.Asteroid,
		fragGravity:  s.cfg.Fragment.Gravity,
		partGravity:  s.cfg.Particle.Gravity,
		partFriction: s.cfg.Particle.Friction,
	}

	advancePool := func(p *Pool) {
		p.ForEach(func(e *Entity) {
			if e.Active {
				advanceEntity(e, &env)
			}
		})
	}
	advancePool(s.bullets)
	advancePool(s.asteroids)
	advancePool(s.fragments)
	advancePool(s.pickups)
	advancePool(s.particles)
}

// rebuildGrid reindexes every collidable entity at its post-motion
// position. Bullets and the player query the grid rather than live in
// it, and particles never collide, so only obstacles and pickups are
// inserted.
func (s *Session) rebuildGrid() {
	s.grid.Clear()
	insert := func(p *Pool) {
		p.ForEach(func(e *Entity) {
			if e.Active {
				s.grid.Insert(e)
			}
		})
	}
	insert(s.asteroids)
	insert(s.fragments)
	insert(s.pickups)
}

// reclaim returns every entity flagged inactive during this tick to
// its pool.
func (s *Session) reclaim() {
	s.bullets.Reclaim()
	s.asteroids.Reclaim()
	s.fragments.Reclaim()
	s.pickups.Reclaim()
	s.particles.Reclaim()
}

// progressLevel advances the level clock and, on rollover, tightens
// the difficulty: faster obstacles, denser spawns down to a floor, and
// slipperier player handling down to a floor. Skipped once the session
// has ended, so GameOver is the terminal event of its tick.
func (s *Session) progressLevel() {
	if s.over {
		return
	}
	s.levelTick++
	if s.levelTick < s.cfg.Level.Duration {
		return
	}
	s.levelTick = 0
	s.level++

	lt := &s.cfg.Level
	s.targetSpeed *= lt.SpeedMultiplier
	s.spawnInterval = max(s.cfg.Spawn.MinAsteroidInterval,
		s.cfg.Spawn.AsteroidInterval-(s.level-1)*lt.IntervalStep)
	s.friction = max(lt.MinFriction,
		s.cfg.Player.Friction-float64(s.level-1)*lt.FrictionStep)

	s.emit(Event{Kind: EventLevelUp, Amount: s.level})
	s.emit(Event{
		Kind: EventFloatingText,
		X:    s.cfg.WorldW / 2,
		Y:    s.cfg.WorldH / 3,
		Text: fmt.Sprintf("LEVEL %d", s.level),
	})
}

// collectPickup applies a collected pickup's effect. The caller has
// already flagged the entity inactive.
func (s *Session) collectPickup(e *Entity) {
	p := &s.Player
	t := &s.cfg.Pickup

	switch e.Pickup {
	case PickupAmmo:
		p.Ammo += t.AmmoAmount
		s.emitCollect(e, fmt.Sprintf("+%d AMMO", t.AmmoAmount))
	case PickupHealth:
		p.Health = min(p.Health+t.HealAmount, s.cfg.Player.MaxHealth)
		s.emitCollect(e, fmt.Sprintf("+%d HP", t.HealAmount))
	case PickupShield:
		p.Shield = s.cfg.PowerUp.ShieldTicks
		s.emitCollect(e, "SHIELD")
	case PickupRapidFire:
		p.Rapid = s.cfg.PowerUp.RapidTicks
		p.RapidCooldown = 0
		s.emitCollect(e, "RAPID FIRE")
	case PickupBomb:
		s.triggerBomb(e.X, e.Y)
	}
}

func (s *Session) emitCollect(e *Entity, text string) {
	s.emit(Event{Kind: EventSpawnEffect, Effect: EffectCollect, X: e.X, Y: e.Y})
	s.emit(Event{Kind: EventFloatingText, X: e.X, Y: e.Y, Text: text})
}

// triggerBomb clears every obstacle on screen at reduced score. Bomb
// kills never split: a splitting asteroid caught in the wave just
// dies.
func (s *Session) triggerBomb(x, y float64) {
	s.emit(Event{Kind: EventSpawnEffect, Effect: EffectBombWave, X: x, Y: y})
	s.emit(Event{Kind: EventFloatingText, X: x, Y: y, Text: "BOMB"})

	div := s.cfg.PowerUp.BombScoreDivisor
	s.asteroids.ForEach(func(e *Entity) {
		if !e.Active {
			return
		}
		e.Active = false
		s.addScore(e.Score/div, e.X, e.Y)
		s.emit(Event{Kind: EventSpawnEffect, Effect: EffectExplosion, X: e.X, Y: e.Y})
	})
	s.fragments.ForEach(func(e *Entity) {
		if !e.Active {
			return
		}
		e.Active = false
		s.emit(Event{Kind: EventSpawnEffect, Effect: EffectExplosion, X: e.X, Y: e.Y})
	})
}

// addScore accrues points and reports them at the award position.
func (s *Session) addScore(amount int, x, y float64) {
	if amount == 0 {
		return
	}
	s.score += amount
	s.emit(Event{Kind: EventScoreDelta, Amount: amount, X: x, Y: y})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Tick returns the number of steps taken since the last reset.
func (s *Session) Tick() uint64 { return s.tick }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.over }

// Outcome returns the final tallies. Meaningful once Over is true but
// valid at any point.
func (s *Session) Outcome() Outcome {
	return Outcome{Score: s.score, Level: s.level}
}

// EntityView is a read-only snapshot of one live entity for rendering.
type EntityView struct {
	Kind   Kind
	Class  AsteroidClass
	Pickup PickupType
	Shape  Shape
	X, Y   float64
	Radius float64
	W, H   float64
}

// Snapshot appends a view of every active entity to buf and returns
// it. Callers reuse the buffer across ticks the same way they reuse
// the event slice.
func (s *Session) Snapshot(buf []EntityView) []EntityView {
	collect := func(p *Pool) {
		p.ForEach(func(e *Entity) {
			if !e.Active {
				return
			}
			buf = append(buf, EntityView{
				Kind:   e.Kind,
				Class:  e.Class,
				Pickup: e.Pickup,
				Shape:  e.Shape,
				X:      e.X,
				Y:      e.Y,
				Radius: e.Radius,
				W:      e.W,
				H:      e.H,
			})
		})
	}
	collect(s.bullets)
	collect(s.asteroids)
	collect(s.fragments)
	collect(s.pickups)
	collect(s.particles)
	return buf
}
