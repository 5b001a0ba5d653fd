package engine

import "math"

// The spawn director. Runs once per tick right after input sampling;
// every draw comes from the session RNG, so a fixed seed yields an
// identical spawn sequence.

// runSpawns emits new entities on their cadence. A full pool drops the
// request silently; capacities are a tuning knob, not an invariant.
func (s *Session) runSpawns() {
	sp := &s.cfg.Spawn

	if s.tick%uint64(s.spawnInterval) == 0 {
		s.spawnAsteroid()
	}
	if s.tick%uint64(sp.AmmoInterval) == 0 {
		s.spawnPickup(PickupAmmo)
	}
	if s.tick%uint64(sp.HealthInterval) == 0 {
		s.spawnPickup(PickupHealth)
	}
	if s.level >= sp.PowerUpLevel && s.tick%uint64(sp.PowerUpInterval) == 0 {
		s.spawnPowerUp()
	}
}

// spawnAsteroid picks a class from the level-gated weight table, a
// pattern for it, and drops it just above the top edge.
func (s *Session) spawnAsteroid() {
	t := &s.cfg.Asteroid
	sp := &s.cfg.Spawn

	// Weighted by repetition, as levels unlock nastier classes.
	choices := []AsteroidClass{ClassNormal, ClassNormal, ClassNormal}
	if s.level >= sp.FastLevel {
		choices = append(choices, ClassFast, ClassFast)
	}
	if s.level >= sp.HomingLevel {
		choices = append(choices, ClassHoming)
	}
	if s.level >= sp.SplittingLevel {
		choices = append(choices, ClassSplitting)
	}
	class := choices[s.rng.Intn(len(choices))]

	var radius, speed float64
	var score int
	var pattern Pattern
	switch class {
	case ClassFast:
		radius = t.FastRadius
		speed = s.targetSpeed * t.FastSpeedMul
		score = t.FastScore
		pattern = PatternStraight
	case ClassHoming:
		radius = t.HomingRadius
		speed = s.targetSpeed * t.HomingSpeedMul
		score = t.HomingScore
		pattern = PatternHoming
	case ClassSplitting:
		radius = t.SplittingRadius
		speed = s.targetSpeed
		score = t.SplittingScore
		pattern = s.fallPattern()
	default:
		radius = t.NormalRadius
		speed = s.targetSpeed
		score = t.NormalScore
		pattern = s.fallPattern()
	}

	e, ok := s.asteroids.Acquire()
	if !ok {
		return
	}
	e.Shape = ShapeCircle
	e.Radius = radius
	e.Class = class
	e.Pattern = pattern
	e.Speed = speed
	e.Score = score
	e.X = radius + 1 + s.rng.Float64()*(s.cfg.WorldW-2*(radius+1))
	e.Y = -radius
	e.BaseX = e.X
	e.Phase = s.rng.Float64() * 2 * math.Pi

	switch pattern {
	case PatternZigzag:
		e.Amplitude = t.ZigzagAmplitude
		e.Frequency = t.ZigzagFrequency
	case PatternSine:
		e.Amplitude = t.SineAmplitude
		e.Frequency = t.SineFrequency
	case PatternStraight, PatternHoming:
		// No oscillation parameters.
	}
}

// fallPattern picks straight/zigzag/sine with fixed weights.
func (s *Session) fallPattern() Pattern {
	r := s.rng.Float64()
	switch {
	case r < 0.60:
		return PatternStraight
	case r < 0.85:
		return PatternZigzag
	default:
		return PatternSine
	}
}

// spawnPickup drops a slow-falling collectible at a random column.
func (s *Session) spawnPickup(pt PickupType) {
	t := &s.cfg.Pickup

	e, ok := s.pickups.Acquire()
	if !ok {
		return
	}
	e.Shape = ShapeCircle
	e.Radius = t.Radius
	e.Pickup = pt
	e.VY = t.FallSpeed
	e.X = t.Radius + 2 + s.rng.Float64()*(s.cfg.WorldW-2*(t.Radius+2))
	e.Y = -t.Radius
	e.BaseX = e.X
	e.Amplitude = t.BobAmplitude
	e.Frequency = t.BobFrequency
	e.Phase = s.rng.Float64() * 2 * math.Pi
}

// spawnPowerUp picks one of the three buffs uniformly.
func (s *Session) spawnPowerUp() {
	kinds := []PickupType{PickupShield, PickupRapidFire, PickupBomb}
	s.spawnPickup(kinds[s.rng.Intn(len(kinds))])
}

// spawnFragments breaks a splitting asteroid into shards launched at
// evenly spaced angles with a little seeded jitter.
func (s *Session) spawnFragments(x, y float64) {
	t := &s.cfg.Fragment
	for i := 0; i < t.Count; i++ {
		angle := (float64(i)/float64(t.Count))*2*math.Pi + (s.rng.Float64()-0.5)*0.6

		e, ok := s.fragments.Acquire()
		if !ok {
			return
		}
		e.Shape = ShapeCircle
		e.Radius = t.Radius
		e.Score = t.Score
		e.X = x
		e.Y = y
		e.VX = math.Cos(angle) * t.Speed
		e.VY = math.Sin(angle)*t.Speed + t.DownBias
	}
}

// burst scatters n short-lived ballistic particles from a point.
func (s *Session) burst(x, y float64, n int) {
	t := &s.cfg.Particle
	for i := 0; i < n; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := t.MinSpeed + s.rng.Float64()*(t.MaxSpeed-t.MinSpeed)

		e, ok := s.particles.Acquire()
		if !ok {
			return
		}
		e.Shape = ShapeCircle
		e.Radius = t.Radius
		e.X = x
		e.Y = y
		e.VX = math.Cos(angle) * speed
		e.VY = math.Sin(angle) * speed
		e.TTL = t.MinLife + s.rng.Intn(t.MaxLife-t.MinLife+1)
	}
}
