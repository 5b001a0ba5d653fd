package engine

import "math"

// motionEnv bundles the read-only context motion rules need: world
// bounds, the homing target, and gravity tunings.
type motionEnv struct {
	worldW, worldH float64
	targetX        float64
	hasTarget      bool
	asteroid       *AsteroidTuning
	fragGravity    float64
	partGravity    float64
	partFriction   float64
}

// advanceEntity applies one tick of kind-specific motion and flags the
// entity inactive once it leaves the world by more than one entity-size
// margin. Flagged entities are NOT released here: reclamation is a
// separate phase that runs after collision, so an entity that exits
// this tick is still indexed and testable until the tick ends.
func advanceEntity(e *Entity, env *motionEnv) {
	switch e.Kind {
	case KindBullet:
		e.X += e.VX
		e.Y += e.VY

	case KindAsteroid:
		advanceAsteroid(e, env)

	case KindFragment:
		e.VY += env.fragGravity
		e.X += e.VX
		e.Y += e.VY

	case KindPickup:
		e.Y += e.VY
		// Lateral bob around the anchor column, purely cosmetic but
		// kept in the simulation so collision sees the true position.
		e.X = e.BaseX + e.Amplitude*math.Sin(e.Frequency*e.Y+e.Phase)

	case KindParticle:
		e.TTL--
		if e.TTL <= 0 {
			e.Active = false
			return
		}
		e.VY += env.partGravity
		e.VX *= env.partFriction
		e.VY *= env.partFriction
		e.X += e.VX
		e.Y += e.VY
	}

	if outOfBounds(e, env.worldW, env.worldH) {
		e.Active = false
	}
}

// advanceAsteroid applies the base fall plus the pattern's lateral rule.
func advanceAsteroid(e *Entity, env *motionEnv) {
	e.Y += e.Speed

	t := env.asteroid
	switch e.Pattern {
	case PatternStraight:
		// No lateral motion.
	case PatternZigzag, PatternSine:
		e.X = e.BaseX + e.Amplitude*math.Sin(e.Frequency*e.Y+e.Phase)
	case PatternHoming:
		if env.hasTarget {
			dx := env.targetX - e.X
			e.X = MoveTowards(e.X, e.X+dx*t.HomingRate, t.HomingMaxTurn)
		}
	}

	// Obstacles never drift out the sides, only off the bottom.
	e.X = Clamp(e.X, e.Radius, env.worldW-e.Radius)
}

// outOfBounds reports whether the entity has exited the world by more
// than one entity-size margin. Entities above the top are exempt:
// obstacles spawn there and fall in.
func outOfBounds(e *Entity, worldW, worldH float64) bool {
	margin := e.size()
	if e.X < -margin || e.X > worldW+margin {
		return true
	}
	if e.Y > worldH+margin {
		return true
	}
	// Upward exit only matters for bullets; everything else never
	// travels up past its spawn row.
	if e.Y < -margin {
		return true
	}
	return false
}
