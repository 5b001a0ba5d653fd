package engine

// Narrow-phase tests. All positions are shape centers for circles and
// top-left corners for rects.

// circlesOverlap reports whether two circles intersect.
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	rr := r1 + r2
	return DistanceSq(x1, y1, x2, y2) < rr*rr
}

// circleRectOverlap reports whether a circle intersects an axis-aligned
// rect, via the squared distance from the circle center to the rect's
// clamped closest point.
func circleRectOverlap(cx, cy, radius, rx, ry, rw, rh float64) bool {
	closestX := Clamp(cx, rx, rx+rw)
	closestY := Clamp(cy, ry, ry+rh)
	return DistanceSq(cx, cy, closestX, closestY) < radius*radius
}

// rectsOverlap reports whether two axis-aligned rects intersect.
func rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}

// resolveCollisions runs the per-tick narrow phase over the grid's
// candidate sets. It depends on the grid holding post-motion positions.
// Every destructive outcome flags both participants inactive on the
// spot, so no destructible entity is resolved twice in one tick; the
// reclaim phase afterwards returns the flagged entities to their pools.
func (s *Session) resolveCollisions() {
	s.resolveBullets()
	s.resolvePlayerObstacles()
	s.resolvePlayerPickups()
}

// resolveBullets matches each bullet against nearby asteroids,
// fragments and pickups. When a query yields several valid targets the
// nearest one wins, not whichever the cell iteration happened to
// produce first. The bullet is consumed by its first resolution, so it
// can never hit twice.
func (s *Session) resolveBullets() {
	s.bullets.ForEach(func(b *Entity) {
		if !b.Active {
			return
		}

		s.queryBuf = s.grid.QueryNear(b.X, b.Y, 1, s.queryBuf[:0])

		var hit *Entity
		var hitDistSq float64
		for _, cand := range s.queryBuf {
			if !cand.Active || cand.Kind == KindParticle {
				continue
			}
			if !b.overlaps(cand) {
				continue
			}
			d := DistanceSq(b.X, b.Y, cand.X, cand.Y)
			if hit == nil || d < hitDistSq {
				hit = cand
				hitDistSq = d
			}
		}
		if hit == nil {
			return
		}

		b.Active = false
		switch hit.Kind {
		case KindAsteroid:
			s.destroyAsteroid(hit, 1)
		case KindFragment:
			s.destroyFragment(hit)
		case KindPickup:
			hit.Active = false
			s.collectPickup(hit)
		case KindBullet, KindParticle:
			// Bullets are not indexed and particles were skipped above.
		}
	})
}

// resolvePlayerObstacles checks the player hitbox against nearby
// asteroids and fragments. Shield and invulnerability both suppress
// damage; a shielded contact still emits a deflect effect but leaves
// the obstacle alive, matching the pass-through behavior of the
// shield power-up.
func (s *Session) resolvePlayerObstacles() {
	p := &s.Player
	cx, cy := p.CenterX(), p.CenterY()

	s.queryBuf = s.grid.QueryNear(cx, cy, 1, s.queryBuf[:0])
	for _, cand := range s.queryBuf {
		if !cand.Active {
			continue
		}
		if cand.Kind != KindAsteroid && cand.Kind != KindFragment {
			continue
		}
		if !circleRectOverlap(cand.X, cand.Y, cand.Radius, p.X, p.Y, p.W, p.H) {
			continue
		}

		if p.Shielded() {
			s.emit(Event{Kind: EventSpawnEffect, Effect: EffectShieldDeflect, X: cand.X, Y: cand.Y})
			continue
		}
		if p.Invulnerable() {
			continue
		}

		cand.Active = false
		p.Health -= s.cfg.Player.HitDamage
		dir := 1.0
		if cand.X > cx {
			dir = -1.0
		}
		p.applyKnockback(dir, &s.cfg.Player)
		s.emit(Event{Kind: EventSpawnEffect, Effect: EffectHit, X: cand.X, Y: cand.Y})
		s.burst(cand.X, cand.Y, s.cfg.Particle.BurstSmall)

		if p.Health <= 0 {
			p.Health = 0
			s.over = true
			s.emit(Event{Kind: EventGameOver})
			return
		}
		// One hit per tick is enough; the invulnerability window set
		// above suppresses the rest anyway.
		return
	}
}

// resolvePlayerPickups collects any pickup touching the player hitbox.
func (s *Session) resolvePlayerPickups() {
	p := &s.Player
	s.pickups.ForEach(func(e *Entity) {
		if !e.Active {
			return
		}
		if !circleRectOverlap(e.X, e.Y, e.Radius, p.X, p.Y, p.W, p.H) {
			return
		}
		e.Active = false
		s.collectPickup(e)
	})
}

// destroyAsteroid resolves a destructive hit on an asteroid: score
// (divided by div, used for half-score bomb kills), explosion effect,
// and the splitting class breaking into fragments.
func (s *Session) destroyAsteroid(e *Entity, div int) {
	e.Active = false
	s.addScore(e.Score/div, e.X, e.Y)
	s.emit(Event{Kind: EventSpawnEffect, Effect: EffectExplosion, X: e.X, Y: e.Y})
	s.burst(e.X, e.Y, s.cfg.Particle.BurstLarge)

	if e.Class == ClassSplitting {
		s.spawnFragments(e.X, e.Y)
	}
}

// destroyFragment resolves a destructive hit on a fragment.
func (s *Session) destroyFragment(e *Entity) {
	e.Active = false
	s.addScore(e.Score, e.X, e.Y)
	s.emit(Event{Kind: EventSpawnEffect, Effect: EffectExplosion, X: e.X, Y: e.Y})
	s.burst(e.X, e.Y, s.cfg.Particle.BurstSmall)
}
