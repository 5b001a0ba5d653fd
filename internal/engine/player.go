package engine

// Player is the single friction-damped entity a session simulates. It
// lives outside the pools: it is created with the session and reset,
// never destroyed, on restart.
type Player struct {
	X, Y float64 // top-left corner
	W, H float64
	VX   float64

	Health int
	Ammo   int

	// Countdown timers, in ticks.
	Invuln        int
	Knockback     int
	Shield        int
	Rapid         int
	RapidCooldown int
}

// CenterX returns the horizontal center of the player hitbox.
func (p *Player) CenterX() float64 { return p.X + p.W/2 }

// CenterY returns the vertical center of the player hitbox.
func (p *Player) CenterY() float64 { return p.Y + p.H/2 }

// Invulnerable reports whether the post-hit grace window is running.
func (p *Player) Invulnerable() bool { return p.Invuln > 0 }

// Shielded reports whether the shield power-up is active.
func (p *Player) Shielded() bool { return p.Shield > 0 }

// RapidFire reports whether the rapid-fire power-up is active.
func (p *Player) RapidFire() bool { return p.Rapid > 0 }

// reset restores the player to session-start state at the bottom
// center of the world.
func (p *Player) reset(t *PlayerTuning, worldW, worldH float64) {
	p.W = t.W
	p.H = t.H
	p.X = worldW/2 - t.W/2
	p.Y = worldH - t.H - 1
	p.VX = 0
	p.Health = t.MaxHealth
	p.Ammo = t.StartAmmo
	p.Invuln = 0
	p.Knockback = 0
	p.Shield = 0
	p.Rapid = 0
	p.RapidCooldown = 0
}

// advance applies one tick of friction-damped motion: input
// acceleration (suppressed while knocked back), friction, speed clamp,
// integration, then the world-bounds clamp. The clamp is idempotent:
// applying it to an already-clamped position changes nothing.
func (p *Player) advance(axis int, t *PlayerTuning, friction, worldW float64) {
	if p.Knockback > 0 {
		p.Knockback--
	} else {
		p.VX += float64(axis) * t.Accel
	}

	p.VX *= friction
	p.VX = Clamp(p.VX, -t.MaxSpeed, t.MaxSpeed)
	p.X += p.VX
	p.X = Clamp(p.X, 0, worldW-p.W)

	if p.Invuln > 0 {
		p.Invuln--
	}
	if p.Shield > 0 {
		p.Shield--
	}
	if p.Rapid > 0 {
		p.Rapid--
	}
	if p.RapidCooldown > 0 {
		p.RapidCooldown--
	}
}

// applyKnockback shoves the player horizontally away from an impact
// and opens the invulnerability window. dir is -1 or 1.
func (p *Player) applyKnockback(dir float64, t *PlayerTuning) {
	p.VX = t.KnockbackForce * dir
	p.Knockback = t.KnockbackTicks
	p.Invuln = t.InvulnTicks
}
