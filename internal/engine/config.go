package engine

import "fmt"

// Config carries every tuning knob for a simulation session. All
// distances are in world cells, all speeds in cells per tick, all
// durations in ticks. Validation happens once, at session construction;
// a session never starts with undefined spatial semantics.
type Config struct {
	WorldW, WorldH float64
	CellSize       float64
	Seed           int64

	Player   PlayerTuning
	Bullet   BulletTuning
	Asteroid AsteroidTuning
	Fragment FragmentTuning
	Pickup   PickupTuning
	Particle ParticleTuning
	PowerUp  PowerUpTuning
	Spawn    SpawnTuning
	Level    LevelTuning
	Pools    PoolSizes
}

// PlayerTuning shapes the friction-damped player motion and combat.
type PlayerTuning struct {
	W, H           float64
	Accel          float64
	Friction       float64 // velocity multiplier per tick, in (0, 1]
	MaxSpeed       float64
	MaxHealth      int
	StartAmmo      int
	HitDamage      int
	KnockbackForce float64
	KnockbackTicks int
	InvulnTicks    int
}

// BulletTuning shapes projectiles.
type BulletTuning struct {
	Speed  float64 // upward, cells per tick
	Radius float64
}

// AsteroidTuning shapes falling obstacles per class.
type AsteroidTuning struct {
	BaseSpeed       float64
	NormalRadius    float64
	FastRadius      float64
	HomingRadius    float64
	SplittingRadius float64
	FastSpeedMul    float64
	HomingSpeedMul  float64

	ZigzagAmplitude float64
	ZigzagFrequency float64
	SineAmplitude   float64
	SineFrequency   float64
	HomingRate      float64 // fraction of dx applied per tick
	HomingMaxTurn   float64 // lateral speed cap, keeps homing evadable

	NormalScore    int
	FastScore      int
	HomingScore    int
	SplittingScore int
}

// FragmentTuning shapes the shards a splitting asteroid breaks into.
type FragmentTuning struct {
	Count    int
	Radius   float64
	Speed    float64
	DownBias float64
	Gravity  float64
	Score    int
}

// PickupTuning shapes falling collectibles.
type PickupTuning struct {
	Radius       float64
	FallSpeed    float64
	BobAmplitude float64
	BobFrequency float64
	AmmoAmount   int
	HealAmount   int
}

// ParticleTuning shapes the ballistic effect particles.
type ParticleTuning struct {
	Gravity    float64
	Friction   float64
	Radius     float64
	BurstSmall int
	BurstLarge int
	MinLife    int
	MaxLife    int
	MinSpeed   float64
	MaxSpeed   float64
}

// PowerUpTuning shapes the temporary buffs.
type PowerUpTuning struct {
	ShieldTicks      int
	RapidTicks       int
	RapidCooldown    int
	BombScoreDivisor int // bomb kills award score / divisor
}

// SpawnTuning drives the spawn director's cadence and unlock levels.
type SpawnTuning struct {
	AsteroidInterval    int
	MinAsteroidInterval int
	AmmoInterval        int
	HealthInterval      int
	PowerUpInterval     int

	FastLevel      int
	HomingLevel    int
	SplittingLevel int
	PowerUpLevel   int
}

// LevelTuning drives level progression over time.
type LevelTuning struct {
	Duration        int     // ticks per level
	SpeedMultiplier float64 // asteroid speed scale per level
	IntervalStep    int     // spawn interval reduction per level
	FrictionStep    float64 // player friction reduction per level
	MinFriction     float64
}

// PoolSizes fixes the capacity of each entity pool.
type PoolSizes struct {
	Bullets   int
	Asteroids int
	Fragments int
	Pickups   int
	Particles int
}

// Validate reports the first construction-time misconfiguration. These
// are the only fatal errors the engine produces; everything at tick
// time is absorbed locally.
func (c *Config) Validate() error {
	if c.WorldW <= 0 || c.WorldH <= 0 {
		return fmt.Errorf("engine: world size must be positive, got %gx%g", c.WorldW, c.WorldH)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("engine: grid cell size must be positive, got %g", c.CellSize)
	}
	if c.Player.Friction <= 0 || c.Player.Friction > 1 {
		return fmt.Errorf("engine: player friction must be in (0, 1], got %g", c.Player.Friction)
	}
	if c.Player.MaxSpeed <= 0 || c.Player.Accel <= 0 {
		return fmt.Errorf("engine: player accel and max speed must be positive")
	}
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("engine: player max health must be positive, got %d", c.Player.MaxHealth)
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("engine: bullet speed must be positive, got %g", c.Bullet.Speed)
	}
	if c.Spawn.AsteroidInterval <= 0 || c.Spawn.MinAsteroidInterval <= 0 {
		return fmt.Errorf("engine: spawn intervals must be positive")
	}
	if c.Spawn.AmmoInterval <= 0 || c.Spawn.HealthInterval <= 0 || c.Spawn.PowerUpInterval <= 0 {
		return fmt.Errorf("engine: pickup spawn intervals must be positive")
	}
	if c.Level.Duration <= 0 {
		return fmt.Errorf("engine: level duration must be positive, got %d", c.Level.Duration)
	}
	pools := []struct {
		name string
		size int
	}{
		{"bullets", c.Pools.Bullets},
		{"asteroids", c.Pools.Asteroids},
		{"fragments", c.Pools.Fragments},
		{"pickups", c.Pools.Pickups},
		{"particles", c.Pools.Particles},
	}
	for _, p := range pools {
		if p.size <= 0 {
			return fmt.Errorf("engine: %s pool capacity must be positive, got %d", p.name, p.size)
		}
	}
	return nil
}

// DefaultConfig returns a config tuned for a terminal-sized world.
// Speeds assume a 60 ticks-per-second driver.
func DefaultConfig(worldW, worldH float64) Config {
	return Config{
		WorldW:   worldW,
		WorldH:   worldH,
		CellSize: 6,
		Seed:     1,
		Player: PlayerTuning{
			W:              5,
			H:              2,
			Accel:          0.08,
			Friction:       0.90,
			MaxSpeed:       0.9,
			MaxHealth:      30,
			StartAmmo:      20,
			HitDamage:      10,
			KnockbackForce: 1.2,
			KnockbackTicks: 12,
			InvulnTicks:    90,
		},
		Bullet: BulletTuning{
			Speed:  0.8,
			Radius: 0.4,
		},
		Asteroid: AsteroidTuning{
			BaseSpeed:       0.12,
			NormalRadius:    1.5,
			FastRadius:      1.0,
			HomingRadius:    1.8,
			SplittingRadius: 2.2,
			FastSpeedMul:    1.8,
			HomingSpeedMul:  0.7,
			ZigzagAmplitude: 5,
			ZigzagFrequency: 1.2,
			SineAmplitude:   10,
			SineFrequency:   0.5,
			HomingRate:      0.02,
			HomingMaxTurn:   0.2,
			NormalScore:     10,
			FastScore:       20,
			HomingScore:     30,
			SplittingScore:  40,
		},
		Fragment: FragmentTuning{
			Count:    3,
			Radius:   0.7,
			Speed:    0.2,
			DownBias: 0.2,
			Gravity:  0.004,
			Score:    5,
		},
		Pickup: PickupTuning{
			Radius:       1.0,
			FallSpeed:    0.08,
			BobAmplitude: 1.5,
			BobFrequency: 0.1,
			AmmoAmount:   10,
			HealAmount:   10,
		},
		Particle: ParticleTuning{
			Gravity:    0.008,
			Friction:   0.97,
			Radius:     0.2,
			BurstSmall: 6,
			BurstLarge: 12,
			MinLife:    20,
			MaxLife:    45,
			MinSpeed:   0.1,
			MaxSpeed:   0.4,
		},
		PowerUp: PowerUpTuning{
			ShieldTicks:      480,
			RapidTicks:       360,
			RapidCooldown:    8,
			BombScoreDivisor: 2,
		},
		Spawn: SpawnTuning{
			AsteroidInterval:    55,
			MinAsteroidInterval: 18,
			AmmoInterval:        600,
			HealthInterval:      900,
			PowerUpInterval:     600,
			FastLevel:           2,
			HomingLevel:         3,
			SplittingLevel:      4,
			PowerUpLevel:        2,
		},
		Level: LevelTuning{
			Duration:        1800, // 30 seconds at 60 tps
			SpeedMultiplier: 1.15,
			IntervalStep:    5,
			FrictionStep:    0.005,
			MinFriction:     0.82,
		},
		Pools: PoolSizes{
			Bullets:   50,
			Asteroids: 30,
			Fragments: 20,
			Pickups:   10,
			Particles: 120,
		},
	}
}
