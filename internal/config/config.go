// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "github.com/velikanov/astro-arcade/internal/engine"

// StarfallConfig contains all configuration for the Starfall game. It
// mirrors the engine tuning in YAML-friendly groups; ToEngine converts
// it into the engine's validated form.
type StarfallConfig struct {
	Player    StarfallPlayer    `yaml:"player"`
	Weapons   StarfallWeapons   `yaml:"weapons"`
	Asteroids StarfallAsteroids `yaml:"asteroids"`
	Pickups   StarfallPickups   `yaml:"pickups"`
	PowerUps  StarfallPowerUps  `yaml:"powerups"`
	Spawning  StarfallSpawning  `yaml:"spawning"`
	Levels    StarfallLevels    `yaml:"levels"`
}

// StarfallPlayer defines the player ship parameters.
type StarfallPlayer struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Accel          float64 `yaml:"accel"`
	Friction       float64 `yaml:"friction"`
	MaxSpeed       float64 `yaml:"max_speed"`
	MaxHealth      int     `yaml:"max_health"`
	StartAmmo      int     `yaml:"start_ammo"`
	HitDamage      int     `yaml:"hit_damage"`
	KnockbackForce float64 `yaml:"knockback_force"`
	KnockbackTicks int     `yaml:"knockback_ticks"`
	InvulnTicks    int     `yaml:"invuln_ticks"`
}

// StarfallWeapons defines projectile parameters.
type StarfallWeapons struct {
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRadius float64 `yaml:"bullet_radius"`
}

// StarfallAsteroids defines the obstacle classes and patterns.
type StarfallAsteroids struct {
	BaseSpeed       float64 `yaml:"base_speed"`
	NormalRadius    float64 `yaml:"normal_radius"`
	FastRadius      float64 `yaml:"fast_radius"`
	HomingRadius    float64 `yaml:"homing_radius"`
	SplittingRadius float64 `yaml:"splitting_radius"`
	FastSpeedMul    float64 `yaml:"fast_speed_mul"`
	HomingSpeedMul  float64 `yaml:"homing_speed_mul"`
	ZigzagAmplitude float64 `yaml:"zigzag_amplitude"`
	ZigzagFrequency float64 `yaml:"zigzag_frequency"`
	SineAmplitude   float64 `yaml:"sine_amplitude"`
	SineFrequency   float64 `yaml:"sine_frequency"`
	HomingRate      float64 `yaml:"homing_rate"`
	HomingMaxTurn   float64 `yaml:"homing_max_turn"`
	NormalScore     int     `yaml:"normal_score"`
	FastScore       int     `yaml:"fast_score"`
	HomingScore     int     `yaml:"homing_score"`
	SplittingScore  int     `yaml:"splitting_score"`

	FragmentCount int     `yaml:"fragment_count"`
	FragmentScore int     `yaml:"fragment_score"`
	FragmentSpeed float64 `yaml:"fragment_speed"`
}

// StarfallPickups defines the falling collectibles.
type StarfallPickups struct {
	FallSpeed  float64 `yaml:"fall_speed"`
	AmmoAmount int     `yaml:"ammo_amount"`
	HealAmount int     `yaml:"heal_amount"`
}

// StarfallPowerUps defines the temporary buffs.
type StarfallPowerUps struct {
	ShieldTicks   int `yaml:"shield_ticks"`
	RapidTicks    int `yaml:"rapid_ticks"`
	RapidCooldown int `yaml:"rapid_cooldown"`
}

// StarfallSpawning defines the spawn director cadence and unlocks.
type StarfallSpawning struct {
	AsteroidInterval    int `yaml:"asteroid_interval"`
	MinAsteroidInterval int `yaml:"min_asteroid_interval"`
	AmmoInterval        int `yaml:"ammo_interval"`
	HealthInterval      int `yaml:"health_interval"`
	PowerUpInterval     int `yaml:"powerup_interval"`
	FastLevel           int `yaml:"fast_level"`
	HomingLevel         int `yaml:"homing_level"`
	SplittingLevel      int `yaml:"splitting_level"`
	PowerUpLevel        int `yaml:"powerup_level"`
}

// StarfallLevels defines level progression.
type StarfallLevels struct {
	DurationTicks   int     `yaml:"duration_ticks"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	IntervalStep    int     `yaml:"interval_step"`
	FrictionStep    float64 `yaml:"friction_step"`
	MinFriction     float64 `yaml:"min_friction"`
}

// ToEngine converts the YAML configuration into an engine config for a
// world of the given size. Grid cell size and pool capacities are not
// user tunables; they come from the engine defaults.
func (c StarfallConfig) ToEngine(worldW, worldH float64) engine.Config {
	cfg := engine.DefaultConfig(worldW, worldH)

	cfg.Player.W = c.Player.Width
	cfg.Player.H = c.Player.Height
	cfg.Player.Accel = c.Player.Accel
	cfg.Player.Friction = c.Player.Friction
	cfg.Player.MaxSpeed = c.Player.MaxSpeed
	cfg.Player.MaxHealth = c.Player.MaxHealth
	cfg.Player.StartAmmo = c.Player.StartAmmo
	cfg.Player.HitDamage = c.Player.HitDamage
	cfg.Player.KnockbackForce = c.Player.KnockbackForce
	cfg.Player.KnockbackTicks = c.Player.KnockbackTicks
	cfg.Player.InvulnTicks = c.Player.InvulnTicks

	cfg.Bullet.Speed = c.Weapons.BulletSpeed
	cfg.Bullet.Radius = c.Weapons.BulletRadius

	cfg.Asteroid.BaseSpeed = c.Asteroids.BaseSpeed
	cfg.Asteroid.NormalRadius = c.Asteroids.NormalRadius
	cfg.Asteroid.FastRadius = c.Asteroids.FastRadius
	cfg.Asteroid.HomingRadius = c.Asteroids.HomingRadius
	cfg.Asteroid.SplittingRadius = c.Asteroids.SplittingRadius
	cfg.Asteroid.FastSpeedMul = c.Asteroids.FastSpeedMul
	cfg.Asteroid.HomingSpeedMul = c.Asteroids.HomingSpeedMul
	cfg.Asteroid.ZigzagAmplitude = c.Asteroids.ZigzagAmplitude
	cfg.Asteroid.ZigzagFrequency = c.Asteroids.ZigzagFrequency
	cfg.Asteroid.SineAmplitude = c.Asteroids.SineAmplitude
	cfg.Asteroid.SineFrequency = c.Asteroids.SineFrequency
	cfg.Asteroid.HomingRate = c.Asteroids.HomingRate
	cfg.Asteroid.HomingMaxTurn = c.Asteroids.HomingMaxTurn
	cfg.Asteroid.NormalScore = c.Asteroids.NormalScore
	cfg.Asteroid.FastScore = c.Asteroids.FastScore
	cfg.Asteroid.HomingScore = c.Asteroids.HomingScore
	cfg.Asteroid.SplittingScore = c.Asteroids.SplittingScore

	cfg.Fragment.Count = c.Asteroids.FragmentCount
	cfg.Fragment.Score = c.Asteroids.FragmentScore
	cfg.Fragment.Speed = c.Asteroids.FragmentSpeed

	cfg.Pickup.FallSpeed = c.Pickups.FallSpeed
	cfg.Pickup.AmmoAmount = c.Pickups.AmmoAmount
	cfg.Pickup.HealAmount = c.Pickups.HealAmount

	cfg.PowerUp.ShieldTicks = c.PowerUps.ShieldTicks
	cfg.PowerUp.RapidTicks = c.PowerUps.RapidTicks
	cfg.PowerUp.RapidCooldown = c.PowerUps.RapidCooldown

	cfg.Spawn.AsteroidInterval = c.Spawning.AsteroidInterval
	cfg.Spawn.MinAsteroidInterval = c.Spawning.MinAsteroidInterval
	cfg.Spawn.AmmoInterval = c.Spawning.AmmoInterval
	cfg.Spawn.HealthInterval = c.Spawning.HealthInterval
	cfg.Spawn.PowerUpInterval = c.Spawning.PowerUpInterval
	cfg.Spawn.FastLevel = c.Spawning.FastLevel
	cfg.Spawn.HomingLevel = c.Spawning.HomingLevel
	cfg.Spawn.SplittingLevel = c.Spawning.SplittingLevel
	cfg.Spawn.PowerUpLevel = c.Spawning.PowerUpLevel

	cfg.Level.Duration = c.Levels.DurationTicks
	cfg.Level.SpeedMultiplier = c.Levels.SpeedMultiplier
	cfg.Level.IntervalStep = c.Levels.IntervalStep
	cfg.Level.FrictionStep = c.Levels.FrictionStep
	cfg.Level.MinFriction = c.Levels.MinFriction

	return cfg
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset name is recognized.
func ValidPreset(p DifficultyPreset) bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
