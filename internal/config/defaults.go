package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the default Starfall configuration.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		Player: StarfallPlayer{
			Width:          5,
			Height:         2,
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
		Weapons: StarfallWeapons{
			BulletSpeed:  0.8,
			BulletRadius: 0.4,
		},
		Asteroids: StarfallAsteroids{
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
			FragmentCount:   3,
			FragmentScore:   5,
			FragmentSpeed:   0.2,
		},
		Pickups: StarfallPickups{
			FallSpeed:  0.08,
			AmmoAmount: 10,
			HealAmount: 10,
		},
		PowerUps: StarfallPowerUps{
			ShieldTicks:   480,
			RapidTicks:    360,
			RapidCooldown: 8,
		},
		Spawning: StarfallSpawning{
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
		Levels: StarfallLevels{
			DurationTicks:   1800,
			SpeedMultiplier: 1.15,
			IntervalStep:    5,
			FrictionStep:    0.005,
			MinFriction:     0.82,
		},
	}
}
