package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the built-in duel tuning.
// It mirrors defaults/duel.yaml and is used if the embedded file cannot be parsed.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
			Margin: 5,
		},
		Actor: ActorConfig{
			Width:     40,
			Height:    40,
			Speed:     5,
			MaxHealth: 100,
			MaxShield: 100,
		},
		Projectile: ProjectileConfig{
			Width:  10,
			Height: 4,
			Speed:  10,
		},
		Damage: DamageConfig{
			PerHit:        10,
			ShieldBreakMS: 500,
		},
		Policy: PolicyConfig{
			Gain:           0.05,
			FireRange:      150,
			FireCooldownMS: 300,
		},
		Intro: IntroConfig{
			CountdownMS: 3000,
			DropSpeed:   10,
			DropTargetY: 300,
			HoldMS:      2000,
		},
		Spawn: SpawnConfig{
			Player1: Point{X: 100, Y: 0},
			Player2: Point{X: 600, Y: 0},
		},
		Input: InputConfig{
			HoldMS: 180,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDuelYAML
}
