// Package config provides YAML-based tuning for the duel: arena size,
// actor and projectile parameters, the opponent policy and intro timing.
package config

import "time"

// DuelConfig contains all tuning for a duel match.
type DuelConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Actor      ActorConfig      `yaml:"actor"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Damage     DamageConfig     `yaml:"damage"`
	Policy     PolicyConfig     `yaml:"policy"`
	Intro      IntroConfig      `yaml:"intro"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Input      InputConfig      `yaml:"input"`
}

// ArenaConfig defines the playfield in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // collision tolerance applied around boxes
}

// ActorConfig defines the shared actor parameters.
type ActorConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"` // units per tick
	MaxHealth int     `yaml:"max_health"`
	MaxShield int     `yaml:"max_shield"`
}

// ProjectileConfig defines projectile size and speed.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // units per tick
}

// DamageConfig defines how hits are resolved.
type DamageConfig struct {
	PerHit        int `yaml:"per_hit"`
	ShieldBreakMS int `yaml:"shield_break_ms"`
}

// PolicyConfig tunes the opponent policy used in solo mode.
type PolicyConfig struct {
	Gain           float64 `yaml:"gain"`
	FireRange      float64 `yaml:"fire_range"`
	FireCooldownMS int     `yaml:"fire_cooldown_ms"`
}

// IntroConfig defines the countdown and drop-in sequence.
type IntroConfig struct {
	CountdownMS int     `yaml:"countdown_ms"`
	DropSpeed   float64 `yaml:"drop_speed"` // units per tick
	DropTargetY float64 `yaml:"drop_target_y"`
	HoldMS      int     `yaml:"hold_ms"`
}

// Point is a position in arena units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpawnConfig holds where each actor starts a match.
type SpawnConfig struct {
	Player1 Point `yaml:"player1"`
	Player2 Point `yaml:"player2"`
}

// InputConfig tunes keyboard sampling.
type InputConfig struct {
	// HoldMS is how long a key counts as held after its last press.
	// Terminals report presses and auto-repeats but never releases.
	HoldMS int `yaml:"hold_ms"`
}

// ShieldBreakDuration returns the shield-break flash window.
func (c DuelConfig) ShieldBreakDuration() time.Duration {
	return time.Duration(c.Damage.ShieldBreakMS) * time.Millisecond
}

// FireCooldown returns the opponent policy's fire cooldown.
func (c DuelConfig) FireCooldown() time.Duration {
	return time.Duration(c.Policy.FireCooldownMS) * time.Millisecond
}

// Countdown returns the pre-drop countdown.
func (c DuelConfig) Countdown() time.Duration {
	return time.Duration(c.Intro.CountdownMS) * time.Millisecond
}

// IntroHold returns the pause between landing and the match starting.
func (c DuelConfig) IntroHold() time.Duration {
	return time.Duration(c.Intro.HoldMS) * time.Millisecond
}

// HoldWindow returns how long a key press counts as held.
func (c DuelConfig) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}
