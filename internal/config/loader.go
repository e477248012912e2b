package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/shield-duel/internal/core"
)

// MaxPool is the ceiling for actor health and shield.
const MaxPool = 100

// FileName is the config file name looked up in the search directories.
const FileName = "duel.yaml"

// LoadDuel loads the duel configuration.
// Search order: customPath -> ~/.duel/configs/duel.yaml -> ./configs/duel.yaml -> embedded default
//
// Only a custom path reports read, parse or validation errors. Files found
// in the search directories are skipped when they cannot be used.
func LoadDuel(customPath string) (DuelConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDuelYAML)
	if err != nil {
		return DefaultDuelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// WatchPath returns the file a hot-reload watcher should follow for
// customPath: the custom path itself, else the first search file that
// exists, else the user config path so a file created later is picked up.
func WatchPath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	user := userConfigPath(FileName)
	local := filepath.Join("configs", FileName)
	for _, p := range []string{user, local} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return user
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (DuelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DuelConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return DuelConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it overrides, and validates the result.
func Parse(data []byte) (DuelConfig, error) {
	cfg := DefaultDuelConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DuelConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DuelConfig{}, err
	}
	return cfg, nil
}

// DumpYAML renders the configuration as YAML.
func DumpYAML(cfg DuelConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate checks that the tuning describes a playable arena.
func (c DuelConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("actor.width", c.Actor.Width)
	positive("actor.height", c.Actor.Height)
	positive("actor.speed", c.Actor.Speed)
	positive("actor.max_health", float64(c.Actor.MaxHealth))
	positive("actor.max_shield", float64(c.Actor.MaxShield))
	if c.Actor.MaxHealth > MaxPool || c.Actor.MaxShield > MaxPool {
		errs = append(errs, fmt.Errorf("actor.max_health and actor.max_shield must be at most %d", MaxPool))
	}
	positive("projectile.width", c.Projectile.Width)
	positive("projectile.height", c.Projectile.Height)
	positive("projectile.speed", c.Projectile.Speed)
	positive("damage.per_hit", float64(c.Damage.PerHit))
	positive("intro.drop_speed", c.Intro.DropSpeed)
	positive("input.hold_ms", float64(c.Input.HoldMS))

	if c.Arena.Margin < 0 {
		errs = append(errs, fmt.Errorf("arena.margin must not be negative, got %v", c.Arena.Margin))
	}
	if c.Policy.Gain < 0 || c.Policy.FireRange < 0 || c.Policy.FireCooldownMS < 0 {
		errs = append(errs, errors.New("policy values must not be negative"))
	}
	if c.Damage.ShieldBreakMS < 0 || c.Intro.CountdownMS < 0 || c.Intro.HoldMS < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}

	if c.Actor.Width*2+c.Arena.Margin >= c.Arena.Width || c.Actor.Height > c.Arena.Height {
		errs = append(errs, fmt.Errorf("two %vx%v actors do not fit in a %vx%v arena",
			c.Actor.Width, c.Actor.Height, c.Arena.Width, c.Arena.Height))
	}

	maxX := c.Arena.Width - c.Actor.Width
	maxY := c.Arena.Height - c.Actor.Height
	for _, sp := range []struct {
		name string
		p    Point
	}{{"spawn.player1", c.Spawn.Player1}, {"spawn.player2", c.Spawn.Player2}} {
		if sp.p.X < 0 || sp.p.X > maxX || sp.p.Y < 0 || sp.p.Y > maxY {
			errs = append(errs, fmt.Errorf("%s (%v, %v) is outside the arena", sp.name, sp.p.X, sp.p.Y))
		}
	}
	if c.Intro.DropTargetY > maxY {
		errs = append(errs, fmt.Errorf("intro.drop_target_y %v is below the arena floor", c.Intro.DropTargetY))
	}
	if err := c.checkSpawnGap(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// checkSpawnGap rejects spawns that put the actors in contact, either where
// they start or where the drop intro lands them.
func (c DuelConfig) checkSpawnGap() error {
	w, h := c.Actor.Width, c.Actor.Height
	p1, p2 := c.Spawn.Player1, c.Spawn.Player2

	start1 := core.NewBox(p1.X, p1.Y, w, h)
	start2 := core.NewBox(p2.X, p2.Y, w, h)
	if start1.Overlaps(start2, c.Arena.Margin) {
		return errors.New("spawn.player1 and spawn.player2 overlap")
	}

	// The intro only moves actors down to the drop target
	landed1 := core.NewBox(p1.X, max(p1.Y, c.Intro.DropTargetY), w, h)
	landed2 := core.NewBox(p2.X, max(p2.Y, c.Intro.DropTargetY), w, h)
	if landed1.Overlaps(landed2, c.Arena.Margin) {
		return errors.New("spawn.player1 and spawn.player2 overlap after the drop intro")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duel", "configs", filename)
}
