// Package config provides YAML-based configuration loading for the
// hacker game variants.
package config

// HackerConfig contains all configuration for the hacker game.
type HackerConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Spawn  SpawnConfig  `yaml:"spawn"`
}

// GridConfig defines the board dimensions and the win condition.
type GridConfig struct {
	Size             int `yaml:"size"`
	CollectionTarget int `yaml:"collection_target"`
}

// TimingConfig defines how fast the world advances.
type TimingConfig struct {
	StepIntervalSeconds int `yaml:"step_interval_seconds"`
}

// SpawnConfig defines the special-entity spawn odds. Odds are 1-in-N
// per step; zero disables the roll entirely.
type SpawnConfig struct {
	BlockerOdds int `yaml:"blocker_odds"`
	BombOdds    int `yaml:"bomb_odds"`
}

// Normalize clamps nonsense values back to playable defaults so a
// hand-edited config cannot produce an unwinnable or frozen game.
func (c *HackerConfig) Normalize() {
	def := DefaultHackerConfig()
	if c.Grid.Size < 2 {
		c.Grid.Size = def.Grid.Size
	}
	if c.Grid.CollectionTarget < 1 {
		c.Grid.CollectionTarget = def.Grid.CollectionTarget
	}
	if c.Timing.StepIntervalSeconds < 1 {
		c.Timing.StepIntervalSeconds = def.Timing.StepIntervalSeconds
	}
	if c.Spawn.BlockerOdds < 0 {
		c.Spawn.BlockerOdds = 0
	}
	if c.Spawn.BombOdds < 0 {
		c.Spawn.BombOdds = 0
	}
}
