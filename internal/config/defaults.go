package config

import (
	_ "embed"
)

//go:embed defaults/hacker.yaml
var defaultHackerYAML []byte

// DefaultHackerConfig returns the default hacker game configuration.
func DefaultHackerConfig() HackerConfig {
	return HackerConfig{
		Grid: GridConfig{
			Size:             7,
			CollectionTarget: 7,
		},
		Timing: TimingConfig{
			StepIntervalSeconds: 2,
		},
		Spawn: SpawnConfig{
			BlockerOdds: 4,
			BombOdds:    4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "hacker", "hacker_advanced":
		return defaultHackerYAML
	default:
		return nil
	}
}
