package engine

// Ruleset bundles the tunable parts of the simulation: starting life,
// the win target, and the per-tick spawn policy. Variants are plain
// values passed to NewGame rather than subclass overrides.
type Ruleset struct {
	// InitialLife is the player's starting life count.
	InitialLife int

	// CollectionTarget is the collected count that wins the game.
	CollectionTarget int

	// SpawnKinds is the set of kinds drawn uniformly for the bulk of each
	// tick's spawns (blockers and bombs are rolled separately).
	SpawnKinds []Kind

	// BlockerOdds is the 1-in-N chance of appending one Blocker per tick.
	// Zero disables blocker spawns.
	BlockerOdds int

	// BombOdds is the 1-in-N chance of appending one Bomb per tick, rolled
	// only when the blocker roll missed. Zero disables bomb spawns; at most
	// one of Blocker/Bomb is appended per tick.
	BombOdds int
}

// Base returns the base ruleset: one life, blockers but no bombs.
func Base() Ruleset {
	return Ruleset{
		InitialLife:      1,
		CollectionTarget: 7,
		SpawnKinds:       []Kind{KindDestroyable, KindCollectable},
		BlockerOdds:      4,
		BombOdds:         0,
	}
}

// Advanced returns the extended ruleset: two lives, bombs spawn when the
// blocker roll missed.
func Advanced() Ruleset {
	r := Base()
	r.InitialLife = 2
	r.BombOdds = 4
	return r
}

// splashOffsets are the eight cells surrounding a bomb; their occupants are
// removed when the bomb is destroyed. The bomb cell itself is cleared by
// the normal destroy path.
var splashOffsets = []Position{
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	{X: 0, Y: -1}, {X: 0, Y: 1},
	{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
}

// SplashOffsets returns a copy of the bomb splash offsets.
func SplashOffsets() []Position {
	out := make([]Position, len(splashOffsets))
	copy(out, splashOffsets)
	return out
}
