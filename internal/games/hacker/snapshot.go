package hacker

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      int
	Seconds   int
	PlayerX   int
	Entities  int
	Collected int
	Destroyed int
	Shots     int
	Life      int
	GameOver  bool
	Won       bool
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.eng == nil {
		return Snapshot{}
	}
	state := g.State()
	return Snapshot{
		Tick:      g.elapsedTicks,
		Seconds:   g.Seconds(),
		PlayerX:   g.eng.PlayerPosition().X,
		Entities:  len(g.eng.Entities()),
		Collected: g.eng.Collected(),
		Destroyed: g.eng.Destroyed(),
		Shots:     g.eng.ShotsFired(),
		Life:      g.eng.Life(),
		GameOver:  state.GameOver,
		Won:       state.Won,
		Paused:    state.Paused,
	}
}
