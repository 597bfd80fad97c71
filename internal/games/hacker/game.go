// Package hacker wires the grid shooter engine into the arcade platform:
// input mapping, tick cadence, rendering, and run suspension.
package hacker

import (
	"fmt"
	"math/rand"

	"github.com/nlopatin/hackergrid/internal/config"
	"github.com/nlopatin/hackergrid/internal/core"
	"github.com/nlopatin/hackergrid/internal/games/hacker/engine"
	"github.com/nlopatin/hackergrid/internal/registry"
	"github.com/nlopatin/hackergrid/internal/savefile"
)

// Mode selects the ruleset a Game instance plays under.
type Mode string

const (
	ModeBase     Mode = "base"
	ModeAdvanced Mode = "advanced"
)

// Visual characters for rendering
const (
	PlayerChar      rune = '▲'
	DestroyableChar rune = '▼'
	CollectableChar rune = '◆'
	BlockerChar     rune = '▓'
	BombChar        rune = '●'
	EmptyChar       rune = '·'
)

// How long transient status messages stay on screen, in ticks.
const statusTicks = 120

// Game adapts the pure engine to the platform Game interface.
type Game struct {
	mode    Mode
	eng     *engine.Game
	cfg     config.HackerConfig
	runtime core.RuntimeConfig

	stepEvery    int // ticks between world steps
	stepTicker   int
	elapsedTicks int

	paused     bool
	status     string
	statusLeft int
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a base-rules game instance.
func New() *Game {
	return &Game{mode: ModeBase}
}

// NewAdvanced creates a game instance with bombs and an extra life.
func NewAdvanced() *Game {
	return &Game{mode: ModeAdvanced}
}

func init() {
	registry.Register("hacker", func() registry.Game {
		return New()
	})
	registry.Register("hacker_advanced", func() registry.Game {
		return NewAdvanced()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAdvanced {
		return "hacker_advanced"
	}
	return "hacker"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAdvanced {
		return "Hacker (Advanced)"
	}
	return "Hacker"
}

// ruleset builds the engine rules for this mode from the loaded config.
func (g *Game) ruleset() engine.Ruleset {
	rules := engine.Base()
	if g.mode == ModeAdvanced {
		rules = engine.Advanced()
		rules.BombOdds = g.cfg.Spawn.BombOdds
	}
	rules.CollectionTarget = g.cfg.Grid.CollectionTarget
	rules.BlockerOdds = g.cfg.Spawn.BlockerOdds
	return rules
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadHacker(configPath)
	if err != nil {
		cfg = config.DefaultHackerConfig()
	}
	g.cfg = cfg

	var rng *rand.Rand
	if runtime.Seed != 0 {
		rng = rand.New(rand.NewSource(runtime.Seed))
	}
	g.eng = engine.NewGame(cfg.Grid.Size, g.ruleset(), rng)

	g.stepEvery = runtime.TickRate * cfg.Timing.StepIntervalSeconds
	if g.stepEvery < 1 {
		g.stepEvery = 1
	}
	g.stepTicker = 0
	g.elapsedTicks = 0
	g.paused = false
	g.status = ""
	g.statusLeft = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil || g.eng.Outcome() != engine.OutcomeUndetermined {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.statusLeft > 0 {
		g.statusLeft--
	}

	if in.Has(core.ActionRotateLeft) {
		g.eng.Rotate(engine.DirLeft)
	}
	if in.Has(core.ActionRotateRight) {
		g.eng.Rotate(engine.DirRight)
	}
	if in.Has(core.ActionCollect) {
		g.eng.Fire(engine.ShotCollect)
	}
	if in.Has(core.ActionDestroy) {
		g.eng.Fire(engine.ShotDestroy)
	}

	g.elapsedTicks++
	g.stepTicker++
	if g.stepTicker >= g.stepEvery {
		g.stepTicker = 0
		g.eng.Step()
	}

	return core.StepResult{State: g.State()}
}

// Seconds returns the elapsed play time, excluding pauses.
func (g *Game) Seconds() int {
	if g.runtime.TickRate <= 0 {
		return 0
	}
	return g.elapsedTicks / g.runtime.TickRate
}

// State returns the platform-level view of the game.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Collected() + g.eng.Destroyed(),
		GameOver: g.eng.Outcome() != engine.OutcomeUndetermined,
		Won:      g.eng.Won(),
		Paused:   g.paused,
	}
}

// Stats returns per-run statistics for storage.
func (g *Game) Stats() registry.RunStats {
	if g.eng == nil {
		return registry.RunStats{}
	}
	return registry.RunStats{
		Shots:     g.eng.ShotsFired(),
		Collected: g.eng.Collected(),
		Destroyed: g.eng.Destroyed(),
		Seconds:   g.Seconds(),
		Won:       g.eng.Won(),
	}
}

// Save writes the current run to path so it can be resumed later.
func (g *Game) Save(path string) error {
	if g.eng == nil {
		return fmt.Errorf("hacker: no run to save")
	}
	state := savefile.State{
		Time:      g.Seconds(),
		Life:      g.eng.Life(),
		Shots:     g.eng.ShotsFired(),
		Collected: g.eng.Collected(),
		Destroyed: g.eng.Destroyed(),
		Entities:  g.eng.Serialise(),
	}
	if err := savefile.Save(path, state); err != nil {
		return err
	}
	g.setStatus("saved")
	return nil
}

// Load replaces the current run with one previously written by Save.
// The grid is validated before anything is touched, so a bad file
// leaves the running game intact.
func (g *Game) Load(path string) error {
	if g.eng == nil {
		return fmt.Errorf("hacker: game not started")
	}
	state, err := savefile.Load(path)
	if err != nil {
		return err
	}
	if err := g.eng.LoadEntities(state.Entities); err != nil {
		return err
	}
	g.eng.SetLife(state.Life)
	g.eng.SetShotsFired(state.Shots)
	g.eng.SetCollected(state.Collected)
	g.eng.SetDestroyed(state.Destroyed)
	if g.runtime.TickRate > 0 {
		g.elapsedTicks = state.Time * g.runtime.TickRate
	}
	g.stepTicker = 0
	g.setStatus("loaded")
	return nil
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusLeft = statusTicks
}
