package hacker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nlopatin/hackergrid/internal/core"
	"github.com/nlopatin/hackergrid/internal/games/hacker/engine"
	"github.com/nlopatin/hackergrid/internal/registry"
)

// testConfig points config loading at a small fast grid for the duration
// of a test.
func testConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hacker.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func quietConfig(t *testing.T) {
	t.Helper()
	testConfig(t, "grid:\n  size: 7\n  collection_target: 7\ntiming:\n  step_interval_seconds: 1\nspawn:\n  blocker_odds: 0\n  bomb_odds: 0\n")
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetInitialState(t *testing.T) {
	quietConfig(t)
	g := New()
	g.Reset(testRuntime())

	state := g.State()
	if state.GameOver || state.Won || state.Paused {
		t.Errorf("fresh game state %+v", state)
	}
	if state.Score != 0 {
		t.Errorf("fresh game score = %d", state.Score)
	}
	if g.Seconds() != 0 {
		t.Errorf("fresh game seconds = %d", g.Seconds())
	}
}

func TestIDsAndTitles(t *testing.T) {
	if id := New().ID(); id != "hacker" {
		t.Errorf("base ID = %q", id)
	}
	if id := NewAdvanced().ID(); id != "hacker_advanced" {
		t.Errorf("advanced ID = %q", id)
	}
	if New().Title() == NewAdvanced().Title() {
		t.Error("base and advanced share a title")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"hacker", "hacker_advanced"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
		if _, ok := g.(registry.Suspender); !ok {
			t.Errorf("%q does not support save/load", id)
		}
		if _, ok := g.(registry.StatsProvider); !ok {
			t.Errorf("%q does not expose run stats", id)
		}
	}
}

func TestPauseFreezesTime(t *testing.T) {
	quietConfig(t)
	g := New()
	g.Reset(testRuntime())

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action did not pause")
	}

	before := g.Snapshot()
	for i := 0; i < 50; i++ {
		g.Step(frame())
	}
	if got := g.Snapshot(); got != before {
		t.Errorf("paused game advanced: %+v -> %+v", before, got)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action did not resume")
	}
}

func TestRotateInput(t *testing.T) {
	quietConfig(t)
	g := New()
	g.Reset(testRuntime())

	// Rotation moves the grid, never the turret.
	if err := g.eng.LoadEntities(map[engine.Position]byte{engine.P(2, 3): 'D'}); err != nil {
		t.Fatal(err)
	}
	startX := g.Snapshot().PlayerX

	g.Step(frame(core.ActionRotateRight))
	if _, ok := g.eng.Entities()[engine.P(3, 3)]; !ok {
		t.Error("entity did not shift one column right")
	}
	if got := g.Snapshot().PlayerX; got != startX {
		t.Errorf("player x after rotate right = %d, want %d", got, startX)
	}

	g.Step(frame(core.ActionRotateLeft))
	if _, ok := g.eng.Entities()[engine.P(2, 3)]; !ok {
		t.Error("entity did not shift back on rotate left")
	}
	if got := g.Snapshot().PlayerX; got != startX {
		t.Errorf("player x after rotate left = %d, want %d", got, startX)
	}
}

func TestShotInputCounts(t *testing.T) {
	quietConfig(t)
	g := New()
	g.Reset(testRuntime())

	g.Step(frame(core.ActionCollect))
	g.Step(frame(core.ActionDestroy))
	if got := g.Snapshot().Shots; got != 2 {
		t.Errorf("shots after two fire actions = %d", got)
	}
}

func TestStepCadence(t *testing.T) {
	// TickRate 10 with a 1 second interval: the world steps every 10 ticks.
	testConfig(t, "grid:\n  size: 7\n  collection_target: 7\ntiming:\n  step_interval_seconds: 1\nspawn:\n  blocker_odds: 4\n  bomb_odds: 0\n")
	g := New()
	g.Reset(testRuntime())

	for i := 0; i < 9; i++ {
		g.Step(frame())
	}
	if n := g.Snapshot().Entities; n != 0 {
		t.Fatalf("world stepped early: %d entities after 9 ticks", n)
	}

	// Seed 42 spawns within a handful of steps; give it a few seconds.
	for i := 0; i < 100; i++ {
		g.Step(frame())
	}
	if n := g.Snapshot().Entities; n == 0 {
		t.Error("world never spawned anything in 10 steps")
	}
}

func TestElapsedSeconds(t *testing.T) {
	quietConfig(t)
	g := New()
	g.Reset(testRuntime())

	for i := 0; i < 35; i++ {
		g.Step(frame())
	}
	if got := g.Seconds(); got != 3 {
		t.Errorf("seconds after 35 ticks at rate 10 = %d, want 3", got)
	}
}

func TestDeterministicRuns(t *testing.T) {
	testConfig(t, "grid:\n  size: 7\n  collection_target: 7\ntiming:\n  step_interval_seconds: 1\nspawn:\n  blocker_odds: 4\n  bomb_odds: 4\n")

	script := func(g *Game) {
		for i := 0; i < 200; i++ {
			switch i % 7 {
			case 0:
				g.Step(frame(core.ActionRotateRight))
			case 3:
				g.Step(frame(core.ActionDestroy))
			case 5:
				g.Step(frame(core.ActionCollect))
			default:
				g.Step(frame())
			}
		}
	}

	g1 := NewAdvanced()
	g1.Reset(testRuntime())
	script(g1)

	g2 := NewAdvanced()
	g2.Reset(testRuntime())
	script(g2)

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("same seed diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	testConfig(t, "grid:\n  size: 7\n  collection_target: 7\ntiming:\n  step_interval_seconds: 1\nspawn:\n  blocker_odds: 4\n  bomb_odds: 0\n")
	path := filepath.Join(t.TempDir(), "run.save")

	g := New()
	g.Reset(testRuntime())
	for i := 0; i < 150; i++ {
		g.Step(frame())
	}
	g.Step(frame(core.ActionDestroy))
	saved := g.Snapshot()
	if err := g.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	g2 := New()
	g2.Reset(testRuntime())
	if err := g2.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := g2.Snapshot()
	if got.Entities != saved.Entities || got.Collected != saved.Collected ||
		got.Destroyed != saved.Destroyed || got.Shots != saved.Shots ||
		got.Life != saved.Life || got.Seconds != saved.Seconds {
		t.Errorf("loaded run differs:\nsaved %+v\ngot   %+v", saved, got)
	}
}

func TestLoadBadFileLeavesRunIntact(t *testing.T) {
	quietConfig(t)
	path := filepath.Join(t.TempDir(), "corrupt.save")
	if err := os.WriteFile(path, []byte("not a save file"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New()
	g.Reset(testRuntime())
	for i := 0; i < 25; i++ {
		g.Step(frame())
	}
	before := g.Snapshot()

	if err := g.Load(path); err == nil {
		t.Fatal("loading a corrupt file succeeded")
	}
	if got := g.Snapshot(); got != before {
		t.Errorf("failed load mutated the run: %+v -> %+v", before, got)
	}
}

func TestGameOverFreezesRun(t *testing.T) {
	quietConfig(t)
	g := New()
	g.Reset(testRuntime())

	// A destroyable one row above the floor escapes on the next world
	// step and drains the single life.
	g.eng.SetLife(1)
	if err := g.eng.LoadEntities(map[engine.Position]byte{engine.P(3, 1): 'D'}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}

	state := g.State()
	if !state.GameOver || state.Won {
		t.Fatalf("state after escape %+v, want a loss", state)
	}

	before := g.Snapshot()
	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionRotateRight, core.ActionDestroy))
	}
	if got := g.Snapshot(); got != before {
		t.Errorf("finished run still advanced: %+v -> %+v", before, got)
	}
}
