package engine

import (
	"math/rand"
	"sort"
	"time"
)

// Direction selects a grid rotation.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	if d == DirRight {
		return "right"
	}
	return "left"
}

// ShotKind selects the effect of a fired shot.
type ShotKind uint8

const (
	ShotCollect ShotKind = iota
	ShotDestroy
)

// String returns the string representation of a shot kind.
func (s ShotKind) String() string {
	switch s {
	case ShotCollect:
		return "collect"
	case ShotDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Outcome is the terminal state of a game instance. Once Won or Lost it
// never changes for that instance.
type Outcome uint8

const (
	OutcomeUndetermined Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "undetermined"
	}
}

// fallOffset moves entities one row toward the player each tick.
var fallOffset = Position{X: 0, Y: -1}

// fireOffset moves a shot one row away from the player each scan step.
var fireOffset = Position{X: 0, Y: 1}

// Game holds the complete simulation state: the grid, the fixed player
// position, score counters, life and the win/lose flag. All operations are
// synchronous and assume a single logical caller; the embedding platform
// serializes ticks and input.
type Game struct {
	grid  *Grid
	rng   *rand.Rand
	rules Ruleset

	player    Position
	collected int
	destroyed int
	shots     int
	life      int
	outcome   Outcome
}

// NewGame creates a game on a size x size grid with the given ruleset.
// A nil rng falls back to a time-seeded source; tests inject a fixed seed.
func NewGame(size int, rules Ruleset, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		grid:   NewGrid(size),
		rng:    rng,
		rules:  rules,
		player: Position{X: size / 2, Y: 0},
		life:   rules.InitialLife,
	}
}

// Size returns the grid size.
func (g *Game) Size() int {
	return g.grid.Size()
}

// PlayerPosition returns the player's fixed position.
func (g *Game) PlayerPosition() Position {
	return g.player
}

// Entities returns a copy of the grid contents.
func (g *Game) Entities() map[Position]Kind {
	return g.grid.Snapshot()
}

// Serialise returns the grid contents as position-to-tag pairs.
func (g *Game) Serialise() map[Position]byte {
	return g.grid.Serialise()
}

// Collected returns the number of collectables acquired.
func (g *Game) Collected() int { return g.collected }

// SetCollected overrides the collected counter. Used when loading a save.
func (g *Game) SetCollected(n int) { g.collected = n }

// Destroyed returns the number of destroyables removed by shots.
func (g *Game) Destroyed() int { return g.destroyed }

// SetDestroyed overrides the destroyed counter. Used when loading a save.
func (g *Game) SetDestroyed(n int) { g.destroyed = n }

// ShotsFired returns the total number of shots taken.
func (g *Game) ShotsFired() int { return g.shots }

// SetShotsFired overrides the shot counter. Used when loading a save.
func (g *Game) SetShotsFired(n int) { g.shots = n }

// Life returns the player's remaining life.
func (g *Game) Life() int { return g.life }

// SetLife overrides the player's life. Used when loading a save.
func (g *Game) SetLife(n int) { g.life = n }

// Outcome returns the current outcome flag.
func (g *Game) Outcome() Outcome { return g.outcome }

// Won returns true if the game ended in a win.
func (g *Game) Won() bool { return g.outcome == OutcomeWon }

// Lost returns true if the game ended in a loss.
func (g *Game) Lost() bool { return g.outcome == OutcomeLost }

// setOutcome records a terminal outcome. The first Won/Lost transition
// sticks; later transitions are ignored.
func (g *Game) setOutcome(o Outcome) {
	if g.outcome == OutcomeUndetermined {
		g.outcome = o
	}
}

// Step advances the simulation by one tick: every entity falls one row
// toward the player, entities leaving the grid are resolved, and the spawn
// policy populates the top row. Once the outcome is decided Step is a
// no-op.
//
// Movement processes a snapshot in fixed order, ascending y then x, so the
// row about to leave the grid vacates before the row above moves into it
// and same-seed games stay identical. When two entities would land on the
// same cell the one processed later wins.
func (g *Game) Step() {
	if g.outcome != OutcomeUndetermined {
		return
	}
	snapshot := g.grid.Snapshot()
	order := make([]Position, 0, len(snapshot))
	for pos := range snapshot {
		order = append(order, pos)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].Y != order[j].Y {
			return order[i].Y < order[j].Y
		}
		return order[i].X < order[j].X
	})
	for _, pos := range order {
		kind := snapshot[pos]
		g.grid.RemoveEntity(pos)
		next := pos.Add(fallOffset)
		if !g.grid.InBounds(next) {
			if kind == KindDestroyable {
				g.life--
				if g.life <= 0 {
					g.setOutcome(OutcomeLost)
				}
			}
			continue
		}
		g.grid.AddEntity(next, kind)
	}
	g.spawn()
}

// spawn implements the per-tick spawn policy from the ruleset: a uniform
// count of regular kinds, then at most one Blocker or Bomb, placed on
// distinct random columns of the top row.
func (g *Game) spawn() {
	size := g.grid.Size()

	// Count range is [0, size-3], clamped to empty for tiny grids.
	// An empty spawn set disables the bulk roll entirely.
	bound := size - 2
	if bound < 1 {
		bound = 1
	}
	count := 0
	if len(g.rules.SpawnKinds) > 0 {
		count = g.rng.Intn(bound)
	}

	kinds := make([]Kind, 0, count+1)
	for i := 0; i < count; i++ {
		kinds = append(kinds, g.rules.SpawnKinds[g.rng.Intn(len(g.rules.SpawnKinds))])
	}

	if g.rules.BlockerOdds > 0 && g.rng.Intn(g.rules.BlockerOdds) == 0 {
		kinds = append(kinds, KindBlocker)
	} else if g.rules.BombOdds > 0 && g.rng.Intn(g.rules.BombOdds) == 0 {
		kinds = append(kinds, KindBomb)
	}

	columns := g.rng.Perm(size)[:len(kinds)]
	top := size - 1
	for i, kind := range kinds {
		g.grid.AddEntity(Position{X: columns[i], Y: top}, kind)
	}
}

// Rotate shifts every entity one column in the given direction, wrapping
// around at the grid edges. New positions are computed from a snapshot
// before any are applied, so no entity moves twice in one call. Once the
// outcome is decided Rotate is a no-op.
func (g *Game) Rotate(dir Direction) {
	if g.outcome != OutcomeUndetermined {
		return
	}
	shift := Position{X: -1}
	wrapX := g.grid.Size() - 1
	if dir == DirRight {
		shift = Position{X: 1}
		wrapX = 0
	}

	rotated := make(map[Position]Kind, g.grid.Len())
	for pos, kind := range g.grid.Snapshot() {
		g.grid.RemoveEntity(pos)
		next := pos.Add(shift)
		if !g.grid.InBounds(next) {
			next = Position{X: wrapX, Y: next.Y}
		}
		rotated[next] = kind
	}

	for pos, kind := range rotated {
		g.grid.AddEntity(pos, kind)
	}
}

// Fire shoots from the player column away from the player row, stopping at
// the first occupied cell. Every call counts as a shot, including
// unrecognized shot kinds, which otherwise have no effect. Once the
// outcome is decided Fire is a no-op.
//
// A Blocker absorbs any shot without being removed. A collect shot removes
// only Collectables (and wins the game at the collection target); a destroy
// shot removes whatever it hits, counting Destroyables and detonating Bombs
// into their splash cells. Splash removals never count as destroyed.
func (g *Game) Fire(shot ShotKind) {
	if g.outcome != OutcomeUndetermined {
		return
	}
	g.shots++
	if shot != ShotCollect && shot != ShotDestroy {
		return
	}

	pos := g.player
	for i := 0; i < g.grid.Size()-1; i++ {
		pos = pos.Add(fireOffset)
		kind, ok := g.grid.EntityAt(pos)
		if !ok {
			continue
		}
		if kind == KindBlocker {
			return
		}

		if shot == ShotCollect {
			if kind == KindCollectable {
				g.collected++
				g.grid.RemoveEntity(pos)
				if g.collected >= g.rules.CollectionTarget {
					g.setOutcome(OutcomeWon)
				}
			}
			return
		}

		if kind == KindBomb {
			for _, off := range splashOffsets {
				g.grid.RemoveEntity(pos.Add(off))
			}
		} else if kind == KindDestroyable {
			g.destroyed++
		}
		g.grid.RemoveEntity(pos)
		return
	}
}

// LoadEntities replaces the grid contents from a position-to-tag mapping.
// Out-of-bounds entries are dropped silently; an unrecognized tag is a hard
// error and leaves the grid untouched (entries are validated into a scratch
// map before the swap).
func (g *Game) LoadEntities(entries map[Position]byte) error {
	cells := make(map[Position]Kind, len(entries))
	for pos, tag := range entries {
		if !g.grid.InBounds(pos) {
			continue
		}
		kind, err := KindForTag(tag)
		if err != nil {
			return err
		}
		cells[pos] = kind
	}
	g.grid.replaceAll(cells)
	return nil
}
