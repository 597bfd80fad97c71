// Package engine implements the Hacker game simulation: a bounded square
// grid of falling entities, a fixed player at the bottom row, lane rotation
// and ray-style shots. The package is UI-agnostic and deterministic for a
// given random source.
package engine

import "fmt"

// Position represents a 2D coordinate on the grid.
// X increases to the right; Y increases away from the player row.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// String returns the coordinate in "(x, y)" form. Save files rely on
// this exact formatting.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Kind identifies the type of an entity on the grid. Kinds carry no data
// beyond their tag; the tag determines both display and interaction rules.
type Kind uint8

const (
	// KindPlayer is never stored in the grid; it exists so the display
	// layer has a tag for the fixed player cell.
	KindPlayer Kind = iota
	KindDestroyable
	KindCollectable
	KindBlocker
	KindBomb
)

// Tag returns the single-character tag used for display and serialization.
func (k Kind) Tag() byte {
	switch k {
	case KindPlayer:
		return 'P'
	case KindDestroyable:
		return 'D'
	case KindCollectable:
		return 'C'
	case KindBlocker:
		return 'B'
	case KindBomb:
		return 'O'
	default:
		return '?'
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindDestroyable:
		return "Destroyable"
	case KindCollectable:
		return "Collectable"
	case KindBlocker:
		return "Blocker"
	case KindBomb:
		return "Bomb"
	default:
		return "Unknown"
	}
}

// KindForTag maps a serialized tag back to a grid entity kind.
// Only grid-storable kinds are recognized; the player tag and anything
// unknown is a hard error so corrupt saves are rejected rather than guessed.
func KindForTag(tag byte) (Kind, error) {
	switch tag {
	case 'D':
		return KindDestroyable, nil
	case 'C':
		return KindCollectable, nil
	case 'B':
		return KindBlocker, nil
	case 'O':
		return KindBomb, nil
	default:
		return 0, fmt.Errorf("engine: unknown entity tag %q", tag)
	}
}
