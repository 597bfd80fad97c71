package engine

// Grid represents the square playing field as a sparse mapping from
// positions to entity kinds. Row 0 is reserved for the player and never
// holds a grid entity; every stored key satisfies 0 <= x < size and
// 1 <= y < size.
type Grid struct {
	size  int
	cells map[Position]Kind
}

// NewGrid creates an empty grid of the given size (rows = columns).
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make(map[Position]Kind),
	}
}

// Size returns the number of rows (equal to the number of columns).
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the position is a valid entity cell.
func (g *Grid) InBounds(p Position) bool {
	if p.X < 0 || p.X >= g.size {
		return false
	}
	if p.Y < 1 || p.Y >= g.size {
		return false
	}
	return true
}

// AddEntity inserts an entity at the given position, overwriting any
// occupant. Out-of-bounds positions are silently ignored.
func (g *Grid) AddEntity(p Position, k Kind) {
	if g.InBounds(p) {
		g.cells[p] = k
	}
}

// EntityAt returns the occupant of the given cell, if any.
func (g *Grid) EntityAt(p Position) (Kind, bool) {
	k, ok := g.cells[p]
	return k, ok
}

// RemoveEntity removes the occupant of the given cell if present.
func (g *Grid) RemoveEntity(p Position) {
	delete(g.cells, p)
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Snapshot returns a copy of the position-to-kind mapping, safe for the
// caller to iterate or mutate without affecting the grid.
func (g *Grid) Snapshot() map[Position]Kind {
	out := make(map[Position]Kind, len(g.cells))
	for p, k := range g.cells {
		out[p] = k
	}
	return out
}

// Serialise returns the grid contents as a position-to-tag mapping,
// the form used by the save format.
func (g *Grid) Serialise() map[Position]byte {
	out := make(map[Position]byte, len(g.cells))
	for p, k := range g.cells {
		out[p] = k.Tag()
	}
	return out
}

// replaceAll swaps the grid contents for the given mapping. Callers must
// have validated bounds and kinds beforehand.
func (g *Grid) replaceAll(cells map[Position]Kind) {
	g.cells = make(map[Position]Kind, len(cells))
	for p, k := range cells {
		g.cells[p] = k
	}
}
