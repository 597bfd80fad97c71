package engine

import "testing"

func TestGridBounds(t *testing.T) {
	g := NewGrid(5)

	cases := []struct {
		pos  Position
		want bool
	}{
		{P(0, 1), true},
		{P(4, 4), true},
		{P(2, 1), true},
		{P(2, 0), false}, // player row
		{P(-1, 2), false},
		{P(5, 2), false},
		{P(2, 5), false},
		{P(2, -1), false},
	}

	for _, c := range cases {
		if got := g.InBounds(c.pos); got != c.want {
			t.Errorf("InBounds(%v) = %v, want %v", c.pos, got, c.want)
		}
	}
}

func TestAddEntityInBounds(t *testing.T) {
	g := NewGrid(5)
	for y := 1; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p := P(x, y)
			g.AddEntity(p, KindCollectable)
			if k, ok := g.EntityAt(p); !ok || k != KindCollectable {
				t.Errorf("EntityAt(%v) = (%v, %v), want Collectable", p, k, ok)
			}
		}
	}
}

func TestAddEntityOutOfBoundsIsNoop(t *testing.T) {
	g := NewGrid(5)
	for _, p := range []Position{P(2, 0), P(-1, 3), P(5, 3), P(2, 5)} {
		g.AddEntity(p, KindDestroyable)
	}
	if g.Len() != 0 {
		t.Errorf("grid has %d entities after out-of-bounds adds, want 0", g.Len())
	}
}

func TestAddEntityOverwrites(t *testing.T) {
	g := NewGrid(5)
	p := P(2, 3)
	g.AddEntity(p, KindCollectable)
	g.AddEntity(p, KindBlocker)

	if k, _ := g.EntityAt(p); k != KindBlocker {
		t.Errorf("EntityAt(%v) = %v, want Blocker after overwrite", p, k)
	}
	if g.Len() != 1 {
		t.Errorf("grid has %d entities, want 1", g.Len())
	}
}

func TestRemoveEntity(t *testing.T) {
	g := NewGrid(5)
	p := P(1, 2)
	g.AddEntity(p, KindBomb)
	g.RemoveEntity(p)
	if _, ok := g.EntityAt(p); ok {
		t.Error("entity still present after RemoveEntity")
	}
	// Removing an absent entity is a no-op.
	g.RemoveEntity(p)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGrid(5)
	g.AddEntity(P(1, 1), KindDestroyable)

	snap := g.Snapshot()
	snap[P(3, 3)] = KindBomb
	delete(snap, P(1, 1))

	if g.Len() != 1 {
		t.Errorf("grid has %d entities after snapshot mutation, want 1", g.Len())
	}
	if _, ok := g.EntityAt(P(1, 1)); !ok {
		t.Error("grid entity lost after snapshot mutation")
	}
}

func TestSerialise(t *testing.T) {
	g := NewGrid(5)
	g.AddEntity(P(0, 4), KindDestroyable)
	g.AddEntity(P(3, 2), KindCollectable)
	g.AddEntity(P(4, 1), KindBomb)

	tags := g.Serialise()
	want := map[Position]byte{
		P(0, 4): 'D',
		P(3, 2): 'C',
		P(4, 1): 'O',
	}
	if len(tags) != len(want) {
		t.Fatalf("Serialise returned %d entries, want %d", len(tags), len(want))
	}
	for p, tag := range want {
		if tags[p] != tag {
			t.Errorf("Serialise()[%v] = %q, want %q", p, tags[p], tag)
		}
	}
}
