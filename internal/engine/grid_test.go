package engine

import "testing"

func circleEntity(x, y, r float64) *Entity {
	return &Entity{Kind: KindAsteroid, Shape: ShapeCircle, X: x, Y: y, Radius: r, Active: true}
}

func contains(list []*Entity, e *Entity) bool {
	for _, c := range list {
		if c == e {
			return true
		}
	}
	return false
}

func TestGridQueryCompleteness(t *testing.T) {
	// Every inserted entity within the query radius must come back;
	// misses outside it are fine (filtered later by narrow phase).
	g, err := NewGrid(60, 30, 6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	near := circleEntity(10, 10, 1)
	sameCell := circleEntity(8, 8, 1)
	neighbor := circleEntity(14, 10, 1)
	far := circleEntity(50, 25, 1)
	for _, e := range []*Entity{near, sameCell, neighbor, far} {
		g.Insert(e)
	}

	got := g.QueryNear(10, 10, 1, nil)
	for _, want := range []*Entity{near, sameCell, neighbor} {
		if !contains(got, want) {
			t.Errorf("query near (10,10) missed entity at (%g,%g)", want.X, want.Y)
		}
	}
	if contains(got, far) {
		t.Errorf("query near (10,10) returned entity at (50,25), outside 1-cell radius")
	}
}

func TestGridMultiCellInsert(t *testing.T) {
	g, _ := NewGrid(60, 30, 6)

	// Radius 4 with cell size 6 spans at least two cells per axis.
	big := circleEntity(12, 12, 4)
	g.Insert(big)

	// Query from a neighboring cell the center is not in.
	got := g.QueryNear(17, 12, 0, nil)
	if !contains(got, big) {
		t.Error("multi-cell entity not found from an overlapped neighbor cell")
	}
}

func TestGridClampedEdges(t *testing.T) {
	g, _ := NewGrid(60, 30, 6)

	// Slightly outside the world: must land in a border cell, not wrap.
	outside := circleEntity(-2, 15, 1)
	g.Insert(outside)

	if got := g.QueryNear(1, 15, 0, nil); !contains(got, outside) {
		t.Error("entity outside the left edge not indexed in the border cell")
	}
	if got := g.QueryNear(58, 15, 1, nil); contains(got, outside) {
		t.Error("left-edge entity wrapped to the right border")
	}
}

func TestGridClearReuses(t *testing.T) {
	g, _ := NewGrid(60, 30, 6)

	e := circleEntity(10, 10, 1)
	g.Insert(e)
	g.Clear()

	if got := g.QueryNear(10, 10, 1, nil); len(got) != 0 {
		t.Errorf("query after Clear returned %d entities, want 0", len(got))
	}

	// Reinsertion after clear still works.
	g.Insert(e)
	if got := g.QueryNear(10, 10, 1, nil); !contains(got, e) {
		t.Error("entity not found after Clear + Insert")
	}
}

func TestGridQueryBufferReuse(t *testing.T) {
	g, _ := NewGrid(60, 30, 6)
	g.Insert(circleEntity(10, 10, 1))

	buf := make([]*Entity, 0, 16)
	got := g.QueryNear(10, 10, 1, buf)
	if len(got) != 1 {
		t.Fatalf("query returned %d entities, want 1", len(got))
	}
	// A second query into the truncated buffer must not accumulate.
	got = g.QueryNear(10, 10, 1, got[:0])
	if len(got) != 1 {
		t.Errorf("reused-buffer query returned %d entities, want 1", len(got))
	}
}

func TestNewGridRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name       string
		w, h, cell float64
	}{
		{"zero cell", 60, 30, 0},
		{"negative cell", 60, 30, -1},
		{"zero world", 0, 30, 6},
	}
	for _, tc := range cases {
		if _, err := NewGrid(tc.w, tc.h, tc.cell); err == nil {
			t.Errorf("%s: NewGrid succeeded, want error", tc.name)
		}
	}
}
