package engine

import (
	"fmt"
	"math"
)

// Grid is a uniform spatial index for broad-phase collision queries.
// It owns no entities: it is rebuilt from scratch every tick
// (Clear + Insert for each active entity) because everything moves
// every tick, which keeps the index trivially consistent at O(active)
// rebuild cost.
//
// Cells are clamped at the world edges rather than wrapped; entities
// slightly outside the world land in the border cells, so a query from
// a border position still finds them.
type Grid struct {
	cellSize float64
	inv      float64
	cols     int
	rows     int
	cells    [][]*Entity
}

// NewGrid creates a grid covering a world of the given size. cellSize
// should be at least the largest entity diameter in play so that any
// collision partner is found within a 1-cell radius query. A
// non-positive cell size or world size is a configuration error.
func NewGrid(worldW, worldH, cellSize float64) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("engine: grid cell size must be positive, got %g", cellSize)
	}
	if worldW <= 0 || worldH <= 0 {
		return nil, fmt.Errorf("engine: world size must be positive, got %gx%g", worldW, worldH)
	}

	cols := int(math.Ceil(worldW / cellSize))
	rows := int(math.Ceil(worldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &Grid{
		cellSize: cellSize,
		inv:      1.0 / cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]*Entity, cols*rows),
	}, nil
}

// Clear removes all entries without deallocating cell memory; the
// per-cell slices are reused across ticks.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity to every cell its bounding box overlaps. An
// entity spanning multiple cells will therefore appear more than once
// in queries that cover several of them; callers tolerate the
// duplicates by checking the Active flag before acting.
func (g *Grid) Insert(e *Entity) {
	minX, minY, maxX, maxY := e.bounds()
	c0, r0 := g.cellAt(minX, minY)
	c1, r1 := g.cellAt(maxX, maxY)

	for r := r0; r <= r1; r++ {
		base := r * g.cols
		for c := c0; c <= c1; c++ {
			g.cells[base+c] = append(g.cells[base+c], e)
		}
	}
}

// QueryNear appends every entity indexed within cellRadius cells of
// (x, y) to buf and returns it. The result has no ordering guarantee
// and may contain duplicates for multi-cell entities.
func (g *Grid) QueryNear(x, y float64, cellRadius int, buf []*Entity) []*Entity {
	col, row := g.cellAt(x, y)

	r0 := row - cellRadius
	if r0 < 0 {
		r0 = 0
	}
	r1 := row + cellRadius
	if r1 >= g.rows {
		r1 = g.rows - 1
	}
	c0 := col - cellRadius
	if c0 < 0 {
		c0 = 0
	}
	c1 := col + cellRadius
	if c1 >= g.cols {
		c1 = g.cols - 1
	}

	for r := r0; r <= r1; r++ {
		base := r * g.cols
		for c := c0; c <= c1; c++ {
			buf = append(buf, g.cells[base+c]...)
		}
	}
	return buf
}

// CellSize returns the configured cell size.
func (g *Grid) CellSize() float64 { return g.cellSize }

// cellAt converts a world position to clamped cell coordinates.
func (g *Grid) cellAt(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.inv))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.inv))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
