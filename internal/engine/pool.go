package engine

import "fmt"

// Pool is a fixed-capacity allocator for entities of one kind. The
// backing store is allocated once at construction; Acquire and Release
// move indices between the available and active sets, so the steady
// state of a session allocates nothing per tick.
//
// At every point available + active == capacity, and no index is in
// both sets. The pool never grows: Acquire on an exhausted pool reports
// failure and the caller drops the spawn request.
type Pool struct {
	kind     Kind
	entities []Entity
	free     []int32
	active   []int32
	pos      []int32 // entity index -> position in active, -1 when pooled
}

// NewPool creates a pool holding capacity entities of the given kind.
// A non-positive capacity is a configuration error.
func NewPool(kind Kind, capacity int) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("engine: pool capacity for %s must be positive, got %d", kind, capacity)
	}

	p := &Pool{
		kind:     kind,
		entities: make([]Entity, capacity),
		free:     make([]int32, 0, capacity),
		active:   make([]int32, 0, capacity),
		pos:      make([]int32, capacity),
	}
	for i := capacity - 1; i >= 0; i-- {
		p.entities[i].slot = int32(i)
		p.free = append(p.free, int32(i))
		p.pos[i] = -1
	}
	return p, nil
}

// Acquire takes an entity from the available set and returns it in a
// freshly-spawned state: kind set, Active true, every payload field
// zeroed. The caller must initialize all fields its kind needs.
// Returns false when the pool is exhausted; this is an expected
// condition, not an error.
func (p *Pool) Acquire() (*Entity, bool) {
	n := len(p.free)
	if n == 0 {
		return nil, false
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]

	p.pos[idx] = int32(len(p.active))
	p.active = append(p.active, idx)

	e := &p.entities[idx]
	*e = Entity{Kind: p.kind, Active: true, slot: idx}
	return e, true
}

// Release returns an entity to the available set, clearing transient
// state (velocity, timers). Releasing an entity that is not currently
// active is a no-op, so double releases are harmless.
func (p *Pool) Release(e *Entity) {
	idx := e.slot
	at := p.pos[idx]
	if at < 0 {
		return
	}

	// Swap-and-truncate removal from the active list.
	last := p.active[len(p.active)-1]
	p.active[at] = last
	p.pos[last] = at
	p.active = p.active[:len(p.active)-1]
	p.pos[idx] = -1

	e.Active = false
	e.VX, e.VY = 0, 0
	e.TTL = 0

	p.free = append(p.free, idx)
}

// ReleaseAll returns every active entity to the available set.
func (p *Pool) ReleaseAll() {
	for len(p.active) > 0 {
		idx := p.active[len(p.active)-1]
		p.Release(&p.entities[idx])
	}
}

// Reclaim releases every active entity whose Active flag has been
// cleared. This is the per-tick cleanup phase: motion and collision
// only flag entities, they never release mid-iteration.
func (p *Pool) Reclaim() {
	// Walk backwards so swap-and-truncate never skips an element.
	for i := len(p.active) - 1; i >= 0; i-- {
		e := &p.entities[p.active[i]]
		if !e.Active {
			p.Release(e)
		}
	}
}

// ForEach calls fn for every entity in the active set. fn may flag
// entities inactive but must not trigger a Release.
func (p *Pool) ForEach(fn func(*Entity)) {
	for _, idx := range p.active {
		fn(&p.entities[idx])
	}
}

// Capacity returns the fixed pool size.
func (p *Pool) Capacity() int { return len(p.entities) }

// ActiveCount returns the number of entities currently acquired.
func (p *Pool) ActiveCount() int { return len(p.active) }

// AvailableCount returns the number of entities ready to acquire.
func (p *Pool) AvailableCount() int { return len(p.free) }
