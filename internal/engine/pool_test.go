package engine

import "testing"

func TestPoolInvariant(t *testing.T) {
	p, err := NewPool(KindBullet, 8)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	check := func(stage string) {
		if p.AvailableCount()+p.ActiveCount() != p.Capacity() {
			t.Fatalf("%s: available(%d) + active(%d) != capacity(%d)",
				stage, p.AvailableCount(), p.ActiveCount(), p.Capacity())
		}
	}

	check("fresh")

	var held []*Entity
	for i := 0; i < 5; i++ {
		e, ok := p.Acquire()
		if !ok {
			t.Fatalf("Acquire %d failed with pool not exhausted", i)
		}
		held = append(held, e)
		check("after acquire")
	}

	for _, e := range held[:3] {
		p.Release(e)
		check("after release")
	}

	if p.ActiveCount() != 2 {
		t.Errorf("ActiveCount = %d, want 2", p.ActiveCount())
	}
}

func TestPoolExhaustion(t *testing.T) {
	p, err := NewPool(KindAsteroid, 3)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, ok := p.Acquire(); !ok {
			t.Fatalf("Acquire %d failed before exhaustion", i)
		}
	}

	e, ok := p.Acquire()
	if ok || e != nil {
		t.Errorf("Acquire on exhausted pool = (%v, %v), want (nil, false)", e, ok)
	}
	if p.ActiveCount() != 3 || p.AvailableCount() != 0 {
		t.Errorf("exhausted pool counts = active %d available %d, want 3 and 0",
			p.ActiveCount(), p.AvailableCount())
	}
}

func TestPoolDoubleReleaseIsNoop(t *testing.T) {
	p, _ := NewPool(KindFragment, 4)

	a, _ := p.Acquire()
	b, _ := p.Acquire()

	p.Release(a)
	before := p.AvailableCount()
	p.Release(a)
	if p.AvailableCount() != before {
		t.Errorf("double release changed available count: %d -> %d", before, p.AvailableCount())
	}
	if p.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1 (b still held)", p.ActiveCount())
	}
	if !b.Active {
		t.Error("unrelated entity deactivated by double release")
	}
}

func TestPoolAcquireResetsState(t *testing.T) {
	p, _ := NewPool(KindParticle, 2)

	e, _ := p.Acquire()
	e.X, e.Y = 10, 20
	e.VX, e.VY = 1, 2
	e.TTL = 30
	e.Score = 99
	p.Release(e)

	e2, _ := p.Acquire()
	// Same slot may come back; either way the state must be fresh.
	if e2.X != 0 || e2.Y != 0 || e2.VX != 0 || e2.VY != 0 || e2.TTL != 0 || e2.Score != 0 {
		t.Errorf("reacquired entity carries stale state: %+v", e2)
	}
	if e2.Kind != KindParticle || !e2.Active {
		t.Errorf("reacquired entity kind/active = %v/%v, want particle/true", e2.Kind, e2.Active)
	}
}

func TestPoolReclaim(t *testing.T) {
	p, _ := NewPool(KindAsteroid, 6)

	var held []*Entity
	for i := 0; i < 6; i++ {
		e, _ := p.Acquire()
		held = append(held, e)
	}

	// Flag a mix of positions inactive, including both ends of the
	// active list, then reclaim in one pass.
	held[0].Active = false
	held[2].Active = false
	held[5].Active = false
	p.Reclaim()

	if p.ActiveCount() != 3 {
		t.Fatalf("ActiveCount after reclaim = %d, want 3", p.ActiveCount())
	}
	p.ForEach(func(e *Entity) {
		if !e.Active {
			t.Errorf("inactive entity survived reclaim: %+v", e)
		}
	})
	if p.AvailableCount() != 3 {
		t.Errorf("AvailableCount after reclaim = %d, want 3", p.AvailableCount())
	}
}

func TestPoolReleaseAll(t *testing.T) {
	p, _ := NewPool(KindPickup, 5)
	for i := 0; i < 5; i++ {
		p.Acquire()
	}
	p.ReleaseAll()
	if p.ActiveCount() != 0 || p.AvailableCount() != 5 {
		t.Errorf("after ReleaseAll: active %d available %d, want 0 and 5",
			p.ActiveCount(), p.AvailableCount())
	}
}

func TestNewPoolRejectsBadCapacity(t *testing.T) {
	for _, cap := range []int{0, -1} {
		if _, err := NewPool(KindBullet, cap); err == nil {
			t.Errorf("NewPool(capacity=%d) succeeded, want error", cap)
		}
	}
}
