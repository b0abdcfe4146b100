package pool_test

import (
	"testing"

	"github.com/momentics/hioload-buf/pool"
)

func TestPoolReuse(t *testing.T) {
	m := pool.NewManager()
	b1 := m.Get(128)
	if b1.Capacity() < 128 {
		t.Fatalf("capacity = %d", b1.Capacity())
	}
	if b1.Limit() != 128 {
		t.Errorf("limit = %d, want requested size", b1.Limit())
	}
	m.Put(b1)

	b2 := m.Get(64)
	if b2 != b1 {
		t.Error("same-class request should reuse the pooled buffer")
	}
	if b2.Position() != 0 || b2.Limit() != 64 {
		t.Errorf("recycled buffer not recut: %v", b2)
	}
}

func TestPoolClassRouting(t *testing.T) {
	m := pool.NewManager()
	small := m.Get(100)
	large := m.Get(5000)
	if small.Capacity() != 2*1024 {
		t.Errorf("small class = %d", small.Capacity())
	}
	if large.Capacity() != 8*1024 {
		t.Errorf("large class = %d", large.Capacity())
	}
	if oversized := m.Get(32 << 20); oversized.Capacity() != 1<<20 {
		t.Errorf("oversized request routed to %d", oversized.Capacity())
	}
}

func TestPoolStats(t *testing.T) {
	m := pool.NewManager()
	b1 := m.Get(1000)
	b2 := m.Get(1000)
	m.Put(b1)

	s := m.Stats()
	if s.TotalAlloc != 2 {
		t.Errorf("TotalAlloc = %d, want 2", s.TotalAlloc)
	}
	if s.TotalFree != 1 {
		t.Errorf("TotalFree = %d, want 1", s.TotalFree)
	}
	if s.InUse != 1 {
		t.Errorf("InUse = %d, want 1", s.InUse)
	}
	if s.PerClass[2*1024] != 1 {
		t.Errorf("PerClass = %v", s.PerClass)
	}
	_ = b2
}

func TestPooledBufferIsUsable(t *testing.T) {
	m := pool.NewManager()
	b := m.Get(16)
	if err := b.PutInt32(7); err != nil {
		t.Fatalf("PutInt32: %v", err)
	}
	b.Flip()
	if v, _ := b.GetInt32(); v != 7 {
		t.Errorf("round trip = %d", v)
	}
	m.Put(b)
}
