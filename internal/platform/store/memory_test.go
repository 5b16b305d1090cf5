package store

import (
	"context"
	"sync"
	"testing"

	perr "lexis/internal/platform/errors"
)

func TestMemory_InsertGetDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory(0)

	if err := m.Insert(ctx, "a", 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := m.Insert(ctx, "a", 2); !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("duplicate insert should fail with duplicate key, got %v", err)
	}
	if m.Len(ctx) != 1 {
		t.Fatalf("duplicate insert changed size")
	}

	v, ok := m.Get(ctx, "a")
	if !ok || v.(int) != 1 {
		t.Fatalf("get = %v %v", v, ok)
	}
	if _, ok := m.Get(ctx, "b"); ok {
		t.Fatalf("get of absent key should miss")
	}

	v, ok = m.Delete(ctx, "a")
	if !ok || v.(int) != 1 {
		t.Fatalf("delete = %v %v", v, ok)
	}
	if _, ok := m.Delete(ctx, "a"); ok {
		t.Fatalf("second delete should miss")
	}
	if m.Len(ctx) != 0 {
		t.Fatalf("size after delete = %d", m.Len(ctx))
	}
}

func TestMemory_SnapshotOrderAndStability(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory(0)
	for _, k := range []string{"x", "y", "z"} {
		if err := m.Insert(ctx, k, k); err != nil {
			t.Fatalf("insert %q: %v", k, err)
		}
	}

	snap := m.Snapshot(ctx)
	if len(snap) != 3 || snap[0] != "x" || snap[1] != "y" || snap[2] != "z" {
		t.Fatalf("snapshot order = %v", snap)
	}

	// mutating after the snapshot must not change it
	if _, ok := m.Delete(ctx, "y"); !ok {
		t.Fatalf("delete y failed")
	}
	if len(snap) != 3 || snap[1] != "y" {
		t.Fatalf("snapshot not detached: %v", snap)
	}

	// deletion reindexes: z still reachable and order holds
	snap2 := m.Snapshot(ctx)
	if len(snap2) != 2 || snap2[0] != "x" || snap2[1] != "z" {
		t.Fatalf("post-delete snapshot = %v", snap2)
	}
	if v, ok := m.Get(ctx, "z"); !ok || v != "z" {
		t.Fatalf("get z after reindex = %v %v", v, ok)
	}
}

func TestMemory_ConcurrentReaders(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory(0)
	for _, k := range []string{"a", "b", "c", "d"} {
		_ = m.Insert(ctx, k, k)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap := m.Snapshot(ctx)
				if len(snap) < 3 {
					t.Errorf("snapshot shrank below floor: %v", snap)
					return
				}
			}
		}()
	}
	// one writer churning a single key
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			_, _ = m.Delete(ctx, "d")
			_ = m.Insert(ctx, "d", "d")
		}
	}()
	wg.Wait()
}

func TestOpenAndGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st, err := Open(ctx, Config{Mem: MemConfig{Enabled: true, InitialCapacity: 8}})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if st.Mem == nil {
		t.Fatalf("mem seam not constructed")
	}
	if err := st.Guard(ctx); err != nil {
		t.Fatalf("guard: %v", err)
	}
	if err := st.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}

	// disabled backend stays nil
	st2, err := Open(ctx, Config{})
	if err != nil {
		t.Fatalf("open disabled: %v", err)
	}
	if st2.Mem != nil {
		t.Fatalf("mem should be nil when disabled")
	}
}
