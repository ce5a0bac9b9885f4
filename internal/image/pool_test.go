package image

import (
	"sync"
	"testing"
)

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(4)

	r1, err := pool.Get(64, 32)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if r1.Width() != 64 || r1.Height() != 32 {
		t.Errorf("got %dx%d, want 64x32", r1.Width(), r1.Height())
	}

	r1.Fill(9, 9, 9, 9)
	pool.Put(r1)
	if pool.Len() != 1 {
		t.Errorf("Len() = %d, want 1", pool.Len())
	}

	r2, _ := pool.Get(64, 32)
	if r2 != r1 {
		t.Error("Get did not reuse the pooled raster")
	}
	if red, _, _, a := r2.GetRGBA(10, 10); red != 0 || a != 0 {
		t.Errorf("reused raster not cleared: (%d, _, _, %d)", red, a)
	}

	// Different size comes from a different bucket.
	pool.Put(r2)
	r3, _ := pool.Get(32, 64)
	if r3 == r2 {
		t.Error("Get returned a raster of the wrong size")
	}
}

func TestPool_InvalidSize(t *testing.T) {
	pool := NewPool(0)
	if _, err := pool.Get(0, 10); err == nil {
		t.Error("Get(0, 10) succeeded")
	}
}

func TestPool_PutDiscards(t *testing.T) {
	pool := NewPool(2)

	pool.Put(nil)
	pool.Put(&Raster{})
	if pool.Len() != 0 {
		t.Fatalf("invalid rasters were pooled: Len() = %d", pool.Len())
	}

	for range 5 {
		r, _ := NewRaster(8, 8)
		pool.Put(r)
	}
	if pool.Len() != 2 {
		t.Errorf("Len() = %d, want bucket limit 2", pool.Len())
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(0)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(size int) {
			defer wg.Done()
			for range 50 {
				r, err := pool.Get(size, size)
				if err != nil {
					t.Errorf("Get failed: %v", err)
					return
				}
				_ = r.SetRGBA(0, 0, 1, 2, 3, 4)
				pool.Put(r)
			}
		}(i%4 + 1)
	}
	wg.Wait()
}
