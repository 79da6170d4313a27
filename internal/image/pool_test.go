package image

import (
	"errors"
	"sync"
	"testing"
)

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(4)

	r, err := pool.Get(32, 32)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if r.Width() != 32 || r.Height() != 32 {
		t.Fatalf("Get returned %dx%d, want 32x32", r.Width(), r.Height())
	}

	pool.Put(r)
	if n := pool.Len(32, 32); n != 1 {
		t.Fatalf("Len = %d after Put, want 1", n)
	}

	r2, _ := pool.Get(32, 32)
	if r2 != r {
		t.Error("Get should reuse the pooled raster")
	}
	if n := pool.Len(32, 32); n != 0 {
		t.Errorf("Len = %d after Get, want 0", n)
	}
}

func TestPool_DifferentSizes(t *testing.T) {
	pool := NewPool(4)

	small, _ := pool.Get(16, 16)
	large, _ := pool.Get(64, 64)
	pool.Put(small)
	pool.Put(large)

	got, _ := pool.Get(64, 64)
	if got != large {
		t.Error("Get(64, 64) should return the 64x64 raster")
	}
	if pool.Len(16, 16) != 1 {
		t.Error("16x16 bucket should be untouched")
	}
}

func TestPool_MaxSize(t *testing.T) {
	pool := NewPool(2)

	for range 5 {
		r, _ := NewRaster(8, 8)
		pool.Put(r)
	}
	if n := pool.Len(8, 8); n != 2 {
		t.Errorf("Len = %d, want capacity 2", n)
	}
}

func TestPool_PutRejects(t *testing.T) {
	pool := NewPool(0)

	pool.Put(nil)
	pool.Put(&Raster{})

	if n := pool.Len(0, 0); n != 0 {
		t.Errorf("Len = %d, want 0", n)
	}
}

func TestPool_Keep(t *testing.T) {
	pool := NewPool(0)
	for _, size := range []int{8, 16, 32} {
		r, _ := NewRaster(size, size)
		pool.Put(r)
	}

	pool.Keep(16, 16)

	tests := []struct {
		size int
		want int
	}{
		{8, 0},
		{16, 1},
		{32, 0},
	}
	for _, tt := range tests {
		if n := pool.Len(tt.size, tt.size); n != tt.want {
			t.Errorf("Len(%d) = %d after Keep(16), want %d", tt.size, n, tt.want)
		}
	}

	// Keeping a size with no bucket empties the pool.
	pool.Keep(64, 64)
	if n := pool.Len(16, 16); n != 0 {
		t.Errorf("Len(16) = %d after Keep(64), want 0", n)
	}
}

func TestPool_Reset(t *testing.T) {
	pool := NewPool(0)
	for _, size := range []int{8, 16} {
		r, _ := NewRaster(size, size)
		pool.Put(r)
	}

	pool.Reset()

	if pool.Len(8, 8) != 0 || pool.Len(16, 16) != 0 {
		t.Error("Reset should drop every pooled raster")
	}
	// The pool stays usable.
	r, _ := NewRaster(8, 8)
	pool.Put(r)
	if n := pool.Len(8, 8); n != 1 {
		t.Errorf("Len = %d after Reset and Put, want 1", n)
	}
}

func TestPool_GetInvalidDimensions(t *testing.T) {
	pool := NewPool(1)

	if _, err := pool.Get(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Get(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(0)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				r, err := pool.Get(8, 8)
				if err != nil {
					t.Error(err)
					return
				}
				r.Fill(1, 2, 3)
				pool.Put(r)
			}
		}()
	}
	wg.Wait()

	if n := pool.Len(8, 8); n < 1 || n > 16 {
		t.Errorf("Len = %d, want between 1 and 16", n)
	}
}
