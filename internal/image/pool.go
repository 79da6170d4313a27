package image

import "sync"

// Pool is a thread-safe pool for reusing Raster instances.
//
// Rasters are grouped by dimensions. A batch that renders the same face
// sizes repeatedly reuses its face buffers instead of reallocating them.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Raster
	maxSize int // max rasters per bucket
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool retaining at most maxPerBucket rasters of each size.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Raster),
		maxSize: maxPerBucket,
	}
}

// Get returns a raster of the given dimensions, reused if one is available.
// Reused rasters keep their previous contents.
func (p *Pool) Get(width, height int) (*Raster, error) {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		r := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		return r, nil
	}
	p.mu.Unlock()

	return NewRaster(width, height)
}

// Put returns a raster to the pool. Nil rasters are ignored, and rasters
// beyond the bucket capacity are dropped for the GC.
func (p *Pool) Put(r *Raster) {
	if r.IsEmpty() {
		return
	}
	key := poolKey{width: r.width, height: r.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, r)
}

// Keep drops every pooled raster whose dimensions differ from width x height.
// Rasters currently checked out are unaffected.
func (p *Pool) Keep(width, height int) {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.buckets {
		if k != key {
			delete(p.buckets, k)
		}
	}
}

// Reset drops every pooled raster.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.buckets)
}

// Len returns the number of pooled rasters of the given dimensions.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}
