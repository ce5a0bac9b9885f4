package image

import "sync"

// Pool is a thread-safe pool for reusing Raster instances.
//
// Rasters are grouped by dimensions. Batch conversions produce many faces
// of the same size, so returning them here after encoding keeps the
// allocation rate flat.
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

// NewPool creates a pool that keeps at most maxPerBucket rasters of each
// size. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Raster),
		maxSize: maxPerBucket,
	}
}

// Get returns a cleared width×height raster, reusing a pooled one when
// available.
func (p *Pool) Get(width, height int) (*Raster, error) {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		r := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		r.Clear()
		return r, nil
	}
	p.mu.Unlock()

	return NewRaster(width, height)
}

// Put returns a raster to the pool. The caller must not use r afterwards.
// Nil and invalid rasters are discarded.
func (p *Pool) Put(r *Raster) {
	if r.Validate() != nil {
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

// Len returns the number of pooled rasters across all sizes.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
