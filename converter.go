package cubemap

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	intImage "github.com/gogpu/cubemap/internal/image"
	"github.com/gogpu/cubemap/internal/parallel"
)

// Converter runs cube map conversions.
//
// A Converter owns a worker pool and a pool of reusable rasters. It is safe
// for concurrent use and must be closed when no longer needed.
type Converter struct {
	opts    options
	workers *parallel.WorkerPool // nil when running inline
	rasters *intImage.Pool
	closed  atomic.Bool
}

// NewConverter creates a Converter with the given options.
func NewConverter(opts ...Option) *Converter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Converter{
		opts:    o,
		rasters: intImage.NewPool(o.poolSize),
	}
	if o.workers != 1 {
		c.workers = parallel.NewWorkerPool(o.workers)
	}
	return c
}

// Close stops the worker pool. Conversions started afterwards fail with
// ErrClosed. Close is safe to call multiple times.
func (c *Converter) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	if c.workers != nil {
		c.workers.Close()
	}
}

// Workers returns the number of goroutines used per conversion.
func (c *Converter) Workers() int {
	if c.workers == nil {
		return 1
	}
	return c.workers.Workers()
}

// Filter returns the interior filter of the forward and patch paths.
func (c *Converter) Filter() Filter {
	return c.opts.filter
}

// Release hands a raster produced by this converter back for reuse. The
// caller must not use r afterwards.
func (c *Converter) Release(r *Raster) {
	c.rasters.Put(r)
}

func (c *Converter) newRaster(width, height int) (*Raster, error) {
	return c.rasters.Get(width, height)
}

// forRows runs fn for each row on the converter's workers.
func (c *Converter) forRows(ctx context.Context, rows int, fn func(y int)) error {
	return parallel.ForRows(ctx, c.workers, rows, fn)
}

// samplerPool hands out per-goroutine samplers for one filter.
type samplerPool struct {
	pool sync.Pool
}

func newSamplerPool(f Filter, params KernelParams) *samplerPool {
	return &samplerPool{pool: sync.Pool{
		New: func() any { return intImage.NewSampler(f, params) },
	}}
}

func (p *samplerPool) get() *intImage.Sampler  { return p.pool.Get().(*intImage.Sampler) }
func (p *samplerPool) put(s *intImage.Sampler) { p.pool.Put(s) }

// logDone logs the outcome of a conversion.
func logDone(op string, start time.Time, err error, attrs ...any) {
	l := Logger()
	attrs = append(attrs, slog.Duration("elapsed", time.Since(start)))
	if err != nil {
		l.Warn("cubemap: "+op+" aborted", append(attrs, slog.Any("error", err))...)
		return
	}
	l.Info("cubemap: "+op+" done", attrs...)
}
