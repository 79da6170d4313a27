package cubemap

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	intImage "github.com/gogpu/cubemap/internal/image"
	"github.com/gogpu/cubemap/internal/parallel"
)

// Executor is the execution context for cubemap rendering.
//
// It owns a fixed-size worker pool that runs pixel chunks and a pool of
// reusable face buffers. Rendering uses two nested fork-joins: the six
// faces of a size fan out on their own goroutines, and each face fans its
// chunks out to the worker pool. Only chunk work occupies pool workers, so
// the degree of pixel parallelism is the worker count.
//
// Independent Executors share nothing and may run concurrently.
//
// Thread safety: an Executor is safe for concurrent use until Close.
type Executor struct {
	workers     *parallel.Pool
	buffers     *intImage.Pool
	chunkPixels int
	logger      *slog.Logger
}

// NewExecutor starts an executor configured by opts.
// Call Close to stop its workers.
func NewExecutor(opts ...Option) *Executor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = newNopLogger()
	}

	e := &Executor{
		workers:     parallel.NewPool(o.workers),
		buffers:     intImage.NewPool(o.poolSize),
		chunkPixels: o.chunkPixels,
		logger:      o.logger,
	}
	e.logger.Debug("cubemap: executor started",
		slog.Int("workers", e.workers.Workers()),
		slog.Int("chunk_pixels", o.chunkPixels))
	return e
}

// Close stops the worker pool and drops pooled face buffers. Close must not
// be called while a render is in progress. It is safe to call multiple
// times.
func (e *Executor) Close() {
	e.workers.Close()
	e.buffers.Reset()
}

// Workers returns the number of chunk workers.
func (e *Executor) Workers() int {
	return e.workers.Workers()
}

// Release returns a face buffer obtained from RenderFace for reuse.
// The caller must not use r afterwards.
func (e *Executor) Release(r *Raster) {
	e.buffers.Put(r)
}

// join runs every task concurrently and waits for all of them. It returns
// the first error reported; tasks already running are not interrupted.
func (e *Executor) join(tasks []func() error) error {
	var g errgroup.Group
	for _, task := range tasks {
		g.Go(task)
	}
	return g.Wait()
}

// chunkSize returns the chunk length in pixels for a face of side size.
func (e *Executor) chunkSize(size int) int {
	if e.chunkPixels > 0 {
		return min(e.chunkPixels, size*size)
	}
	return parallel.ChunkPixels(size, 0)
}
