package cubemap

import "log/slog"

// Option configures an Executor during creation.
//
// Example:
//
//	// Default: GOMAXPROCS workers, 16-row chunks, silent
//	e := cubemap.NewExecutor()
//
//	// Four workers with debug logging
//	e := cubemap.NewExecutor(
//	    cubemap.WithWorkers(4),
//	    cubemap.WithLogger(slog.Default()),
//	)
type Option func(*options)

// options holds optional configuration for Executor creation.
type options struct {
	workers     int
	chunkPixels int
	poolSize    int
	logger      *slog.Logger
}

// defaultOptions returns the default executor options.
func defaultOptions() options {
	return options{
		workers:     0, // GOMAXPROCS
		chunkPixels: 0, // 16 rows of the face
		poolSize:    6, // one size's worth of faces
		logger:      nil,
	}
}

// WithWorkers sets the number of chunk workers. n <= 0 selects GOMAXPROCS.
// The count is fixed for the executor's lifetime.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets the number of pixels per render chunk. n <= 0 selects
// 16 rows of the face being rendered. Chunk size only affects scheduling;
// rendered pixels are identical for every value.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkPixels = n
	}
}

// WithPoolSize sets how many face buffers of each size the executor keeps
// for reuse. 0 keeps every released buffer.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = max(n, 0)
	}
}

// WithLogger sets the logger for render and batch events.
// A nil logger disables logging, which is the default.
//
// Example:
//
//	e := cubemap.NewExecutor(cubemap.WithLogger(slog.New(
//	    slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
//	)))
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
