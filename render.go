package cubemap

import (
	"fmt"
	"log/slog"
	"time"

	intImage "github.com/gogpu/cubemap/internal/image"
	"github.com/gogpu/cubemap/internal/parallel"
)

// RenderFace renders one size x size face of the cube from the
// equirectangular src.
//
// The face is split into chunks that run on the executor's workers; each
// chunk projects its pixels and samples src, writing a disjoint span of the
// result. RenderFace returns once every chunk has finished. src is only
// read and may be shared by concurrent renders.
//
// The returned raster belongs to the caller, who may hand it back with
// Release once done with it.
func (e *Executor) RenderFace(src *Raster, f Face, size int) (*Raster, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFace, uint8(f))
	}
	if err := validateSource(src); err != nil {
		return nil, err
	}
	return e.renderFace(src, f, size)
}

// renderFace renders a face after preconditions have been checked.
func (e *Executor) renderFace(src *Raster, f Face, size int) (*Raster, error) {
	start := time.Now()

	dst, err := e.buffers.Get(size, size)
	if err != nil {
		return nil, err
	}

	chunks := parallel.Partition(size*size, e.chunkSize(size))
	e.workers.Run(chunks, func(c parallel.Chunk) {
		renderChunk(src, dst, f, size, c)
	})

	e.logger.Debug("cubemap: face rendered",
		slog.String("face", f.String()),
		slog.Int("size", size),
		slog.Int("chunks", len(chunks)),
		slog.Int("chunk_pixels", chunks[0].Len()),
		slog.Duration("elapsed", time.Since(start)))
	return dst, nil
}

// renderChunk fills the pixels of c, addressed by linear index y*size+x.
func renderChunk(src, dst *Raster, f Face, size int, c parallel.Chunk) {
	basis := &faceBases[f]
	inv := 2 / float64(size)
	pix := dst.Pix()
	stride := dst.Stride()

	for i := c.Start; i < c.End; i++ {
		x := i % size
		y := i / size

		u, v := basis.project(x, y, inv)
		r, g, b := intImage.SampleWrap(src, u, v)

		off := y*stride + x*intImage.BytesPerPixel
		pix[off] = r
		pix[off+1] = g
		pix[off+2] = b
	}
}
