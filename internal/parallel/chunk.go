// Package parallel provides the fork-join machinery used to render cube faces.
//
// A face of S x S pixels is addressed by its linear pixel index y*S+x and
// split into contiguous Chunks. The chunks of one face form an exact
// partition of [0, S*S): every pixel belongs to exactly one chunk, so
// chunk tasks can write their output without locks.
//
// Thread safety: Pool is safe for concurrent use. Chunks are plain values.
package parallel

// DefaultChunkRows is the default chunk height in rows of a face.
// Sixteen rows keep a chunk's output span in cache while leaving enough
// chunks per face to balance across workers.
const DefaultChunkRows = 16

// Chunk is a half-open range [Start, End) of linear pixel indices.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of pixels in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Partition splits [0, total) into consecutive chunks of at most size
// pixels. The last chunk may be shorter. A size <= 0 or larger than total
// yields a single chunk. Partition returns nil when total <= 0.
func Partition(total, size int) []Chunk {
	if total <= 0 {
		return nil
	}
	if size <= 0 || size > total {
		size = total
	}

	n := (total + size - 1) / size
	chunks := make([]Chunk, n)
	for i := range n {
		start := i * size
		chunks[i] = Chunk{Start: start, End: min(start+size, total)}
	}
	return chunks
}

// ChunkPixels returns the chunk size for a face of side size: rows full
// rows when rows > 0, otherwise DefaultChunkRows rows. The result never
// exceeds size*size.
func ChunkPixels(size, rows int) int {
	if rows <= 0 {
		rows = DefaultChunkRows
	}
	return min(size*rows, size*size)
}
