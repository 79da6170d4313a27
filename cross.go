package cubemap

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/draw"
)

// crossCells places each face in a 4x3 horizontal cross:
//
//	.     up    .     .
//	left  front right back
//	.     down  .     .
//
// Edges that touch in the layout are continuous on the sphere.
var crossCells = [faceCount]image.Point{
	FaceUp:    {1, 0},
	FaceLeft:  {0, 1},
	FaceFront: {1, 1},
	FaceRight: {2, 1},
	FaceBack:  {3, 1},
	FaceDown:  {1, 2},
}

// CrossSink assembles a horizontal-cross preview of each converted size.
// Every face is scaled to a cell of Cell x Cell pixels with a Catmull-Rom
// filter; unused cells stay transparent.
//
// CrossSink copies what it needs during WriteFace and may be combined with
// other sinks through MultiSink.
type CrossSink struct {
	cell int

	mu      sync.Mutex
	sheets  map[int]*image.NRGBA
	scaler  draw.Scaler
	written map[int]int
}

// NewCrossSink returns a CrossSink with cells of cell x cell pixels.
func NewCrossSink(cell int) (*CrossSink, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("%w: cross cell %d", ErrInvalidSize, cell)
	}
	return &CrossSink{
		cell:    cell,
		sheets:  make(map[int]*image.NRGBA),
		scaler:  draw.CatmullRom,
		written: make(map[int]int),
	}, nil
}

// WriteFace scales face into its cell of the sheet for job.Size.
func (c *CrossSink) WriteFace(job RenderJob, f Face, face *Raster) error {
	if c == nil {
		return ErrNilSink
	}
	if !f.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFace, uint8(f))
	}

	c.mu.Lock()
	sheet, ok := c.sheets[job.Size]
	if !ok {
		sheet = image.NewNRGBA(image.Rect(0, 0, 4*c.cell, 3*c.cell))
		c.sheets[job.Size] = sheet
	}
	c.mu.Unlock()

	// Cells are disjoint, so concurrent faces draw without the lock.
	at := crossCells[f].Mul(c.cell)
	dst := image.Rectangle{Min: at, Max: at.Add(image.Pt(c.cell, c.cell))}
	src := face.ToStdImage()
	c.scaler.Scale(sheet, dst, src, src.Bounds(), draw.Src, nil)

	c.mu.Lock()
	c.written[job.Size]++
	c.mu.Unlock()
	return nil
}

// Image returns the sheet for size, or nil if no face of that size has
// been written. The sheet must not be read while WriteFace calls for the
// same size are in progress.
func (c *CrossSink) Image(size int) *image.NRGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sheets[size]
}

// Faces returns how many faces of size have been written.
func (c *CrossSink) Faces(size int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.written[size]
}

// WritePNG encodes the sheet for size as PNG.
func (c *CrossSink) WritePNG(size int, w io.Writer) error {
	sheet := c.Image(size)
	if sheet == nil {
		return fmt.Errorf("cubemap: no cross sheet for size %d", size)
	}
	if err := png.Encode(w, sheet); err != nil {
		return fmt.Errorf("cubemap: encode cross PNG: %w", err)
	}
	return nil
}
