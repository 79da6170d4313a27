// Package image provides the RGB raster used for panorama sources and
// cubemap faces, together with sampling, pooling and codec helpers.
//
// Rasters are stored as tightly packed 8-bit RGB triples, row by row. A
// Raster is safe for concurrent reads. Concurrent writes are safe
// only when the writers touch disjoint pixels, which is how face rendering
// uses it.
package image

import "errors"

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// BytesPerPixel is the size of one RGB8 pixel.
const BytesPerPixel = 3

// Raster is an 8-bit RGB pixel buffer.
type Raster struct {
	pix    []byte
	width  int
	height int
	stride int
}

// NewRaster allocates a zeroed (black) raster of the given dimensions.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := width * BytesPerPixel
	return &Raster{
		pix:    make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int { return r.stride }

// Pix returns the underlying pixel data.
func (r *Raster) Pix() []byte { return r.pix }

// IsEmpty reports whether r is nil or has a zero dimension.
func (r *Raster) IsEmpty() bool {
	return r == nil || r.width <= 0 || r.height <= 0
}

// RowBytes returns the packed pixel bytes of row y, or nil if y is out of bounds.
func (r *Raster) RowBytes(y int) []byte {
	if y < 0 || y >= r.height {
		return nil
	}
	start := y * r.stride
	return r.pix[start : start+r.width*BytesPerPixel]
}

// PixelOffset returns the byte offset of pixel (x, y), or -1 if out of bounds.
func (r *Raster) PixelOffset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return y*r.stride + x*BytesPerPixel
}

// RGB returns the color at (x, y). Out-of-bounds reads return black.
func (r *Raster) RGB(x, y int) (red, green, blue uint8) {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0
	}
	return r.pix[off], r.pix[off+1], r.pix[off+2]
}

// SetRGB sets the color at (x, y).
func (r *Raster) SetRGB(x, y int, red, green, blue uint8) error {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	r.pix[off] = red
	r.pix[off+1] = green
	r.pix[off+2] = blue
	return nil
}

// Fill sets every pixel to the given color.
func (r *Raster) Fill(red, green, blue uint8) {
	for y := range r.height {
		row := r.RowBytes(y)
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i] = red
			row[i+1] = green
			row[i+2] = blue
		}
	}
}
