package cubemap

import (
	"errors"
	"fmt"

	intImage "github.com/gogpu/cubemap/internal/image"
)

// Raster is an 8-bit RGB image. It holds both the equirectangular source
// and the rendered faces.
type Raster = intImage.Raster

// NewRaster allocates a black raster of the given dimensions.
func NewRaster(width, height int) (*Raster, error) {
	return intImage.NewRaster(width, height)
}

// LoadImage decodes a panorama from disk. PNG, JPEG, GIF, BMP, TIFF and
// WebP are detected from the file content.
func LoadImage(path string) (*Raster, error) {
	return intImage.Load(path)
}

// Sample bilinearly samples src at (u, v) with wraparound on both axes.
// It is the sampler used for every face pixel.
func Sample(src *Raster, u, v float64) (r, g, b uint8) {
	return intImage.SampleWrap(src, u, v)
}

// Precondition errors. They are returned before any work is scheduled.
var (
	// ErrInvalidSize is returned for a face size that is not positive.
	ErrInvalidSize = errors.New("cubemap: face size must be positive")

	// ErrInvalidQuality is returned for an encode quality outside [1, 100].
	ErrInvalidQuality = errors.New("cubemap: quality must be in [1, 100]")

	// ErrInvalidFace is returned for an unknown face label or value.
	ErrInvalidFace = errors.New("cubemap: invalid face")

	// ErrInvalidSource is returned for a nil or zero-dimension source.
	ErrInvalidSource = errors.New("cubemap: invalid source image")

	// ErrNilSink is returned when no sink receives the faces.
	ErrNilSink = errors.New("cubemap: nil sink")
)

// FaceError reports the face whose render or hand-off failed.
type FaceError struct {
	Size int
	Face Face
	Err  error
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("cubemap: size %d face %s: %v", e.Size, e.Face, e.Err)
}

func (e *FaceError) Unwrap() error {
	return e.Err
}

// validateSource checks the source precondition shared by every entry point.
func validateSource(src *Raster) error {
	if src.IsEmpty() {
		return ErrInvalidSource
	}
	return nil
}
