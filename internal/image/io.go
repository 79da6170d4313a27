package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrUnsupportedFormat is returned when the image format is not supported.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// Load decodes the image file at path into an RGB raster.
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized by content.
func Load(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// FromStdImage converts any standard library image to an RGB raster.
// Alpha is dropped; straight color values are kept.
func FromStdImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	dst, err := NewRaster(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := range dst.height {
			srcRow := src.Pix[y*src.Stride:]
			dstRow := dst.RowBytes(y)
			for x := range dst.width {
				copy(dstRow[x*3:x*3+3], srcRow[x*4:x*4+3])
			}
		}
	case *image.RGBA:
		// Premultiplied; only exact for opaque pixels, which covers decoded photos.
		for y := range dst.height {
			srcRow := src.Pix[y*src.Stride:]
			dstRow := dst.RowBytes(y)
			for x := range dst.width {
				copy(dstRow[x*3:x*3+3], srcRow[x*4:x*4+3])
			}
		}
	case *image.YCbCr:
		for y := range dst.height {
			dstRow := dst.RowBytes(y)
			for x := range dst.width {
				c := src.YCbCrAt(bounds.Min.X+x, bounds.Min.Y+y)
				r, g, b := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
				dstRow[x*3], dstRow[x*3+1], dstRow[x*3+2] = r, g, b
			}
		}
	default:
		for y := range dst.height {
			dstRow := dst.RowBytes(y)
			for x := range dst.width {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				dstRow[x*3], dstRow[x*3+1], dstRow[x*3+2] = c.R, c.G, c.B
			}
		}
	}
	return dst, nil
}

// ToStdImage returns an opaque *image.NRGBA copy of the raster.
func (r *Raster) ToStdImage() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for y := range r.height {
		row := r.RowBytes(y)
		dst := out.Pix[y*out.Stride:]
		for x := range r.width {
			dst[x*4] = row[x*3]
			dst[x*4+1] = row[x*3+1]
			dst[x*4+2] = row[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return out
}

// EncodePNG encodes the raster as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the raster as JPEG to w with the given quality (1-100).
func (r *Raster) EncodeJPEG(w io.Writer, quality int) error {
	quality = max(1, min(quality, 100))
	if err := jpeg.Encode(w, r.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}
