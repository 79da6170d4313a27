package cubemap

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Sink receives finished faces.
//
// WriteFace is called concurrently for the six faces of a size. face is
// only valid until WriteFace returns; implementations that need the pixels
// later must copy them.
//
// Convert rejects a nil Sink with ErrNilSink. A non-nil interface holding
// a nil pointer is called as is, so its methods must handle a nil receiver.
type Sink interface {
	WriteFace(job RenderJob, f Face, face *Raster) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(job RenderJob, f Face, face *Raster) error

// WriteFace calls fn(job, f, face).
func (fn SinkFunc) WriteFace(job RenderJob, f Face, face *Raster) error {
	return fn(job, f, face)
}

// MultiSink returns a Sink that writes each face to every sink in order,
// stopping at the first error.
func MultiSink(sinks ...Sink) Sink {
	return SinkFunc(func(job RenderJob, f Face, face *Raster) error {
		for _, s := range sinks {
			if err := s.WriteFace(job, f, face); err != nil {
				return err
			}
		}
		return nil
	})
}

// Format is an output file encoding.
type Format uint8

// Output formats.
const (
	// FormatJPEG encodes faces as baseline JPEG at the job quality.
	FormatJPEG Format = iota

	// FormatPNG encodes faces losslessly; the job quality is ignored.
	FormatPNG
)

// Ext returns the file extension for the format, without a dot.
func (f Format) Ext() string {
	if f == FormatPNG {
		return "png"
	}
	return "jpg"
}

// ParseFormat parses "jpg", "jpeg" or "png".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	default:
		return 0, fmt.Errorf("cubemap: unknown format %q", s)
	}
}

// writeBufferSize is the buffered writer size used for face files.
const writeBufferSize = 64 << 10

// DirSink writes each face to Root/cubemap_<size>/<face>.<ext>, creating
// directories as needed.
type DirSink struct {
	Root   string
	Format Format
}

// Path returns the file a face of job is written to.
func (d DirSink) Path(job RenderJob, f Face) string {
	dir := "cubemap_" + strconv.Itoa(job.Size)
	return filepath.Join(d.Root, dir, f.String()+"."+d.Format.Ext())
}

// WriteFace encodes face to its file.
func (d DirSink) WriteFace(job RenderJob, f Face, face *Raster) (err error) {
	path := d.Path(job, f)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cubemap: create output dir: %w", err)
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("cubemap: create file: %w", err)
	}
	defer func() { err = errors.Join(err, file.Close()) }()

	w := bufio.NewWriterSize(file, writeBufferSize)
	switch d.Format {
	case FormatPNG:
		err = face.EncodePNG(w)
	default:
		err = face.EncodeJPEG(w, job.Quality)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}
