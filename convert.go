package cubemap

import (
	"fmt"
	"log/slog"
	"time"
)

// RenderJob describes one size of a batch.
type RenderJob struct {
	// Size is the edge length of every face in pixels.
	Size int

	// Quality is the encode quality handed to sinks, in [1, 100].
	Quality int
}

// Validate checks the job preconditions.
func (j RenderJob) Validate() error {
	if j.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, j.Size)
	}
	if j.Quality < 1 || j.Quality > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidQuality, j.Quality)
	}
	return nil
}

// Convert renders all six faces of src at job.Size and passes each
// finished face to sink.
//
// Faces render concurrently and WriteFace is called concurrently, once per
// face. The face raster is only valid during WriteFace: it is recycled
// when the call returns.
//
// The first failing face aborts the conversion with a *FaceError. Faces
// already in flight still finish and whatever they wrote stays written.
// Preconditions are checked before any face starts. Pooled buffers of
// other sizes are dropped when the conversion starts.
func (e *Executor) Convert(src *Raster, job RenderJob, sink Sink) error {
	if err := job.Validate(); err != nil {
		return err
	}
	if err := validateSource(src); err != nil {
		return err
	}
	if sink == nil {
		return ErrNilSink
	}

	start := time.Now()
	e.buffers.Keep(job.Size, job.Size)

	faces := Faces()
	tasks := make([]func() error, len(faces))
	for i, f := range faces {
		tasks[i] = func() error {
			return e.convertFace(src, job, f, sink)
		}
	}
	if err := e.join(tasks); err != nil {
		e.logger.Warn("cubemap: conversion failed",
			slog.Int("size", job.Size),
			slog.Any("error", err))
		return err
	}

	e.logger.Info("cubemap: size converted",
		slog.Int("size", job.Size),
		slog.Int("pooled_buffers", e.buffers.Len(job.Size, job.Size)),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// convertFace renders one face and hands it to sink.
func (e *Executor) convertFace(src *Raster, job RenderJob, f Face, sink Sink) error {
	buf, err := e.renderFace(src, f, job.Size)
	if err != nil {
		return &FaceError{Size: job.Size, Face: f, Err: err}
	}
	defer e.Release(buf)

	if err := sink.WriteFace(job, f, buf); err != nil {
		return &FaceError{Size: job.Size, Face: f, Err: err}
	}
	return nil
}

// Batch converts src at every size in sizes, in order, with one quality.
//
// All sizes and the quality are validated before the first conversion.
// Batch stops at the first failing size; sizes converted before it keep
// their output.
func (e *Executor) Batch(src *Raster, sizes []int, quality int, sink Sink) error {
	if err := validateSource(src); err != nil {
		return err
	}
	if sink == nil {
		return ErrNilSink
	}
	if len(sizes) == 0 {
		return fmt.Errorf("%w: no sizes requested", ErrInvalidSize)
	}
	for _, s := range sizes {
		if err := (RenderJob{Size: s, Quality: quality}).Validate(); err != nil {
			return err
		}
	}

	start := time.Now()
	for _, s := range sizes {
		if err := e.Convert(src, RenderJob{Size: s, Quality: quality}, sink); err != nil {
			return err
		}
	}

	e.logger.Info("cubemap: batch complete",
		slog.Int("sizes", len(sizes)),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}
