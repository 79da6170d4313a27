// Package cubemap converts equirectangular panoramas into six-face cubemaps.
//
// # Overview
//
// A cubemap stores a panorama as six square images, one per face of a cube
// centered on the viewer. cubemap renders each face by projecting every
// face pixel back onto the sphere and bilinearly sampling the panorama
// there. It is pure Go with no GPU or cgo requirements.
//
// # Quick Start
//
//	import "github.com/gogpu/cubemap"
//
//	src, err := cubemap.LoadImage("pano.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	e := cubemap.NewExecutor()
//	defer e.Close()
//
//	sink := cubemap.DirSink{Root: "output", Format: cubemap.FormatJPEG}
//	err = e.Batch(src, []int{1024, 2048}, 95, sink)
//
// # Coordinate System
//
// Cube space is left-handed: +X right, +Y up, +Z front, seen from the
// center. Face images have their origin at the top-left with y growing
// downward. Faces join without seams in the horizontal cross layout
// produced by CrossSink:
//
//	      up
//	left front right back
//	     down
//
// On the panorama, u (longitude) runs left to right with the front face at
// its center, and v (polar angle) runs from the zenith at the top row to
// the nadir at the bottom row.
//
// # Sampling
//
// Samples wrap on both axes. Horizontal wrap is exact because longitude is
// periodic. Vertical wrap blends the last row with the first row at the
// same longitude instead of the opposite longitude, which leaves a faint
// artifact in down-face pixels that sample within one source row of the
// nadir.
//
// # Concurrency
//
// An Executor is an explicit execution context with a fixed number of
// workers. Convert renders the six faces of a size concurrently and each
// face renders its pixel chunks concurrently on the workers. The source is
// shared read-only and every chunk writes its own pixels, so rendering
// takes no locks. The first failing face ends the conversion with a
// *FaceError; there is no cancellation.
package cubemap
