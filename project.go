package cubemap

import "math"

// vec3 is a direction in cube space: +X right, +Y up, +Z front.
type vec3 struct {
	x, y, z float64
}

// faceBasis places a face's pixel grid on the cube. The direction through
// normalized grid position (s, t) is forward + s*right + t*down, where s
// grows to the right of the image and t grows downward, both in [-1, 1].
//
// Neighboring faces share their boundary directions exactly: front's right
// column and right's left column are both (1, -t, 1), up's bottom row is
// front's top row, and so on around the horizontal cross
//
//	      up
//	left front right back
//	     down
type faceBasis struct {
	forward, right, down vec3
}

var faceBases = [faceCount]faceBasis{
	FaceRight: {forward: vec3{1, 0, 0}, right: vec3{0, 0, -1}, down: vec3{0, -1, 0}},
	FaceLeft:  {forward: vec3{-1, 0, 0}, right: vec3{0, 0, 1}, down: vec3{0, -1, 0}},
	FaceUp:    {forward: vec3{0, 1, 0}, right: vec3{1, 0, 0}, down: vec3{0, 0, 1}},
	FaceDown:  {forward: vec3{0, -1, 0}, right: vec3{1, 0, 0}, down: vec3{0, 0, -1}},
	FaceFront: {forward: vec3{0, 0, 1}, right: vec3{1, 0, 0}, down: vec3{0, -1, 0}},
	FaceBack:  {forward: vec3{0, 0, -1}, right: vec3{-1, 0, 0}, down: vec3{0, -1, 0}},
}

// direction returns the unnormalized cube-space direction through (s, t).
func (b *faceBasis) direction(s, t float64) vec3 {
	return vec3{
		x: b.forward.x + s*b.right.x + t*b.down.x,
		y: b.forward.y + s*b.right.y + t*b.down.y,
		z: b.forward.z + s*b.right.z + t*b.down.z,
	}
}

// largestBelowOne is the greatest float64 less than 1.
var largestBelowOne = math.Nextafter(1, 0)

// Project maps the center of pixel (x, y) on a size x size face to
// normalized equirectangular coordinates (u, v) in [0,1) x [0,1).
//
// u is longitude: azimuth/2π + 0.5, with the front face centered at
// u = 0.5 and the right face at u = 0.75. v is the polar angle over π,
// 0 at the zenith (top row of the panorama).
//
// Project has no failure mode. Callers guarantee size > 0 and a valid
// face; an invalid face projects as FaceFront.
func Project(f Face, x, y, size int) (u, v float64) {
	if !f.Valid() {
		f = FaceFront
	}
	return faceBases[f].project(x, y, 2/float64(size))
}

// project maps pixel (x, y) to (u, v); inv is 2/size.
func (b *faceBasis) project(x, y int, inv float64) (u, v float64) {
	s := (float64(x)+0.5)*inv - 1
	t := (float64(y)+0.5)*inv - 1
	return directionToUV(b.direction(s, t))
}

// directionToUV converts a cube-space direction to equirectangular (u, v).
func directionToUV(d vec3) (u, v float64) {
	r := math.Sqrt(d.x*d.x + d.y*d.y + d.z*d.z)

	u = math.Atan2(d.x, d.z)/(2*math.Pi) + 0.5
	v = math.Acos(max(-1, min(d.y/r, 1))) / math.Pi

	// atan2 returns ±π straight behind; both fold to u = 0.
	if u >= 1 {
		u = 0
	}
	if v >= 1 {
		v = largestBelowOne
	}
	return u, v
}
