package image

import "math"

// SampleWrap bilinearly samples src at normalized coordinates (u, v).
//
// The pixel position is x = u*W, y = v*H with toroidal addressing on both
// axes: any real coordinate is reduced modulo the dimension and the right
// and bottom neighbors wrap to column 0 and row 0. Nothing is clamped, so
// longitude is seamless across u = 0/1 and small drift outside [0,1) is
// harmless.
//
// Vertical wrap does not flip longitude, so rows near the poles blend with
// the opposite pole's row at the same u. That is geometrically wrong for a
// sphere and is kept as-is.
func SampleWrap(src *Raster, u, v float64) (r, g, b uint8) {
	w, h := src.width, src.height

	x := wrap(u*float64(w), w)
	y := wrap(v*float64(h), h)

	fx0 := math.Floor(x)
	fy0 := math.Floor(y)
	tx := x - fx0
	ty := y - fy0

	x0 := int(fx0)
	y0 := int(fy0)
	// wrap can round up to exactly the dimension for tiny negatives.
	if x0 >= w {
		x0 = 0
	}
	if y0 >= h {
		y0 = 0
	}
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h

	pix := src.pix
	o00 := y0*src.stride + x0*BytesPerPixel
	o10 := y0*src.stride + x1*BytesPerPixel
	o01 := y1*src.stride + x0*BytesPerPixel
	o11 := y1*src.stride + x1*BytesPerPixel

	r = bilerp(pix[o00], pix[o10], pix[o01], pix[o11], tx, ty)
	g = bilerp(pix[o00+1], pix[o10+1], pix[o01+1], pix[o11+1], tx, ty)
	b = bilerp(pix[o00+2], pix[o10+2], pix[o01+2], pix[o11+2], tx, ty)
	return r, g, b
}

// wrap reduces x into [0, n) using the Euclidean remainder.
func wrap(x float64, n int) float64 {
	m := math.Mod(x, float64(n))
	if m < 0 {
		m += float64(n)
	}
	return m
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// bilerp interpolates a 2x2 neighborhood and rounds to the nearest byte.
// Inputs are 8-bit so the result never needs clamping.
func bilerp(c00, c10, c01, c11 uint8, tx, ty float64) uint8 {
	c0 := lerp(float64(c00), float64(c10), tx)
	c1 := lerp(float64(c01), float64(c11), tx)
	return uint8(lerp(c0, c1, ty) + 0.5)
}
