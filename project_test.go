package cubemap

import (
	"math"
	"testing"
)

// uvToDir converts equirectangular (u, v) back to a unit direction in
// cube space.
func uvToDir(u, v float64) vec3 {
	phi := (u - 0.5) * 2 * math.Pi
	theta := v * math.Pi
	return vec3{
		x: math.Sin(theta) * math.Sin(phi),
		y: math.Cos(theta),
		z: math.Sin(theta) * math.Cos(phi),
	}
}

// angleBetween returns the angle in radians between unit vectors a and b.
func angleBetween(a, b vec3) float64 {
	cx := a.y*b.z - a.z*b.y
	cy := a.z*b.x - a.x*b.z
	cz := a.x*b.y - a.y*b.x
	dot := a.x*b.x + a.y*b.y + a.z*b.z
	return math.Atan2(math.Sqrt(cx*cx+cy*cy+cz*cz), dot)
}

func TestProject_Range(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 16, 64, 257} {
		for _, f := range Faces() {
			for y := range size {
				for x := range size {
					u, v := Project(f, x, y, size)
					if u < 0 || u >= 1 || v < 0 || v >= 1 {
						t.Fatalf("Project(%s, %d, %d, %d) = (%v, %v), outside [0,1)^2", f, x, y, size, u, v)
					}
				}
			}
		}
	}
}

func TestProject_FaceCenters(t *testing.T) {
	// The center pixel of an odd-sized face looks straight down its axis.
	// Longitude is undefined at the poles, so wantU < 0 skips it.
	tests := []struct {
		face  Face
		wantU float64
		wantV float64
	}{
		{FaceFront, 0.5, 0.5},
		{FaceRight, 0.75, 0.5},
		{FaceBack, 0, 0.5},
		{FaceLeft, 0.25, 0.5},
		{FaceUp, -1, 0},
		{FaceDown, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			u, v := Project(tt.face, 1, 1, 3)
			if tt.wantU < 0 {
				u = tt.wantU
			}
			if math.Abs(u-tt.wantU) > 1e-12 || math.Abs(v-tt.wantV) > 1e-12 {
				t.Errorf("center = (%v, %v), want (%v, %v)", u, v, tt.wantU, tt.wantV)
			}
		})
	}
}

func TestProject_Orientation(t *testing.T) {
	const size = 64

	// Moving right on a side face increases longitude; moving down
	// increases the polar angle.
	for _, f := range []Face{FaceLeft, FaceFront, FaceRight} {
		u0, v0 := Project(f, 20, 20, size)
		u1, _ := Project(f, 40, 20, size)
		_, v1 := Project(f, 20, 40, size)
		if u1 <= u0 {
			t.Errorf("%s: u does not grow to the right (%v -> %v)", f, u0, u1)
		}
		if v1 <= v0 {
			t.Errorf("%s: v does not grow downward (%v -> %v)", f, v0, v1)
		}
	}

	// Up covers the northern cap, down the southern cap.
	for y := range size {
		for x := range size {
			if _, v := Project(FaceUp, x, y, size); v >= 0.5 {
				t.Fatalf("up (%d,%d) v = %v, want < 0.5", x, y, v)
			}
			if _, v := Project(FaceDown, x, y, size); v <= 0.5 {
				t.Fatalf("down (%d,%d) v = %v, want > 0.5", x, y, v)
			}
		}
	}
}

// cubeEdge names one edge of a face.
type cubeEdge struct {
	face Face
	side string // "top", "bottom", "left" or "right"
}

// pixel returns the i-th pixel along the edge of a size x size face.
func (e cubeEdge) pixel(i, size int) (x, y int) {
	switch e.side {
	case "top":
		return i, 0
	case "bottom":
		return i, size - 1
	case "left":
		return 0, i
	default:
		return size - 1, i
	}
}

func TestProject_SeamContinuity(t *testing.T) {
	const (
		size = 256
		// Angular width of one pixel of a 1024-wide panorama.
		tolerance = 2 * math.Pi / 1024
	)

	seams := []struct{ a, b cubeEdge }{
		{cubeEdge{FaceFront, "right"}, cubeEdge{FaceRight, "left"}},
		{cubeEdge{FaceFront, "left"}, cubeEdge{FaceLeft, "right"}},
		{cubeEdge{FaceFront, "top"}, cubeEdge{FaceUp, "bottom"}},
		{cubeEdge{FaceFront, "bottom"}, cubeEdge{FaceDown, "top"}},
		{cubeEdge{FaceRight, "right"}, cubeEdge{FaceBack, "left"}},
		{cubeEdge{FaceBack, "right"}, cubeEdge{FaceLeft, "left"}},
		{cubeEdge{FaceUp, "right"}, cubeEdge{FaceRight, "top"}},
		{cubeEdge{FaceUp, "left"}, cubeEdge{FaceLeft, "top"}},
		{cubeEdge{FaceUp, "top"}, cubeEdge{FaceBack, "top"}},
		{cubeEdge{FaceDown, "right"}, cubeEdge{FaceRight, "bottom"}},
		{cubeEdge{FaceDown, "left"}, cubeEdge{FaceLeft, "bottom"}},
		{cubeEdge{FaceDown, "bottom"}, cubeEdge{FaceBack, "bottom"}},
	}

	for _, seam := range seams {
		name := seam.a.face.String() + "." + seam.a.side + "/" + seam.b.face.String() + "." + seam.b.side
		t.Run(name, func(t *testing.T) {
			other := make([]vec3, size)
			for j := range size {
				x, y := seam.b.pixel(j, size)
				other[j] = uvToDir(Project(seam.b.face, x, y, size))
			}

			worst := 0.0
			for i := range size {
				x, y := seam.a.pixel(i, size)
				d := uvToDir(Project(seam.a.face, x, y, size))

				best := math.Inf(1)
				for _, o := range other {
					best = min(best, angleBetween(d, o))
				}
				worst = max(worst, best)
			}
			if worst >= tolerance {
				t.Errorf("max distance to neighbor face = %v rad, want < %v", worst, tolerance)
			}
		})
	}
}

func TestProject_BasisTable(t *testing.T) {
	// Each face looks down a distinct axis and its right/down vectors are
	// orthogonal to it, so no two faces overlap.
	seen := map[vec3]Face{}
	for _, f := range Faces() {
		b := faceBases[f]
		if prev, dup := seen[b.forward]; dup {
			t.Errorf("%s and %s share forward axis %v", f, prev, b.forward)
		}
		seen[b.forward] = f

		dot := func(a, c vec3) float64 { return a.x*c.x + a.y*c.y + a.z*c.z }
		if dot(b.forward, b.right) != 0 || dot(b.forward, b.down) != 0 || dot(b.right, b.down) != 0 {
			t.Errorf("%s basis is not orthogonal: %+v", f, b)
		}
	}
}

func TestProject_InvalidFace(t *testing.T) {
	u, v := Project(Face(42), 3, 5, 8)
	wu, wv := Project(FaceFront, 3, 5, 8)
	if u != wu || v != wv {
		t.Errorf("invalid face = (%v, %v), want front (%v, %v)", u, v, wu, wv)
	}
}

func TestDirectionToUV_Folding(t *testing.T) {
	// Straight back: atan2 yields ±π, both fold into [0, 1).
	for _, d := range []vec3{{0, 0, -1}, {math.Copysign(0, -1), 0, -1}} {
		u, _ := directionToUV(d)
		if u < 0 || u >= 1 {
			t.Errorf("directionToUV(%v) u = %v, want in [0,1)", d, u)
		}
	}

	// Straight down lands just below v = 1.
	if _, v := directionToUV(vec3{0, -1, 0}); v >= 1 || v < 0.999999 {
		t.Errorf("nadir v = %v, want just below 1", v)
	}
}

func BenchmarkProject(b *testing.B) {
	const size = 1024
	for b.Loop() {
		for x := range size {
			_, _ = Project(FaceFront, x, x, size)
		}
	}
}
