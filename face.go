package cubemap

import (
	"fmt"
	"strings"
)

// Face identifies one side of the cube.
//
// The numeric order matches the conventional cubemap layer order
// +X, -X, +Y, -Y, +Z, -Z.
type Face uint8

// Cube faces.
const (
	FaceRight Face = iota // +X
	FaceLeft              // -X
	FaceUp                // +Y
	FaceDown              // -Y
	FaceFront             // +Z
	FaceBack              // -Z

	faceCount
)

var faceNames = [faceCount]string{
	FaceRight: "right",
	FaceLeft:  "left",
	FaceUp:    "up",
	FaceDown:  "down",
	FaceFront: "front",
	FaceBack:  "back",
}

// Faces returns all six faces in layer order.
func Faces() [6]Face {
	return [6]Face{FaceRight, FaceLeft, FaceUp, FaceDown, FaceFront, FaceBack}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f < faceCount
}

// String returns the lower-case face label, e.g. "right".
func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", uint8(f))
	}
	return faceNames[f]
}

// ParseFace returns the face with the given label. Matching ignores case.
func ParseFace(s string) (Face, error) {
	for i, name := range faceNames {
		if strings.EqualFold(s, name) {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, s)
}
