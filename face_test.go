package cubemap

import (
	"errors"
	"testing"
)

func TestFace_String(t *testing.T) {
	want := []string{"right", "left", "up", "down", "front", "back"}
	for i, f := range Faces() {
		if f.String() != want[i] {
			t.Errorf("Faces()[%d].String() = %q, want %q", i, f.String(), want[i])
		}
	}
	if s := Face(9).String(); s != "Face(9)" {
		t.Errorf("Face(9).String() = %q, want %q", s, "Face(9)")
	}
}

func TestParseFace(t *testing.T) {
	for _, f := range Faces() {
		got, err := ParseFace(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFace(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
	}

	if got, err := ParseFace("FRONT"); err != nil || got != FaceFront {
		t.Errorf("ParseFace(FRONT) = %v, %v; want front", got, err)
	}

	if _, err := ParseFace("top"); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("ParseFace(top) error = %v, want ErrInvalidFace", err)
	}
}

func TestFace_Valid(t *testing.T) {
	for _, f := range Faces() {
		if !f.Valid() {
			t.Errorf("%s should be valid", f)
		}
	}
	if Face(6).Valid() {
		t.Error("Face(6) should be invalid")
	}
}
