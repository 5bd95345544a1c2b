package render

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestLoadFaceMissingFile(t *testing.T) {
	if _, err := LoadFace("/nonexistent/fonts/Sans.ttf", 16); err == nil {
		t.Error("LoadFace on a missing file should fail")
	}
}

func TestLoadFaceGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFace(path, 16); err == nil {
		t.Error("LoadFace on garbage bytes should fail")
	}
}

func TestFaceFallsBackSilently(t *testing.T) {
	src := &FontSource{
		RegularPath: "/nonexistent/fonts/Sans.ttf",
		BoldPath:    "/nonexistent/fonts/Sans-Bold.ttf",
	}
	for _, bold := range []bool{false, true} {
		face := src.Face(14, bold)
		if face == nil {
			t.Fatalf("Face(14, %v) returned nil", bold)
		}
		if face != basicfont.Face7x13 {
			t.Errorf("Face(14, %v) = %T, want basicfont fallback", bold, face)
		}
	}
}

func TestFaceCaching(t *testing.T) {
	src := &FontSource{
		RegularPath: "/nonexistent/fonts/Sans.ttf",
		BoldPath:    "/nonexistent/fonts/Sans-Bold.ttf",
	}
	a := src.Face(18, false)
	b := src.Face(18, false)
	if a != b {
		t.Error("repeated Face lookups should return the cached face")
	}
}
