package render

import (
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// System font files used for text rendering. When a file is missing or
// unparsable the renderer degrades to the built-in bitmap face.
const (
	RegularFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	BoldFontPath    = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
)

// LoadFace parses the TrueType font at path and returns a face at the
// given point size.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(fnt, &truetype.Options{Size: size, DPI: 72}), nil
}

// FontSource hands out faces by size and weight, caching parsed fonts
// and built faces. Load failures are absorbed: Face always returns a
// usable face, falling back to basicfont.Face7x13.
type FontSource struct {
	RegularPath string
	BoldPath    string

	mu     sync.Mutex
	parsed map[string]*truetype.Font
	faces  map[faceKey]font.Face
}

type faceKey struct {
	size int
	bold bool
}

// NewFontSource returns a FontSource backed by the system DejaVu fonts.
func NewFontSource() *FontSource {
	return &FontSource{RegularPath: RegularFontPath, BoldPath: BoldFontPath}
}

// Face returns a font face for the requested size and weight.
func (s *FontSource) Face(size int, bold bool) font.Face {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.faces == nil {
		s.faces = make(map[faceKey]font.Face)
	}
	key := faceKey{size: size, bold: bold}
	if face, ok := s.faces[key]; ok {
		return face
	}

	path := s.RegularPath
	if bold {
		path = s.BoldPath
	}
	var face font.Face = basicfont.Face7x13
	if fnt := s.font(path); fnt != nil {
		face = truetype.NewFace(fnt, &truetype.Options{Size: float64(size), DPI: 72})
	}
	s.faces[key] = face
	return face
}

// font parses and caches the font file at path; nil means unavailable.
// Callers must hold s.mu.
func (s *FontSource) font(path string) *truetype.Font {
	if s.parsed == nil {
		s.parsed = make(map[string]*truetype.Font)
	}
	if fnt, ok := s.parsed[path]; ok {
		return fnt
	}
	var fnt *truetype.Font
	if data, err := os.ReadFile(path); err == nil {
		if parsed, perr := truetype.Parse(data); perr == nil {
			fnt = parsed
		}
	}
	s.parsed[path] = fnt
	return fnt
}
