package overlay

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
)

// DefaultFontFamily is used when a FontSpec names no family.
const DefaultFontFamily = "goregular"

type embeddedFont struct {
	data   []byte
	once   sync.Once
	parsed *opentype.Font
	err    error
}

var embeddedFonts = map[string]*embeddedFont{
	"goregular":    {data: goregular.TTF},
	"gobold":       {data: gobold.TTF},
	"goitalic":     {data: goitalic.TTF},
	"gobolditalic": {data: gobolditalic.TTF},
	"gomedium":     {data: gomedium.TTF},
	"gomono":       {data: gomono.TTF},
	"gomonobold":   {data: gomonobold.TTF},
	"gosmallcaps":  {data: gosmallcaps.TTF},
}

// EmbeddedFamilies returns the built-in font family names in sorted order.
func EmbeddedFamilies() []string {
	return slices.Sorted(maps.Keys(embeddedFonts))
}

// load parses the embedded font once using the opentype API.
func (e *embeddedFont) load() (*opentype.Font, error) {
	e.once.Do(func() {
		parsed, err := opentype.Parse(e.data)
		if err != nil {
			e.err = fmt.Errorf("parse embedded font: %w", err)
			return
		}
		e.parsed = parsed
	})
	return e.parsed, e.err
}

// parseFont resolves a family to an embedded Go font or reads it from a file path.
func parseFont(family string) (*opentype.Font, error) {
	family = strings.TrimSpace(family)
	if family == "" {
		family = DefaultFontFamily
	}
	if embedded, ok := embeddedFonts[strings.ToLower(family)]; ok {
		return embedded.load()
	}

	data, err := os.ReadFile(family)
	if err != nil {
		return nil, notFound("font", family, err)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, notFound("font", family, fmt.Errorf("parse: %w", err))
	}
	logDebug("debug: loaded font %s (%d bytes)", family, len(data))
	return parsed, nil
}

// LoadFace opens the font named by spec at its point size. Callers should close
// the returned face when it implements io.Closer.
func LoadFace(spec FontSpec) (font.Face, error) {
	if spec.Size <= 0 {
		return nil, fmt.Errorf("overlay: font size must be positive, got %v", spec.Size)
	}

	parsed, err := parseFont(spec.Family)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("overlay: create font face: %w", err)
	}
	return face, nil
}

func closeFace(face font.Face) {
	if closer, ok := face.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
