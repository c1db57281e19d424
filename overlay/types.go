package overlay

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/unicode/norm"
)

// Color is a non-premultiplied RGBA fill colour.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// NRGBA converts the colour for use with the image packages.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor accepts "#rrggbb", "#rgb" or "#rrggbbaa". A missing alpha means fully opaque.
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Color{}, fmt.Errorf("overlay: colour must not be empty")
	}
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}

	switch len(value) {
	case 4, 7, 9:
	default:
		return Color{}, fmt.Errorf("overlay: parse colour %q: want #rgb, #rrggbb or #rrggbbaa", value)
	}

	alpha := uint8(0xff)
	if len(value) == 9 {
		a, err := strconv.ParseUint(value[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("overlay: parse colour %q: invalid alpha: %w", value, err)
		}
		alpha = uint8(a)
		value = value[:7]
	}

	parsed, err := colorful.Hex(value)
	if err != nil {
		return Color{}, fmt.Errorf("overlay: parse colour %q: %w", value, err)
	}
	r, g, b := parsed.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// FontSpec identifies a font by embedded family name or file path, plus a point size.
type FontSpec struct {
	Family string
	Size   float64
}

// TextSpec is the text to render together with its font and fill colour.
type TextSpec struct {
	Text  string
	Font  FontSpec
	Color Color
}

// normalized returns the spec with NFC-composed text, or ErrDegenerateText when nothing would be drawn.
func (s TextSpec) normalized() (TextSpec, error) {
	if strings.TrimSpace(s.Text) == "" {
		return s, ErrDegenerateText
	}
	s.Text = norm.NFC.String(s.Text)
	return s, nil
}

// Point is an integer pixel coordinate.
type Point struct {
	X int
	Y int
}

// Anchor holds optional per-axis coordinate overrides for the overlay mode.
// A nil axis falls back to the canvas centre; a non-nil zero is honoured.
type Anchor struct {
	X *int
	Y *int
}

// At returns an anchor overriding both axes.
func At(x, y int) Anchor {
	return Anchor{X: &x, Y: &y}
}

// AtX returns an anchor overriding only the horizontal axis.
func AtX(x int) Anchor {
	return Anchor{X: &x}
}

// AtY returns an anchor overriding only the vertical axis.
func AtY(y int) Anchor {
	return Anchor{Y: &y}
}

// Mode selects how the text is combined with the source image.
type Mode int

const (
	ModeBeneath Mode = iota
	ModeAbove
	ModeOverlay
)

// AllModes lists every layout in the order they are produced by default.
var AllModes = []Mode{ModeBeneath, ModeAbove, ModeOverlay}

func (m Mode) String() string {
	switch m {
	case ModeBeneath:
		return "beneath"
	case ModeAbove:
		return "above"
	case ModeOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// OutputName is the fixed file name each mode writes.
func (m Mode) OutputName() string {
	switch m {
	case ModeBeneath:
		return "beneath.png"
	case ModeAbove:
		return "above.png"
	case ModeOverlay:
		return "combined.png"
	default:
		return ""
	}
}

// ParseMode maps a mode name to its Mode. "combined" is accepted as an alias of overlay.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "beneath", "below":
		return ModeBeneath, nil
	case "above":
		return ModeAbove, nil
	case "overlay", "combined":
		return ModeOverlay, nil
	default:
		return 0, fmt.Errorf("overlay: unknown mode %q", raw)
	}
}

// ParseModes parses a comma-separated mode list, dropping duplicates.
func ParseModes(raw string) ([]Mode, error) {
	var modes []Mode
	seen := make(map[Mode]bool)
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		mode, err := ParseMode(part)
		if err != nil {
			return nil, err
		}
		if seen[mode] {
			continue
		}
		seen[mode] = true
		modes = append(modes, mode)
	}
	if len(modes) == 0 {
		return nil, fmt.Errorf("overlay: no modes in %q", raw)
	}
	return modes, nil
}
