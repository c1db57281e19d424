package overlay

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// maskPadding guards against glyph rectangles that round outside BoundString's box.
const maskPadding = 2

// TextMetrics describes a single line of text drawn with its origin at the
// pen start on the ascender line, i.e. baseline at y = Ascent.
type TextMetrics struct {
	// Ink is the bounding box of the non-transparent pixels, relative to the origin.
	Ink     image.Rectangle
	Advance fixed.Int26_6
	Ascent  int
	Descent int
}

// Size is the glyph image size: ink right edge by ink bottom edge plus the
// font descent, so descender room is kept even when the text has none.
func (m TextMetrics) Size() image.Point {
	return image.Pt(m.Ink.Max.X, m.Ink.Max.Y+m.Descent)
}

// MeasureText rasterizes text into a coverage mask and returns its ink bounds
// together with the face's vertical metrics.
func MeasureText(face font.Face, text string) (TextMetrics, error) {
	metrics := face.Metrics()
	m := TextMetrics{
		Ascent:  metrics.Ascent.Ceil(),
		Descent: metrics.Descent.Ceil(),
	}

	bounds, advance := font.BoundString(face, text)
	m.Advance = advance

	if bounds.Empty() {
		return m, ErrDegenerateText
	}

	// Ink left of or above the origin is clipped by the glyph image, so it is not measured.
	area := image.Rect(
		max(bounds.Min.X.Floor()-maskPadding, 0),
		max(bounds.Min.Y.Floor()+m.Ascent-maskPadding, 0),
		bounds.Max.X.Ceil()+maskPadding,
		bounds.Max.Y.Ceil()+m.Ascent+maskPadding,
	)
	if area.Empty() {
		return m, ErrDegenerateText
	}

	mask := image.NewAlpha(area)
	drawer := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, m.Ascent),
	}
	drawer.DrawString(text)

	m.Ink = inkBounds(mask)
	if m.Ink.Empty() || m.Ink.Max.X <= 0 || m.Ink.Max.Y <= 0 {
		return m, ErrDegenerateText
	}
	return m, nil
}

// inkBounds returns the smallest rectangle enclosing every non-zero mask pixel.
func inkBounds(mask *image.Alpha) image.Rectangle {
	r := mask.Rect
	ink := image.Rectangle{}
	found := false
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := mask.Pix[(y-r.Min.Y)*mask.Stride : (y-r.Min.Y)*mask.Stride+r.Dx()]
		for i, a := range row {
			if a == 0 {
				continue
			}
			x := r.Min.X + i
			if !found {
				ink = image.Rect(x, y, x+1, y+1)
				found = true
				continue
			}
			ink = ink.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return ink
}

// RenderText draws spec onto a transparent image sized exactly to the text
// metrics, with glyphs placed at the origin.
func RenderText(spec TextSpec) (*image.NRGBA, error) {
	spec, err := spec.normalized()
	if err != nil {
		return nil, err
	}

	face, err := LoadFace(spec.Font)
	if err != nil {
		return nil, err
	}
	defer closeFace(face)

	return renderText(face, spec.Text, spec.Color)
}

func renderText(face font.Face, text string, fill Color) (*image.NRGBA, error) {
	m, err := MeasureText(face, text)
	if err != nil {
		return nil, err
	}
	size := m.Size()

	img := imaging.New(size.X, size.Y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fill.NRGBA()),
		Face: face,
		Dot:  fixed.P(0, m.Ascent),
	}
	drawer.DrawString(text)

	logDebug("debug: rendered %q as %dx%d (ascent %d, descent %d)", text, size.X, size.Y, m.Ascent, m.Descent)
	return img, nil
}
