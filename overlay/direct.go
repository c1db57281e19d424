package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ResolveAnchor returns the point the text centre is placed at. Each axis
// defaults to the middle of size unless the anchor overrides it.
func ResolveAnchor(size image.Point, anchor Anchor) Point {
	p := Point{X: size.X / 2, Y: size.Y / 2}
	if anchor.X != nil {
		p.X = *anchor.X
	}
	if anchor.Y != nil {
		p.Y = *anchor.Y
	}
	return p
}

// OverlayText draws spec centred on the anchor into a transparent layer the
// size of source and blends it over a copy of source. Glyphs that fall
// outside the image are clipped; the source itself is left unchanged.
func OverlayText(source image.Image, spec TextSpec, anchor Anchor) (*image.NRGBA, error) {
	if source == nil {
		return nil, fmt.Errorf("overlay: nil source image")
	}
	spec, err := spec.normalized()
	if err != nil {
		return nil, err
	}

	face, err := LoadFace(spec.Font)
	if err != nil {
		return nil, err
	}
	defer closeFace(face)

	return overlayText(source, face, spec.Text, spec.Color, anchor)
}

func overlayText(source image.Image, face font.Face, text string, fill Color, anchor Anchor) (*image.NRGBA, error) {
	m, err := MeasureText(face, text)
	if err != nil {
		return nil, err
	}

	base := imaging.Clone(source)
	size := base.Bounds().Size()
	layer := imaging.New(size.X, size.Y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})

	at := ResolveAnchor(size, anchor)
	if !textBox(m, at).Overlaps(layer.Bounds()) {
		// Nothing would land on the canvas. Skipping the draw also keeps
		// anchors beyond the 26.6 fixed-point range from wrapping around.
		logDebug("debug: overlay text %q at (%d, %d) falls outside %dx%d", text, at.X, at.Y, size.X, size.Y)
		return AlphaComposite(base, layer)
	}
	drawCentered(layer, face, text, fill, centeredDot(face, m, at))
	logDebug("debug: overlay text %q centred at (%d, %d) on %dx%d", text, at.X, at.Y, size.X, size.Y)

	return AlphaComposite(base, layer)
}

// textBox is a conservative pixel box around text centred on at. Any glyph
// pixel drawn by drawCentered lies inside it.
func textBox(m TextMetrics, at Point) image.Rectangle {
	if at.X < math.MinInt32 || at.X > math.MaxInt32 || at.Y < math.MinInt32 || at.Y > math.MaxInt32 {
		return image.Rectangle{}
	}
	halfW := max(m.Advance.Ceil(), m.Ink.Max.X)
	halfH := m.Ascent + m.Descent
	return image.Rect(at.X-halfW, at.Y-halfH, at.X+halfW, at.Y+halfH)
}

// centeredDot is the pen position that puts the middle of the advance width
// and the middle of the ascender-descender band on at.
func centeredDot(face font.Face, m TextMetrics, at Point) fixed.Point26_6 {
	metrics := face.Metrics()
	return fixed.Point26_6{
		X: fixed.I(at.X) - m.Advance/2,
		Y: fixed.I(at.Y) + (metrics.Ascent-metrics.Descent)/2,
	}
}

func drawCentered(dst draw.Image, face font.Face, text string, fill Color, dot fixed.Point26_6) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill.NRGBA()),
		Face: face,
		Dot:  dot,
	}
	drawer.DrawString(text)
}

// AlphaComposite blends layer over base with the Porter-Duff "over" operator
// and returns the result as a new image. Both images must have the same size;
// a mismatch is reported before any pixel is touched.
func AlphaComposite(base, layer image.Image) (*image.NRGBA, error) {
	if base == nil || layer == nil {
		return nil, fmt.Errorf("overlay: nil image")
	}
	baseSize := base.Bounds().Size()
	layerSize := layer.Bounds().Size()
	if baseSize != layerSize {
		return nil, &DimensionMismatchError{Base: baseSize, Layer: layerSize}
	}

	dst := imaging.Clone(base)
	draw.Copy(dst, image.Point{}, layer, layer.Bounds(), draw.Over, nil)
	return dst, nil
}
