package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// StackGap is the vertical space kept between the source image and the text block.
const StackGap = 10

// CenteredX is the x offset that horizontally centres a block of textWidth on sourceWidth.
func CenteredX(sourceWidth, textWidth int) int {
	return int(math.Floor(float64(sourceWidth)/2 - float64(textWidth)/2))
}

// Layout holds the canvas size and top-left paste offsets of a stacked composite.
type Layout struct {
	Canvas image.Point
	Source image.Point
	Text   image.Point
}

// StackLayout computes where the source and text blocks go for the above and beneath modes.
func StackLayout(mode Mode, source, text image.Point) (Layout, error) {
	layout := Layout{
		Canvas: image.Pt(source.X, source.Y+text.Y+StackGap),
	}
	centeredX := CenteredX(source.X, text.X)

	switch mode {
	case ModeBeneath:
		layout.Source = image.Pt(0, 0)
		layout.Text = image.Pt(centeredX, source.Y+StackGap)
	case ModeAbove:
		layout.Source = image.Pt(0, text.Y+StackGap)
		layout.Text = image.Pt(centeredX, 0)
	default:
		return Layout{}, fmt.Errorf("overlay: mode %s is not a stacked layout", mode)
	}
	return layout, nil
}

// Stack pastes source and text onto a fresh transparent canvas. Pasting
// replaces canvas pixels; text wider than the source is clipped at the edges.
func Stack(mode Mode, source, text image.Image) (*image.NRGBA, error) {
	if source == nil || text == nil {
		return nil, fmt.Errorf("overlay: nil image")
	}

	layout, err := StackLayout(mode, source.Bounds().Size(), text.Bounds().Size())
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(layout.Canvas.X, layout.Canvas.Y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})
	canvas = imaging.Paste(canvas, source, layout.Source)
	canvas = imaging.Paste(canvas, text, layout.Text)

	logDebug("debug: %s canvas %dx%d, source at %v, text at %v", mode, layout.Canvas.X, layout.Canvas.Y, layout.Source, layout.Text)
	return canvas, nil
}
