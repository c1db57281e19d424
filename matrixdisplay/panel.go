package matrixdisplay

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Panel geometry of the HUB75 matrix used for previews.
const (
	PanelWidth  = 64
	PanelHeight = 64
)

// DefaultBrightness is the panel brightness used when none is configured.
const DefaultBrightness = 60

// CheckBrightness reports whether brightness is a usable panel percentage.
func CheckBrightness(brightness int) error {
	if brightness < 1 || brightness > 100 {
		return fmt.Errorf("matrixdisplay: brightness must be between 1 and 100, got %d", brightness)
	}
	return nil
}

// Fit scales img to fit inside the panel while keeping its aspect ratio. The
// unused border is left black, which renders as unlit LEDs.
func Fit(img image.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, PanelWidth, PanelHeight))
	xdraw.Draw(dst, dst.Bounds(), &image.Uniform{color.Black}, image.Point{}, xdraw.Src)
	if img == nil {
		return dst
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return dst
	}
	target := fitRect(bounds.Dx(), bounds.Dy())
	xdraw.ApproxBiLinear.Scale(dst, target, img, bounds, xdraw.Over, nil)
	return dst
}

// fitRect returns the largest centred rectangle on the panel with the aspect ratio w:h.
func fitRect(w, h int) image.Rectangle {
	tw, th := PanelWidth, PanelHeight
	if w*PanelHeight > h*PanelWidth {
		th = h * PanelWidth / w
		if th < 1 {
			th = 1
		}
	} else {
		tw = w * PanelHeight / h
		if tw < 1 {
			tw = 1
		}
	}
	x0 := (PanelWidth - tw) / 2
	y0 := (PanelHeight - th) / 2
	return image.Rect(x0, y0, x0+tw, y0+th)
}
