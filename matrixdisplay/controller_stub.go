//go:build !linux

package matrixdisplay

import (
	"errors"
	"image"
)

// ErrNoPanel is returned when the preview panel cannot be driven on this platform.
var ErrNoPanel = errors.New("matrixdisplay: LED panel preview needs linux")

// Controller stands in for the panel on platforms without GPIO access.
type Controller struct{}

// NewController validates brightness and then reports ErrNoPanel.
func NewController(brightness int) (*Controller, error) {
	if err := CheckBrightness(brightness); err != nil {
		return nil, err
	}
	return nil, ErrNoPanel
}

func (c *Controller) Show(image.Image) error { return ErrNoPanel }

// Close has nothing to release.
func (c *Controller) Close() error { return nil }
