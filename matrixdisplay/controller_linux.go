//go:build linux

package matrixdisplay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	rgbmatrix "github.com/mcuadros/go-rpi-rgb-led-matrix"
)

// Controller previews composites on a single 64x64 panel driven through an
// Adafruit bonnet.
type Controller struct {
	canvas *rgbmatrix.Canvas
}

func panelConfig(brightness int) *rgbmatrix.HardwareConfig {
	config := rgbmatrix.DefaultConfig
	config.Rows = PanelHeight
	config.Cols = PanelWidth
	config.ChainLength = 1
	config.Parallel = 1
	config.Brightness = brightness
	config.HardwareMapping = "adafruit-hat-pwm"
	return &config
}

// NewController opens the panel and blanks it. The caller owns the returned
// controller and must Close it to release the GPIO pins.
func NewController(brightness int) (*Controller, error) {
	if err := CheckBrightness(brightness); err != nil {
		return nil, err
	}

	matrix, err := rgbmatrix.NewRGBLedMatrix(panelConfig(brightness))
	if err != nil {
		return nil, fmt.Errorf("matrixdisplay: open panel: %w", err)
	}
	c := &Controller{canvas: rgbmatrix.NewCanvas(matrix)}
	if err := c.paint(&image.Uniform{C: color.Black}); err != nil {
		c.canvas.Close()
		return nil, err
	}
	return c, nil
}

// Show letterboxes composite onto the panel.
func (c *Controller) Show(composite image.Image) error {
	if composite == nil {
		return fmt.Errorf("matrixdisplay: nil composite")
	}
	return c.paint(Fit(composite))
}

func (c *Controller) paint(frame image.Image) error {
	draw.Draw(c.canvas, c.canvas.Bounds(), frame, frame.Bounds().Min, draw.Src)
	if err := c.canvas.Render(); err != nil {
		return fmt.Errorf("matrixdisplay: render preview: %w", err)
	}
	return nil
}

// Close blanks the panel and releases it.
func (c *Controller) Close() error {
	if err := c.canvas.Close(); err != nil {
		return fmt.Errorf("matrixdisplay: close preview: %w", err)
	}
	return nil
}
