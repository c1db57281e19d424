package main

import (
	"context"
	"fmt"
	"image"
	"log"

	"logoOverlay/matrixdisplay"
)

// showPreview keeps img on the LED matrix until ctx is cancelled.
func showPreview(ctx context.Context, img image.Image, brightness int) error {
	ctrl, err := matrixdisplay.NewController(brightness)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.Show(img); err != nil {
		return fmt.Errorf("show composite: %w", err)
	}
	log.Printf("info: preview shown on %dx%d matrix. Press Ctrl+C to exit.", matrixdisplay.PanelWidth, matrixdisplay.PanelHeight)
	<-ctx.Done()
	return nil
}
