package main

import (
	"context"
	"fmt"
	"log"

	"logoOverlay/overlay"
)

func generateOverlayImages(ctx context.Context, opts overlay.Options) ([]overlay.Result, error) {
	log.Printf("info: personalising %s with %q", opts.SourcePath, opts.Text)

	results, err := overlay.Run(ctx, opts)
	for _, result := range results {
		bounds := result.Image.Bounds()
		fmt.Printf("%-8s %s (%dx%d)\n", result.Mode, result.Path, bounds.Dx(), bounds.Dy())
	}
	if err != nil {
		if len(results) > 0 {
			log.Printf("warning: %d of %d outputs written before failure", len(results), len(opts.Modes))
		}
		return results, err
	}
	return results, nil
}
