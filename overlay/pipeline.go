package overlay

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Options is the full description of one personalisation run.
type Options struct {
	SourcePath string
	Text       string
	Font       FontSpec
	Color      Color
	Modes      []Mode
	// Anchor only applies to ModeOverlay.
	Anchor Anchor
	// OutputDir receives the mode output files; empty means the working directory.
	OutputDir string
}

// TextSpec returns the text portion of the options.
func (o Options) TextSpec() TextSpec {
	return TextSpec{Text: o.Text, Font: o.Font, Color: o.Color}
}

// Validate checks the options before anything is loaded or written.
func (o Options) Validate() error {
	if strings.TrimSpace(o.SourcePath) == "" {
		return errors.New("overlay: source path must not be empty")
	}
	if strings.TrimSpace(o.Text) == "" {
		return ErrDegenerateText
	}
	if o.Font.Size <= 0 {
		return fmt.Errorf("overlay: font size must be positive, got %v", o.Font.Size)
	}
	if len(o.Modes) == 0 {
		return errors.New("overlay: at least one mode is required")
	}
	for _, mode := range o.Modes {
		if mode.OutputName() == "" {
			return fmt.Errorf("overlay: unknown mode %s", mode)
		}
	}
	return nil
}

// Result describes one written output.
type Result struct {
	Mode  Mode
	Path  string
	Image *image.NRGBA
}

// Compose builds the composite for a single mode from an already loaded source.
func Compose(source image.Image, spec TextSpec, mode Mode, anchor Anchor) (*image.NRGBA, error) {
	switch mode {
	case ModeBeneath, ModeAbove:
		text, err := RenderText(spec)
		if err != nil {
			return nil, err
		}
		return Stack(mode, source, text)
	case ModeOverlay:
		return OverlayText(source, spec, anchor)
	default:
		return nil, fmt.Errorf("overlay: unknown mode %s", mode)
	}
}

// Run loads the source image and writes one output per requested mode. A
// failure aborts the run; outputs written by earlier modes stay on disk.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if ctx == nil {
		return nil, errors.New("overlay: nil context")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	source, err := LoadImage(opts.SourcePath)
	if err != nil {
		return nil, err
	}
	bounds := source.Bounds()
	logDebug("debug: loaded %s (%dx%d)", opts.SourcePath, bounds.Dx(), bounds.Dy())

	spec := opts.TextSpec()
	results := make([]Result, 0, len(opts.Modes))
	for _, mode := range opts.Modes {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("overlay: %s: %w", mode, err)
		}

		img, err := Compose(source, spec, mode, opts.Anchor)
		if err != nil {
			return results, fmt.Errorf("overlay: %s: %w", mode, err)
		}

		path := filepath.Join(opts.OutputDir, mode.OutputName())
		if err := WritePNG(path, img); err != nil {
			return results, fmt.Errorf("overlay: %s: %w", mode, err)
		}
		results = append(results, Result{Mode: mode, Path: path, Image: img})
	}
	return results, nil
}
