package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image at path, applying any EXIF orientation.
func LoadImage(path string) (image.Image, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("overlay: image path must not be empty")
	}

	if _, err := os.Stat(path); err != nil {
		return nil, notFound("image", path, err)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, notFound("image", path, err)
		}
		return nil, fmt.Errorf("overlay: decode image %q: %w", path, err)
	}
	return img, nil
}

// WritePNG encodes img into a temporary file next to path and renames it into
// place, so an existing file at path is either replaced whole or left untouched.
func WritePNG(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("overlay: nil image")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("overlay: create temp output in %q: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := imaging.Encode(tmp, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		tmp.Close()
		return fmt.Errorf("overlay: encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("overlay: close temp output: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("overlay: chmod temp output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("overlay: rename output %q: %w", path, err)
	}
	return nil
}
