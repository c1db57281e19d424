package overlay

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrResourceNotFound is returned when the source image or the font cannot be opened.
	ErrResourceNotFound = errors.New("overlay: resource not found")

	// ErrDimensionMismatch is returned when two layers that must be blended differ in size.
	ErrDimensionMismatch = errors.New("overlay: dimension mismatch")

	// ErrDegenerateText is returned for empty or whitespace-only text, or text with no visible glyphs.
	ErrDegenerateText = errors.New("overlay: text renders no glyphs")
)

// DimensionMismatchError reports the two sizes that could not be blended.
type DimensionMismatchError struct {
	Base  image.Point
	Layer image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("overlay: dimension mismatch: base %dx%d, layer %dx%d",
		e.Base.X, e.Base.Y, e.Layer.X, e.Layer.Y)
}

// Is lets errors.Is match ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func notFound(kind, name string, err error) error {
	return fmt.Errorf("%w: %s %q: %v", ErrResourceNotFound, kind, name, err)
}
