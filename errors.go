package cubemap

import (
	"errors"
	"fmt"

	intImage "github.com/gogpu/cubemap/internal/image"
	"github.com/gogpu/cubemap/internal/sphere"
)

// Errors returned by conversions.
var (
	// ErrShapeMismatch is returned when a raster's pixel data does not
	// match its declared dimensions.
	ErrShapeMismatch = intImage.ErrShapeMismatch

	// ErrInvalidDimensions is returned for non-positive output sizes.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrInvalidDirection is returned when the zero vector is resolved.
	ErrInvalidDirection = sphere.ErrInvalidDirection

	// ErrUnknownFace is returned for face values outside the six faces.
	ErrUnknownFace = sphere.ErrUnknownFace

	// ErrUnknownFilter is returned for unrecognized filter names.
	ErrUnknownFilter = intImage.ErrUnknownFilter

	// ErrUnsupportedFormat is returned for unsupported image formats.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

	// ErrMissingFace is wrapped by MissingFaceError.
	ErrMissingFace = errors.New("cubemap: missing face")

	// ErrClosed is returned by a Converter after Close.
	ErrClosed = errors.New("cubemap: converter closed")
)

// MissingFaceError reports a face absent from a CubeSet or passed as nil.
type MissingFaceError struct {
	Face Face
}

func (e *MissingFaceError) Error() string {
	return fmt.Sprintf("cubemap: missing face %s", e.Face)
}

// Unwrap returns ErrMissingFace.
func (e *MissingFaceError) Unwrap() error {
	return ErrMissingFace
}

// checkFace validates a face raster, attributing failures to face.
func checkFace(face Face, r *Raster) error {
	if r == nil {
		return &MissingFaceError{Face: face}
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("face %s: %w", face, err)
	}
	return nil
}
