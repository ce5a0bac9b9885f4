// Package image provides the pixel buffers, resampling filters and codecs
// used by the cube map engine.
//
// Every buffer is 4-channel, non-premultiplied RGBA, row-major with the
// origin at the top-left, and the length of its data always equals
// width*height*4.
package image

import (
	"errors"
	"fmt"
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrShapeMismatch is returned when a pixel slice does not hold exactly
	// width*height*4 bytes.
	ErrShapeMismatch = errors.New("image: shape mismatch")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Channels is the number of interleaved channels per pixel (R, G, B, A).
const Channels = 4

// Raster is a width×height RGBA pixel buffer.
//
// Thread safety: Raster is safe for concurrent reads. Writers must touch
// disjoint pixels or synchronize externally.
type Raster struct {
	data   []byte
	width  int
	height int
}

// NewRaster creates a zeroed (transparent black) raster.
// Returns ErrInvalidDimensions if width or height is non-positive.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Raster{
		data:   make([]byte, width*height*Channels),
		width:  width,
		height: height,
	}, nil
}

// FromRaw wraps existing RGBA data without copying.
// The caller must not change the length of data afterwards.
func FromRaw(data []byte, width, height int) (*Raster, error) {
	if err := CheckShape(len(data), width, height); err != nil {
		return nil, err
	}
	return &Raster{data: data, width: width, height: height}, nil
}

// CheckShape reports whether a buffer of n bytes can hold a width×height
// RGBA raster exactly.
func CheckShape(n, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if want := width * height * Channels; n != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrShapeMismatch, width, height, want, n)
	}
	return nil
}

// Validate checks the raster invariant. A nil or zero-value Raster fails.
func (r *Raster) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil raster", ErrInvalidDimensions)
	}
	return CheckShape(len(r.data), r.width, r.height)
}

// Clone creates a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &Raster{data: data, width: r.width, height: r.height}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Bounds returns the raster dimensions as (width, height).
func (r *Raster) Bounds() (int, int) {
	return r.width, r.height
}

// Data returns the raw pixel data slice.
func (r *Raster) Data() []byte {
	return r.data
}

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int {
	return r.width * Channels
}

// RowBytes returns the pixel data of row y.
// Returns nil if y is out of bounds.
func (r *Raster) RowBytes(y int) []byte {
	if y < 0 || y >= r.height {
		return nil
	}
	start := y * r.Stride()
	return r.data[start : start+r.Stride()]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (r *Raster) PixelOffset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return (y*r.width + x) * Channels
}

// GetRGBA returns the color at (x, y).
// Returns (0,0,0,0) if coordinates are out of bounds.
func (r *Raster) GetRGBA(x, y int) (red, green, blue, alpha uint8) {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	p := r.data[off : off+Channels : off+Channels]
	return p[0], p[1], p[2], p[3]
}

// SetRGBA sets the color at (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (r *Raster) SetRGBA(x, y int, red, green, blue, alpha uint8) error {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	p := r.data[off : off+Channels : off+Channels]
	p[0], p[1], p[2], p[3] = red, green, blue, alpha
	return nil
}

// Fill sets every pixel to the given color.
func (r *Raster) Fill(red, green, blue, alpha uint8) {
	for i := 0; i < len(r.data); i += Channels {
		r.data[i] = red
		r.data[i+1] = green
		r.data[i+2] = blue
		r.data[i+3] = alpha
	}
}

// Clear sets all pixels to transparent black.
func (r *Raster) Clear() {
	clear(r.data)
}

// ByteSize returns the total size of the pixel data in bytes.
func (r *Raster) ByteSize() int {
	return len(r.data)
}
