package cubemap

import (
	"io"

	intImage "github.com/gogpu/cubemap/internal/image"
	"github.com/gogpu/cubemap/internal/sphere"
)

// Raster is a 4-channel RGBA pixel buffer.
type Raster = intImage.Raster

// Filter selects the resampling strategy.
type Filter = intImage.Filter

// Filter values.
const (
	// FilterNearest selects the closest pixel.
	FilterNearest = intImage.FilterNearest

	// FilterBilinear interpolates the 2x2 neighborhood, rounding up.
	FilterBilinear = intImage.FilterBilinear

	// FilterBicubic uses cubic convolution over a 4x4 neighborhood.
	FilterBicubic = intImage.FilterBicubic

	// FilterLanczos uses a windowed sinc over a 2a×2a neighborhood.
	FilterLanczos = intImage.FilterLanczos
)

// KernelParams configures the bicubic and Lanczos kernels.
type KernelParams = intImage.KernelParams

// Kernel defaults.
const (
	DefaultLanczosSize = intImage.DefaultLanczosSize
	DefaultBicubicB    = intImage.DefaultBicubicB
)

// Face identifies one of the six cube faces.
type Face = sphere.Face

// Face values.
const (
	FacePX = sphere.FacePX
	FaceNX = sphere.FaceNX
	FacePY = sphere.FacePY
	FaceNY = sphere.FaceNY
	FacePZ = sphere.FacePZ
	FaceNZ = sphere.FaceNZ
)

// Faces lists all six faces in canonical order.
var Faces = sphere.Faces

// Format is an encoded image container format.
type Format = intImage.Format

// Format values.
const (
	FormatPNG  = intImage.FormatPNG
	FormatJPEG = intImage.FormatJPEG
	FormatWebP = intImage.FormatWebP
	FormatBMP  = intImage.FormatBMP
	FormatTIFF = intImage.FormatTIFF
	FormatGIF  = intImage.FormatGIF
)

// NewRaster creates a transparent black width×height raster.
func NewRaster(width, height int) (*Raster, error) {
	return intImage.NewRaster(width, height)
}

// FromRaw wraps existing RGBA data. len(data) must equal width*height*4.
func FromRaw(data []byte, width, height int) (*Raster, error) {
	return intImage.FromRaw(data, width, height)
}

// ParseFace parses a face label such as "px" or "+X".
func ParseFace(s string) (Face, error) {
	return sphere.ParseFace(s)
}

// ParseFilter parses a filter name such as "lanczos".
func ParseFilter(s string) (Filter, error) {
	return intImage.ParseFilter(s)
}

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, error) {
	return intImage.ParseFormat(s)
}

// FormatFromPath returns the format implied by a file extension.
func FormatFromPath(path string) (Format, error) {
	return intImage.FormatFromPath(path)
}

// Decode decodes a PNG, JPEG, GIF, WebP, BMP or TIFF image into a Raster.
func Decode(r io.Reader) (*Raster, error) {
	return intImage.Decode(r)
}

// DecodeFile decodes the image at path into a Raster.
func DecodeFile(path string) (*Raster, error) {
	return intImage.DecodeFile(path)
}

// Resize scales r down to fit inside maxW×maxH, keeping its aspect ratio.
func Resize(r *Raster, maxW, maxH int) (*Raster, error) {
	return intImage.Resize(r, maxW, maxH)
}
