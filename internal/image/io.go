package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp" // WebP decoder registration

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is used when a quality outside 1..100 is requested.
const DefaultJPEGQuality = 90

// DecodeFile loads an image file, detecting the format from its content.
// Supported formats: PNG, JPEG, GIF, WebP, BMP, TIFF.
func DecodeFile(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeBytes decodes an image from a byte slice.
func DecodeBytes(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
// The result always has 4 channels; images without alpha become opaque.
func Decode(r io.Reader) (*Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// EncodeFile encodes the raster to path, choosing the format from the file
// extension. quality applies to JPEG only.
func (r *Raster) EncodeFile(path string, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if !format.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := r.Encode(f, format, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes the raster in the given format. quality applies to JPEG
// only; values outside 1..100 select DefaultJPEGQuality.
func (r *Raster) Encode(w io.Writer, format Format, quality int) error {
	switch format {
	case FormatPNG:
		return r.EncodePNG(w)
	case FormatJPEG:
		return r.EncodeJPEG(w, quality)
	case FormatBMP:
		if err := bmp.Encode(w, r.ToStdImage()); err != nil {
			return fmt.Errorf("image: encode BMP: %w", err)
		}
		return nil
	case FormatTIFF:
		opts := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
		if err := tiff.Encode(w, r.ToStdImage(), opts); err != nil {
			return fmt.Errorf("image: encode TIFF: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}
}

// EncodePNG encodes the raster as PNG to the given writer.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the raster as JPEG. The alpha channel is discarded
// rather than composited.
func (r *Raster) EncodeJPEG(w io.Writer, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	if err := jpeg.Encode(w, r.opaque().ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// EncodeToBytes encodes the raster in the given format and returns the bytes.
func (r *Raster) EncodeToBytes(format Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Encode(&buf, format, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// opaque returns r itself when every pixel is opaque, otherwise a copy with
// alpha forced to 255.
func (r *Raster) opaque() *Raster {
	for i := 3; i < len(r.data); i += Channels {
		if r.data[i] != 255 {
			c := r.Clone()
			for j := 3; j < len(c.data); j += Channels {
				c.data[j] = 255
			}
			return c
		}
	}
	return r
}

// FromStdImage creates a Raster from a standard library image.Image.
// Premultiplied sources are converted to straight alpha.
func FromStdImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	r := &Raster{
		data:   make([]byte, width*height*Channels),
		width:  width,
		height: height,
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(r.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*Channels])
		}
		return r
	}

	dst := r.ToStdImage()
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return r
}

// ToStdImage returns an *image.NRGBA view sharing the raster's pixels.
func (r *Raster) ToStdImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.data,
		Stride: r.Stride(),
		Rect:   image.Rect(0, 0, r.width, r.height),
	}
}

// Rect returns the raster bounds as an image.Rectangle.
func (r *Raster) Rect() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}
