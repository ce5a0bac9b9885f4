package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an encoded image container format.
type Format uint8

const (
	// FormatPNG is lossless PNG. The alpha channel is preserved.
	FormatPNG Format = iota

	// FormatJPEG is baseline JPEG. The alpha channel is dropped.
	FormatJPEG

	// FormatWebP is WebP (decode only).
	FormatWebP

	// FormatBMP is uncompressed BMP.
	FormatBMP

	// FormatTIFF is TIFF with deflate compression.
	FormatTIFF

	// FormatGIF is GIF (decode only).
	FormatGIF

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a container format.
type FormatInfo struct {
	// Name is the canonical lower-case name.
	Name string

	// Extensions lists file extensions, the first one preferred.
	Extensions []string

	// CanEncode indicates if the format can be written.
	CanEncode bool

	// HasAlpha indicates if encoded files keep the alpha channel.
	HasAlpha bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatPNG:  {Name: "png", Extensions: []string{".png"}, CanEncode: true, HasAlpha: true},
	FormatJPEG: {Name: "jpeg", Extensions: []string{".jpg", ".jpeg"}, CanEncode: true, HasAlpha: false},
	FormatWebP: {Name: "webp", Extensions: []string{".webp"}, CanEncode: false, HasAlpha: true},
	FormatBMP:  {Name: "bmp", Extensions: []string{".bmp"}, CanEncode: true, HasAlpha: true},
	FormatTIFF: {Name: "tiff", Extensions: []string{".tif", ".tiff"}, CanEncode: true, HasAlpha: true},
	FormatGIF:  {Name: "gif", Extensions: []string{".gif"}, CanEncode: false, HasAlpha: true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// String returns the canonical name of the format.
func (f Format) String() string {
	if f >= formatCount {
		return "unknown"
	}
	return formatInfoTable[f].Name
}

// Extension returns the preferred file extension, including the dot.
func (f Format) Extension() string {
	if f >= formatCount {
		return ""
	}
	return formatInfoTable[f].Extensions[0]
}

// CanEncode returns true if images can be written in this format.
func (f Format) CanEncode() bool {
	return f.Info().CanEncode
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// ParseFormat parses a format name ("png", "jpeg", "jpg", ...) or an
// extension with a leading dot.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f := range formatCount {
		info := formatInfoTable[f]
		if s == info.Name {
			return f, nil
		}
		for _, ext := range info.Extensions {
			if s == ext || s == ext[1:] {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: no extension in %q", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}
