package image

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{"PNG", FormatPNG},
		{".png", FormatPNG},
		{"jpeg", FormatJPEG},
		{"jpg", FormatJPEG},
		{".JPG", FormatJPEG},
		{"webp", FormatWebP},
		{"bmp", FormatBMP},
		{"tif", FormatTIFF},
		{".tiff", FormatTIFF},
		{"gif", FormatGIF},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "exr", ".psd"} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", bad, err)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	got, err := FormatFromPath("/tmp/out/pano.JPEG")
	if err != nil || got != FormatJPEG {
		t.Errorf("FormatFromPath(pano.JPEG) = %v, %v; want jpeg", got, err)
	}

	if _, err := FormatFromPath("/tmp/out/noext"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromPath(noext) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFormat_Info(t *testing.T) {
	for f := range formatCount {
		info := f.Info()
		if info.Name == "" || len(info.Extensions) == 0 {
			t.Errorf("format %d has incomplete info: %+v", f, info)
		}
		if f.Extension() != info.Extensions[0] {
			t.Errorf("%v.Extension() = %q, want %q", f, f.Extension(), info.Extensions[0])
		}
	}

	if FormatWebP.CanEncode() || FormatGIF.CanEncode() {
		t.Error("decode-only formats report CanEncode")
	}
	if FormatJPEG.Info().HasAlpha {
		t.Error("JPEG reports HasAlpha")
	}

	bad := Format(200)
	if bad.IsValid() || bad.String() != "unknown" || bad.Extension() != "" {
		t.Errorf("invalid format: IsValid=%v String=%q Extension=%q", bad.IsValid(), bad.String(), bad.Extension())
	}
}
