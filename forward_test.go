package cubemap

import (
	"context"
	"errors"
	"testing"
)

func TestToPanorama_FlatFaces(t *testing.T) {
	c := newTestConverter(t)

	pano, err := c.ToPanorama(context.Background(), flatCube(t, 100), 360, 180)
	if err != nil {
		t.Fatalf("ToPanorama failed: %v", err)
	}
	if pano.Width() != 360 || pano.Height() != 180 {
		t.Fatalf("panorama = %dx%d, want 360x180", pano.Width(), pano.Height())
	}

	samplePoints := []struct {
		name string
		x, y int
		face Face
	}{
		{"front", 180, 89, FacePZ},
		{"back", 0, 89, FaceNZ},
		{"positive x", 90, 89, FaceNX},
		{"negative x", 270, 89, FacePX},
		{"top", 45, 0, FacePY},
		{"bottom", 300, 179, FaceNY},
	}

	for _, p := range samplePoints {
		t.Run(p.name, func(t *testing.T) {
			r, g, b, a := pano.GetRGBA(p.x, p.y)
			want := faceColors[p.face]
			if r != want[0] || g != want[1] || b != want[2] || a != 255 {
				t.Errorf("pixel (%d,%d) = (%d,%d,%d,%d), want %v face color %v",
					p.x, p.y, r, g, b, a, p.face, want)
			}
		})
	}
}

func TestToPanorama_OnlyFaceColors(t *testing.T) {
	c := newTestConverter(t, WithFilter(FilterBicubic))

	pano, err := c.ToPanorama(context.Background(), flatCube(t, 50), 200, 100)
	if err != nil {
		t.Fatalf("ToPanorama failed: %v", err)
	}

	allowed := make(map[[3]uint8]bool)
	for _, col := range faceColors {
		allowed[col] = true
	}

	for y := range 100 {
		for x := range 200 {
			r, g, b, a := pano.GetRGBA(x, y)
			if !allowed[[3]uint8{r, g, b}] || a != 255 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d) is not a face color", x, y, r, g, b, a)
			}
		}
	}
}

func TestToPanorama_InputsUnchanged(t *testing.T) {
	c := newTestConverter(t)
	cs := gradientCube(t, 16)

	before := make(map[Face][]byte)
	for f, r := range cs {
		before[f] = append([]byte(nil), r.Data()...)
	}

	if _, err := c.ToPanorama(context.Background(), cs, 64, 32); err != nil {
		t.Fatalf("ToPanorama failed: %v", err)
	}

	for f, r := range cs {
		if string(before[f]) != string(r.Data()) {
			t.Errorf("face %v modified", f)
		}
	}
}

func TestToPanorama_MixedFaceSizes(t *testing.T) {
	c := newTestConverter(t)
	cs := flatCube(t, 32)
	cs[FacePZ] = newFlat(t, 7, 13, faceColors[FacePZ])

	pano, err := c.ToPanorama(context.Background(), cs, 120, 60)
	if err != nil {
		t.Fatalf("ToPanorama failed: %v", err)
	}
	r, g, b, _ := pano.GetRGBA(60, 29)
	if want := faceColors[FacePZ]; r != want[0] || g != want[1] || b != want[2] {
		t.Errorf("front pixel = (%d,%d,%d), want %v", r, g, b, want)
	}
}

func TestToPanorama_Errors(t *testing.T) {
	c := newTestConverter(t)
	ctx := context.Background()

	t.Run("missing face", func(t *testing.T) {
		cs := flatCube(t, 8)
		delete(cs, FaceNZ)

		_, err := c.ToPanorama(ctx, cs, 32, 16)
		var mfe *MissingFaceError
		if !errors.As(err, &mfe) || mfe.Face != FaceNZ {
			t.Fatalf("error = %v, want MissingFaceError{nz}", err)
		}
		if !errors.Is(err, ErrMissingFace) {
			t.Errorf("error does not wrap ErrMissingFace")
		}
	})

	t.Run("nil face", func(t *testing.T) {
		cs := flatCube(t, 8)
		cs[FacePY] = nil
		if _, err := c.ToPanorama(ctx, cs, 32, 16); !errors.Is(err, ErrMissingFace) {
			t.Errorf("error = %v, want ErrMissingFace", err)
		}
	})

	t.Run("invalid face raster", func(t *testing.T) {
		cs := flatCube(t, 8)
		cs[FacePX] = &Raster{}
		if _, err := c.ToPanorama(ctx, cs, 32, 16); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("error = %v, want ErrInvalidDimensions", err)
		}
	})

	t.Run("invalid output size", func(t *testing.T) {
		if _, err := c.ToPanorama(ctx, flatCube(t, 8), 0, 16); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("error = %v, want ErrInvalidDimensions", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		out, err := c.ToPanorama(cctx, flatCube(t, 8), 32, 16)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
		if out != nil {
			t.Error("cancelled conversion returned a raster")
		}
	})
}

func BenchmarkToPanorama(b *testing.B) {
	cs := gradientCube(b, 128)
	for _, f := range []Filter{FilterNearest, FilterBilinear, FilterLanczos} {
		b.Run(f.String(), func(b *testing.B) {
			c := NewConverter(WithFilter(f))
			defer c.Close()
			for b.Loop() {
				out, err := c.ToPanorama(context.Background(), cs, 512, 256)
				if err != nil {
					b.Fatal(err)
				}
				c.Release(out)
			}
		})
	}
}
