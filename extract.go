package cubemap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	intImage "github.com/gogpu/cubemap/internal/image"
	"github.com/gogpu/cubemap/internal/sphere"
)

// ExtractOptions configures face extraction.
type ExtractOptions struct {
	// Size is the face edge length in pixels. Zero selects a quarter of
	// the panorama width.
	Size int

	// MaxWidth caps the face size when positive.
	MaxWidth int

	// Rotation turns the panorama about the vertical axis, in radians.
	Rotation float64

	// Filter samples the panorama. The zero value is FilterNearest; there
	// is no pole override.
	Filter Filter
}

// FaceSize returns the face edge length used for a panorama of the given
// width.
func (o ExtractOptions) FaceSize(panoWidth int) int {
	size := o.Size
	if size <= 0 {
		size = panoWidth / 4
	}
	if o.MaxWidth > 0 {
		size = min(size, o.MaxWidth)
	}
	return size
}

// ExtractFace renders one cube face from an equirectangular panorama.
func (c *Converter) ExtractFace(ctx context.Context, pano *Raster, face Face, opts ExtractOptions) (*Raster, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	if !face.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFace, face)
	}

	cs, err := c.extract(ctx, pano, []Face{face}, opts)
	if err != nil {
		return nil, err
	}
	return cs[face], nil
}

// ExtractCube renders all six cube faces from an equirectangular panorama.
func (c *Converter) ExtractCube(ctx context.Context, pano *Raster, opts ExtractOptions) (CubeSet, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	return c.extract(ctx, pano, Faces[:], opts)
}

// extract renders faces in a single parallel pass over all of their rows.
func (c *Converter) extract(ctx context.Context, pano *Raster, faces []Face, opts ExtractOptions) (CubeSet, error) {
	if err := pano.Validate(); err != nil {
		return nil, fmt.Errorf("cubemap: panorama: %w", err)
	}

	pw, ph := pano.Bounds()
	size := opts.FaceSize(pw)
	if size < 1 {
		return nil, fmt.Errorf("%w: face size %d for %dx%d panorama", ErrInvalidDimensions, size, pw, ph)
	}

	cs := make(CubeSet, len(faces))
	outs := make([]*Raster, len(faces))
	for i, f := range faces {
		r, err := c.newRaster(size, size)
		if err != nil {
			cs.Release(c)
			return nil, err
		}
		outs[i] = r
		cs[f] = r
	}

	start := time.Now()
	Logger().Debug("cubemap: extract",
		slog.Int("faces", len(faces)),
		slog.Int("size", size),
		slog.Float64("rotation", opts.Rotation),
		slog.String("filter", opts.Filter.String()),
		slog.Int("workers", c.Workers()),
	)

	rows := size * len(faces)
	tracker := newProgressTracker(c.opts.progress, rows, c.opts.progressRows)
	samplers := newSamplerPool(opts.Filter, c.opts.kernel)
	inv := 1 / float64(size)

	err := c.forRows(ctx, rows, func(i int) {
		s := samplers.get()
		defer samplers.put(s)

		face, y := faces[i/size], i%size
		row := outs[i/size].RowBytes(y)
		v := 2*(float64(y)+0.5)*inv - 1

		for x := range size {
			u := 2*(float64(x)+0.5)*inv - 1
			lon, colat := sphere.PolarAngles(sphere.PolarDirection(face, u, v), opts.Rotation)
			sx, sy := sphere.PolarToPixel(lon, colat, pw, ph)
			r, g, b := s.Sample(pano, sx, sy)

			o := x * intImage.Channels
			row[o], row[o+1], row[o+2], row[o+3] = r, g, b, 255
		}

		tracker.rowDone()
	})
	if err != nil {
		cs.Release(c)
		logDone("extract", start, err)
		return nil, fmt.Errorf("cubemap: extract: %w", err)
	}

	tracker.complete()
	logDone("extract", start, nil, slog.Int("pixels", rows*size))
	return cs, nil
}
