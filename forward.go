package cubemap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	intImage "github.com/gogpu/cubemap/internal/image"
	"github.com/gogpu/cubemap/internal/sphere"
)

// ToPanorama renders the six faces of cs into a width×height
// equirectangular panorama.
//
// Every output pixel is mapped to a view direction, resolved to a face and
// sampled with the converter's filter, or with nearest inside the pole
// band. Pole smoothing, when enabled, runs over the top and bottom rows
// afterwards. The inputs are not modified.
//
// All six faces must be present and valid before any pixel is written.
// If ctx is cancelled the partial result is discarded and ctx.Err() is
// returned.
func (c *Converter) ToPanorama(ctx context.Context, cs CubeSet, width, height int) (*Raster, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}

	out, err := c.newRaster(width, height)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	Logger().Debug("cubemap: to panorama",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("filter", c.opts.filter.String()),
		slog.Int("workers", c.Workers()),
	)

	// Faces indexed by value keep map lookups out of the pixel loop.
	var faces [len(sphere.Faces)]*Raster
	for _, f := range Faces {
		faces[f] = cs[f]
	}

	tracker := newProgressTracker(c.opts.progress, height, c.opts.progressRows)
	samplers := newSamplerPool(c.opts.filter, c.opts.kernel)

	err = c.forRows(ctx, height, func(y int) {
		s := samplers.get()
		defer samplers.put(s)

		lat := sphere.PanoramaLatitude(y, height)
		nearest := sphere.PoleNearest(lat, c.opts.poleNearestLatitude)
		row := out.RowBytes(y)

		for x := range width {
			hit, err := sphere.Resolve(sphere.DirectionFromLatLon(lat, sphere.PanoramaLongitude(x, width)))
			if err != nil {
				continue
			}
			src := faces[hit.Face]
			sx, sy := faceCoords(hit, src)

			var r, g, b uint8
			if nearest {
				r, g, b = intImage.SampleNearest(src, sx, sy)
			} else {
				r, g, b = s.Sample(src, sx, sy)
			}

			o := x * intImage.Channels
			row[o], row[o+1], row[o+2], row[o+3] = r, g, b, 255
		}

		tracker.rowDone()
	})
	if err != nil {
		c.Release(out)
		logDone("to panorama", start, err)
		return nil, fmt.Errorf("cubemap: to panorama: %w", err)
	}

	if c.opts.poleSmoothing {
		radius := c.opts.poleRadius * float64(height)
		SmoothPole(out, 0, radius)
		SmoothPole(out, height-1, radius)
	}

	tracker.complete()
	logDone("to panorama", start, nil, slog.Int("pixels", width*height))
	return out, nil
}

// faceCoords maps a hit's UV onto pixel coordinates of the face raster.
func faceCoords(hit sphere.Hit, face *Raster) (x, y float64) {
	return hit.U * float64(face.Width()-1), hit.V * float64(face.Height()-1)
}
