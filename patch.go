package cubemap

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	intImage "github.com/gogpu/cubemap/internal/image"
	"github.com/gogpu/cubemap/internal/sphere"
)

// PatchFace returns a copy of pano with the region covered by face
// re-rendered from src.
//
// Pixels that resolve to other faces are copied unchanged. Pixels within
// the feather band of the face edge are blended with the original so the
// patch has no visible seam. pano and src are not modified.
func (c *Converter) PatchFace(ctx context.Context, pano *Raster, face Face, src *Raster) (*Raster, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	if !face.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFace, face)
	}
	if err := checkFace(face, src); err != nil {
		return nil, err
	}
	if err := pano.Validate(); err != nil {
		return nil, fmt.Errorf("cubemap: panorama: %w", err)
	}

	width, height := pano.Bounds()
	fw, fh := src.Bounds()

	out, err := c.newRaster(width, height)
	if err != nil {
		return nil, err
	}
	copy(out.Data(), pano.Data())

	start := time.Now()
	Logger().Debug("cubemap: patch",
		slog.String("face", face.String()),
		slog.Int("face_width", fw),
		slog.Int("face_height", fh),
		slog.Float64("feather", c.opts.featherWidth),
	)

	tracker := newProgressTracker(c.opts.progress, height, c.opts.progressRows)
	samplers := newSamplerPool(c.opts.filter, c.opts.kernel)
	var patched atomic.Int64

	err = c.forRows(ctx, height, func(y int) {
		s := samplers.get()
		defer samplers.put(s)

		lat := sphere.PanoramaLatitude(y, height)
		nearest := sphere.PoleNearest(lat, c.opts.poleNearestLatitude)
		row := out.RowBytes(y)
		var n int64

		for x := range width {
			hit, err := sphere.Resolve(sphere.DirectionFromLatLon(lat, sphere.PanoramaLongitude(x, width)))
			if err != nil || hit.Face != face {
				continue
			}

			alpha := featherAlpha(hit.U, hit.V, fw, fh, c.opts.featherWidth)
			if alpha <= 0 {
				continue
			}

			sx, sy := faceCoords(hit, src)
			var r, g, b uint8
			if nearest {
				r, g, b = intImage.SampleNearest(src, sx, sy)
			} else {
				r, g, b = s.Sample(src, sx, sy)
			}

			o := x * intImage.Channels
			if alpha < 0.999 {
				r = blend(row[o], r, alpha)
				g = blend(row[o+1], g, alpha)
				b = blend(row[o+2], b, alpha)
			}
			row[o], row[o+1], row[o+2], row[o+3] = r, g, b, 255
			n++
		}

		patched.Add(n)
		tracker.rowDone()
	})
	if err != nil {
		c.Release(out)
		logDone("patch", start, err)
		return nil, fmt.Errorf("cubemap: patch: %w", err)
	}

	tracker.complete()
	logDone("patch", start, nil, slog.String("face", face.String()), slog.Int64("patched", patched.Load()))
	return out, nil
}

// featherAlpha returns the patch opacity at face UV (u, v): 0 on the face
// edge rising to 1 at featherWidth pixels inside. A non-positive width
// disables feathering.
func featherAlpha(u, v float64, fw, fh int, featherWidth float64) float64 {
	if featherWidth <= 0 {
		return 1
	}
	edgeU := min(u, 1-u)
	edgeV := min(v, 1-v)
	edgePx := min(edgeU*float64(fw), edgeV*float64(fh))
	return max(0, min(1, edgePx/featherWidth))
}

func blend(dst, src uint8, alpha float64) uint8 {
	return uint8(math.Round(float64(dst)*(1-alpha) + float64(src)*alpha))
}
