package image

import (
	xdraw "golang.org/x/image/draw"
)

// FitInside returns the largest size with the aspect ratio of w×h that fits
// in maxW×maxH. Sizes that already fit are returned unchanged. A
// non-positive bound leaves that axis unconstrained.
func FitInside(w, h, maxW, maxH int) (int, int) {
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		scale = min(scale, float64(maxH)/float64(h))
	}
	if scale == 1 {
		return w, h
	}
	return max(1, int(float64(w)*scale+0.5)), max(1, int(float64(h)*scale+0.5))
}

// Resize scales r down to fit inside maxW×maxH, preserving the aspect
// ratio, using Catmull-Rom resampling. A raster that already fits is
// returned as a copy.
func Resize(r *Raster, maxW, maxH int) (*Raster, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	w, h := FitInside(r.width, r.height, maxW, maxH)
	if w == r.width && h == r.height {
		return r.Clone(), nil
	}

	dst, err := NewRaster(w, h)
	if err != nil {
		return nil, err
	}
	dstImg := dst.ToStdImage()
	xdraw.CatmullRom.Scale(dstImg, dstImg.Bounds(), r.ToStdImage(), r.Rect(), xdraw.Src, nil)
	return dst, nil
}
