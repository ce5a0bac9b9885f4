package cubemap

import (
	"math"

	intImage "github.com/gogpu/cubemap/internal/image"
)

// SmoothPole blends panorama rows near poleY with their horizontal
// neighbors to hide the seams where cube faces converge.
//
// Rows with |y-poleY| < radius are processed; the blend factor falls off
// linearly from 0.5 at the pole row to 0 at the band edge. Pixels are
// updated in place from left to right and each color channel becomes
// round(c·(1-f) + avg(left, right)·f), wrapping around horizontally.
// Alpha and rows outside the band are left untouched.
//
// The operation is lossy. Invalid rasters and non-positive radii are
// ignored.
func SmoothPole(pano *Raster, poleY int, radius float64) {
	if pano.Validate() != nil || !(radius > 0) {
		return
	}

	w, h := pano.Bounds()
	reach := int(math.Ceil(radius))
	y0 := max(0, poleY-reach)
	y1 := min(h-1, poleY+reach)

	for y := y0; y <= y1; y++ {
		d := math.Abs(float64(y - poleY))
		if d >= radius {
			continue
		}
		f := (1 - d/radius) * 0.5
		smoothRow(pano.RowBytes(y), w, f)
	}
}

func smoothRow(row []byte, w int, f float64) {
	const ch = intImage.Channels
	for x := range w {
		o := x * ch
		left := ((x - 1 + w) % w) * ch
		right := ((x + 1) % w) * ch
		for c := range 3 {
			avg := (float64(row[left+c]) + float64(row[right+c])) / 2
			row[o+c] = uint8(math.Round(float64(row[o+c])*(1-f) + avg*f))
		}
	}
}
