package image

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownFilter is returned when a filter name is not recognized.
var ErrUnknownFilter = errors.New("image: unknown filter")

// Filter selects the resampling strategy used when reading a raster at
// fractional pixel coordinates.
type Filter uint8

const (
	// FilterNearest selects the closest pixel (no interpolation).
	FilterNearest Filter = iota

	// FilterBilinear interpolates linearly between 4 neighboring pixels.
	// Results are rounded up per channel.
	FilterBilinear

	// FilterBicubic performs separable cubic convolution over a 4x4
	// neighborhood.
	FilterBicubic

	// FilterLanczos performs separable windowed-sinc convolution over a
	// 2a×2a neighborhood. Sharpest, and the most expensive.
	FilterLanczos

	// filterCount is the number of filters (for internal use).
	filterCount
)

// Kernel defaults.
const (
	// DefaultLanczosSize is the Lanczos window parameter a.
	DefaultLanczosSize = 5

	// DefaultBicubicB is the cubic convolution parameter (Catmull-Rom).
	DefaultBicubicB = -0.5
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	case FilterBicubic:
		return "bicubic"
	case FilterLanczos:
		return "lanczos"
	default:
		return "unknown"
	}
}

// IsValid reports whether f is a known filter.
func (f Filter) IsValid() bool {
	return f < filterCount
}

// ParseFilter parses a filter name case-insensitively.
func ParseFilter(s string) (Filter, error) {
	for f := range filterCount {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// KernelParams configures the convolution filters.
type KernelParams struct {
	// LanczosSize is the Lanczos window parameter a (support is 2a samples
	// per axis). Values below 1 select DefaultLanczosSize.
	LanczosSize int

	// BicubicB is the cubic convolution parameter, used as given. Zero is a
	// valid kernel; DefaultKernelParams supplies DefaultBicubicB.
	BicubicB float64
}

// DefaultKernelParams returns the default kernel configuration.
func DefaultKernelParams() KernelParams {
	return KernelParams{LanczosSize: DefaultLanczosSize, BicubicB: DefaultBicubicB}
}

func (p KernelParams) normalized() KernelParams {
	if p.LanczosSize < 1 {
		p.LanczosSize = DefaultLanczosSize
	}
	return p
}

// Sampler reads a raster at fractional pixel coordinates with one filter.
//
// Coordinates outside [0, w-1]×[0, h-1] are clamped per axis before lookup;
// there is no wraparound. Only R, G and B are resampled.
//
// A Sampler keeps per-axis weight scratch space and must not be shared
// between goroutines.
type Sampler struct {
	filter Filter
	params KernelParams

	radius int
	xw, yw []float64
	xi, yi []int
}

// NewSampler creates a sampler for filter f. Unknown filters fall back to
// nearest.
func NewSampler(f Filter, params KernelParams) *Sampler {
	if !f.IsValid() {
		f = FilterNearest
	}
	s := &Sampler{filter: f, params: params.normalized()}

	switch f {
	case FilterBicubic:
		s.radius = 2
	case FilterLanczos:
		s.radius = s.params.LanczosSize
	}
	if s.radius > 0 {
		n := 2 * s.radius
		s.xw = make([]float64, n)
		s.yw = make([]float64, n)
		s.xi = make([]int, n)
		s.yi = make([]int, n)
	}
	return s
}

// Filter returns the sampler's filter.
func (s *Sampler) Filter() Filter {
	return s.filter
}

// Sample returns the color of img at pixel coordinates (x, y).
func (s *Sampler) Sample(img *Raster, x, y float64) (r, g, b uint8) {
	switch s.filter {
	case FilterBilinear:
		return SampleBilinear(img, x, y)
	case FilterBicubic, FilterLanczos:
		return s.convolve(img, x, y)
	default:
		return SampleNearest(img, x, y)
	}
}

// Sample samples img at pixel coordinates (x, y) with filter f and the
// default kernel parameters.
func Sample(img *Raster, x, y float64, f Filter) (r, g, b uint8) {
	switch f {
	case FilterNearest:
		return SampleNearest(img, x, y)
	case FilterBilinear:
		return SampleBilinear(img, x, y)
	default:
		return NewSampler(f, DefaultKernelParams()).Sample(img, x, y)
	}
}

// SampleNearest returns the pixel closest to (x, y).
func SampleNearest(img *Raster, x, y float64) (r, g, b uint8) {
	w, h := img.Bounds()
	ix := int(math.Round(clampCoord(x, w-1)))
	iy := int(math.Round(clampCoord(y, h-1)))

	off := (iy*w + ix) * Channels
	return img.data[off], img.data[off+1], img.data[off+2]
}

// SampleBilinear interpolates the 2x2 neighborhood of (x, y).
// Each channel is rounded up.
func SampleBilinear(img *Raster, x, y float64) (r, g, b uint8) {
	w, h := img.Bounds()
	x = clampCoord(x, w-1)
	y = clampCoord(y, h-1)

	xl := int(math.Floor(x))
	xr := min(int(math.Ceil(x)), w-1)
	yl := int(math.Floor(y))
	yr := min(int(math.Ceil(y)), h-1)
	xf := x - float64(xl)
	yf := y - float64(yl)

	p00 := (yl*w + xl) * Channels
	p10 := (yl*w + xr) * Channels
	p01 := (yr*w + xl) * Channels
	p11 := (yr*w + xr) * Channels

	var out [3]uint8
	d := img.data
	for c := range 3 {
		p0 := float64(d[p00+c])*(1-xf) + float64(d[p10+c])*xf
		p1 := float64(d[p01+c])*(1-xf) + float64(d[p11+c])*xf
		out[c] = toByte(math.Ceil(p0*(1-yf) + p1*yf))
	}
	return out[0], out[1], out[2]
}

// SampleBicubic samples (x, y) with the default cubic kernel.
func SampleBicubic(img *Raster, x, y float64) (r, g, b uint8) {
	return NewSampler(FilterBicubic, DefaultKernelParams()).Sample(img, x, y)
}

// SampleLanczos samples (x, y) with the default Lanczos kernel.
func SampleLanczos(img *Raster, x, y float64) (r, g, b uint8) {
	return NewSampler(FilterLanczos, DefaultKernelParams()).Sample(img, x, y)
}

// convolve applies the sampler's separable kernel around (x, y).
// Weights for both axes are computed once per call.
func (s *Sampler) convolve(img *Raster, x, y float64) (r, g, b uint8) {
	w, h := img.Bounds()
	x = clampCoord(x, w-1)
	y = clampCoord(y, h-1)

	n := 2 * s.radius
	xStart := int(math.Floor(x)) - s.radius + 1
	yStart := int(math.Floor(y)) - s.radius + 1

	var xSum, ySum float64
	for i := range n {
		s.xw[i] = s.weight(x - float64(xStart+i))
		s.yw[i] = s.weight(y - float64(yStart+i))
		s.xi[i] = clamp(xStart+i, 0, w-1) * Channels
		s.yi[i] = clamp(yStart+i, 0, h-1) * w * Channels
		xSum += s.xw[i]
		ySum += s.yw[i]
	}

	// Lanczos weights do not sum to exactly one.
	norm := 1.0
	if s.filter == FilterLanczos && xSum*ySum != 0 {
		norm = 1 / (xSum * ySum)
	}

	var out [3]uint8
	d := img.data
	for c := range 3 {
		var q float64
		for i := range n {
			row := s.yi[i] + c
			var p float64
			for j := range n {
				p += float64(d[row+s.xi[j]]) * s.xw[j]
			}
			q += p * s.yw[i]
		}
		out[c] = toByte(math.Round(q * norm))
	}
	return out[0], out[1], out[2]
}

func (s *Sampler) weight(d float64) float64 {
	if s.filter == FilterBicubic {
		return CubicKernel(d, s.params.BicubicB)
	}
	return LanczosKernel(d, s.params.LanczosSize)
}

// CubicKernel is the cubic convolution kernel with parameter b, for |x| <= 2.
func CubicKernel(x, b float64) float64 {
	x = math.Abs(x)
	x2 := x * x
	x3 := x2 * x
	if x <= 1 {
		return (b+2)*x3 - (b+3)*x2 + 1
	}
	return b*x3 - 5*b*x2 + 8*b*x - 4*b
}

// LanczosKernel is a·sin(πx)·sin(πx/a)/(πx)², with LanczosKernel(0) = 1.
func LanczosKernel(x float64, a int) float64 {
	if x == 0 {
		return 1
	}
	fa := float64(a)
	xp := math.Pi * x
	return fa * math.Sin(xp) * math.Sin(xp/fa) / (xp * xp)
}

// clampCoord clamps a continuous coordinate to [0, maxIdx]. NaN maps to 0.
func clampCoord(v float64, maxIdx int) float64 {
	if !(v > 0) {
		return 0
	}
	if m := float64(maxIdx); v > m {
		return m
	}
	return v
}

// clamp clamps an integer value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// toByte clamps a channel value to [0, 255]. NaN maps to 0.
func toByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
