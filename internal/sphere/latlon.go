package sphere

import "math"

// TwoPi is 2π.
const TwoPi = 2 * math.Pi

// Mod returns x modulo n with the sign of n, so Mod(-1, 4) == 3.
func Mod(x, n float64) float64 {
	return math.Mod(math.Mod(x, n)+n, n)
}

// PanoramaLatLon returns the latitude and longitude of pixel (x, y) in a
// w×h equirectangular panorama.
//
// Row 0 is the north pole side: lat = π((h-1-y)/h - 0.5). Longitude runs
// right to left, lon = 2π(1 - x/w - 0.5), reduced into [0, 2π).
func PanoramaLatLon(x, y, w, h int) (lat, lon float64) {
	lat = math.Pi * (float64(h-1-y)/float64(h) - 0.5)
	lon = Mod(TwoPi*(1-float64(x)/float64(w)-0.5), TwoPi)
	return lat, lon
}

// PanoramaLatitude returns the latitude of row y in a panorama of height h.
func PanoramaLatitude(y, h int) float64 {
	return math.Pi * (float64(h-1-y)/float64(h) - 0.5)
}

// PanoramaLongitude returns the longitude of column x in a panorama of width w.
func PanoramaLongitude(x, w int) float64 {
	return Mod(TwoPi*(1-float64(x)/float64(w)-0.5), TwoPi)
}

// DirectionFromLatLon returns the unit direction for latitude lat in
// [-π/2, π/2] and longitude lon in the sphere frame:
// (cos(lat)·sin(lon), sin(lat), cos(lat)·cos(lon)).
func DirectionFromLatLon(lat, lon float64) Vec3 {
	cosLat := math.Cos(lat)
	return Vec3{
		X: cosLat * math.Sin(lon),
		Y: math.Sin(lat),
		Z: cosLat * math.Cos(lon),
	}
}

// PolarAngles converts a polar-frame direction to longitude in [0, 2π),
// rotated by rotation radians about the vertical axis, and colatitude in
// [0, π] measured from +Z.
func PolarAngles(d Vec3, rotation float64) (lon, colat float64) {
	r := d.Length()
	lon = Mod(math.Atan2(d.Y, d.X)+rotation, TwoPi)
	colat = math.Acos(d.Z / r)
	return lon, colat
}

// PolarToPixel maps polar angles onto continuous pixel coordinates of a
// w×h panorama, with pixel centers at integer coordinates.
func PolarToPixel(lon, colat float64, w, h int) (x, y float64) {
	x = float64(w)*lon/TwoPi - 0.5
	y = float64(h)*colat/math.Pi - 0.5
	return x, y
}

// PoleNearest reports whether a sample at latitude lat lies within the pole
// band where nearest sampling replaces the wide kernels. threshold is a
// fraction of π, e.g. 0.495.
func PoleNearest(lat, threshold float64) bool {
	return math.Abs(lat) > threshold*math.Pi
}
