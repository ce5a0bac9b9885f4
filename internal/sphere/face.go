package sphere

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by face lookups.
var (
	// ErrInvalidDirection is returned when a direction has no dominant axis
	// (the zero vector).
	ErrInvalidDirection = errors.New("sphere: invalid direction")

	// ErrUnknownFace is returned when a face label is not one of the six faces.
	ErrUnknownFace = errors.New("sphere: unknown face")
)

// Face identifies one of the six cube faces by the signed axis of its
// outward normal.
type Face uint8

const (
	// FacePX is the +X face.
	FacePX Face = iota

	// FaceNX is the -X face.
	FaceNX

	// FacePY is the +Y face (up).
	FacePY

	// FaceNY is the -Y face (down).
	FaceNY

	// FacePZ is the +Z face (forward).
	FacePZ

	// FaceNZ is the -Z face.
	FaceNZ

	// faceCount is the number of faces (for internal use).
	faceCount
)

// Faces lists all faces in canonical order.
var Faces = [faceCount]Face{FacePX, FaceNX, FacePY, FaceNY, FacePZ, FaceNZ}

var faceLabels = [faceCount]string{"px", "nx", "py", "ny", "pz", "nz"}

var faceAxisLabels = [faceCount]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// String returns the short label of the face ("px", "nx", ...).
func (f Face) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return faceLabels[f]
}

// AxisLabel returns the signed-axis spelling of the face ("+X", "-X", ...).
func (f Face) AxisLabel() string {
	if !f.IsValid() {
		return "unknown"
	}
	return faceAxisLabels[f]
}

// IsValid reports whether f is one of the six faces.
func (f Face) IsValid() bool {
	return f < faceCount
}

// ParseFace parses a face label. Both "px"/"nx"/... and "+X"/"-X"/...
// spellings are accepted, case-insensitively.
func ParseFace(s string) (Face, error) {
	for i := range faceCount {
		if strings.EqualFold(s, faceLabels[i]) || strings.EqualFold(s, faceAxisLabels[i]) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFace, s)
}

// FaceDirection maps face-local coordinates u, v in [-1, 1] to a direction
// in the sphere frame (y up, z forward). It is the exact inverse of the
// orientation applied by Resolve, so Resolve(FaceDirection(f, u, v)) lands
// on f at ((u+1)/2, (v+1)/2) for every u, v strictly inside the face.
func FaceDirection(face Face, u, v float64) Vec3 {
	switch face {
	case FacePX:
		return Vec3{X: -1, Y: -v, Z: -u}
	case FaceNX:
		return Vec3{X: 1, Y: -v, Z: u}
	case FacePY:
		return Vec3{X: -u, Y: 1, Z: v}
	case FaceNY:
		return Vec3{X: -u, Y: -1, Z: -v}
	case FacePZ:
		return Vec3{X: -u, Y: -v, Z: 1}
	case FaceNZ:
		return Vec3{X: u, Y: -v, Z: -1}
	default:
		return Vec3{}
	}
}

// PolarDirection maps face-local coordinates u, v in [-1, 1] to a direction
// in the polar frame used when extracting faces from a panorama (z up,
// longitude measured with atan2(y, x)). The result equals
// (-s.Z, s.X, s.Y) where s = FaceDirection(face, u, v).
func PolarDirection(face Face, u, v float64) Vec3 {
	switch face {
	case FacePZ:
		return Vec3{X: -1, Y: -u, Z: -v}
	case FaceNZ:
		return Vec3{X: 1, Y: u, Z: -v}
	case FacePX:
		return Vec3{X: u, Y: -1, Z: -v}
	case FaceNX:
		return Vec3{X: -u, Y: 1, Z: -v}
	case FacePY:
		return Vec3{X: -v, Y: -u, Z: 1}
	case FaceNY:
		return Vec3{X: v, Y: -u, Z: -1}
	default:
		return Vec3{}
	}
}

// faceLocal applies the inverse orientation of face to a cube-projected
// direction. Only X and Y of the result are face coordinates.
func faceLocal(face Face, d Vec3) Vec3 {
	switch face {
	case FacePX:
		return Vec3{X: -d.Z, Y: -d.Y, Z: -d.X}
	case FaceNX:
		return Vec3{X: d.Z, Y: -d.Y, Z: d.X}
	case FacePY:
		return Vec3{X: -d.X, Y: d.Z, Z: -d.Y}
	case FaceNY:
		return Vec3{X: -d.X, Y: -d.Z, Z: d.Y}
	case FacePZ:
		return Vec3{X: -d.X, Y: -d.Y, Z: -d.Z}
	default:
		return Vec3{X: d.X, Y: -d.Y, Z: d.Z}
	}
}

// Hit is the result of resolving a direction onto the cube.
type Hit struct {
	Face Face

	// U, V are face coordinates in [0, 1], origin top-left of the face image.
	U, V float64
}

// DominantFace returns the face a direction exits the cube through.
//
// X wins only when strictly larger than both other components, then Y when
// strictly larger than Z, otherwise Z. The X labels are swapped relative to
// the axis sign (x > 0 selects nx); face image sets depend on this.
func DominantFace(d Vec3) (Face, error) {
	a := d.Abs()
	if max(a.X, a.Y, a.Z) == 0 {
		return 0, ErrInvalidDirection
	}
	switch {
	case a.X > a.Y && a.X > a.Z:
		if d.X > 0 {
			return FaceNX, nil
		}
		return FacePX, nil
	case a.Y > a.Z:
		if d.Y > 0 {
			return FacePY, nil
		}
		return FaceNY, nil
	default:
		if d.Z > 0 {
			return FacePZ, nil
		}
		return FaceNZ, nil
	}
}

// Resolve finds the face hit by direction d and the face coordinates of the
// hit. The direction is projected onto the cube by dividing by its largest
// absolute component before the face's inverse orientation is applied.
func Resolve(d Vec3) (Hit, error) {
	face, err := DominantFace(d)
	if err != nil {
		return Hit{}, err
	}
	local := faceLocal(face, d.Scale(1/d.MaxAbs()))
	return Hit{
		Face: face,
		U:    (local.X + 1) * 0.5,
		V:    (local.Y + 1) * 0.5,
	}, nil
}
