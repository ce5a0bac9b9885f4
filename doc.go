// Package cubemap converts between six cube-face images and one
// equirectangular panorama.
//
// # Overview
//
// A cube map stores a full sphere of view directions as six square faces
// (px, nx, py, ny, pz, nz). An equirectangular panorama stores the same
// sphere as a 2:1 image indexed by longitude and latitude. cubemap converts
// in both directions and can repaint the region of an existing panorama
// covered by a single edited face.
//
// # Quick Start
//
//	import "github.com/gogpu/cubemap"
//
//	conv := cubemap.NewConverter(cubemap.WithFilter(cubemap.FilterLanczos))
//	defer conv.Close()
//
//	pano, _ := cubemap.DecodeFile("pano.jpg")
//	faces, _ := conv.ExtractCube(ctx, pano, cubemap.ExtractOptions{MaxWidth: 2048})
//
//	// ...edit faces[cubemap.FacePZ]...
//
//	out, _ := conv.PatchFace(ctx, pano, cubemap.FacePZ, faces[cubemap.FacePZ])
//	_ = out.EncodeFile("pano-edited.jpg", 90)
//
// # Conventions
//
// Rasters are 4-channel non-premultiplied RGBA with the origin at the
// top-left. Pixels written by a conversion always have alpha 255.
//
// Panorama row 0 faces the north pole. Longitude increases from right to
// left. The forward and patch paths work in a y-up sphere frame; face
// extraction works in a z-up polar frame with its own latitude convention.
// The two agree on which face covers which panorama region.
//
// # Filters
//
// Nearest, bilinear, bicubic (cubic convolution, b = -0.5) and Lanczos
// (a = 5) are available. Panorama rows within 0.5% of π from a pole are
// always sampled with nearest to avoid smearing the converging face edges.
//
// # Concurrency
//
// A Converter owns a worker pool and is safe for concurrent use. Rows are
// processed in parallel bands; cancellation through the context is checked
// at every row.
package cubemap
