package cubemap

// CubeSet holds one raster per cube face. Faces are read independently and
// need not share a size.
type CubeSet map[Face]*Raster

// Validate checks that all six faces are present and well formed.
// A missing face yields a *MissingFaceError.
func (cs CubeSet) Validate() error {
	for _, f := range Faces {
		if err := checkFace(f, cs[f]); err != nil {
			return err
		}
	}
	return nil
}

// Release returns the faces to the converter's raster pool for reuse by
// later extractions. The set must not be used afterwards.
func (cs CubeSet) Release(c *Converter) {
	for f, r := range cs {
		c.Release(r)
		delete(cs, f)
	}
}
