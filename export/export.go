// Package export provides the per-format asset exporters. Each file
// format registers itself with the generator on import:
//
//	import _ "github.com/gemmology-dev/crystalgen/export"
//
// Encoding is delegated to format libraries (svgo, hschendel/stl,
// qmuntal/gltf); this package converts geometry buffers to their types
// and applies the presentation parameters.
package export

import (
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

func finite(v r3.Vec) bool {
	f := [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	return !(math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0))
}

// checkFinite rejects meshes with vertices that do not survive the
// float32 narrowing all mesh formats here use.
func checkFinite(verts []r3.Vec) error {
	for i, v := range verts {
		if !finite(v) {
			return fmt.Errorf("vertex %d is not finite: %v", i, v)
		}
	}
	return nil
}

func vec32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
