package export

import (
	"github.com/gemmology-dev/crystalgen/crystal"
	"github.com/gemmology-dev/crystalgen/gen"
	"github.com/hschendel/stl"
)

func init() {
	gen.RegisterExporter("stl", stlExporter{})
}

// stlExporter triangulates the mesh and hands it to the stl library,
// binary by default, ASCII when Options.Binary is off.
type stlExporter struct{}

func (stlExporter) Export(path string, g *crystal.Geometry, opt gen.Options) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := checkFinite(g.Vertices); err != nil {
		return err
	}

	solid := stl.Solid{
		Name:    gen.Normalize(opt.Name),
		IsAscii: !opt.Binary,
	}
	for i := range g.Faces {
		n := stl.Vec3(vec32(g.Normal(i)))
		for _, t := range g.FaceTriangles(i) {
			solid.Triangles = append(solid.Triangles, stl.Triangle{
				Normal: n,
				Vertices: [3]stl.Vec3{
					stl.Vec3(vec32(g.Vertices[t[0]])),
					stl.Vec3(vec32(g.Vertices[t[1]])),
					stl.Vec3(vec32(g.Vertices[t[2]])),
				},
			})
		}
	}
	return solid.WriteFile(path)
}
