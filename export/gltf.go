package export

import (
	"github.com/gemmology-dev/crystalgen/crystal"
	"github.com/gemmology-dev/crystalgen/gen"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func init() {
	gen.RegisterExporter("gltf", gltfExporter{})
}

// gltfExporter writes a binary glTF (.glb) with one mesh. Vertices are
// duplicated per face so each face keeps its flat normal.
type gltfExporter struct{}

func (gltfExporter) Export(path string, g *crystal.Geometry, opt gen.Options) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := checkFinite(g.Vertices); err != nil {
		return err
	}

	var (
		positions [][3]float32
		normals   [][3]float32
		indices   []uint32
	)
	for i, face := range g.Faces {
		n := vec32(g.Normal(i))
		base := uint32(len(positions))
		for _, vi := range face {
			positions = append(positions, vec32(g.Vertices[vi]))
			normals = append(normals, n)
		}
		for k := uint32(1); k < uint32(len(face))-1; k++ {
			indices = append(indices, base, base+k, base+k+1)
		}
	}

	doc := gltf.NewDocument()
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: opt.Name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: map[string]uint32{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: opt.Name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	return gltf.SaveBinary(doc, path)
}
