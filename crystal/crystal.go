// Package crystal holds the in-memory mesh representation shared between
// the geometry provider and the format exporters.
package crystal

import (
	"errors"
	"fmt"

	"github.com/gemmology-dev/crystalgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Geometry is a polyhedral mesh: a vertex list, polygonal faces indexing
// into it, and optionally one unit normal per face. Faces wind
// counterclockwise as seen from outside the solid.
type Geometry struct {
	Vertices    []r3.Vec
	Faces       [][]int
	FaceNormals []r3.Vec // len == len(Faces) when present
}

var errNoFaces = errors.New("geometry has no faces")

// Validate checks index bounds and face arity.
func (g *Geometry) Validate() error {
	if len(g.Faces) == 0 {
		return errNoFaces
	}
	if g.FaceNormals != nil && len(g.FaceNormals) != len(g.Faces) {
		return fmt.Errorf("got %d face normals for %d faces", len(g.FaceNormals), len(g.Faces))
	}
	for i, face := range g.Faces {
		if len(face) < 3 {
			return fmt.Errorf("face %d has %d vertices", i, len(face))
		}
		for _, vi := range face {
			if vi < 0 || vi >= len(g.Vertices) {
				return fmt.Errorf("face %d references vertex %d of %d", i, vi, len(g.Vertices))
			}
		}
	}
	return nil
}

// Normal returns the unit normal of face i, preferring a stored normal
// over one calculated from the first two face edges.
func (g *Geometry) Normal(i int) r3.Vec {
	if g.FaceNormals != nil {
		return g.FaceNormals[i]
	}
	return g.calcNormal(i)
}

func (g *Geometry) calcNormal(i int) r3.Vec {
	face := g.Faces[i]
	e1 := r3.Sub(g.Vertices[face[1]], g.Vertices[face[0]])
	e2 := r3.Sub(g.Vertices[face[2]], g.Vertices[face[0]])
	return r3.Unit(r3.Cross(e1, e2))
}

// ComputeNormals fills FaceNormals from the vertex winding,
// replacing any stored normals.
func (g *Geometry) ComputeNormals() {
	g.FaceNormals = make([]r3.Vec, len(g.Faces))
	for i := range g.Faces {
		g.FaceNormals[i] = g.calcNormal(i)
	}
}

// Bounds returns the axis aligned bounding box of the mesh.
func (g *Geometry) Bounds() d3.Box {
	if len(g.Vertices) == 0 {
		return d3.Box{}
	}
	set := d3.Set(g.Vertices)
	return d3.Box{Min: set.Min(), Max: set.Max()}
}

// FaceTriangles fan-triangulates face i and returns vertex index triples.
func (g *Geometry) FaceTriangles(i int) [][3]int {
	face := g.Faces[i]
	tris := make([][3]int, 0, len(face)-2)
	for k := 1; k < len(face)-1; k++ {
		tris = append(tris, [3]int{face[0], face[k], face[k+1]})
	}
	return tris
}

// Triangles fan-triangulates every face of the mesh.
func (g *Geometry) Triangles() []r3.Triangle {
	var model []r3.Triangle
	for i := range g.Faces {
		for _, t := range g.FaceTriangles(i) {
			model = append(model, r3.Triangle{
				g.Vertices[t[0]],
				g.Vertices[t[1]],
				g.Vertices[t[2]],
			})
		}
	}
	return model
}
