package crystal_test

import (
	"testing"

	"github.com/gemmology-dev/crystalgen/crystal"
	"github.com/gemmology-dev/crystalgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// unitCube is 8 vertices and 6 quad faces winding outward.
func unitCube() *crystal.Geometry {
	var verts []r3.Vec
	for _, z := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, x := range []float64{-1, 1} {
				verts = append(verts, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return &crystal.Geometry{
		Vertices: verts,
		Faces: [][]int{
			{0, 2, 3, 1}, {4, 5, 7, 6},
			{0, 1, 5, 4}, {2, 6, 7, 3},
			{0, 4, 6, 2}, {1, 3, 7, 5},
		},
	}
}

func TestTriangulation(t *testing.T) {
	g := unitCube()
	if got := len(g.FaceTriangles(0)); got != 2 {
		t.Errorf("FaceTriangles on a quad returned %d triangles, want 2", got)
	}
	if got := len(g.Triangles()); got != 12 {
		t.Errorf("Triangles() returned %d, want 12", got)
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		mut  func(*crystal.Geometry)
	}{
		{"no faces", func(g *crystal.Geometry) { g.Faces = nil }},
		{"short face", func(g *crystal.Geometry) { g.Faces[0] = []int{0, 1} }},
		{"bad index", func(g *crystal.Geometry) { g.Faces[0][0] = 99 }},
		{"negative index", func(g *crystal.Geometry) { g.Faces[0][0] = -1 }},
		{"normal count", func(g *crystal.Geometry) { g.FaceNormals = []r3.Vec{{Z: 1}} }},
	} {
		g := unitCube()
		tc.mut(g)
		if err := g.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
	if err := unitCube().Validate(); err != nil {
		t.Errorf("valid cube rejected: %v", err)
	}
}

func TestNormals(t *testing.T) {
	g := unitCube()
	// Face 1 is the +z cap.
	if n := g.Normal(1); !d3.EqualWithin(n, r3.Vec{Z: 1}, 1e-12) {
		t.Errorf("computed normal = %v, want +z", n)
	}
	g.ComputeNormals()
	if len(g.FaceNormals) != len(g.Faces) {
		t.Fatalf("ComputeNormals filled %d normals for %d faces", len(g.FaceNormals), len(g.Faces))
	}
	for i, n := range g.FaceNormals {
		if norm := r3.Norm(n); norm < 1-1e-12 || norm > 1+1e-12 {
			t.Errorf("face %d normal not unit length: %v", i, norm)
		}
	}
	// Stored normals take precedence over winding.
	g.FaceNormals[1] = r3.Vec{X: 1}
	if n := g.Normal(1); !d3.EqualWithin(n, r3.Vec{X: 1}, 0) {
		t.Errorf("stored normal ignored, got %v", n)
	}
}

func TestBounds(t *testing.T) {
	g := unitCube()
	want := d3.Box{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	if got := g.Bounds(); !got.Equals(want, 1e-12) {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	empty := &crystal.Geometry{}
	if got := empty.Bounds(); !got.Equals(d3.Box{}, 0) {
		t.Errorf("empty Bounds() = %+v, want zero box", got)
	}
}
