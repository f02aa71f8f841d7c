package habit

import (
	"math"

	"github.com/gemmology-dev/crystalgen/crystal"
	"gonum.org/v1/gonum/spatial/r3"
)

// Reference polyhedra for the seven crystal systems. Constructors return
// solids centered on the origin; orient fixes every face to wind
// counterclockwise seen from outside.

// orient flips faces whose winding points into the solid. Valid for the
// convex, origin-centered solids built here.
func orient(g *crystal.Geometry) {
	for i, face := range g.Faces {
		var c r3.Vec
		for _, vi := range face {
			c = r3.Add(c, g.Vertices[vi])
		}
		c = r3.Scale(1/float64(len(face)), c)
		if r3.Dot(g.Normal(i), c) < 0 {
			for a, b := 0, len(face)-1; a < b; a, b = a+1, b-1 {
				face[a], face[b] = face[b], face[a]
			}
		}
	}
}

// octahedron is a bipyramid with semiaxes a, b, c. With distinct semiaxes
// it serves as the orthorhombic bipyramidal habit.
func octahedron(a, b, c float64) *crystal.Geometry {
	g := &crystal.Geometry{
		Vertices: []r3.Vec{
			{X: a}, {X: -a},
			{Y: b}, {Y: -b},
			{Z: c}, {Z: -c},
		},
		Faces: [][]int{
			{0, 2, 4}, {1, 2, 4}, {1, 3, 4}, {0, 3, 4},
			{0, 2, 5}, {1, 2, 5}, {1, 3, 5}, {0, 3, 5},
		},
	}
	orient(g)
	return g
}

// parallelepiped spans edge vectors u, v, w and is recentered on the
// origin. Covers the cube and the sheared monoclinic, triclinic and
// rhombohedral cells.
func parallelepiped(u, v, w r3.Vec) *crystal.Geometry {
	var verts []r3.Vec
	for s2 := 0; s2 < 2; s2++ {
		for s1 := 0; s1 < 2; s1++ {
			for s0 := 0; s0 < 2; s0++ {
				p := r3.Add(r3.Add(r3.Scale(float64(s0), u), r3.Scale(float64(s1), v)), r3.Scale(float64(s2), w))
				verts = append(verts, p)
			}
		}
	}
	center := r3.Scale(0.5, r3.Add(r3.Add(u, v), w))
	for i := range verts {
		verts[i] = r3.Sub(verts[i], center)
	}
	g := &crystal.Geometry{
		Vertices: verts,
		Faces: [][]int{
			{0, 1, 3, 2}, {4, 5, 7, 6},
			{0, 1, 5, 4}, {2, 3, 7, 6},
			{0, 2, 6, 4}, {1, 3, 7, 5},
		},
	}
	orient(g)
	return g
}

func cube(a float64) *crystal.Geometry {
	d := 2 * a
	return parallelepiped(r3.Vec{X: d}, r3.Vec{Y: d}, r3.Vec{Z: d})
}

// rhombicDodecahedron is the cubic {110} form.
func rhombicDodecahedron() *crystal.Geometry {
	var verts []r3.Vec
	// cube corners first, axis vertices after.
	cornerIdx := func(sx, sy, sz int) int {
		return (sx+1)/2 + (sy+1) + 2*(sz+1)
	}
	for sz := -1; sz <= 1; sz += 2 {
		for sy := -1; sy <= 1; sy += 2 {
			for sx := -1; sx <= 1; sx += 2 {
				verts = append(verts, r3.Vec{X: float64(sx), Y: float64(sy), Z: float64(sz)})
			}
		}
	}
	axis := map[[3]int]int{}
	for i, d := range [][3]int{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}} {
		axis[d] = 8 + i
		verts = append(verts, r3.Vec{X: 2 * float64(d[0]), Y: 2 * float64(d[1]), Z: 2 * float64(d[2])})
	}
	var faces [][]int
	for _, s := range []int{-1, 1} {
		for _, t := range []int{-1, 1} {
			// rhombi normal to (s,t,0), (s,0,t) and (0,s,t). Long diagonal
			// joins the two axis vertices, short diagonal the two corners.
			faces = append(faces,
				[]int{axis[[3]int{s, 0, 0}], cornerIdx(s, t, 1), axis[[3]int{0, t, 0}], cornerIdx(s, t, -1)},
				[]int{axis[[3]int{s, 0, 0}], cornerIdx(s, 1, t), axis[[3]int{0, 0, t}], cornerIdx(s, -1, t)},
				[]int{axis[[3]int{0, s, 0}], cornerIdx(1, s, t), axis[[3]int{0, 0, t}], cornerIdx(-1, s, t)},
			)
		}
	}
	g := &crystal.Geometry{Vertices: verts, Faces: faces}
	orient(g)
	return g
}

// prismPyramid is an n-sided prism of unit ring radius with pyramidal
// terminations, elongated by the axial ratio c. n=4 gives the tetragonal
// habit, n=6 the hexagonal one.
func prismPyramid(n int, c float64) *crystal.Geometry {
	h := 0.8 * c
	apex := 1.3 * c
	verts := make([]r3.Vec, 0, 2*n+2)
	for _, z := range []float64{h, -h} {
		for k := 0; k < n; k++ {
			theta := 2*math.Pi*float64(k)/float64(n) + math.Pi/float64(n)
			verts = append(verts, r3.Vec{X: math.Cos(theta), Y: math.Sin(theta), Z: z})
		}
	}
	top := len(verts)
	verts = append(verts, r3.Vec{Z: apex}, r3.Vec{Z: -apex})
	bot := top + 1

	var faces [][]int
	for k := 0; k < n; k++ {
		k1 := (k + 1) % n
		faces = append(faces,
			[]int{k, k1, n + k1, n + k}, // prism side
			[]int{k, k1, top},           // upper termination
			[]int{n + k, n + k1, bot},   // lower termination
		)
	}
	g := &crystal.Geometry{Vertices: verts, Faces: faces}
	orient(g)
	return g
}

// rhombohedron is the trigonal cell: a cube stretched along a body
// diagonal, expressed by three edge vectors at 120 degrees around z.
func rhombohedron(c float64) *crystal.Geometry {
	h := 0.9 * c
	var e [3]r3.Vec
	for k := range e {
		theta := 2 * math.Pi * float64(k) / 3
		e[k] = r3.Vec{X: math.Cos(theta), Y: math.Sin(theta), Z: h}
	}
	return parallelepiped(e[0], e[1], e[2])
}

func monoclinicCell(c float64) *crystal.Geometry {
	return parallelepiped(
		r3.Vec{X: 1.5},
		r3.Vec{Y: 1},
		r3.Vec{X: 0.45, Z: 1.3 * c},
	)
}

func triclinicCell(c float64) *crystal.Geometry {
	return parallelepiped(
		r3.Vec{X: 1.5},
		r3.Vec{X: 0.25, Y: 1},
		r3.Vec{X: 0.4, Y: 0.3, Z: 1.2 * c},
	)
}
