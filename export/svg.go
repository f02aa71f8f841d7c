package export

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/gemmology-dev/crystalgen/crystal"
	"github.com/gemmology-dev/crystalgen/gen"
	"gonum.org/v1/gonum/spatial/r3"
)

func init() {
	gen.RegisterExporter("svg", svgExporter{})
}

// svgExporter draws the mesh as flat-shaded polygons under an
// orthographic camera, back to front.
type svgExporter struct{}

// camera is an orthographic view basis derived from elevation and
// azimuth angles in degrees.
type camera struct {
	right, up, view r3.Vec
}

func newCamera(elevDeg, azimDeg float64) camera {
	elev := elevDeg * math.Pi / 180
	azim := azimDeg * math.Pi / 180
	sinE, cosE := math.Sincos(elev)
	sinA, cosA := math.Sincos(azim)
	return camera{
		// view points from the scene toward the eye.
		view:  r3.Vec{X: cosE * cosA, Y: cosE * sinA, Z: sinE},
		right: r3.Vec{X: -sinA, Y: cosA},
		up:    r3.Vec{X: -sinE * cosA, Y: -sinE * sinA, Z: cosE},
	}
}

// project returns screen coordinates and the depth toward the eye.
func (c camera) project(p r3.Vec) (x, y, depth float64) {
	return r3.Dot(p, c.right), r3.Dot(p, c.up), r3.Dot(p, c.view)
}

var shadeLight = r3.Unit(r3.Vec{X: -0.5, Y: 0.6, Z: 0.8})

func (svgExporter) Export(path string, g *crystal.Geometry, opt gen.Options) error {
	if err := g.Validate(); err != nil {
		return err
	}
	cam := newCamera(opt.Elevation, opt.Azimuth)

	// Project every vertex once.
	type pt struct{ x, y, depth float64 }
	pts := make([]pt, len(g.Vertices))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, v := range g.Vertices {
		x, y, d := cam.project(v)
		pts[i] = pt{x, y, d}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	size := opt.Size
	if size <= 0 {
		size = 300
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span <= 0 {
		span = 1
	}
	scale := 0.84 * float64(size) / span
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	toScreen := func(p pt) (int, int) {
		// svg y grows downward.
		return int(math.Round(float64(size)/2 + (p.x-cx)*scale)),
			int(math.Round(float64(size)/2 - (p.y-cy)*scale))
	}

	// Painter's algorithm on mean face depth, far faces first.
	order := make([]int, len(g.Faces))
	depths := make([]float64, len(g.Faces))
	for i, face := range g.Faces {
		sum := 0.0
		for _, vi := range face {
			sum += pts[vi].depth
		}
		depths[i] = sum / float64(len(face))
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return depths[order[a]] < depths[order[b]] })

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	canvas := svg.New(bw)
	canvas.Start(size, size)
	for _, i := range order {
		face := g.Faces[i]
		xs := make([]int, len(face))
		ys := make([]int, len(face))
		for k, vi := range face {
			xs[k], ys[k] = toScreen(pts[vi])
		}
		fill, err := shadeHex(opt.FaceColor, lambert(g.Normal(i)))
		if err != nil {
			canvas.End()
			f.Close()
			return err
		}
		style := fmt.Sprintf("fill:%s;fill-opacity:%.2f;stroke:%s;stroke-width:%.1f;stroke-linejoin:round",
			fill, opt.Opacity, opt.EdgeColor, opt.EdgeWidth)
		canvas.Polygon(xs, ys, style)
	}
	canvas.End()
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// lambert is the flat shading factor for a face normal: an ambient
// floor plus double-sided diffuse.
func lambert(n r3.Vec) float64 {
	return 0.55 + 0.45*math.Abs(r3.Dot(n, shadeLight))
}

// shadeHex scales a #rrggbb color by a shading factor in [0,1].
func shadeHex(color string, shade float64) (string, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(color, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return "", fmt.Errorf("bad color %q: %w", color, err)
	}
	scale := func(c uint8) uint8 {
		v := math.Round(float64(c) * shade)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return fmt.Sprintf("#%02x%02x%02x", scale(r), scale(g), scale(b)), nil
}
