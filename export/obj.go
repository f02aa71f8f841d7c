package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gemmology-dev/crystalgen/crystal"
	"github.com/gemmology-dev/crystalgen/gen"
)

func init() {
	gen.RegisterExporter("obj", objExporter{})
}

// objExporter writes Wavefront OBJ text. OBJ supports polygonal faces
// directly, so faces are emitted without triangulation, with one vn per
// face when normals are present.
type objExporter struct{}

func (objExporter) Export(path string, g *crystal.Geometry, opt gen.Options) error {
	if err := g.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	fmt.Fprintf(bw, "o %s\n", gen.Normalize(opt.Name))
	for _, v := range g.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	hasNormals := g.FaceNormals != nil
	if hasNormals {
		for _, n := range g.FaceNormals {
			fmt.Fprintf(bw, "vn %.6f %.6f %.6f\n", n.X, n.Y, n.Z)
		}
	}
	for i, face := range g.Faces {
		fmt.Fprint(bw, "f")
		for _, vi := range face {
			if hasNormals {
				// OBJ indices are 1-based.
				fmt.Fprintf(bw, " %d//%d", vi+1, i+1)
			} else {
				fmt.Fprintf(bw, " %d", vi+1)
			}
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
