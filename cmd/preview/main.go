// Command preview renders previously generated STL assets to shaded PNG
// images, one per model, for quick visual inspection of a batch run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
)

const (
	fovy = 30 // vertical field of view in degrees
	near = 1
	far  = 10
)

func main() {
	models := flag.String("models", filepath.Join("public", "models", "stl"), "Directory with STL files")
	out := flag.String("out", "fig", "Output directory for PNG previews")
	size := flag.Int("size", 512, "Output image size in pixels")
	flag.Parse()

	entries, err := os.ReadDir(*models)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatal(err)
	}

	rendered := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".stl") {
			continue
		}
		stlPath := filepath.Join(*models, e.Name())
		pngPath := filepath.Join(*out, strings.TrimSuffix(e.Name(), ".stl")+".png")
		if err := stlToPNG(stlPath, pngPath, *size); err != nil {
			fmt.Printf("fail %s: %v\n", e.Name(), err)
			continue
		}
		fmt.Printf("ok %s\n", filepath.Base(pngPath))
		rendered++
	}
	fmt.Printf("Rendered %d previews to %s\n", rendered, *out)
}

func stlToPNG(stlName, outputname string, size int) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const scale = 2 // supersampling

	var (
		eye    = fauxgl.V(2.4, 2.4, 2.4)
		center = fauxgl.V(0, 0, 0)
		up     = fauxgl.V(0, 0, 1)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#0ea5e9")
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(size*scale, size*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFFFFF"))
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, 1, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := resize.Resize(uint(size), uint(size), context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(outputname, image)
}
