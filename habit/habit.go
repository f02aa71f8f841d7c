// Package habit resolves a CDL string to a reference polyhedron for the
// crystal system it names. It is not a CDL parser: only the leading
// system token, the first form token and the c= axial ratio are read,
// and the solid comes from a fixed catalog of canonical habits.
package habit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gemmology-dev/crystalgen/crystal"
)

var (
	ErrEmptyDescription = errors.New("empty crystal description")
	ErrUnknownSystem    = errors.New("unknown crystal system")
)

// Provider builds crystal geometry from CDL descriptions.
// The zero value is ready to use.
type Provider struct{}

// Build returns the reference polyhedron for a description, with face
// normals filled in.
func (Provider) Build(cdl string) (*crystal.Geometry, error) {
	fields := strings.Fields(cdl)
	if len(fields) == 0 {
		return nil, ErrEmptyDescription
	}

	system := fields[0]
	// drop the point group suffix, e.g. "trigonal[-3m]".
	if i := strings.IndexByte(system, '['); i >= 0 {
		system = system[:i]
	}
	system = strings.ToLower(system)

	form := ""
	cratio := 1.0
	for _, f := range fields[1:] {
		switch {
		case strings.HasPrefix(f, "{"):
			if form == "" {
				form = strings.Trim(f, "{}")
			}
		case strings.HasPrefix(f, "c="):
			v, err := strconv.ParseFloat(f[len("c="):], 64)
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("bad axial ratio %q", f)
			}
			cratio = v
		}
	}

	var g *crystal.Geometry
	switch system {
	case "cubic", "isometric":
		switch form {
		case "100":
			g = cube(1)
		case "110":
			g = rhombicDodecahedron()
		default: // {111} and every other cubic form
			g = octahedron(1, 1, 1)
		}
	case "tetragonal":
		g = prismPyramid(4, cratio)
	case "hexagonal":
		g = prismPyramid(6, cratio)
	case "trigonal", "rhombohedral":
		g = rhombohedron(cratio)
	case "orthorhombic":
		g = octahedron(1, 0.7, 1.3*cratio)
	case "monoclinic":
		g = monoclinicCell(cratio)
	case "triclinic":
		g = triclinicCell(cratio)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSystem, system)
	}
	g.ComputeNormals()
	return g, nil
}
