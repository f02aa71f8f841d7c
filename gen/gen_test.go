package gen_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gemmology-dev/crystalgen/crystal"
	"github.com/gemmology-dev/crystalgen/gen"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

// The fake exporters below register under "svg", "stl" and "gltf" only,
// so "obj" stays free for the missing-collaborator test.

type fakeDB struct {
	names     []string
	cdl       map[string]string
	listCalls int
}

func (d *fakeDB) ListPresets() []string {
	d.listCalls++
	return d.names
}

func (d *fakeDB) CDL(name string) (string, bool) {
	c, ok := d.cdl[name]
	return c, ok && c != ""
}

type fakeBuilder struct {
	err error
}

func (b fakeBuilder) Build(cdl string) (*crystal.Geometry, error) {
	if b.err != nil {
		return nil, b.err
	}
	g := &crystal.Geometry{
		Vertices: []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}},
		Faces:    [][]int{{0, 1, 2}},
	}
	g.ComputeNormals()
	return g, nil
}

type fakeExporter struct {
	fail bool
}

func (e fakeExporter) Export(path string, g *crystal.Geometry, opt gen.Options) error {
	if e.fail {
		return errors.New("exporter broken")
	}
	return os.WriteFile(path, []byte(opt.Name), 0644)
}

func filesIn(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunSkipsPresetsWithoutCDL(t *testing.T) {
	gen.RegisterExporter("svg", fakeExporter{})
	gen.RegisterExporter("stl", fakeExporter{})
	db := &fakeDB{
		names: []string{"Opal", "Diamond"},
		cdl:   map[string]string{"Diamond": "cubic {111}"},
	}
	var out bytes.Buffer
	base := t.TempDir()

	stats, err := gen.Run(gen.Config{
		DB:      db,
		Builder: fakeBuilder{},
		Formats: []string{"svg", "stl"},
		BaseDir: base,
		Output:  &out,
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Opal"}, stats.Skipped); diff != "" {
		t.Errorf("skipped mismatch (-want +got):\n%s", diff)
	}
	for _, f := range []string{"svg", "stl"} {
		s := stats.Formats[f]
		if s.Success != 1 || len(s.Failed) != 0 {
			t.Errorf("%s: success=%d failed=%v, want 1 success and no failures", f, s.Success, s.Failed)
		}
	}
	if got := filesIn(t, gen.OutputDir(base, "svg")); len(got) != 1 || got[0] != "diamond.svg" {
		t.Errorf("svg dir = %v, want [diamond.svg]", got)
	}
	if !strings.Contains(out.String(), "SKIP: Opal (no CDL)") {
		t.Errorf("progress output missing skip line:\n%s", out.String())
	}
}

func TestRunGeometryFailureFailsAllFormats(t *testing.T) {
	gen.RegisterExporter("svg", fakeExporter{})
	gen.RegisterExporter("stl", fakeExporter{})
	db := &fakeDB{
		names: []string{"Pyrite"},
		cdl:   map[string]string{"Pyrite": "cubic {100}"},
	}
	base := t.TempDir()

	stats, err := gen.Run(gen.Config{
		DB:      db,
		Builder: fakeBuilder{err: errors.New("bad description")},
		Formats: []string{"svg", "stl"},
		BaseDir: base,
		Output:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"svg", "stl"} {
		s := stats.Formats[f]
		if s.Success != 0 {
			t.Errorf("%s: got %d successes, want 0", f, s.Success)
		}
		if diff := cmp.Diff([]string{"Pyrite"}, s.Failed); diff != "" {
			t.Errorf("%s failed list mismatch (-want +got):\n%s", f, diff)
		}
		if got := filesIn(t, gen.OutputDir(base, f)); len(got) != 0 {
			t.Errorf("%s dir not empty: %v", f, got)
		}
	}
	if len(stats.Skipped) != 0 {
		t.Errorf("geometry failure recorded as skip: %v", stats.Skipped)
	}
}

func TestRunExportFailureIsolatedPerFormat(t *testing.T) {
	gen.RegisterExporter("svg", fakeExporter{})
	gen.RegisterExporter("stl", fakeExporter{})
	gen.RegisterExporter("gltf", fakeExporter{fail: true})
	db := &fakeDB{
		names: []string{"Quartz"},
		cdl:   map[string]string{"Quartz": "trigonal {10-11}"},
	}
	base := t.TempDir()

	stats, err := gen.Run(gen.Config{
		DB:      db,
		Builder: fakeBuilder{},
		Formats: []string{"svg", "stl", "gltf"},
		BaseDir: base,
		Output:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if s := stats.Formats["gltf"]; s.Success != 0 || len(s.Failed) != 1 {
		t.Errorf("gltf: success=%d failed=%v, want the failure recorded", s.Success, s.Failed)
	}
	for _, f := range []string{"svg", "stl"} {
		if s := stats.Formats[f]; s.Success != 1 || len(s.Failed) != 0 {
			t.Errorf("%s: success=%d failed=%v, want unaffected by gltf failure", f, s.Success, s.Failed)
		}
	}
}

func TestRunUnknownFormatFailsBeforeProcessing(t *testing.T) {
	db := &fakeDB{names: []string{"Diamond"}, cdl: map[string]string{"Diamond": "cubic {111}"}}
	_, err := gen.Run(gen.Config{
		DB:      db,
		Builder: fakeBuilder{},
		Formats: []string{"png"},
		BaseDir: t.TempDir(),
		Output:  &bytes.Buffer{},
	})
	if !errors.Is(err, gen.ErrUnknownFormat) {
		t.Fatalf("got %v, want ErrUnknownFormat", err)
	}
	if db.listCalls != 0 {
		t.Errorf("database consulted %d times before format validation", db.listCalls)
	}
}

func TestRunMissingExporter(t *testing.T) {
	// "obj" is never registered by these tests.
	db := &fakeDB{names: []string{"Diamond"}, cdl: map[string]string{"Diamond": "cubic {111}"}}
	_, err := gen.Run(gen.Config{
		DB:      db,
		Builder: fakeBuilder{},
		Formats: []string{"obj"},
		BaseDir: t.TempDir(),
		Output:  &bytes.Buffer{},
	})
	if !errors.Is(err, gen.ErrMissingCollaborator) {
		t.Fatalf("got %v, want ErrMissingCollaborator", err)
	}
}

func TestRunMissingBuilder(t *testing.T) {
	gen.RegisterExporter("svg", fakeExporter{})
	_, err := gen.Run(gen.Config{
		DB:      &fakeDB{},
		Formats: []string{"svg"},
		BaseDir: t.TempDir(),
		Output:  &bytes.Buffer{},
	})
	if !errors.Is(err, gen.ErrMissingCollaborator) {
		t.Fatalf("got %v, want ErrMissingCollaborator", err)
	}
}

func TestRunFilter(t *testing.T) {
	gen.RegisterExporter("svg", fakeExporter{})
	db := &fakeDB{
		names: []string{"Rose Quartz", "Diamond", "Smoky Quartz"},
		cdl: map[string]string{
			"Rose Quartz":  "trigonal {10-10}",
			"Diamond":      "cubic {111}",
			"Smoky Quartz": "trigonal {10-11}",
		},
	}
	base := t.TempDir()

	stats, err := gen.Run(gen.Config{
		DB:      db,
		Builder: fakeBuilder{},
		Formats: []string{"svg"},
		Filter:  "quartz",
		BaseDir: base,
		Output:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 2 {
		t.Errorf("Total = %d, want 2 presets matching filter", stats.Total)
	}
	want := []string{"rose-quartz.svg", "smoky-quartz.svg"}
	if diff := cmp.Diff(want, filesIn(t, gen.OutputDir(base, "svg"))); diff != "" {
		t.Errorf("output files mismatch (-want +got):\n%s", diff)
	}
}

func TestRunWarnsOnStemCollision(t *testing.T) {
	gen.RegisterExporter("svg", fakeExporter{})
	db := &fakeDB{
		names: []string{"Rose Quartz", "Rose (Quartz)"},
		cdl: map[string]string{
			"Rose Quartz":   "trigonal {10-10}",
			"Rose (Quartz)": "trigonal {10-10}",
		},
	}
	var out bytes.Buffer
	_, err := gen.Run(gen.Config{
		DB:      db,
		Builder: fakeBuilder{},
		Formats: []string{"svg"},
		BaseDir: t.TempDir(),
		Output:  &out,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "WARNING") {
		t.Errorf("no collision warning in output:\n%s", out.String())
	}
}

func TestOutputDirLayout(t *testing.T) {
	base := filepath.Join("public")
	for _, tc := range []struct{ format, want string }{
		{"svg", filepath.Join("public", "crystals")},
		{"stl", filepath.Join("public", "models", "stl")},
		{"gltf", filepath.Join("public", "models", "gltf")},
		{"obj", filepath.Join("public", "models", "obj")},
	} {
		if got := gen.OutputDir(base, tc.format); got != tc.want {
			t.Errorf("OutputDir(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
}
