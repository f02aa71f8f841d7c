// Package gen drives batch asset generation: it walks the preset
// database, requests geometry for each preset carrying a crystal
// description, and hands the geometry to one exporter per requested
// format. All domain work happens in the collaborators; this package
// only resolves paths, loops, records per-item outcomes and prints
// progress.
package gen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gemmology-dev/crystalgen/crystal"
)

// Database lists preset names and looks up their crystal descriptions.
type Database interface {
	ListPresets() []string
	// CDL returns ok=false when the preset carries no description.
	CDL(name string) (cdl string, ok bool)
}

// Builder turns a crystal description into mesh geometry.
type Builder interface {
	Build(cdl string) (*crystal.Geometry, error)
}

// Exporter writes one asset file for a geometry buffer.
type Exporter interface {
	Export(path string, g *crystal.Geometry, opt Options) error
}

// Options are the fixed presentation parameters handed to every
// exporter. Name is filled per preset by Run.
type Options struct {
	Name      string
	Elevation float64 // camera elevation, degrees
	Azimuth   float64 // camera azimuth, degrees
	FaceColor string  // hex, e.g. "#0ea5e9"
	EdgeColor string
	EdgeWidth float64
	Opacity   float64
	Size      int  // SVG canvas size in px
	Binary    bool // binary output where the format supports both
}

// DefaultOptions returns the presentation parameters shared by the
// published site assets.
func DefaultOptions() Options {
	return Options{
		Elevation: 30,
		Azimuth:   -45,
		FaceColor: "#0ea5e9",
		EdgeColor: "#0369a1",
		EdgeWidth: 1.5,
		Opacity:   0.85,
		Size:      300,
		Binary:    true,
	}
}

// Valid output formats. "gltf" writes binary .glb.
var formatExt = map[string]string{
	"svg":  ".svg",
	"stl":  ".stl",
	"gltf": ".glb",
	"obj":  ".obj",
}

// AllFormats returns the valid format names, sorted.
func AllFormats() []string {
	formats := make([]string, 0, len(formatExt))
	for f := range formatExt {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// OutputDir returns the directory for a format's assets under base.
func OutputDir(base, format string) string {
	switch format {
	case "svg":
		return filepath.Join(base, "crystals")
	default:
		return filepath.Join(base, "models", format)
	}
}

var exporters = map[string]Exporter{}

// RegisterExporter makes an exporter available under a format name.
// Exporter packages call it from init; the last registration wins.
func RegisterExporter(format string, e Exporter) {
	exporters[strings.ToLower(format)] = e
}

// LookupExporter reports the exporter registered for a format.
func LookupExporter(format string) (Exporter, bool) {
	e, ok := exporters[strings.ToLower(format)]
	return e, ok
}

var (
	ErrUnknownFormat       = errors.New("unknown output format")
	ErrMissingCollaborator = errors.New("missing collaborator")
)

// Config is one generation run.
type Config struct {
	DB      Database
	Builder Builder
	Formats []string  // defaults to AllFormats
	Filter  string    // case-insensitive substring over preset names
	BaseDir string    // output base directory
	Options Options   // zero value replaced by DefaultOptions
	Output  io.Writer // progress and summary, defaults to os.Stdout
}

// FormatStats tallies one format over a run.
type FormatStats struct {
	Success int
	Failed  []string // preset display names, processing order
}

// Stats is the outcome of a run.
type Stats struct {
	Total   int // selected presets, including skipped ones
	Skipped []string
	Formats map[string]*FormatStats
}

// Run generates assets for every selected preset. Startup problems
// (unknown format, missing collaborator, unusable output directory)
// return an error; per-preset and per-format failures are recorded in
// Stats and never abort the run.
func Run(cfg Config) (*Stats, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	formats := cfg.Formats
	if len(formats) == 0 {
		formats = AllFormats()
	}
	opt := cfg.Options
	if opt == (Options{}) {
		opt = DefaultOptions()
	}

	// Startup validation, before any preset is touched.
	exps := make(map[string]Exporter, len(formats))
	for _, f := range formats {
		if _, valid := formatExt[f]; !valid {
			return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownFormat, f, strings.Join(AllFormats(), ", "))
		}
		e, ok := LookupExporter(f)
		if !ok {
			return nil, fmt.Errorf("no exporter for format %q: %w", f, ErrMissingCollaborator)
		}
		exps[f] = e
	}
	if cfg.DB == nil {
		return nil, fmt.Errorf("no preset database: %w", ErrMissingCollaborator)
	}
	if cfg.Builder == nil {
		return nil, fmt.Errorf("no geometry builder: %w", ErrMissingCollaborator)
	}

	for _, f := range formats {
		if err := os.MkdirAll(OutputDir(cfg.BaseDir, f), 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	names := cfg.DB.ListPresets()
	if cfg.Filter != "" {
		want := strings.ToLower(cfg.Filter)
		var selected []string
		for _, n := range names {
			if strings.Contains(strings.ToLower(n), want) {
				selected = append(selected, n)
			}
		}
		names = selected
	}

	stats := &Stats{
		Total:   len(names),
		Formats: make(map[string]*FormatStats, len(formats)),
	}
	for _, f := range formats {
		stats.Formats[f] = &FormatStats{}
	}

	fmt.Fprintf(out, "Generating assets for %d mineral presets...\n", stats.Total)
	fmt.Fprintf(out, "Formats: %s\n", strings.Join(formats, ", "))
	fmt.Fprintf(out, "Output base: %s\n", cfg.BaseDir)
	fmt.Fprintln(out, strings.Repeat("-", 60))

	stems := make(map[string]string, len(names))
	for i, name := range names {
		cdl, ok := cfg.DB.CDL(name)
		if !ok || cdl == "" {
			stats.Skipped = append(stats.Skipped, name)
			fmt.Fprintf(out, "[%d/%d] SKIP: %s (no CDL)\n", i+1, stats.Total, name)
			continue
		}

		stem := Normalize(name)
		if prev, dup := stems[stem]; dup {
			fmt.Fprintf(out, "WARNING: %q and %q both write %q, overwriting\n", prev, name, stem)
		} else {
			stems[stem] = name
		}
		fmt.Fprintf(out, "[%d/%d] %s\n", i+1, stats.Total, name)

		geom, err := cfg.Builder.Build(cdl)
		if err != nil {
			fmt.Fprintf(out, "    fail geometry: %v\n", err)
			for _, f := range formats {
				stats.Formats[f].Failed = append(stats.Formats[f].Failed, name)
			}
			continue
		}

		for _, f := range formats {
			path := filepath.Join(OutputDir(cfg.BaseDir, f), stem+formatExt[f])
			o := opt
			o.Name = name
			if err := exps[f].Export(path, geom, o); err != nil {
				fmt.Fprintf(out, "    fail %s: %v\n", f, err)
				stats.Formats[f].Failed = append(stats.Formats[f].Failed, name)
				continue
			}
			stats.Formats[f].Success++
			fmt.Fprintf(out, "    ok %s: %s\n", f, filepath.Base(path))
		}
	}

	fmt.Fprintln(out, strings.Repeat("-", 60))
	fmt.Fprintln(out, "Summary:")
	for _, f := range formats {
		s := stats.Formats[f]
		fmt.Fprintf(out, "  %s: %d/%d generated\n", strings.ToUpper(f), s.Success, stats.Total)
		if len(s.Failed) > 0 {
			shown := s.Failed
			suffix := ""
			if len(shown) > 5 {
				shown = shown[:5]
				suffix = "..."
			}
			fmt.Fprintf(out, "    Failed: %s%s\n", strings.Join(shown, ", "), suffix)
		}
	}
	return stats, nil
}
