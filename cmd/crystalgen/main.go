// Command crystalgen generates static crystal assets (SVG, STL, glTF,
// OBJ) for every preset in the mineral database.
//
// Usage:
//
//	crystalgen [-formats svg,stl,gltf,obj] [-preset NAME] [-out DIR]
//	crystalgen -placeholder [-out DIR]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gemmology-dev/crystalgen/gen"
	"github.com/gemmology-dev/crystalgen/habit"
	"github.com/gemmology-dev/crystalgen/internal/config"
	"github.com/gemmology-dev/crystalgen/mineral"

	// Register the format exporters.
	_ "github.com/gemmology-dev/crystalgen/export"
)

func main() {
	formatsFlag := flag.String("formats", "svg,stl,gltf,obj", "Comma-separated list of formats to generate")
	presetFlag := flag.String("preset", "", "Filter presets by name substring")
	placeholder := flag.Bool("placeholder", false, "Write placeholder SVGs without geometry dependencies")
	outFlag := flag.String("out", "", "Output base directory (default: public)")
	configFile := flag.String("config", "", "Path to JSON config file")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{BaseDir: *outFlag})

	if *placeholder {
		dir := filepath.Join(cfg.BaseDir, "crystals")
		if err := gen.WritePlaceholders(dir, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var formats []string
	for _, f := range strings.Split(*formatsFlag, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}

	_, err := gen.Run(gen.Config{
		DB:      mineral.DB{},
		Builder: habit.Provider{},
		Formats: formats,
		Filter:  *presetFlag,
		BaseDir: cfg.BaseDir,
		Options: cfg.Options(),
		Output:  os.Stdout,
	})
	if err != nil {
		// Startup errors only; per-preset failures are in the summary
		// and leave the exit status at zero.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
