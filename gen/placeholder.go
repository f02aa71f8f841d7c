package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Fallback path: when the real geometry and exporter collaborators are
// not wanted, write a fixed octahedron outline SVG for a static list of
// mineral names. No database, builder or exporter involvement.

const placeholderSVG = `<svg viewBox="-150 -150 300 300" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="face1" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#0ea5e9;stop-opacity:0.8" />
      <stop offset="100%" style="stop-color:#0284c7;stop-opacity:0.9" />
    </linearGradient>
    <linearGradient id="face2" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#38bdf8;stop-opacity:0.7" />
      <stop offset="100%" style="stop-color:#0ea5e9;stop-opacity:0.8" />
    </linearGradient>
  </defs>
  <polygon points="0,-100 -80,0 0,100" fill="url(#face2)" stroke="#0369a1" stroke-width="1.5" opacity="0.6"/>
  <polygon points="0,-100 0,100 80,0" fill="url(#face1)" stroke="#0369a1" stroke-width="1.5" opacity="0.7"/>
  <polygon points="0,-100 -80,0 80,0" fill="url(#face1)" stroke="#0369a1" stroke-width="2"/>
  <polygon points="0,100 -80,0 80,0" fill="url(#face2)" stroke="#0369a1" stroke-width="2"/>
</svg>`

var placeholderMinerals = []string{
	"alexandrite", "almandine", "amazonite", "amethyst", "andalusite",
	"apatite", "aquamarine", "beryl", "calcite", "carnelian",
	"chrysoberyl", "chrysoprase", "citrine", "demantoid", "diamond",
	"diopside", "emerald", "epidote", "fluorite", "garnet",
	"grossular", "heliodor", "hessonite", "hiddenite", "iolite",
	"jadeite", "kunzite", "kyanite", "labradorite", "lapis-lazuli",
	"malachite", "moonstone", "morganite", "nephrite", "opal",
	"orthoclase", "peridot", "pyrope", "quartz", "rhodolite",
	"ruby", "sapphire", "scapolite", "sphene", "spessartine",
	"spinel", "spodumene", "sunstone", "tanzanite", "topaz",
	"tourmaline", "tsavorite", "turquoise", "zircon", "zoisite",
	"rose-quartz", "smoky-quartz", "star-ruby", "star-sapphire",
	"cats-eye-chrysoberyl", "padparadscha", "paraiba-tourmaline",
	"watermelon-tourmaline", "rubellite", "indicolite",
	"pyrite", "magnetite", "galena",
	"corundum", "hematite", "cinnabar",
	"rutile", "cassiterite", "vesuvianite",
	"olivine", "barite", "celestine",
	"gypsum", "realgar", "orpiment",
}

// WritePlaceholders writes the placeholder SVG for every name in the
// static mineral list. Only file-write errors fail, and the first one
// aborts the whole pass.
func WritePlaceholders(dir string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	total := len(placeholderMinerals)
	fmt.Fprintf(out, "Generating %d placeholder SVG assets...\n", total)
	fmt.Fprintf(out, "Output directory: %s\n", dir)
	fmt.Fprintln(out, "--------------------------------------------------")

	for i, name := range placeholderMinerals {
		path := filepath.Join(dir, name+".svg")
		if err := os.WriteFile(path, []byte(placeholderSVG), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(out, "[%d/%d] ok %s.svg\n", i+1, total, name)
	}

	fmt.Fprintln(out, "--------------------------------------------------")
	fmt.Fprintf(out, "Generated: %d placeholder SVG files\n", total)
	fmt.Fprintln(out, "\nNote: these are placeholder octahedron shapes, not real habits.")
	return nil
}
