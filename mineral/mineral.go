// Package mineral is the preset database: a fixed table of named minerals,
// each optionally carrying a CDL (crystal description language) string.
package mineral

import "strings"

// Preset is one named entry of the database. CDL is empty for minerals
// with no usable crystallographic description (amorphous material, rocks,
// organic gems).
type Preset struct {
	Name    string
	Formula string
	System  string
	CDL     string
}

// ListPresets returns every preset name in database order.
func ListPresets() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// Get returns the preset with exactly the given name.
func Get(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Filter returns the names containing the given substring,
// case-insensitively, in database order. An empty filter selects
// every preset.
func Filter(substr string) []string {
	if substr == "" {
		return ListPresets()
	}
	substr = strings.ToLower(substr)
	var names []string
	for _, p := range presets {
		if strings.Contains(strings.ToLower(p.Name), substr) {
			names = append(names, p.Name)
		}
	}
	return names
}

// DB adapts the package-level database to the generator's Database
// interface.
type DB struct{}

func (DB) ListPresets() []string { return ListPresets() }

// CDL returns the crystallographic description of a preset, with
// ok=false when the preset does not exist or carries no description.
func (DB) CDL(name string) (string, bool) {
	p, ok := Get(name)
	if !ok || p.CDL == "" {
		return "", false
	}
	return p.CDL, true
}

var presets = []Preset{
	{Name: "Diamond", Formula: "C", System: "cubic", CDL: "cubic[m-3m] {111}"},
	{Name: "Fluorite", Formula: "CaF2", System: "cubic", CDL: "cubic[m-3m] {100}"},
	{Name: "Pyrite", Formula: "FeS2", System: "cubic", CDL: "cubic[m-3] {100}"},
	{Name: "Magnetite", Formula: "Fe3O4", System: "cubic", CDL: "cubic[m-3m] {111}"},
	{Name: "Galena", Formula: "PbS", System: "cubic", CDL: "cubic[m-3m] {100}"},
	{Name: "Halite", Formula: "NaCl", System: "cubic", CDL: "cubic[m-3m] {100}"},
	{Name: "Spinel", Formula: "MgAl2O4", System: "cubic", CDL: "cubic[m-3m] {111}"},
	{Name: "Almandine", Formula: "Fe3Al2(SiO4)3", System: "cubic", CDL: "cubic[m-3m] {110}"},
	{Name: "Pyrope", Formula: "Mg3Al2(SiO4)3", System: "cubic", CDL: "cubic[m-3m] {110}"},
	{Name: "Grossular", Formula: "Ca3Al2(SiO4)3", System: "cubic", CDL: "cubic[m-3m] {110}"},
	{Name: "Sphalerite", Formula: "ZnS", System: "cubic", CDL: "cubic[-43m] {111}"},

	{Name: "Zircon", Formula: "ZrSiO4", System: "tetragonal", CDL: "tetragonal[4/mmm] {100} {101} c=0.9"},
	{Name: "Rutile", Formula: "TiO2", System: "tetragonal", CDL: "tetragonal[4/mmm] {110} {111} c=1.6"},
	{Name: "Cassiterite", Formula: "SnO2", System: "tetragonal", CDL: "tetragonal[4/mmm] {110} c=0.7"},
	{Name: "Vesuvianite", Formula: "Ca19(Al,Mg)13(SiO4)10(Si2O7)4(OH)10", System: "tetragonal", CDL: "tetragonal[4/mmm] {100} {101}"},

	{Name: "Beryl", Formula: "Be3Al2Si6O18", System: "hexagonal", CDL: "hexagonal[6/mmm] {10-10} {0001} c=1.0"},
	{Name: "Emerald", Formula: "Be3Al2Si6O18", System: "hexagonal", CDL: "hexagonal[6/mmm] {10-10} {0001} c=1.2"},
	{Name: "Aquamarine", Formula: "Be3Al2Si6O18", System: "hexagonal", CDL: "hexagonal[6/mmm] {10-10} {0001} c=1.4"},
	{Name: "Morganite", Formula: "Be3Al2Si6O18", System: "hexagonal", CDL: "hexagonal[6/mmm] {10-10} {0001} c=0.8"},
	{Name: "Apatite", Formula: "Ca5(PO4)3(F,Cl,OH)", System: "hexagonal", CDL: "hexagonal[6/m] {10-10} {10-11} c=0.9"},

	{Name: "Quartz", Formula: "SiO2", System: "trigonal", CDL: "trigonal[32] {10-10} {10-11} c=1.1"},
	{Name: "Amethyst", Formula: "SiO2", System: "trigonal", CDL: "trigonal[32] {10-10} {10-11} c=1.1"},
	{Name: "Citrine", Formula: "SiO2", System: "trigonal", CDL: "trigonal[32] {10-10} {10-11} c=1.1"},
	{Name: "Rose Quartz", Formula: "SiO2", System: "trigonal", CDL: "trigonal[32] {10-10} c=1.0"},
	{Name: "Smoky Quartz", Formula: "SiO2", System: "trigonal", CDL: "trigonal[32] {10-10} {10-11} c=1.2"},
	{Name: "Calcite", Formula: "CaCO3", System: "trigonal", CDL: "trigonal[-3m] {10-11}"},
	{Name: "Corundum", Formula: "Al2O3", System: "trigonal", CDL: "trigonal[-3m] {11-20} {0001} c=1.3"},
	{Name: "Ruby", Formula: "Al2O3", System: "trigonal", CDL: "trigonal[-3m] {11-20} {0001} c=1.3"},
	{Name: "Sapphire", Formula: "Al2O3", System: "trigonal", CDL: "trigonal[-3m] {11-20} {0001} c=1.3"},
	{Name: "Tourmaline (Elbaite)", Formula: "Na(Li,Al)3Al6(BO3)3Si6O18(OH)4", System: "trigonal", CDL: "trigonal[3m] {10-10} c=2.0"},
	{Name: "Hematite", Formula: "Fe2O3", System: "trigonal", CDL: "trigonal[-3m] {0001} c=0.6"},

	{Name: "Peridot", Formula: "(Mg,Fe)2SiO4", System: "orthorhombic", CDL: "orthorhombic[mmm] {010} {110} c=0.9"},
	{Name: "Topaz", Formula: "Al2SiO4(F,OH)2", System: "orthorhombic", CDL: "orthorhombic[mmm] {110} {011} c=1.4"},
	{Name: "Chrysoberyl", Formula: "BeAl2O4", System: "orthorhombic", CDL: "orthorhombic[mmm] {010} {011}"},
	{Name: "Alexandrite", Formula: "BeAl2O4", System: "orthorhombic", CDL: "orthorhombic[mmm] {010} {011}"},
	{Name: "Barite", Formula: "BaSO4", System: "orthorhombic", CDL: "orthorhombic[mmm] {001} {210} c=0.7"},
	{Name: "Andalusite", Formula: "Al2SiO5", System: "orthorhombic", CDL: "orthorhombic[mmm] {110} c=1.1"},
	{Name: "Tanzanite", Formula: "Ca2Al3(SiO4)(Si2O7)O(OH)", System: "orthorhombic", CDL: "orthorhombic[mmm] {010} {100} c=1.5"},

	{Name: "Gypsum", Formula: "CaSO4·2H2O", System: "monoclinic", CDL: "monoclinic[2/m] {010} {110} c=1.2"},
	{Name: "Spodumene", Formula: "LiAlSi2O6", System: "monoclinic", CDL: "monoclinic[2/m] {110} c=1.8"},
	{Name: "Kunzite", Formula: "LiAlSi2O6", System: "monoclinic", CDL: "monoclinic[2/m] {110} c=1.8"},
	{Name: "Orthoclase", Formula: "KAlSi3O8", System: "monoclinic", CDL: "monoclinic[2/m] {010} {001}"},
	{Name: "Moonstone", Formula: "KAlSi3O8", System: "monoclinic", CDL: "monoclinic[2/m] {010} {001}"},
	{Name: "Epidote", Formula: "Ca2(Al,Fe)3(SiO4)3(OH)", System: "monoclinic", CDL: "monoclinic[2/m] {001} {100} c=1.3"},
	{Name: "Sphene", Formula: "CaTiSiO5", System: "monoclinic", CDL: "monoclinic[2/m] {110} {111}"},
	{Name: "Diopside", Formula: "CaMgSi2O6", System: "monoclinic", CDL: "monoclinic[2/m] {110} c=1.1"},

	{Name: "Kyanite", Formula: "Al2SiO5", System: "triclinic", CDL: "triclinic[-1] {100} c=1.7"},
	{Name: "Labradorite", Formula: "(Ca,Na)(Al,Si)4O8", System: "triclinic", CDL: "triclinic[-1] {010} {001}"},
	{Name: "Amazonite", Formula: "KAlSi3O8", System: "triclinic", CDL: "triclinic[-1] {010} {001}"},
	{Name: "Turquoise", Formula: "CuAl6(PO4)4(OH)8·4H2O", System: "triclinic", CDL: "triclinic[-1] {001}"},
	{Name: "Rhodonite", Formula: "MnSiO3", System: "triclinic", CDL: "triclinic[-1] {110}"},

	// No usable crystallographic description: amorphous, rocks, organics,
	// aggregate varieties.
	{Name: "Opal", Formula: "SiO2·nH2O", System: "amorphous"},
	{Name: "Obsidian", Formula: "SiO2 (volcanic glass)", System: "amorphous"},
	{Name: "Amber", Formula: "C10H16O (approx.)", System: "amorphous"},
	{Name: "Lapis Lazuli (Var.)", Formula: "mixture", System: "rock"},
	{Name: "Tiger's Eye", Formula: "SiO2", System: "aggregate"},
	{Name: "Malachite", Formula: "Cu2CO3(OH)2", System: "aggregate"},
}
