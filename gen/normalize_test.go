package gen_test

import (
	"strings"
	"testing"

	"github.com/gemmology-dev/crystalgen/gen"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		name, want string
	}{
		{"Diamond", "diamond"},
		{"Rose Quartz", "rose-quartz"},
		{"Lapis Lazuli (Var.)", "lapis-lazuli-var."},
		{"Tiger's Eye", "tigers-eye"},
		{"Tourmaline (Elbaite)", "tourmaline-elbaite"},
		{"already-normalized", "already-normalized"},
	} {
		got := gen.Normalize(tc.name)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	names := []string{
		"Lapis Lazuli (Var.)",
		"Tiger's Eye",
		"Smoky Quartz",
		"plain",
	}
	for _, name := range names {
		once := gen.Normalize(name)
		twice := gen.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", name, once, twice)
		}
	}
}

func TestNormalizeStripsSpecials(t *testing.T) {
	for _, name := range []string{"A'B", "(C)", "D (E's F)"} {
		got := gen.Normalize(name)
		if strings.ContainsAny(got, "'() ") {
			t.Errorf("Normalize(%q) = %q still contains stripped characters", name, got)
		}
	}
}
