package gen

import "strings"

var normalizer = strings.NewReplacer(
	" ", "-",
	"'", "",
	"(", "",
	")", "",
)

// Normalize turns a display name into the filename stem used for every
// asset of that preset: lowercase, spaces to hyphens, quote and
// parenthesis characters stripped. Idempotent; no uniqueness check, two
// names may normalize to the same stem.
func Normalize(name string) string {
	return normalizer.Replace(strings.ToLower(name))
}
