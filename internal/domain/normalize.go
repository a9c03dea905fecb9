package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first letter of every word and lower-cases the
// rest ("pikachu" → "Pikachu", "SOLAR beam" → "Solar Beam").
// A new Caser is built per call since cases.Caser is not safe for concurrent use.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.Und).String(s)
}

// Humanize turns an API slug into a display label: hyphens become spaces and
// the result is capitalized ("solar-power" → "Solar Power").
func Humanize(slug string) string {
	return Capitalize(strings.ReplaceAll(slug, "-", " "))
}

// ContainsFold reports whether substr occurs in s, ignoring case.
// An empty substr always matches.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FormatNumber renders a Pokédex number as "#" followed by at least three
// digits. Wider numbers are printed in full.
func FormatNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}
