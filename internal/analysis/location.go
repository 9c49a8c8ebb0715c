package analysis

import (
	"regexp"
	"strings"
)

// Locator extracts a geographic location string from document lines.
// A named-entity model is a valid implementation; HeuristicLocator is the
// built-in fallback. Returning empty string means "not mentioned".
type Locator interface {
	Locate(lines []string) string
}

// cityStateRE matches short "City, ST" / "City, Country" lines, the usual
// resume header format.
var cityStateRE = regexp.MustCompile(`^([A-Z][A-Za-zÀ-ÿ .'-]+),\s*([A-Z]{2}|[A-Z][A-Za-zÀ-ÿ .'-]+)$`)

// HeuristicLocator finds a location by line shape: an explicit
// "Location:" prefix wins, then the first short comma-separated place line.
type HeuristicLocator struct{}

// Locate scans normalized lines for a location mention.
func (HeuristicLocator) Locate(lines []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		for _, prefix := range []string{"location:", "based in:", "address:"} {
			if strings.HasPrefix(lower, prefix) {
				if loc := strings.TrimSpace(trimmed[len(prefix):]); loc != "" {
					return loc
				}
			}
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 40 {
			continue
		}
		if cityStateRE.MatchString(trimmed) {
			return trimmed
		}
	}
	return ""
}

// StaticLocator always reports a fixed location. For tests.
type StaticLocator string

// Locate returns the fixed location.
func (s StaticLocator) Locate([]string) string { return string(s) }
