// Package ingestion turns raw document content into clean lines for the
// downstream parsers.
package ingestion

import (
	"regexp"
	"strings"
)

// bulletReplacer removes list glyphs PDF extraction leaves behind. They carry
// no meaning and confuse label derivation.
var bulletReplacer = strings.NewReplacer(
	"•", "", "‣", "", "◦", "", "·", "", "▪", "", "▸", "", "●", "", "○", "", "", "",
)

var whitespaceRE = regexp.MustCompile(`[ \t\x{00A0}]+`)

// Normalize cleans raw document text: bullet glyphs are removed, runs of
// whitespace collapse to a single space per line, and leading/trailing
// separator characters are trimmed from each line. Line breaks are preserved.
// Pure and total over any input.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	raw = bulletReplacer.Replace(raw)

	lines := strings.Split(raw, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, normalizeLine(line))
	}

	return strings.Join(cleaned, "\n")
}

// Lines normalizes raw text and splits it into lines.
func Lines(raw string) []string {
	return strings.Split(Normalize(raw), "\n")
}

// TrimSeparators removes leading and trailing separator characters and
// surrounding whitespace. Used on derived period labels, where a stripped
// date range leaves dangling punctuation behind.
func TrimSeparators(s string) string {
	return strings.Trim(s, " \t-–—|,;:.()")
}

func normalizeLine(line string) string {
	line = whitespaceRE.ReplaceAllString(line, " ")
	return strings.Trim(line, " \t-–—|")
}
