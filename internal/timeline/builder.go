// Package timeline reconciles recognized date ranges into a clean ordered
// sequence of labeled education and experience periods, and computes the
// gaps between them.
package timeline

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/dates"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Builder converts normalized resume lines into deduplicated, start-sorted
// periods. Safe for concurrent use.
type Builder struct {
	parser *dates.Parser
}

// NewBuilder creates a Builder. A nil parser selects the default grammar
// and season policy.
func NewBuilder(parser *dates.Parser) *Builder {
	if parser == nil {
		parser = dates.NewParser(dates.Config{})
	}
	return &Builder{parser: parser}
}

// candidate is one recognized range before classification.
type candidate struct {
	label   string
	start   types.DatePoint
	end     types.DatePoint
	section sectionKind
}

// Build derives labeled periods from normalized lines. Classification applies
// a fixed fallback chain: section header first, then institutional keywords,
// then project-keyword exclusion, then default Experience. Malformed ranges
// (start after end) are dropped, duplicates by (label, start, end) keep the
// first occurrence, and the result is sorted ascending by start then end.
func (b *Builder) Build(lines []string) []types.Period {
	candidates := b.collect(lines)

	periods := make([]types.Period, 0, len(candidates))
	seen := make(map[string]struct{})
	educationSeen := false

	for _, c := range candidates {
		category, ok := classify(c)
		if !ok {
			continue
		}

		p := types.Period{Label: c.label, Start: c.start, End: c.end, Category: category}
		key := p.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		periods = append(periods, p)
		if category == types.CategoryEducation {
			educationSeen = true
		}
	}

	// Fallback for documents without a usable education section: reclaim
	// periods whose label names an institution from wherever they landed.
	if !educationSeen {
		for i := range periods {
			if isInstitutional(periods[i].Label) {
				periods[i].Category = types.CategoryEducation
			}
		}
	}

	sort.SliceStable(periods, func(i, j int) bool {
		if periods[i].Start != periods[j].Start {
			return periods[i].Start.Before(periods[j].Start)
		}
		return periods[i].End.Before(periods[j].End)
	})

	return periods
}

// collect runs the date parser over every line, tracking section context and
// deriving a label for each recognized range.
func (b *Builder) collect(lines []string) []candidate {
	var candidates []candidate
	section := sectionNone
	prevNonEmpty := ""

	for _, line := range lines {
		if kind, ok := headerKind(line); ok {
			section = kind
			continue
		}

		ranges := b.parser.ParseRanges(line)
		for _, r := range ranges {
			if r.End.Before(r.Start) {
				continue // malformed: start after end
			}
			label := b.deriveLabel(line, r, prevNonEmpty)
			candidates = append(candidates, candidate{
				label:   label,
				start:   r.Start,
				end:     r.End,
				section: section,
			})
		}

		if strings.TrimSpace(line) != "" {
			prevNonEmpty = line
		}
	}
	return candidates
}

// deriveLabel picks the period label from, in priority order, the text before
// the matched span, the text after it, and the nearest previous non-empty
// line. Leftover date fragments and separators are stripped.
func (b *Builder) deriveLabel(line string, r dates.Range, prevNonEmpty string) string {
	for _, raw := range []string{line[:r.SpanStart], line[r.SpanEnd:], prevNonEmpty} {
		if label := b.cleanLabel(raw); label != "" {
			return label
		}
	}
	return ""
}

// cleanLabel strips date tokens and dangling separators from a label source.
func (b *Builder) cleanLabel(raw string) string {
	s := b.parser.StripDateTokens(raw)
	s = strings.Join(strings.Fields(s), " ")
	return ingestion.TrimSeparators(s)
}

// classify resolves a candidate to a category following the ordered fallback
// chain. Returns false for candidates excluded from both categories.
func classify(c candidate) (types.Category, bool) {
	switch c.section {
	case sectionEducation:
		return types.CategoryEducation, true
	case sectionExperience:
		return types.CategoryExperience, true
	case sectionExcluded:
		return "", false
	}

	if isInstitutional(c.label) {
		return types.CategoryEducation, true
	}
	if isProject(c.label) {
		return "", false
	}
	return types.CategoryExperience, true
}

// Split partitions built periods by category, preserving order.
func Split(periods []types.Period) (education, experience []types.Period) {
	for _, p := range periods {
		switch p.Category {
		case types.CategoryEducation:
			education = append(education, p)
		case types.CategoryExperience:
			experience = append(experience, p)
		}
	}
	return education, experience
}
