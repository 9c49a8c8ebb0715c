package timeline

import "strings"

// sectionKind is the classification context a resume line carries: the
// section header it sits under, or a keyword-derived category.
type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionEducation
	sectionExperience
	sectionExcluded
)

// sectionHeaders maps recognized section header names to their kind.
// Matching is prefix-based on short lines so "Work Experience:" and
// "PROFESSIONAL EXPERIENCE" both resolve.
var sectionHeaders = []struct {
	name string
	kind sectionKind
}{
	{"professional experience", sectionExperience},
	{"work experience", sectionExperience},
	{"work history", sectionExperience},
	{"employment history", sectionExperience},
	{"employment", sectionExperience},
	{"experience", sectionExperience},
	{"education", sectionEducation},
	{"academic background", sectionEducation},
	{"projects", sectionExcluded},
	{"publications", sectionExcluded},
	{"research", sectionExcluded},
	{"certifications", sectionExcluded},
}

// institutionalKeywords mark a label as education when no header applies.
var institutionalKeywords = []string{
	"university", "college", "institute", "school", "academy",
	"bachelor", "master", "b.sc", "m.sc", "bsc", "msc", "b.s.", "m.s.",
	"mba", "ph.d", "phd", "degree", "diploma",
}

// projectKeywords exclude a label from both categories: projects and
// publications are dated but are neither schooling nor employment.
var projectKeywords = []string{
	"project", "publication", "research", "thesis", "capstone",
}

// maxHeaderLen caps how long a line can be and still count as a section
// header; longer lines mentioning "experience" are prose, not headers.
const maxHeaderLen = 40

// headerKind reports whether a line is a section header and which kind.
func headerKind(line string) (sectionKind, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	trimmed = strings.TrimRight(trimmed, ":")
	if trimmed == "" || len(trimmed) > maxHeaderLen {
		return sectionNone, false
	}
	for _, h := range sectionHeaders {
		if strings.HasPrefix(trimmed, h.name) {
			return h.kind, true
		}
	}
	return sectionNone, false
}

func matchesAny(label string, keywords []string) bool {
	lower := strings.ToLower(label)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isInstitutional reports whether a label names a school or degree.
func isInstitutional(label string) bool {
	return matchesAny(label, institutionalKeywords)
}

// isProject reports whether a label describes a project or publication.
func isProject(label string) bool {
	return matchesAny(label, projectKeywords)
}
