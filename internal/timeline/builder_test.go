package timeline

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClassifiesBySectionHeader(t *testing.T) {
	builder := NewBuilder(nil)

	periods := builder.Build([]string{
		"Education",
		"B.Sc Computer Science, Acme University, Sep 2015 - Jun 2019",
		"",
		"Professional Experience",
		"Software Engineer, Acme Corp, Sep 2019 - Present",
	})

	require.Len(t, periods, 2)

	education, experience := Split(periods)
	require.Len(t, education, 1)
	require.Len(t, experience, 1)

	assert.Equal(t, "B.Sc Computer Science, Acme University", education[0].Label)
	assert.Equal(t, types.MustDatePoint(2015, 9), education[0].Start)
	assert.Equal(t, "Software Engineer, Acme Corp", experience[0].Label)
	assert.True(t, experience[0].End.IsOpenEnded())
}

func TestBuildLabelPriority(t *testing.T) {
	builder := NewBuilder(nil)

	tests := []struct {
		name      string
		lines     []string
		wantLabel string
	}{
		{
			name:      "Text before the span wins",
			lines:     []string{"Acme Corp, Jan 2020 - Mar 2021, Berlin"},
			wantLabel: "Acme Corp",
		},
		{
			name:      "Text after the span when nothing precedes",
			lines:     []string{"Jan 2020 - Mar 2021: Freelance Consultant"},
			wantLabel: "Freelance Consultant",
		},
		{
			name:      "Previous non-empty line as last resort",
			lines:     []string{"Globex Corporation", "Jun 2017 - Aug 2018"},
			wantLabel: "Globex Corporation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := builder.Build(tt.lines)
			require.Len(t, periods, 1)
			assert.Equal(t, tt.wantLabel, periods[0].Label)
		})
	}
}

func TestBuildDropsMalformedRanges(t *testing.T) {
	builder := NewBuilder(nil)

	// End before start is malformed and silently discarded.
	periods := builder.Build([]string{"Acme Corp, Mar 2021 - Jan 2020"})
	assert.Empty(t, periods)
}

func TestBuildDeduplicatesPeriods(t *testing.T) {
	builder := NewBuilder(nil)

	periods := builder.Build([]string{
		"Acme Corp, Jan 2020 - Jan 2021",
		"acme corp, Jan 2020 - Jan 2021",
	})

	require.Len(t, periods, 1, "identical (label, start, end) triples collapse to one period")
	assert.Equal(t, "Acme Corp", periods[0].Label, "first occurrence wins")
}

func TestBuildExcludesProjects(t *testing.T) {
	builder := NewBuilder(nil)

	tests := []struct {
		name  string
		lines []string
	}{
		{
			name:  "Projects section header",
			lines: []string{"Projects", "Search engine rewrite, Jan 2020 - Jun 2020"},
		},
		{
			name:  "Project keyword in label",
			lines: []string{"Capstone thesis on distributed systems, 2018 - 2019"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, builder.Build(tt.lines))
		})
	}
}

func TestBuildInstitutionalKeywordWithoutHeader(t *testing.T) {
	builder := NewBuilder(nil)

	periods := builder.Build([]string{
		"Staff Engineer, Initech, 2012 - 2015",
		"Bachelor of Arts, State University, 2008 - 2012",
	})

	education, experience := Split(periods)
	require.Len(t, education, 1)
	require.Len(t, experience, 1)
	assert.Contains(t, education[0].Label, "State University")
}

func TestBuildEducationFallbackReclassification(t *testing.T) {
	builder := NewBuilder(nil)

	// Everything sits under an experience header; with no education section
	// at all, institutional labels are reclaimed as education.
	periods := builder.Build([]string{
		"Experience",
		"Acme Corp, 2015 - 2018",
		"Technical University of Munich, 2010 - 2014",
	})

	education, experience := Split(periods)
	require.Len(t, education, 1)
	require.Len(t, experience, 1)
	assert.Contains(t, education[0].Label, "Technical University")
}

func TestBuildSortsByStartThenEnd(t *testing.T) {
	builder := NewBuilder(nil)

	periods := builder.Build([]string{
		"Experience",
		"Beta LLC, Jan 2020 - Jan 2022",
		"Alpha Inc, Jan 2018 - Jan 2019",
		"Gamma GmbH, Jan 2020 - Jun 2021",
	})

	require.Len(t, periods, 3)
	assert.Equal(t, "Alpha Inc", periods[0].Label)
	// Same start date: shorter period orders first by end date.
	assert.Equal(t, "Gamma GmbH", periods[1].Label)
	assert.Equal(t, "Beta LLC", periods[2].Label)
}

func TestBuildStartEndInvariant(t *testing.T) {
	builder := NewBuilder(nil)

	lines := ingestion.Lines(`Education
• B.Sc Physics, North College, Fall 2010 - Spring 2014
Experience
• Analyst — DataWorks — 03/2014 - 11/2016
• Senior Analyst | DataWorks | 2017 - present
Mentoring circle, 2016 - 2015`)

	for _, p := range builder.Build(lines) {
		assert.False(t, p.End.Before(p.Start), "period %q must satisfy start <= end", p.Label)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	builder := NewBuilder(nil)
	assert.Empty(t, builder.Build(nil))
	assert.Empty(t, builder.Build([]string{"", "", ""}))
}
