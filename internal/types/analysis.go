package types

// AnalysisResult aggregates everything the engine derives from one document:
// its capability set, the ordered education and experience timelines, the
// inter-period gaps per category, and the education-to-first-job gap.
// Returned by value; the engine retains no reference.
type AnalysisResult struct {
	Capabilities CapabilitySet `json:"capabilities"`
	Education    []Period      `json:"education_periods"`
	Experience   []Period      `json:"experience_periods"`

	EducationGaps  []Gap `json:"education_gaps,omitempty"`
	ExperienceGaps []Gap `json:"experience_gaps,omitempty"`

	// EducationToFirstJobGap is the months between the end of the last
	// education period and the start of the first employment period.
	// Nil when either timeline is empty.
	EducationToFirstJobGap *int `json:"education_to_first_job_gap_months,omitempty"`

	Location string `json:"location,omitempty"`
}

// MatchResult is one candidate-vs-requirement comparison. The candidate's
// analysis is passed through for reporting so each row is self-contained.
type MatchResult struct {
	RequirementID string `json:"requirement_id"`

	// Score is the blended match percentage in [0,100].
	Score   float64       `json:"score"`
	Matched CapabilitySet `json:"matched_capabilities"`
	Missing CapabilitySet `json:"missing_capabilities"`

	RequirementLocation string `json:"requirement_location,omitempty"`

	Candidate AnalysisResult `json:"candidate"`

	// Failed marks a comparison the embedding collaborator could not score.
	// A failed result is distinct from a zero-score one.
	Failed bool   `json:"failed,omitempty"`
	Error  string `json:"error,omitempty"`
}

// MatchedCount returns the number of matched capabilities, the secondary
// sort key for batch ordering.
func (m MatchResult) MatchedCount() int {
	return m.Matched.Len()
}
