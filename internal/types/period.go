package types

import "strings"

// Category classifies a period as education or employment.
type Category string

const (
	// CategoryEducation marks schooling periods (degrees, universities).
	CategoryEducation Category = "education"
	// CategoryExperience marks employment periods.
	CategoryExperience Category = "experience"
)

// Period is a labeled start-end date range representing one education or
// employment stretch. Periods are immutable once built; start <= end holds
// for every Period emitted by the timeline builder.
type Period struct {
	Label    string    `json:"label"`
	Start    DatePoint `json:"start"`
	End      DatePoint `json:"end"`
	Category Category  `json:"category"`
}

// DedupKey returns the (normalized label, start, end) identity used to drop
// duplicate periods. Case and surrounding whitespace do not distinguish labels.
func (p Period) DedupKey() string {
	return strings.ToLower(strings.TrimSpace(p.Label)) + "|" + p.Start.String() + "|" + p.End.String()
}

// Gap is a positive-length interval between two chronologically adjacent
// periods in the same category. Months is always >= 1.
type Gap struct {
	After  Period `json:"after"`
	Before Period `json:"before"`
	Months int    `json:"months"`
}
