package dates

// SeasonPolicy maps season names to representative months. Résumés often
// date semesters by season ("Fall 2019"); the mapping is a policy choice,
// so it is configuration rather than a constant table.
type SeasonPolicy struct {
	Winter int `json:"winter"`
	Spring int `json:"spring"`
	Summer int `json:"summer"`
	Fall   int `json:"fall"` // also used for "autumn"
}

// DefaultSeasonPolicy returns the default mapping: winter January,
// spring March, summer June, fall September.
func DefaultSeasonPolicy() SeasonPolicy {
	return SeasonPolicy{Winter: 1, Spring: 3, Summer: 6, Fall: 9}
}

// month resolves a lowercased season name under this policy.
func (s SeasonPolicy) month(season string) (int, bool) {
	switch season {
	case "winter":
		return s.Winter, true
	case "spring":
		return s.Spring, true
	case "summer":
		return s.Summer, true
	case "fall", "autumn":
		return s.Fall, true
	}
	return 0, false
}
