package timeline

import "github.com/jonathan/resume-matcher/internal/types"

// Gaps computes the inter-period gaps in months for a start-sorted sequence
// of same-category periods. Only strictly positive gaps are reported;
// overlapping or back-to-back periods emit nothing. An open-ended period has
// no chronological successor, so it never produces a gap.
func Gaps(periods []types.Period) []types.Gap {
	var gaps []types.Gap
	for i := 0; i+1 < len(periods); i++ {
		cur, next := periods[i], periods[i+1]
		if cur.End.IsOpenEnded() || next.Start.IsOpenEnded() {
			continue
		}
		months := next.Start.TotalMonths() - cur.End.TotalMonths()
		if months >= 1 {
			gaps = append(gaps, types.Gap{After: cur, Before: next, Months: months})
		}
	}
	return gaps
}

// EducationToFirstJobGap returns the months between the end of the last
// education period and the start of the first employment period, clamped to
// zero when they overlap. Returns nil when either sequence is empty.
// Ties pick the earliest input entry (stable).
func EducationToFirstJobGap(education, experience []types.Period) *int {
	if len(education) == 0 || len(experience) == 0 {
		return nil
	}

	lastEdu := education[0]
	for _, p := range education[1:] {
		if lastEdu.End.Before(p.End) {
			lastEdu = p
		}
	}

	firstExp := experience[0]
	for _, p := range experience[1:] {
		if p.Start.Before(firstExp.Start) {
			firstExp = p
		}
	}

	months := firstExp.Start.TotalMonths() - lastEdu.End.TotalMonths()
	if months < 0 {
		months = 0
	}
	return &months
}
