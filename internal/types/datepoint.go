package types

import (
	"fmt"
	"time"
)

// openEndedYear is the sentinel year marking an open-ended ("present") date.
// It compares later than any concrete year and is never rendered as a date.
const openEndedYear = 9999

// DatePoint is a resolved (year, month) pair or the open-ended sentinel.
// The zero value is not a valid DatePoint; use NewDatePoint or OpenEnded.
type DatePoint struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewDatePoint creates a concrete DatePoint. Month must be in [1,12].
func NewDatePoint(year, month int) (DatePoint, error) {
	if month < 1 || month > 12 {
		return DatePoint{}, fmt.Errorf("month out of range: %d", month)
	}
	if year < 1 || year >= openEndedYear {
		return DatePoint{}, fmt.Errorf("year out of range: %d", year)
	}
	return DatePoint{Year: year, Month: month}, nil
}

// MustDatePoint is NewDatePoint that panics on invalid input. For tests and
// literals known to be valid.
func MustDatePoint(year, month int) DatePoint {
	dp, err := NewDatePoint(year, month)
	if err != nil {
		panic(err)
	}
	return dp
}

// OpenEnded returns the sentinel DatePoint meaning "ongoing as of analysis time".
func OpenEnded() DatePoint {
	return DatePoint{Year: openEndedYear, Month: 12}
}

// IsOpenEnded reports whether the DatePoint is the open-ended sentinel.
func (d DatePoint) IsOpenEnded() bool {
	return d.Year >= openEndedYear
}

// IsZero reports whether the DatePoint is the unset zero value.
func (d DatePoint) IsZero() bool {
	return d.Year == 0 && d.Month == 0
}

// TotalMonths returns year*12 + (month-1), the month index used for gap
// arithmetic. The open-ended sentinel yields a value later than any
// concrete DatePoint.
func (d DatePoint) TotalMonths() int {
	return d.Year*12 + (d.Month - 1)
}

// Before reports whether d orders strictly before other. Open-ended compares
// later than any concrete DatePoint.
func (d DatePoint) Before(other DatePoint) bool {
	return d.TotalMonths() < other.TotalMonths()
}

// String renders "Jan 2006" for concrete dates and "Present" for the sentinel.
func (d DatePoint) String() string {
	if d.IsOpenEnded() {
		return "Present"
	}
	return time.Date(d.Year, time.Month(d.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}
