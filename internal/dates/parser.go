// Package dates recognizes date ranges in free resume text and resolves them
// to canonical (year, month) pairs.
package dates

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Surface grammars for single date tokens, highest priority first.
// Alternation order matters: Go regexp prefers earlier alternatives, so
// "March 2021" is consumed as month-year before the bare "2021" can match.
const (
	monthToken   = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{4}`
	seasonToken  = `(?:winter|spring|summer|fall|autumn)\s+\d{4}`
	numericToken = `\d{1,2}[/-]\d{4}`
	yearToken    = `\d{4}`
	openToken    = `(?:present|current|now|ongoing)`
)

const (
	startGroup = `(?P<start>` + monthToken + `|` + seasonToken + `|` + numericToken + `|` + yearToken + `)`
	endGroup   = `(?P<end>` + openToken + `|` + monthToken + `|` + seasonToken + `|` + numericToken + `|` + yearToken + `)`

	// Dash and arrow separators bind tightly; word separators require
	// surrounding whitespace so they cannot glue onto adjacent words.
	separator = `(?:\s*(?:[-–—−]+|→|->|=>)\s*|\s+(?:to|until|through|thru)\s+)`
)

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Range is one recognized date range within a line, with the byte span of
// the full match so callers can derive labels from the surrounding text.
type Range struct {
	Start     types.DatePoint
	End       types.DatePoint
	SpanStart int
	SpanEnd   int
}

// Config customizes parser behavior.
type Config struct {
	// Seasons maps season names to months. Zero value uses DefaultSeasonPolicy.
	Seasons SeasonPolicy
}

// Parser recognizes date ranges under a fixed grammar and season policy.
// Safe for concurrent use.
type Parser struct {
	rangeRE  *regexp.Regexp
	tokenRE  *regexp.Regexp
	startIdx int
	endIdx   int
	seasons  SeasonPolicy
}

// NewParser creates a Parser. A zero Config selects the default season policy.
func NewParser(cfg Config) *Parser {
	seasons := cfg.Seasons
	if seasons == (SeasonPolicy{}) {
		seasons = DefaultSeasonPolicy()
	}

	rangeRE := regexp.MustCompile(`(?i)\b` + startGroup + separator + endGroup + `\b`)
	tokenRE := regexp.MustCompile(`(?i)\b(?:` + monthToken + `|` + seasonToken + `|` + numericToken + `|` + yearToken + `|` + openToken + `)\b`)

	return &Parser{
		rangeRE:  rangeRE,
		tokenRE:  tokenRE,
		startIdx: rangeRE.SubexpIndex("start"),
		endIdx:   rangeRE.SubexpIndex("end"),
		seasons:  seasons,
	}
}

// ParseRanges returns every non-overlapping date range found in one line, in
// order of appearance. A lone date without separator and end token is not a
// range. Unresolvable fragments are skipped, never reported as errors; the
// function is total over any input.
func (p *Parser) ParseRanges(line string) []Range {
	matches := p.rangeRE.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}

	ranges := make([]Range, 0, len(matches))
	for _, m := range matches {
		startTok := line[m[2*p.startIdx]:m[2*p.startIdx+1]]
		endTok := line[m[2*p.endIdx]:m[2*p.endIdx+1]]

		start, ok := p.resolve(startTok, false)
		if !ok {
			continue
		}
		end, ok := p.resolve(endTok, true)
		if !ok {
			continue
		}

		ranges = append(ranges, Range{
			Start:     start,
			End:       end,
			SpanStart: m[0],
			SpanEnd:   m[1],
		})
	}
	return ranges
}

// StripDateTokens removes all date and open-ended tokens from a string.
// Used when deriving period labels from text around a matched range.
func (p *Parser) StripDateTokens(s string) string {
	return p.tokenRE.ReplaceAllString(s, "")
}

// resolve converts one matched token into a DatePoint. isEnd selects
// end-of-range semantics: a bare year means December as an end but January
// as a start, and open-ended tokens are only meaningful as ends.
func (p *Parser) resolve(token string, isEnd bool) (types.DatePoint, bool) {
	tok := strings.ToLower(strings.TrimSpace(token))

	switch tok {
	case "present", "current", "now", "ongoing":
		if !isEnd {
			return types.DatePoint{}, false
		}
		return types.OpenEnded(), true
	}

	// Month-name or season + year: two whitespace-separated fields.
	if fields := strings.Fields(tok); len(fields) == 2 {
		year, err := strconv.Atoi(fields[1])
		if err != nil {
			return types.DatePoint{}, false
		}
		name := strings.TrimSuffix(fields[0], ".")
		if month, ok := p.seasons.month(name); ok {
			return newPoint(year, month)
		}
		if len(name) >= 3 {
			if month, ok := monthIndex[name[:3]]; ok {
				return newPoint(year, month)
			}
		}
		return types.DatePoint{}, false
	}

	// Numeric month/year: "03/2021" or "3-2021".
	if i := strings.IndexAny(tok, "/-"); i > 0 {
		month, merr := strconv.Atoi(tok[:i])
		year, yerr := strconv.Atoi(tok[i+1:])
		if merr != nil || yerr != nil {
			return types.DatePoint{}, false
		}
		return newPoint(year, month)
	}

	// Bare four-digit year. The asymmetry is deliberate: a bare-year start
	// means January, a bare-year end means end of that year, otherwise
	// "2019 - 2019" style ranges would collapse gaps to zero.
	if year, err := strconv.Atoi(tok); err == nil {
		if isEnd {
			return newPoint(year, 12)
		}
		return newPoint(year, 1)
	}

	return types.DatePoint{}, false
}

func newPoint(year, month int) (types.DatePoint, bool) {
	dp, err := types.NewDatePoint(year, month)
	if err != nil {
		return types.DatePoint{}, false
	}
	return dp, true
}
