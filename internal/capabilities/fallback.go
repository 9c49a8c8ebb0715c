package capabilities

import (
	"fmt"
	"strings"
	"unicode"
)

// FallbackPolicy produces capability candidates when the external miner is
// unavailable. Which heuristic counts a token as a capability is a policy
// choice, so it is swappable configuration rather than a hard-coded rule.
type FallbackPolicy interface {
	Extract(text string) []string
}

// NewFallbackPolicy resolves a policy by configuration name:
// "none", "tokens", or "capitalized".
func NewFallbackPolicy(name string) (FallbackPolicy, error) {
	switch name {
	case "", "none":
		return NoFallback{}, nil
	case "tokens":
		return TokenFallback{MinLength: 3}, nil
	case "capitalized":
		return CapitalizedFallback{}, nil
	default:
		return nil, fmt.Errorf("unknown fallback policy: %q", name)
	}
}

// NoFallback yields no capabilities. This is the default: a missing miner
// surfaces as an observable "zero capabilities found" outcome.
type NoFallback struct{}

// Extract returns nil for any input.
func (NoFallback) Extract(string) []string { return nil }

// fallbackStopWords filters common English words that add noise to token
// extraction.
var fallbackStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "such": true,
	"strong": true, "years": true, "experience": true, "skills": true,
}

// TokenFallback extracts stopword-filtered lowercase tokens. Tech suffixes
// like "c++", "c#", and "node.js" survive because + # . count as word
// characters.
type TokenFallback struct {
	// MinLength is the minimum rune count for a token. Zero means 3.
	MinLength int
}

// Extract tokenizes text into candidate capability tokens in order of first
// appearance.
func (f TokenFallback) Extract(text string) []string {
	minLen := f.MinLength
	if minLen <= 0 {
		minLen = 3
	}

	var tokens []string
	seen := make(map[string]bool)
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) < minLen || fallbackStopWords[w] || seen[w] {
			return
		}
		seen[w] = true
		tokens = append(tokens, w)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// CapitalizedFallback extracts capitalized tokens that do not begin a
// sentence, a rough proper-noun heuristic for product and tool names.
type CapitalizedFallback struct{}

// Extract returns capitalized mid-sentence words in order of first appearance.
func (CapitalizedFallback) Extract(text string) []string {
	var tokens []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		for i, f := range fields {
			if i == 0 {
				continue // sentence-initial capitals are not signal
			}
			trimmed := strings.TrimFunc(f, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
			if trimmed == "" || seen[trimmed] {
				continue
			}
			runes := []rune(trimmed)
			if !unicode.IsUpper(runes[0]) || len(runes) < 2 {
				continue
			}
			seen[trimmed] = true
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}
