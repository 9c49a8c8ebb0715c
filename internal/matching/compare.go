// Package matching computes matched and missing capability sets between a
// candidate and a requirement document, and blends capability overlap with a
// semantic-similarity signal into a single match percentage.
package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights controls the score blend between the semantic-similarity signal
// and raw capability overlap. The two encountered policies are pure semantic
// and a 0.75/0.25 blend; neither is hard-coded.
type Weights struct {
	Semantic float64 `json:"semantic"`
	Overlap  float64 `json:"overlap"`
}

// DefaultWeights scores on semantic similarity alone.
func DefaultWeights() Weights {
	return Weights{Semantic: 1.0}
}

// BlendedWeights is the 75/25 semantic/overlap policy.
func BlendedWeights() Weights {
	return Weights{Semantic: 0.75, Overlap: 0.25}
}

// Validate checks that weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	if w.Semantic < 0 || w.Overlap < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	const epsilon = 1e-9
	if sum := w.Semantic + w.Overlap; sum < 1-epsilon || sum > 1+epsilon {
		return fmt.Errorf("weights must sum to 1, got %.4f", sum)
	}
	return nil
}

// Match partitions the requirement's capabilities into matched and missing
// against the candidate's. A requirement key counts as matched when some
// candidate key contains it or is contained by it — deliberately permissive
// to tolerate free-text extraction noise. Display forms come from the
// requirement side.
func Match(candidate, requirement types.CapabilitySet) (matched, missing types.CapabilitySet) {
	matched = types.NewCapabilitySet()
	missing = types.NewCapabilitySet()

	candidateKeys := candidate.Keys()
	for _, reqKey := range requirement.Keys() {
		if containsAny(candidateKeys, reqKey) {
			matched.Add(requirement.Display(reqKey))
		} else {
			missing.Add(requirement.Display(reqKey))
		}
	}
	return matched, missing
}

// containsAny reports whether any candidate key matches reqKey by two-way
// substring containment.
func containsAny(candidateKeys []string, reqKey string) bool {
	for _, r := range candidateKeys {
		if strings.Contains(r, reqKey) || strings.Contains(reqKey, r) {
			return true
		}
	}
	return false
}

// Jaccard returns |keys(a) ∩ keys(b)| / |keys(a) ∪ keys(b)|, and 0 when both
// sets are empty.
func Jaccard(a, b types.CapabilitySet) float64 {
	if a.Len() == 0 && b.Len() == 0 {
		return 0
	}

	intersection := 0
	for _, k := range a.Keys() {
		if b.Has(k) {
			intersection++
		}
	}
	union := a.Len() + b.Len() - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Score blends the semantic similarity (in [0,1]) with capability overlap
// into a match percentage in [0,100].
func Score(candidate, requirement types.CapabilitySet, similarity float64, w Weights) float64 {
	score := 100 * (w.Semantic*similarity + w.Overlap*Jaccard(candidate, requirement))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Compare produces one MatchResult from two capability sets and a
// pre-computed semantic similarity. Identity and pass-through fields are the
// caller's concern.
func Compare(candidate, requirement types.CapabilitySet, similarity float64, w Weights) types.MatchResult {
	matched, missing := Match(candidate, requirement)
	return types.MatchResult{
		Score:   Score(candidate, requirement, similarity, w),
		Matched: matched,
		Missing: missing,
	}
}
