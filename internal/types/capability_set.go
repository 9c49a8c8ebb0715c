// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"
)

// CapabilitySet is a set of normalized capability tokens. Each normalized key
// maps to exactly one display form: the first original string seen for that key.
type CapabilitySet struct {
	display map[string]string
}

// NewCapabilitySet creates an empty CapabilitySet.
func NewCapabilitySet() CapabilitySet {
	return CapabilitySet{display: make(map[string]string)}
}

// CapabilitySetOf creates a CapabilitySet from raw capability strings,
// normalizing and deduplicating them in input order.
func CapabilitySetOf(raw ...string) CapabilitySet {
	set := NewCapabilitySet()
	for _, r := range raw {
		set.Add(r)
	}
	return set
}

// NormalizeCapabilityKey lower-cases a capability string and strips all
// non-alphanumeric characters. The result is the set membership key.
// Normalization is idempotent.
func NormalizeCapabilityKey(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Add inserts a raw capability string. The first-seen original string for a
// normalized key is kept as the display form; later variants are dropped.
// Returns the normalized key, or empty string if the input normalizes to nothing.
func (cs *CapabilitySet) Add(raw string) string {
	key := NormalizeCapabilityKey(raw)
	if key == "" {
		return ""
	}
	if cs.display == nil {
		cs.display = make(map[string]string)
	}
	if _, exists := cs.display[key]; !exists {
		cs.display[key] = strings.TrimSpace(raw)
	}
	return key
}

// Has reports whether the normalized key is present in the set.
func (cs CapabilitySet) Has(key string) bool {
	_, ok := cs.display[key]
	return ok
}

// Display returns the display form for a normalized key, or empty string
// when the key is not present.
func (cs CapabilitySet) Display(key string) string {
	return cs.display[key]
}

// Keys returns the normalized keys in sorted order for deterministic iteration.
func (cs CapabilitySet) Keys() []string {
	keys := make([]string, 0, len(cs.display))
	for k := range cs.display {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Displays returns the display forms ordered by their normalized key.
func (cs CapabilitySet) Displays() []string {
	keys := cs.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, cs.display[k])
	}
	return out
}

// Len returns the number of distinct capabilities in the set.
func (cs CapabilitySet) Len() int {
	return len(cs.display)
}

// MarshalJSON encodes the set as a sorted array of display strings.
func (cs CapabilitySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(cs.Displays())
}

// UnmarshalJSON decodes an array of capability strings, re-normalizing them.
func (cs *CapabilitySet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*cs = CapabilitySetOf(raw...)
	return nil
}
