package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCapabilityKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "Python", "python"},
		{"Strips spaces", "machine learning", "machinelearning"},
		{"Strips punctuation", "Node.js", "nodejs"},
		{"Strips symbols", "CI/CD", "cicd"},
		{"Keeps digits", "HTML5", "html5"},
		{"Empty string", "", ""},
		{"Only punctuation", "++", ""},
		{"Mixed unicode", "Café Ops", "caféops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCapabilityKey(tt.input))
		})
	}
}

func TestNormalizeCapabilityKeyIdempotent(t *testing.T) {
	inputs := []string{"Python", "Node.js", "machine learning", "C++", "", "SQL Server 2019"}
	for _, in := range inputs {
		once := NormalizeCapabilityKey(in)
		assert.Equal(t, once, NormalizeCapabilityKey(once), "normalization must be idempotent for %q", in)
	}
}

func TestCapabilitySetFirstSeenDisplay(t *testing.T) {
	set := NewCapabilitySet()
	set.Add("Machine Learning")
	set.Add("machine learning")
	set.Add("MACHINE-LEARNING")

	require.Equal(t, 1, set.Len())
	assert.True(t, set.Has("machinelearning"))
	assert.Equal(t, "Machine Learning", set.Display("machinelearning"), "first-seen casing wins")
}

func TestCapabilitySetAddEmpty(t *testing.T) {
	set := NewCapabilitySet()
	key := set.Add("  ++ ")
	assert.Equal(t, "", key)
	assert.Equal(t, 0, set.Len())
}

func TestCapabilitySetKeysSorted(t *testing.T) {
	set := CapabilitySetOf("SQL", "Python", "AWS")
	assert.Equal(t, []string{"aws", "python", "sql"}, set.Keys())
	assert.Equal(t, []string{"AWS", "Python", "SQL"}, set.Displays())
}

func TestCapabilitySetJSONRoundTrip(t *testing.T) {
	set := CapabilitySetOf("Python", "Node.js", "python")

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `["Node.js","Python"]`, string(data))

	var decoded CapabilitySet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, set.Keys(), decoded.Keys())
}
