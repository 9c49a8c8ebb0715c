package matching

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMatchContainment(t *testing.T) {
	candidate := types.CapabilitySetOf("pythonprogramming")
	requirement := types.CapabilitySetOf("python", "sql")

	matched, missing := Match(candidate, requirement)

	assert.Equal(t, []string{"python"}, matched.Keys(), "substring containment matches")
	assert.Equal(t, []string{"sql"}, missing.Keys())
}

func TestMatchBothDirections(t *testing.T) {
	// Containment is symmetric: a short candidate key matches a longer
	// requirement key too.
	candidate := types.CapabilitySetOf("sql")
	requirement := types.CapabilitySetOf("SQL Server")

	matched, missing := Match(candidate, requirement)
	assert.Equal(t, 1, matched.Len())
	assert.Equal(t, 0, missing.Len())
}

func TestMatchManyToOne(t *testing.T) {
	// One candidate key may satisfy several requirement keys; the predicate
	// only needs existence.
	candidate := types.CapabilitySetOf("amazon web services")
	requirement := types.CapabilitySetOf("AWS... no", "web services", "amazon")

	matched, _ := Match(candidate, requirement)
	assert.True(t, matched.Has("webservices"))
	assert.True(t, matched.Has("amazon"))
}

func TestMatchDisplayFormsFromRequirement(t *testing.T) {
	candidate := types.CapabilitySetOf("Kubernetes Administration")
	requirement := types.CapabilitySetOf("KUBERNETES")

	matched, _ := Match(candidate, requirement)
	assert.Equal(t, "KUBERNETES", matched.Display("kubernetes"), "requirement-side casing reported")
}

func TestMatchEmptySets(t *testing.T) {
	matched, missing := Match(types.NewCapabilitySet(), types.NewCapabilitySet())
	assert.Equal(t, 0, matched.Len())
	assert.Equal(t, 0, missing.Len())
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name     string
		a        types.CapabilitySet
		b        types.CapabilitySet
		expected float64
	}{
		{"Both empty", types.NewCapabilitySet(), types.NewCapabilitySet(), 0},
		{"Identical", types.CapabilitySetOf("go", "sql"), types.CapabilitySetOf("go", "sql"), 1},
		{"Half overlap", types.CapabilitySetOf("go", "sql", "aws"), types.CapabilitySetOf("go", "sql", "gcp"), 0.5},
		{"Disjoint", types.CapabilitySetOf("go"), types.CapabilitySetOf("rust"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Jaccard(tt.a, tt.b), 1e-9)
		})
	}
}

func TestScoreBlend(t *testing.T) {
	// semantic 0.80, jaccard 0.50, weights 0.75/0.25 → 72.5
	candidate := types.CapabilitySetOf("go", "sql", "aws")
	requirement := types.CapabilitySetOf("go", "sql", "gcp")

	score := Score(candidate, requirement, 0.80, Weights{Semantic: 0.75, Overlap: 0.25})
	assert.InDelta(t, 72.5, score, 1e-9)
}

func TestScoreSemanticOnly(t *testing.T) {
	score := Score(types.NewCapabilitySet(), types.NewCapabilitySet(), 0.80, DefaultWeights())
	assert.InDelta(t, 80.0, score, 1e-9)
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{"Default", DefaultWeights(), false},
		{"Blended", BlendedWeights(), false},
		{"Sum below one", Weights{Semantic: 0.5, Overlap: 0.3}, true},
		{"Sum above one", Weights{Semantic: 0.8, Overlap: 0.4}, true},
		{"Negative", Weights{Semantic: 1.5, Overlap: -0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
