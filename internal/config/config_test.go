package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"gemini_model": "gemini-2.0-flash",
		"fallback_policy": "tokens",
		"embedding_host": "http://localhost:11434/v1",
		"spring_month": 2,
		"semantic_weight": 0.75,
		"overlap_weight": 0.25,
		"min_score": 40,
		"sort_by": "matched_desc",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "tokens", cfg.FallbackPolicy)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, 2, cfg.SpringMonth)
	assert.Equal(t, 0.75, cfg.SemanticWeight)
	assert.Equal(t, 0.25, cfg.OverlapWeight)
	assert.Equal(t, 40.0, cfg.MinScore)
	assert.Equal(t, "matched_desc", cfg.SortBy)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"blended weights", func(c *Config) { c.SemanticWeight = 0.75; c.OverlapWeight = 0.25 }, false},
		{"weights not summing to one", func(c *Config) { c.SemanticWeight = 0.5; c.OverlapWeight = 0.3 }, true},
		{"unknown fallback policy", func(c *Config) { c.FallbackPolicy = "guess" }, true},
		{"spring month out of policy", func(c *Config) { c.SpringMonth = 4 }, true},
		{"negative pool size", func(c *Config) { c.PoolSize = -1 }, true},
		{"min score above range", func(c *Config) { c.MinScore = 101 }, true},
		{"unknown sort order", func(c *Config) { c.SortBy = "alphabetical" }, true},
		{"invalid embedding host", func(c *Config) { c.EmbeddingHost = "not a url" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{FallbackPolicy: "tokens", MinScore: 25}
	merged := cfg.MergeWithDefaults(DefaultConfig())

	// Explicit values survive
	assert.Equal(t, "tokens", merged.FallbackPolicy)
	assert.Equal(t, 25.0, merged.MinScore)

	// Unset values fill from defaults
	assert.Equal(t, "gemini-2.0-flash", merged.GeminiModel)
	assert.Equal(t, 3, merged.SpringMonth)
	assert.Equal(t, 1.0, merged.SemanticWeight)
	assert.Equal(t, 0.0, merged.OverlapWeight)
	assert.Equal(t, "score_desc", merged.SortBy)
}

func TestMergeWithDefaults_WeightsTravelAsPair(t *testing.T) {
	cfg := Config{SemanticWeight: 0.75, OverlapWeight: 0.25}
	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, 0.75, merged.SemanticWeight)
	assert.Equal(t, 0.25, merged.OverlapWeight)
}
