// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Capability extraction
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key (GEMINI_API_KEY env wins)
	GeminiModel    string `json:"gemini_model,omitempty"`    // Gemini model for capability mining
	FallbackPolicy string `json:"fallback_policy,omitempty" validate:"omitempty,oneof=none tokens capitalized"` // Applied when the miner is unavailable

	// Embeddings
	EmbeddingHost  string `json:"embedding_host,omitempty" validate:"omitempty,url"` // OpenAI-compatible embeddings endpoint
	EmbeddingModel string `json:"embedding_model,omitempty"`                         // Embedding model name
	Offline        bool   `json:"offline,omitempty"`                                 // Use the deterministic local embedder

	// Date grammar
	SpringMonth int `json:"spring_month,omitempty" validate:"omitempty,oneof=2 3"` // Month a bare "Spring" resolves to

	// Scoring
	SemanticWeight float64 `json:"semantic_weight,omitempty" validate:"gte=0,lte=1"` // Weight of embedding similarity
	OverlapWeight  float64 `json:"overlap_weight,omitempty" validate:"gte=0,lte=1"`  // Weight of capability overlap

	// Batch behavior
	PoolSize   int     `json:"pool_size,omitempty" validate:"gte=0"` // Concurrent comparisons (0 = NumCPU)
	MinScore   float64 `json:"min_score,omitempty" validate:"gte=0,lte=100"`
	MinMatched int     `json:"min_matched,omitempty" validate:"gte=0"`
	SortBy     string  `json:"sort_by,omitempty" validate:"omitempty,oneof=score_desc score_asc matched_desc matched_asc"`

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// DefaultConfig returns the configuration used when no file or flags override
// it: pure semantic scoring, standard season months, no miner fallback.
func DefaultConfig() Config {
	return Config{
		GeminiModel:    "gemini-2.0-flash",
		FallbackPolicy: "none",
		EmbeddingModel: "nomic-embed-text",
		SpringMonth:    3,
		SemanticWeight: 1.0,
		OverlapWeight:  0.0,
		SortBy:         "score_desc",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// The validator checks each weight's range; the pair must also sum to 1
	// when either is set explicitly.
	if c.SemanticWeight != 0 || c.OverlapWeight != 0 {
		if sum := c.SemanticWeight + c.OverlapWeight; math.Abs(sum-1.0) > 1e-9 {
			return fmt.Errorf("config error: 'semantic_weight' and 'overlap_weight' must sum to 1, got %.4f", sum)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.FallbackPolicy == "" {
		result.FallbackPolicy = defaults.FallbackPolicy
	}
	if result.EmbeddingHost == "" {
		result.EmbeddingHost = defaults.EmbeddingHost
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.SortBy == "" {
		result.SortBy = defaults.SortBy
	}

	// Int fields: use default if zero
	if result.SpringMonth == 0 {
		result.SpringMonth = defaults.SpringMonth
	}
	if result.PoolSize == 0 {
		result.PoolSize = defaults.PoolSize
	}
	if result.MinMatched == 0 {
		result.MinMatched = defaults.MinMatched
	}

	// Weights travel as a pair: an unset pair takes both defaults
	if result.SemanticWeight == 0 && result.OverlapWeight == 0 {
		result.SemanticWeight = defaults.SemanticWeight
		result.OverlapWeight = defaults.OverlapWeight
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
