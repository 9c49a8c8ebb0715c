package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/capabilities"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/dates"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingestion"
)

// readDocument loads one input document as plain text. URLs are fetched and
// cleaned with job-board-aware selectors; HTML files are reduced to their
// visible text first.
func readDocument(path string) (string, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return fetch.Document(context.Background(), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := ingestion.ExtractHTMLText(string(data))
		if err != nil {
			return "", fmt.Errorf("failed to extract text from HTML: %w", err)
		}
		return text, nil
	default:
		return string(data), nil
	}
}

// newExtractor builds the capability extractor from settings. A missing API
// key is not an error: extraction degrades to the configured fallback policy.
// The returned closer is non-nil when a miner connection was opened.
func newExtractor(ctx context.Context, cfg config.Config, apiKeyFlag string) (*capabilities.Extractor, func() error, error) {
	fallback, err := capabilities.NewFallbackPolicy(cfg.FallbackPolicy)
	if err != nil {
		return nil, nil, err
	}

	apiKey := apiKeyFlag
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return capabilities.NewExtractor(nil, capabilities.WithFallback(fallback)), nil, nil
	}

	miner, err := capabilities.NewGeminiMiner(ctx, apiKey, cfg.GeminiModel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create capability miner: %w", err)
	}
	extractor := capabilities.NewExtractor(miner, capabilities.WithFallback(fallback))
	return extractor, miner.Close, nil
}

// newEmbedder builds the embedding client from settings. Offline mode uses
// the deterministic local embedder.
func newEmbedder(cfg config.Config, offline bool) (embedding.Embedder, error) {
	if offline || cfg.Offline {
		return &embedding.MockEmbedder{}, nil
	}
	if cfg.EmbeddingHost == "" {
		return nil, fmt.Errorf("embedding host is required (set 'embedding_host' in config or use --offline)")
	}
	embedder, err := embedding.NewOpenAIEmbedder(cfg.EmbeddingHost, cfg.EmbeddingModel, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	return embedder, nil
}

// newAnalyzer wires the extractor and the configured date grammar.
func newAnalyzer(extractor *capabilities.Extractor, cfg config.Config) *analysis.Analyzer {
	seasons := dates.DefaultSeasonPolicy()
	if cfg.SpringMonth != 0 {
		seasons.Spring = cfg.SpringMonth
	}
	return analysis.New(extractor, analysis.WithDateConfig(dates.Config{Seasons: seasons}))
}
