// Package capabilities extracts and normalizes capability mentions from free
// text behind a stable adapter contract.
package capabilities

import (
	"context"
	"log/slog"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Miner is the external capability-mining collaborator. Implementations may
// return duplicated, inconsistently cased strings; the adapter normalizes.
type Miner interface {
	// Mine returns zero or more raw capability strings found in text.
	Mine(ctx context.Context, text string) ([]string, error)
}

// Extractor wraps a Miner and degrades gracefully: a missing or failing miner
// yields the configured fallback (empty by default), never an error.
// Extraction failure is not fatal to the analysis pipeline.
type Extractor struct {
	miner    Miner
	fallback FallbackPolicy
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFallback sets the policy used when the miner is unavailable or fails.
func WithFallback(policy FallbackPolicy) Option {
	return func(e *Extractor) {
		e.fallback = policy
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates an Extractor around a miner. A nil miner is valid and
// routes every extraction through the fallback policy.
func NewExtractor(miner Miner, opts ...Option) *Extractor {
	e := &Extractor{
		miner:    miner,
		fallback: NoFallback{},
		logger:   slog.Default().With("component", "capability-extractor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract mines capability mentions from text and returns them as a
// normalized, deduplicated CapabilitySet. The first-seen casing of each
// capability is kept as its display form. Given identical text and a
// deterministic miner, the output is stable across calls.
func (e *Extractor) Extract(ctx context.Context, text string) types.CapabilitySet {
	if text == "" {
		return types.NewCapabilitySet()
	}

	raw, err := e.mine(ctx, text)
	if err != nil {
		e.logger.Warn("capability miner failed, using fallback", "err", err)
		raw = e.fallback.Extract(text)
	}

	return types.CapabilitySetOf(raw...)
}

func (e *Extractor) mine(ctx context.Context, text string) ([]string, error) {
	if e.miner == nil {
		return nil, ErrMinerUnavailable
	}
	return e.miner.Mine(ctx, text)
}
