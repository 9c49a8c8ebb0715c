// Package analysis composes the text normalizer, capability extractor, date
// parser, period builder, and gap analyzer into one document analysis entry
// point.
package analysis

import (
	"context"
	"log/slog"

	"github.com/jonathan/resume-matcher/internal/capabilities"
	"github.com/jonathan/resume-matcher/internal/dates"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/timeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer holds the collaborators one analysis needs. Construct it once at
// process start and pass it where needed; there is no hidden process-wide
// state.
type Analyzer struct {
	extractor *capabilities.Extractor
	builder   *timeline.Builder
	locator   Locator
	logger    *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLocator sets the location-extraction collaborator.
func WithLocator(locator Locator) Option {
	return func(a *Analyzer) {
		a.locator = locator
	}
}

// WithDateConfig replaces the default date grammar configuration.
func WithDateConfig(cfg dates.Config) Option {
	return func(a *Analyzer) {
		a.builder = timeline.NewBuilder(dates.NewParser(cfg))
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Analyzer. A nil extractor is valid: capability extraction
// then degrades to the empty set, matching the miner-unavailable behavior.
func New(extractor *capabilities.Extractor, opts ...Option) *Analyzer {
	if extractor == nil {
		extractor = capabilities.NewExtractor(nil)
	}
	a := &Analyzer{
		extractor: extractor,
		builder:   timeline.NewBuilder(nil),
		locator:   HeuristicLocator{},
		logger:    slog.Default().With("component", "analyzer"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline over one document's text. Empty or
// unparseable input is valid and yields an empty result, never an error.
func (a *Analyzer) Analyze(ctx context.Context, text string) types.AnalysisResult {
	lines := ingestion.Lines(text)
	normalized := ingestion.Normalize(text)

	capabilitySet := a.extractor.Extract(ctx, normalized)

	education, experience := timeline.Split(a.builder.Build(lines))

	result := types.AnalysisResult{
		Capabilities:           capabilitySet,
		Education:              education,
		Experience:             experience,
		EducationGaps:          timeline.Gaps(education),
		ExperienceGaps:         timeline.Gaps(experience),
		EducationToFirstJobGap: timeline.EducationToFirstJobGap(education, experience),
	}
	if a.locator != nil {
		result.Location = a.locator.Locate(lines)
	}

	a.logger.Debug("analyzed document",
		"capabilities", capabilitySet.Len(),
		"education_periods", len(education),
		"experience_periods", len(experience))

	return result
}
