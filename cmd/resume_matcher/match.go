package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against one or more job descriptions",
	Long: "Analyze a resume and a batch of job descriptions, then score the resume " +
		"against each one using embedding similarity and capability overlap. " +
		"A job description that fails to process is reported as failed without " +
		"aborting the batch.",
	RunE: runMatch,
}

var (
	matchResumeFile string
	matchJDFiles    []string
	matchOutputFile string
	matchAPIKey     string
	matchMinScore   float64
	matchMinMatched int
	matchSortBy     string
	matchOffline    bool
	matchPoolSize   int
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume document (required)")
	matchCmd.Flags().StringArrayVarP(&matchJDFiles, "jd", "j", nil, "Path to a job description document (repeatable, required)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output report JSON file (default: stdout)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	matchCmd.Flags().Float64Var(&matchMinScore, "min-score", -1, "Drop results scoring below this value (0-100)")
	matchCmd.Flags().IntVar(&matchMinMatched, "min-matched", -1, "Drop results with fewer matched capabilities")
	matchCmd.Flags().StringVar(&matchSortBy, "sort-by", "", "Result order: score_desc, score_asc, matched_desc, matched_asc")
	matchCmd.Flags().BoolVar(&matchOffline, "offline", false, "Use the deterministic local embedder instead of an embedding service")
	matchCmd.Flags().IntVar(&matchPoolSize, "pool-size", 0, "Concurrent comparisons (0 = automatic)")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if len(matchJDFiles) == 0 {
		return fmt.Errorf("at least one --jd file is required")
	}

	ctx := context.Background()

	extractor, closer, err := newExtractor(ctx, settings, matchAPIKey)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}
	analyzer := newAnalyzer(extractor, settings)

	embedder, err := newEmbedder(settings, matchOffline)
	if err != nil {
		return err
	}
	cache := embedding.NewCache(embedder)

	// The candidate side is mandatory: without its text and vector there is
	// nothing to score against.
	resumeText, err := readDocument(matchResumeFile)
	if err != nil {
		return err
	}
	candidate := analyzer.Analyze(ctx, resumeText)
	candidateVector, err := cache.Embed(ctx, ingestion.Normalize(resumeText))
	if err != nil {
		return fmt.Errorf("failed to embed resume: %w", err)
	}

	// Each requirement slot is filled by exactly one goroutine. Read or
	// embedding failures land in the slot's Err and surface as a failed
	// result, so one bad job description never aborts the batch.
	requirements := make([]matching.Requirement, len(matchJDFiles))
	seen := make(map[string]bool, len(matchJDFiles))
	for i, jdPath := range matchJDFiles {
		requirements[i].ID = requirementID(jdPath, seen)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(4)
	for i, jdPath := range matchJDFiles {
		i, jdPath := i, jdPath
		group.Go(func() error {
			loadRequirement(groupCtx, analyzer, cache, jdPath, &requirements[i])
			return nil
		})
	}
	_ = group.Wait()

	sortBy, err := matching.ParseSortOrder(sortOrderName())
	if err != nil {
		return err
	}

	opts := matching.Options{
		Weights: matching.Weights{
			Semantic: settings.SemanticWeight,
			Overlap:  settings.OverlapWeight,
		},
		MinScore:   resolvedMinScore(),
		MinMatched: resolvedMinMatched(),
		SortBy:     sortBy,
		PoolSize:   resolvedPoolSize(),
	}

	report, err := matching.CompareMany(ctx, candidate, candidateVector, requirements, opts)
	if err != nil {
		return err
	}

	if settings.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintAnalysis("RESUME", candidate)
		printer.PrintReport(report)
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if matchOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(matchOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := validateOutput(schemas.MatchReportSchema, matchOutputFile); err != nil {
		return err
	}

	failed := 0
	for _, result := range report.Results {
		if result.Failed {
			failed++
		}
	}
	_, _ = fmt.Fprintf(os.Stdout, "Compared resume against %d job description(s), %d failed\n", len(matchJDFiles), failed)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", matchOutputFile)

	return nil
}

// loadRequirement reads, analyzes, and embeds one job description into the
// given requirement slot.
func loadRequirement(ctx context.Context, analyzer *analysis.Analyzer, cache *embedding.Cache, jdPath string, req *matching.Requirement) {
	text, err := readDocument(jdPath)
	if err != nil {
		req.Err = err
		return
	}

	req.Analysis = analyzer.Analyze(ctx, text)

	vector, err := cache.Embed(ctx, ingestion.Normalize(text))
	if err != nil {
		req.Err = fmt.Errorf("failed to embed %s: %w", jdPath, err)
		return
	}
	req.Vector = vector
}

func sortOrderName() string {
	if matchSortBy != "" {
		return matchSortBy
	}
	return settings.SortBy
}

func resolvedMinScore() float64 {
	if matchMinScore >= 0 {
		return matchMinScore
	}
	return settings.MinScore
}

func resolvedMinMatched() int {
	if matchMinMatched >= 0 {
		return matchMinMatched
	}
	return settings.MinMatched
}

func resolvedPoolSize() int {
	if matchPoolSize > 0 {
		return matchPoolSize
	}
	return settings.PoolSize
}

func requirementID(jdPath string, seen map[string]bool) string {
	base := strings.TrimSuffix(filepath.Base(jdPath), filepath.Ext(jdPath))
	if seen[base] {
		return jdPath
	}
	seen[base] = true
	return base
}
