package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one document into structured AnalysisResult JSON",
	Long: "Analyze a resume or job description (plain text or HTML) into structured " +
		"JSON: capabilities, education and experience periods, timeline gaps, and location.",
	RunE: runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeAPIKey     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to input document (.txt, .html) (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	text, err := readDocument(analyzeInputFile)
	if err != nil {
		return err
	}

	extractor, closer, err := newExtractor(ctx, settings, analyzeAPIKey)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}

	result := newAnalyzer(extractor, settings).Analyze(ctx, text)

	if settings.Verbose {
		observability.NewPrinter(os.Stderr).PrintAnalysis("DOCUMENT ANALYSIS", result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := validateOutput(schemas.AnalysisResultSchema, analyzeOutputFile); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully analyzed document\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)

	return nil
}

// validateOutput checks a written artifact against its schema. A schema that
// cannot be loaded degrades to a warning; an artifact that fails validation
// is an error.
func validateOutput(schemaRelPath, outputPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, outputPath); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	return nil
}
