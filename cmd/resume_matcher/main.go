// Package main provides the resume_matcher CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Analyze resumes and match them against job descriptions",
	Long: "resume_matcher extracts capabilities, education and employment timelines, " +
		"and gaps from resume documents, and scores a resume against one or more " +
		"job descriptions using embedding similarity and capability overlap.",
	PersistentPreRunE: loadSettings,
}

var (
	configPath string
	verbose    bool

	// settings is the merged file + default configuration. Flag values
	// override it per command.
	settings config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func loadSettings(_ *cobra.Command, _ []string) error {
	settings = config.DefaultConfig()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		settings = fileCfg.MergeWithDefaults(settings)
	}
	if verbose {
		settings.Verbose = true
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if settings.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
