package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ishaan-vashist/YC-News-validator/internal/adapter/chromedp_renderer"
	"github.com/ishaan-vashist/YC-News-validator/internal/entity"
	"github.com/ishaan-vashist/YC-News-validator/internal/usecase"
	"github.com/ishaan-vashist/YC-News-validator/pkg/config"
	"github.com/ishaan-vashist/YC-News-validator/pkg/logger"
	"github.com/ishaan-vashist/YC-News-validator/pkg/metrics"
)

var validateCount int

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run a single scrape-and-validate pass and print a report",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().IntVar(&validateCount, "count", 100, "Number of articles to collect")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	// Logs go to stderr so stdout carries only the report.
	logger.Init(os.Stderr, logger.ParseLevel(cfg.LogLevel))
	metrics.Init()

	renderer := chromedp_renderer.New(cfg.Headless, cfg.PageLoadTimeout)
	defer renderer.Close()

	coordinator := usecase.NewCoordinator(
		renderer,
		usecase.NewWalker(usecase.NewExtractor()),
		usecase.NewValidator(),
		cfg.SourceURL,
	)

	result, err := coordinator.Run(context.Background(), validateCount)
	if err != nil {
		return fmt.Errorf("validation run failed: %w", err)
	}

	printReport(os.Stdout, result)
	return nil
}

func printReport(w io.Writer, result *entity.RunResult) {
	divider := strings.Repeat("=", 60)

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "HACKER NEWS ARTICLE VALIDATION RESULTS")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Total Articles Analyzed: %d\n", result.Validation.TotalArticles)
	fmt.Fprintf(w, "Valid Chronological Transitions: %d\n", result.Validation.ValidTransitions)
	fmt.Fprintf(w, "Sorting Issues Found: %d\n", len(result.Validation.Issues))
	fmt.Fprintf(w, "Pages Visited: %d\n", result.TotalPages)

	if result.Validation.IsValid {
		fmt.Fprintln(w, "\nSUCCESS: all articles are sorted from newest to oldest")
	} else {
		fmt.Fprintln(w, "\nISSUES DETECTED:")
		for i, issue := range result.Validation.Issues {
			fmt.Fprintf(w, "\n%d. Position %d:\n", i+1, issue.Position)
			fmt.Fprintf(w, "   Current: #%d - %s - %s\n", issue.Current.Rank, issue.Current.Time, issue.Current.Title)
			fmt.Fprintf(w, "   Next:    #%d - %s - %s\n", issue.Next.Rank, issue.Next.Time, issue.Next.Title)
			fmt.Fprintln(w, "   Problem: next article is newer than current article")
		}
	}

	fmt.Fprintln(w, "\n"+divider)
	fmt.Fprintln(w, "First 10 Articles Preview:")
	fmt.Fprintln(w, divider)
	for i, article := range result.Articles {
		if i == 10 {
			break
		}
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, article.RawTime, article.Title)
	}
}
