package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hnvalidator",
	Short: "Scrapes Hacker News /newest and validates its chronological ordering",
	Long: "hnvalidator collects a fixed number of articles from the Hacker News " +
		"newest listing, normalizes their relative ages, and checks that the " +
		"sequence is ordered newest-first. It runs either as a one-shot CLI " +
		"report or as an HTTP API.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
