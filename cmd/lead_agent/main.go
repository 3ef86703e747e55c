// Package main provides the entry point for the lead research agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lead_agent",
	Short: "Company lead research agent",
	Long:  "lead_agent turns a free-text company query into an enriched company profile, engineering-leadership leads, and a briefing, via LLM-guided web research.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
