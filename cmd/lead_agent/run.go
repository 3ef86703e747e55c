package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/leadscout/internal/agent"
	"github.com/jonathan/leadscout/internal/config"
	"github.com/jonathan/leadscout/internal/observability"
	"github.com/jonathan/leadscout/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run [query]",
	Short: "Run one lead research query end-to-end",
	Long: `Runs the full research chain for one query: company identification -> domain resolution -> enrichment -> lead search -> summary.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.ArbitraryArgs,
	RunE: runResearchCmd,
}

var (
	runConfigPath string
	runQuery      string
	runMaxResults int
	runVerbose    bool
	runJSON       bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runQuery, "query", "q", "", "Free-text query naming the target company")
	runCommand.Flags().IntVar(&runMaxResults, "max-results", 0, "Maximum web search results per step (1-10)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")
	runCommand.Flags().BoolVar(&runJSON, "json", false, "Emit the raw result envelope as JSON")

	rootCmd.AddCommand(runCommand)
}

func runResearchCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadRunConfig(cmd, args)
	if err != nil {
		return err
	}

	creds, err := config.LoadCredentials(&cfg)
	if err != nil {
		return err
	}

	a, err := agent.New(ctx, creds, agent.Options{
		MaxSearchResults: cfg.MaxResults,
		Verbose:          cfg.Verbose,
	})
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	result, err := a.Run(ctx, cfg.Query)
	if err != nil {
		return err
	}

	return printResult(os.Stdout, result, cfg)
}

// loadRunConfig merges the config file, explicit flags, and positional args
// into one effective configuration. Flags win over the file.
func loadRunConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// CLI overrides, applied only when the flag was explicitly set
	if cmd.Flags().Changed("query") {
		cfg.Query = runQuery
	}
	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults = runMaxResults
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("json") {
		cfg.JSONOutput = runJSON
	}

	// A bare positional query is the common invocation
	if cfg.Query == "" && len(args) > 0 {
		cfg.Query = strings.Join(args, " ")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Query == "" {
		return cfg, fmt.Errorf("a query is required (positional argument, --query, or config file)")
	}

	return cfg, nil
}

// printResult renders the envelope for the terminal. Failed research exits
// non-zero so scripts can distinguish outcomes.
func printResult(out io.Writer, result *types.Result, cfg config.Config) error {
	if cfg.JSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("research failed: %s", result.Error)
		}
		return nil
	}

	if !result.Success {
		return fmt.Errorf("research failed [%s]: %s", result.Error, result.Message)
	}

	if cfg.Verbose {
		p := observability.NewPrinter(out)
		p.PrintCompany(result.CompanyData)
		p.PrintLeads(result.Leads)
		p.PrintSummary(result.Summary)
		return nil
	}

	_, _ = fmt.Fprintln(out, result.Summary)
	return nil
}
