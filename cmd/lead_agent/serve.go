package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/leadscout/internal/agent"
	"github.com/jonathan/leadscout/internal/config"
	"github.com/jonathan/leadscout/internal/server"
)

var (
	serveConfigPath string
	serveAddr       string
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running lead research queries.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed progress information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}
	if err := cfg.Validate(); err != nil {
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

	return server.New(a, server.Config{Addr: cfg.Addr}).Start()
}
