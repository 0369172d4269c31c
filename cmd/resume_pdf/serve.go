package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-pdf/internal/config"
	"github.com/jonathan/resume-pdf/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that validates and renders résumés. Render history is kept when DATABASE_URL is set.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to config JSON file")
	rootCmd.AddCommand(serveCmd)
}

func serverConfig() (server.Config, error) {
	cfg, err := loadConfig(serveConfig)
	if err != nil {
		return server.Config{}, err
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return server.Config{}, err
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	return server.Config{
		Port:        merged.Port,
		DatabaseURL: merged.DatabaseURL,
		Limits:      merged.Limits(),
	}, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := serverConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
