package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-pdf/internal/config"
)

// splitOrder parses a comma-separated section order flag
func splitOrder(raw string) []string {
	if raw == "" {
		return nil
	}
	var keys []string
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// loadConfig reads and validates a config file. An empty path returns an
// empty config so that payload style hints still apply.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return data, nil
}
