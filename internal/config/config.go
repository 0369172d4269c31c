// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-pdf/internal/validation"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Style
	FontProfile   string   `json:"font_profile,omitempty" validate:"omitempty,oneof=sans serif mono"`
	DensityPreset string   `json:"density_preset,omitempty" validate:"omitempty,oneof=normal compact ultra-compact"`
	SectionOrder  []string `json:"section_order,omitempty" validate:"max=50,dive,oneof=contact summary experience education skills projects experienceProjects"`

	// Limits
	MaxSizeBytes    int `json:"max_size_bytes,omitempty" validate:"gte=0"`
	MaxDepth        int `json:"max_depth,omitempty" validate:"gte=0,lte=64"`
	MaxStringLength int `json:"max_string_length,omitempty" validate:"gte=0"`

	// Output and services
	OutputDir   string `json:"output_dir,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty" validate:"gte=0,lte=65535"`
	Verbose     bool   `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	limits := validation.DefaultLimits()
	return Config{
		FontProfile:     "sans",
		DensityPreset:   "normal",
		MaxSizeBytes:    limits.MaxSizeBytes,
		MaxDepth:        limits.MaxDepth,
		MaxStringLength: limits.MaxStringLength,
		OutputDir:       ".",
		Port:            8080,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Required values are not checked here; flags fill them after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", fieldPath(fe), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output_dir is not a directory: %s", c.OutputDir)
		}
	}
	return nil
}

// fieldPath strips the struct name from a namespace like "Config.section_order[1]"
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Bools cannot distinguish unset from false, so Verbose is never merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.FontProfile == "" {
		result.FontProfile = defaults.FontProfile
	}
	if result.DensityPreset == "" {
		result.DensityPreset = defaults.DensityPreset
	}
	if len(result.SectionOrder) == 0 {
		result.SectionOrder = defaults.SectionOrder
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MaxSizeBytes == 0 {
		result.MaxSizeBytes = defaults.MaxSizeBytes
	}
	if result.MaxDepth == 0 {
		result.MaxDepth = defaults.MaxDepth
	}
	if result.MaxStringLength == 0 {
		result.MaxStringLength = defaults.MaxStringLength
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

// Limits converts the configured ceilings into validator limits.
// Zero values keep the validator defaults.
func (c *Config) Limits() validation.Limits {
	limits := validation.DefaultLimits()
	if c.MaxSizeBytes > 0 {
		limits.MaxSizeBytes = c.MaxSizeBytes
	}
	if c.MaxDepth > 0 {
		limits.MaxDepth = c.MaxDepth
	}
	if c.MaxStringLength > 0 {
		limits.MaxStringLength = c.MaxStringLength
	}
	return limits
}
