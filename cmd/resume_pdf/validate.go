package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a résumé JSON file",
	Long:  "Checks a résumé payload against the size, depth, field and content-safety rules and prints every failure. Exits non-zero when the payload is invalid.",
	RunE:  runValidate,
}

var (
	validateInput   string
	validateSchema  string
	validateConfig  string
	validateVerbose bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to résumé JSON file (required)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to a JSON Schema to check first (defaults to the embedded résumé schema)")
	validateCmd.Flags().StringVarP(&validateConfig, "config", "c", "", "Path to config JSON file with limits")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print the schema check and a summary box")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := readInput(validateInput)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(validateConfig)
	if err != nil {
		return err
	}

	result := validation.ValidateBytes(data, cfg.Limits())
	if !result.IsValid || validateVerbose {
		observability.NewPrinter(os.Stdout).PrintValidation(result)
	}
	if !result.IsValid {
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}

	// The schema is a structural cross-check; the validator above is authoritative.
	var schemaErr error
	if validateSchema != "" {
		schemaErr = schemas.ValidateBytes(validateSchema, data)
	} else {
		schemaErr = schemas.ValidateResume(data)
	}
	if schemaErr != nil {
		return schemaErr
	}
	if validateVerbose {
		fmt.Println("Schema check passed")
	}

	fmt.Printf("Validation passed: %s\n", validateInput)
	return nil
}
