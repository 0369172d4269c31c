package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/transform"
	"github.com/jonathan/resume-pdf/internal/validation"
	"github.com/spf13/cobra"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Build the layout-neutral document from a résumé",
	Long:  "Validates a résumé payload and writes the ordered element sequence the renderer draws, as JSON.",
	RunE:  runTransform,
}

var (
	transformInput  string
	transformOrder  string
	transformOutput string
)

func init() {
	transformCmd.Flags().StringVarP(&transformInput, "in", "i", "", "Path to résumé JSON file (required)")
	transformCmd.Flags().StringVar(&transformOrder, "order", "", "Comma-separated section order (overrides the payload's sectionOrder)")
	transformCmd.Flags().StringVarP(&transformOutput, "out", "o", "", "Path to output document JSON file (defaults to stdout)")

	if err := transformCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(transformCmd)
}

func runTransform(_ *cobra.Command, _ []string) error {
	data, err := readInput(transformInput)
	if err != nil {
		return err
	}

	resume, result, err := validation.Decode(data, validation.DefaultLimits())
	if err != nil {
		return err
	}
	if !result.IsValid {
		observability.NewPrinter(os.Stderr).PrintValidation(result)
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}

	doc := transform.Transform(resume, splitOrder(transformOrder))

	jsonOutput, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if transformOutput == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}
	if err := os.WriteFile(transformOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	observability.NewPrinter(os.Stdout).PrintDocument(doc)
	fmt.Printf("Document written to %s\n", transformOutput)
	return nil
}
