// Package main provides the resume_pdf CLI for validating and rendering ATS-safe résumé PDFs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_pdf",
	Short: "ATS-safe résumé PDF renderer",
	Long:  "resume_pdf validates untrusted résumé JSON, builds a layout-neutral document from it and renders single-column PDFs that applicant tracking systems can parse.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
