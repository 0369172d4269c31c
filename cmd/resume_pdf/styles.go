package main

import (
	"os"

	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List font profiles and density presets",
	RunE: func(_ *cobra.Command, _ []string) error {
		observability.NewPrinter(os.Stdout).PrintStyles(rendering.DefaultRegistry())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
