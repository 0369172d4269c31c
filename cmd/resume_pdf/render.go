package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jonathan/resume-pdf/internal/config"
	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/pipeline"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one or more résumés to PDF",
	Long:  "Validates, transforms and renders each input concurrently. Prints the page count of every output and warns when a résumé overflows one page.",
	RunE:  runRender,
}

var (
	renderInputs  []string
	renderOutput  string
	renderOutDir  string
	renderFont    string
	renderDensity string
	renderOrder   string
	renderConfig  string
	renderVerbose bool
)

func init() {
	renderCmd.Flags().StringSliceVarP(&renderInputs, "in", "i", nil, "Path to résumé JSON file, repeatable (required)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output PDF file (single input only)")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", "", "Directory for output PDFs, named after each input")
	renderCmd.Flags().StringVar(&renderFont, "font", "", "Font profile: sans, serif or mono (overrides the payload)")
	renderCmd.Flags().StringVar(&renderDensity, "density", "", "Density preset: normal, compact or ultra-compact (overrides the payload)")
	renderCmd.Flags().StringVar(&renderOrder, "order", "", "Comma-separated section order (overrides the payload's sectionOrder)")
	renderCmd.Flags().StringVarP(&renderConfig, "config", "c", "", "Path to config JSON file")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print pipeline progress")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

// outputPath maps an input file to its PDF path
func outputPath(input, out, outDir string) string {
	if out != "" {
		return out
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+".pdf")
}

// checkOutputNames rejects inputs that would write to the same PDF
func checkOutputNames(inputs []string, outDir string) error {
	seen := make(map[string]string, len(inputs))
	for _, input := range inputs {
		path := outputPath(input, "", outDir)
		if prev, ok := seen[path]; ok {
			return fmt.Errorf("%s and %s both map to %s; rename one or render them separately", prev, input, path)
		}
		seen[path] = input
	}
	return nil
}

// renderOptions resolves flag values over the config file. Style names left
// empty fall back to each payload's own hints.
func renderOptions(cfg *config.Config) (pipeline.Options, string) {
	merged := cfg.MergeWithDefaults(config.Defaults())

	opts := pipeline.Options{
		FontProfile:   cfg.FontProfile,
		DensityPreset: cfg.DensityPreset,
		SectionOrder:  cfg.SectionOrder,
		Limits:        merged.Limits(),
	}
	if renderFont != "" {
		opts.FontProfile = renderFont
	}
	if renderDensity != "" {
		opts.DensityPreset = renderDensity
	}
	if order := splitOrder(renderOrder); order != nil {
		opts.SectionOrder = order
	}

	outDir := merged.OutputDir
	if renderOutDir != "" {
		outDir = renderOutDir
	}
	return opts, outDir
}

func runRender(_ *cobra.Command, _ []string) error {
	if renderOutput != "" && len(renderInputs) > 1 {
		return fmt.Errorf("--out accepts a single input; use --out-dir for %d inputs", len(renderInputs))
	}

	cfg, err := loadConfig(renderConfig)
	if err != nil {
		return err
	}
	opts, outDir := renderOptions(cfg)
	if renderVerbose || cfg.Verbose {
		var mu sync.Mutex
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Printf("[%s] %s: %s\n", e.RunID.String()[:8], e.Step, e.Message)
		}
	}

	inputs := make([]pipeline.BatchInput, 0, len(renderInputs))
	for _, path := range renderInputs {
		data, err := readInput(path)
		if err != nil {
			return err
		}
		inputs = append(inputs, pipeline.BatchInput{Name: path, Data: data})
	}

	if renderOutput == "" {
		if err := checkOutputNames(renderInputs, outDir); err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	items, err := pipeline.RenderBatch(ctx, inputs, opts)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", item.Name, firstLine(item.Err))
			if errors.Is(item.Err, pipeline.ErrInvalidResume) && item.Result != nil {
				observability.NewPrinter(os.Stderr).PrintValidation(item.Result.Validation)
			}
			continue
		}

		res := item.Result
		path := outputPath(item.Name, renderOutput, outDir)
		if err := os.WriteFile(path, res.Output.Bytes, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		printer.PrintRender(item.Name, res.Style, res.Output)
		fmt.Printf("✓ %s → %s (%d page(s))\n", item.Name, path, res.Output.PageCount)
		if res.Output.Overflows() {
			fmt.Fprintf(os.Stderr, "warning: %s overflows one page (%d pages)\n", item.Name, res.Output.PageCount)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d résumé(s) failed to render", failed, len(items))
	}
	return nil
}

func firstLine(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}
