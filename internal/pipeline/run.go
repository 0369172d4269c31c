// Package pipeline runs a résumé payload through validation, transformation and rendering.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/transform"
	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/jonathan/resume-pdf/internal/validation"
)

// Step names reported through progress events
const (
	StepValidate  = "validate"
	StepTransform = "transform"
	StepRender    = "render"
)

// ErrInvalidResume is returned when the payload fails validation.
// The accumulated errors are on Result.Validation.
var ErrInvalidResume = errors.New("resume failed validation")

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step    string    `json:"step"`
	Message string    `json:"message"`
	RunID   uuid.UUID `json:"run_id"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for one run. Empty style names fall back to
// the payload's fontProfile and densityPreset, then to the defaults.
type Options struct {
	FontProfile   string
	DensityPreset string
	SectionOrder  []string
	Limits        validation.Limits
	Registry      *rendering.Registry
	OnProgress    ProgressCallback
}

// Result holds every stage output of a run. Stages after a failure are nil.
type Result struct {
	RunID      uuid.UUID
	Validation *validation.Result
	Resume     *types.Resume
	Document   *types.Document
	Style      rendering.StyleConfig
	Output     *rendering.Output
}

// renderHints are request-level keys carried next to the résumé sections
type renderHints struct {
	FontProfile   string `json:"fontProfile"`
	DensityPreset string `json:"densityPreset"`
}

func emitProgress(opts *Options, runID uuid.UUID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
	}
}

// Process validates, transforms and renders one JSON payload
func Process(data []byte, opts Options) (*Result, error) {
	res := &Result{RunID: uuid.New()}

	resume, vr, err := validation.Decode(data, opts.Limits)
	res.Validation = vr
	if err != nil {
		return res, err
	}
	if !vr.IsValid {
		emitProgress(&opts, res.RunID, StepValidate, fmt.Sprintf("found %d validation errors", len(vr.Errors)))
		return res, fmt.Errorf("%w: %w", ErrInvalidResume, vr.Err())
	}
	res.Resume = resume
	emitProgress(&opts, res.RunID, StepValidate, "payload is valid")

	style, err := resolveStyle(data, opts)
	if err != nil {
		return res, err
	}
	res.Style = style

	res.Document = transform.Transform(resume, opts.SectionOrder)
	emitProgress(&opts, res.RunID, StepTransform, fmt.Sprintf("built %d document elements", res.Document.Len()))

	out, err := rendering.Render(res.Document, style)
	if err != nil {
		return res, fmt.Errorf("render failed: %w", err)
	}
	res.Output = out
	emitProgress(&opts, res.RunID, StepRender, fmt.Sprintf("rendered %d page(s) with %s/%s", out.PageCount, style.Profile, style.Density))
	return res, nil
}

func resolveStyle(data []byte, opts Options) (rendering.StyleConfig, error) {
	registry := opts.Registry
	if registry == nil {
		registry = rendering.DefaultRegistry()
	}

	profile, density := opts.FontProfile, opts.DensityPreset
	if profile == "" || density == "" {
		// Validation has already checked both hints are strings
		var hints renderHints
		if err := json.Unmarshal(data, &hints); err != nil {
			return rendering.StyleConfig{}, fmt.Errorf("failed to read style hints: %w", err)
		}
		if profile == "" {
			profile = hints.FontProfile
		}
		if density == "" {
			density = hints.DensityPreset
		}
	}
	return registry.Lookup(profile, density)
}

// BatchInput is one named payload in a batch
type BatchInput struct {
	Name string
	Data []byte
}

// BatchItem is the outcome of one batch input
type BatchItem struct {
	Name   string
	Result *Result
	Err    error
}

// RenderBatch processes inputs concurrently. Each render owns its own state,
// so a failing input does not affect the others. The returned error is only
// set when ctx is cancelled. opts.OnProgress may be called concurrently.
func RenderBatch(ctx context.Context, inputs []BatchInput, opts Options) ([]BatchItem, error) {
	items := make([]BatchItem, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := Process(in.Data, opts)
			items[i] = BatchItem{Name: in.Name, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return items, fmt.Errorf("batch cancelled: %w", err)
	}
	return items, nil
}
