// Package render drives a composition from the store through scheduling
// and filter generation into a single engine job, mapping engine progress
// onto one 0-100 scale.
package render

import (
	"context"
	"fmt"
	"strconv"

	"github.com/blackmamba/compgraph/internal/ctxlog"
	"github.com/blackmamba/compgraph/internal/engine"
	"github.com/blackmamba/compgraph/internal/filtergen"
	"github.com/blackmamba/compgraph/internal/model"
	"github.com/blackmamba/compgraph/internal/scheduler"
	"github.com/blackmamba/compgraph/internal/store"
)

// Progress milestones on the 0-100 scale. Everything before the engine
// call is preparation; engine fractions fill the remaining span.
const (
	progressStart     = 0.0
	progressScheduled = 5.0
	progressPrepared  = 10.0
	progressDone      = 100.0
)

// EngineError wraps a failure reported by the engine; it matches
// model.ErrEngineFailure through errors.Is.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine failure: %v", e.Err)
}

func (e *EngineError) Unwrap() []error {
	return []error{model.ErrEngineFailure, e.Err}
}

// Options tune one render call.
type Options struct {
	// Quality picks the encoder settings; the zero value falls back to
	// medium.
	Quality Quality
	// SolidColor fills the synthetic base input used when the graph
	// references no media. The zero value renders opaque black.
	SolidColor model.Color
	// OnProgress receives percentages in [0, 100]. May be nil.
	OnProgress func(percent float64)
}

// Result reports a finished render.
type Result struct {
	OutputPath     string
	NodesProcessed int
	Settings       model.Settings
}

// Orchestrator turns stored compositions into engine jobs.
type Orchestrator struct {
	store *store.Store
	gen   *filtergen.Generator
	eng   engine.Engine
}

// New returns an orchestrator reading from st and rendering through eng.
func New(st *store.Store, gen *filtergen.Generator, eng engine.Engine) *Orchestrator {
	return &Orchestrator{store: st, gen: gen, eng: eng}
}

// Render compiles the composition and executes it as one engine job. The
// graph is read exactly once, before the engine call, so concurrent edits
// to the composition cannot alter a render already in flight.
func (o *Orchestrator) Render(ctx context.Context, compID, outputPath string, opts Options) (*Result, error) {
	report := func(p float64) {
		if opts.OnProgress != nil {
			opts.OnProgress(p)
		}
	}

	report(progressStart)
	comp, err := o.store.Get(compID)
	if err != nil {
		return nil, err
	}
	if len(comp.Nodes) == 0 {
		return nil, fmt.Errorf("composition '%s': %w", compID, model.ErrEmptyGraph)
	}

	order, err := scheduler.Order(comp)
	if err != nil {
		return nil, fmt.Errorf("scheduling composition '%s': %w", compID, err)
	}
	report(progressScheduled)

	prog := o.gen.Generate(comp, order)
	report(progressPrepared)

	inputs := prog.Inputs
	if len(inputs) == 0 {
		inputs = []engine.Input{syntheticInput(comp.Settings, opts.SolidColor)}
	}
	ctxlog.FromContext(ctx).Debug("program generated",
		"composition", compID,
		"nodes", prog.NodeCount,
		"inputs", len(inputs),
		"output_label", prog.OutputLabel)

	job := engine.Job{
		Inputs:      inputs,
		FilterGraph: prog.Expression,
		OutputLabel: prog.OutputLabel,
		OutputPath:  outputPath,
		Encoding:    opts.Quality.Encoding(),
		Duration:    comp.Settings.Duration,
		FrameRate:   comp.Settings.FrameRate,
		OnProgress: func(f float64) {
			report(progressPrepared + clamp01(f)*(progressDone-progressPrepared))
		},
	}
	if err := o.eng.Execute(ctx, job); err != nil {
		return nil, &EngineError{Err: err}
	}
	report(progressDone)

	ctxlog.FromContext(ctx).Info("render finished",
		"composition", compID,
		"output", outputPath,
		"nodes", prog.NodeCount)
	return &Result{
		OutputPath:     outputPath,
		NodesProcessed: prog.NodeCount,
		Settings:       comp.Settings,
	}, nil
}

// syntheticInput builds the lavfi color source standing in for a graph
// with no media references, sized and timed from the settings.
func syntheticInput(s model.Settings, c model.Color) engine.Input {
	if c == (model.Color{}) {
		c = model.Color{A: 0xff}
	}
	return engine.Input{
		URL: fmt.Sprintf("color=c=%s:s=%dx%d:r=%s:d=%s",
			c.Engine(), s.Width, s.Height,
			strconv.FormatFloat(s.FrameRate, 'f', -1, 64),
			strconv.FormatFloat(s.Duration, 'f', -1, 64)),
		Format: "lavfi",
	}
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
