package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackmamba/compgraph/internal/ctxlog"
	"github.com/blackmamba/compgraph/internal/model"
	"github.com/blackmamba/compgraph/internal/render"
	"github.com/blackmamba/compgraph/internal/scheduler"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *AppConfig) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.ListNodes {
		a.printCatalog()
		return nil
	}

	docs, err := a.scripts.Load(ctx, appConfig.ScriptPath)
	if err != nil {
		return fmt.Errorf("loading composition scripts: %w", err)
	}
	a.logger.Debug("Composition scripts loaded.", "count", len(docs))
	if len(docs) > 1 {
		a.logger.Warn("Multiple compositions found, rendering the first.",
			"count", len(docs), "selected", docs[0].Name)
	}

	compID, err := a.scripts.Build(ctx, docs[0])
	if err != nil {
		return fmt.Errorf("building composition '%s': %w", docs[0].Name, err)
	}
	comp, err := a.builder.GetComposition(ctx, compID)
	if err != nil {
		return err
	}
	a.logger.Info("🎬 Composition built.",
		"name", comp.Name, "nodes", len(comp.Nodes), "connections", len(comp.Connections))

	if appConfig.ExportPath != "" {
		if err := a.persist.ExportJSON(ctx, compID, appConfig.ExportPath); err != nil {
			return fmt.Errorf("exporting composition: %w", err)
		}
		a.logger.Info("Composition exported.", "path", appConfig.ExportPath)
	}

	if appConfig.ValidateOnly {
		order, err := scheduler.Order(comp)
		if err != nil {
			return fmt.Errorf("validating composition '%s': %w", comp.Name, err)
		}
		fmt.Fprintf(a.outW, "composition '%s' is valid: %d of %d nodes scheduled\n",
			comp.Name, len(order), len(comp.Nodes))
		a.logger.Info("✅ Validation finished.", "scheduled", len(order))
		return nil
	}

	outputPath := a.resolveOutputPath(appConfig, comp)
	if outputPath == "" {
		return errors.New("no output path: pass -o or give an output.write node a filePath")
	}

	a.probeMedia(ctx, comp)

	quality := appConfig.Quality
	if quality == "" {
		quality = a.fileCfg.Render.Quality
	}
	solid, err := model.ParseColor(a.fileCfg.Render.SolidColor)
	if err != nil {
		return fmt.Errorf("config render.solid_color: %w", err)
	}

	a.logger.Info("🚀 Starting render...",
		"composition", comp.Name, "output", outputPath, "quality", quality)
	res, err := a.orch.Render(ctx, compID, outputPath, render.Options{
		Quality:    render.Quality(quality),
		SolidColor: solid,
		OnProgress: a.progressLogger(),
	})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	a.logger.Info("🏁 Render finished.", "output", res.OutputPath, "nodes", res.NodesProcessed)
	fmt.Fprintf(a.outW, "rendered composition '%s' to %s (%d nodes)\n",
		comp.Name, res.OutputPath, res.NodesProcessed)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// probeMedia reports the dimensions of every media file the composition
// references, once per distinct path. A probe failure only warns: the
// render itself surfaces the authoritative engine error.
func (a *App) probeMedia(ctx context.Context, comp *model.Composition) {
	seen := map[string]bool{}
	for _, n := range comp.Nodes {
		if n.Kind != model.KindInputMedia || !n.Enabled {
			continue
		}
		v, ok := n.Params["filePath"]
		if !ok || v.Text() == "" || seen[v.Text()] {
			continue
		}
		path := v.Text()
		seen[path] = true

		info, err := a.engine.Probe(ctx, path)
		if err != nil {
			a.logger.Warn("Probing media failed.", "path", path, "error", err)
			continue
		}
		a.logger.Info("Media probed.", "path", path,
			"width", info.Width, "height", info.Height,
			"duration", info.Duration, "fps", info.FrameRate, "audio", info.HasAudio)
	}
}

// resolveOutputPath prefers the -o flag, falling back to the filePath
// parameter of the first enabled output.write node.
func (a *App) resolveOutputPath(appConfig *AppConfig, comp *model.Composition) string {
	if appConfig.OutputPath != "" {
		return appConfig.OutputPath
	}
	for _, n := range comp.Nodes {
		if n.Kind != model.KindOutputWrite || !n.Enabled {
			continue
		}
		if v, ok := n.Params["filePath"]; ok && v.Text() != "" {
			return v.Text()
		}
	}
	return ""
}

// progressLogger reports render progress in steps of at least ten percent.
func (a *App) progressLogger() func(float64) {
	last := -100.0
	return func(p float64) {
		if p < last+10 && p < 100 {
			return
		}
		if p == last {
			return
		}
		a.logger.Info("Render progress.", "percent", int(p))
		last = p
	}
}
