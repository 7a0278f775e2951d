package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/blackmamba/compgraph/internal/builder"
	"github.com/blackmamba/compgraph/internal/catalog"
	"github.com/blackmamba/compgraph/internal/config"
	"github.com/blackmamba/compgraph/internal/engine"
	"github.com/blackmamba/compgraph/internal/engine/ffmpeg"
	"github.com/blackmamba/compgraph/internal/filtergen"
	"github.com/blackmamba/compgraph/internal/persist"
	"github.com/blackmamba/compgraph/internal/render"
	"github.com/blackmamba/compgraph/internal/script"
	"github.com/blackmamba/compgraph/internal/store"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	fileCfg *config.Config

	catalog *catalog.Catalog
	store   *store.Store
	builder *builder.Builder
	scripts *script.Loader
	persist *persist.Adapter
	engine  engine.Engine
	orch    *render.Orchestrator
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger. A nil engine
// selects the ffmpeg engine located by fileCfg.
func NewApp(outW io.Writer, appConfig *AppConfig, fileCfg *config.Config, eng engine.Engine) *App {
	logLevel := appConfig.LogLevel
	if logLevel == "" {
		logLevel = fileCfg.Log.Level
	}
	logFormat := appConfig.LogFormat
	if logFormat == "" {
		logFormat = fileCfg.Log.Format
	}
	logger := newLogger(logLevel, logFormat, outW)
	logger.Debug("Logger configured successfully.")

	// Structural mistakes in the node definition table or the fragment
	// registry are programmer errors, so we panic.
	cat := catalog.New()
	if err := cat.Validate(); err != nil {
		panic(fmt.Errorf("node catalog validation failed: %w", err))
	}
	gen := filtergen.New()
	if err := gen.Validate(); err != nil {
		panic(fmt.Errorf("filter generator validation failed: %w", err))
	}
	logger.Debug("Node catalog and filter generator validated.")

	if eng == nil {
		eng = ffmpeg.New(ffmpeg.Options{
			FFmpegPath:  fileCfg.Engine.FFmpegPath,
			FFprobePath: fileCfg.Engine.FFprobePath,
		})
	}

	st := store.New()
	b := builder.New(st, cat)
	logger.Debug("Composition store and builder ready.")

	return &App{
		outW:    outW,
		logger:  logger,
		fileCfg: fileCfg,
		catalog: cat,
		store:   st,
		builder: b,
		scripts: script.NewLoader(b, cat),
		persist: persist.New(st),
		engine:  eng,
		orch:    render.New(st, gen, eng),
	}
}

// Builder returns the application's composition builder. This is primarily
// for testing.
func (a *App) Builder() *builder.Builder {
	return a.builder
}
