// Package config loads the optional application config file and applies
// environment overrides. Precedence is flags over environment over file
// over defaults; the file and environment layers live here, the flag layer
// in the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration file shape.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
}

// EngineConfig locates the external engine binaries.
type EngineConfig struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

// LogConfig sets the default log level and format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RenderConfig sets render defaults a script does not override.
type RenderConfig struct {
	Quality    string `yaml:"quality"`
	SolidColor string `yaml:"solid_color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe"},
		Log:    LogConfig{Level: "info", Format: "text"},
		Render: RenderConfig{Quality: "medium", SolidColor: "#000000"},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged; a named file must exist and parse.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file '%s': %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays the COMPGRAPH_* environment variables using the given
// lookup, which defaults to the process environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	set := func(target *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*target = v
		}
	}
	set(&c.Engine.FFmpegPath, "COMPGRAPH_FFMPEG")
	set(&c.Engine.FFprobePath, "COMPGRAPH_FFPROBE")
	set(&c.Log.Level, "COMPGRAPH_LOG_LEVEL")
	set(&c.Log.Format, "COMPGRAPH_LOG_FORMAT")
	set(&c.Render.Quality, "COMPGRAPH_QUALITY")
	set(&c.Render.SolidColor, "COMPGRAPH_SOLID_COLOR")
}
