package app

import "errors"

// AppConfig holds all the necessary configuration for an App instance to
// run. The entrypoint resolves it from CLI flags.
type AppConfig struct {
	ScriptPath string // composition script file or directory

	OutputPath   string // overrides the script's output.write target
	Quality      string // render quality preset; empty falls back to file config
	ValidateOnly bool   // stop after scheduling, do not invoke the engine
	ListNodes    bool   // print the node type catalog and exit
	ExportPath   string // write the built composition document here

	LogFormat string
	LogLevel  string

	ConfigPath string
	EnvFile    string
}

// NewConfig validates an AppConfig.
func NewConfig(cfg AppConfig) (*AppConfig, error) {
	if cfg.ScriptPath == "" && !cfg.ListNodes {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
