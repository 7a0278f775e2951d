package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/blackmamba/compgraph/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.AppConfig, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("compgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
CompGraph - A node-based compositing engine scripted with HCL.

Usage:
  compgraph [options] [SCRIPT_PATH]

Arguments:
  SCRIPT_PATH
    Path to a single .hcl composition script or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	scriptFlag := flagSet.String("script", "", "Path to the composition script file or directory.")
	sFlag := flagSet.String("s", "", "Path to the composition script file or directory (shorthand).")
	outputFlag := flagSet.String("o", "", "Output file path. Overrides the script's output.write target.")
	qualityFlag := flagSet.String("quality", "", "Render quality preset. Options: 'low', 'medium', 'high', 'highest'.")
	validateFlag := flagSet.Bool("validate", false, "Build and schedule the composition without rendering.")
	listNodesFlag := flagSet.Bool("list-nodes", false, "Print the node type catalog and exit.")
	exportFlag := flagSet.String("export", "", "Write the built composition to this JSON file.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	configFlag := flagSet.String("config", "", "Path to a YAML configuration file.")
	envFileFlag := flagSet.String("env-file", "", "Path to a dotenv file loaded before the configuration.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *scriptFlag != "" {
		path = *scriptFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Script path determined.", "path", path)

	if path == "" && !*listNodesFlag {
		slog.Debug("No script path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "", "text", "json":
		// valid, empty defers to the config file
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
		// valid, empty defers to the config file
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	quality := strings.ToLower(*qualityFlag)
	switch quality {
	case "", "low", "medium", "high", "highest":
		// valid, empty defers to the config file
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid quality: must be 'low', 'medium', 'high', or 'highest'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.AppConfig{
		ScriptPath:   path,
		OutputPath:   *outputFlag,
		Quality:      quality,
		ValidateOnly: *validateFlag,
		ListNodes:    *listNodesFlag,
		ExportPath:   *exportFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		ConfigPath:   *configFlag,
		EnvFile:      *envFileFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
