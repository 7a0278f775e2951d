package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/blackmamba/compgraph/internal/app"
	"github.com/blackmamba/compgraph/internal/cli"
	"github.com/blackmamba/compgraph/internal/config"
)

// main is the entrypoint for the compgraph application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	// The app panics on critical startup errors, so we recover here to
	// hand the caller a clean error instead.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	if err := loadEnvFile(appConfig.EnvFile); err != nil {
		return err
	}
	fileCfg, err := config.Load(appConfig.ConfigPath)
	if err != nil {
		return err
	}
	fileCfg.ApplyEnv(nil)

	compgraphApp := app.NewApp(outW, appConfig, fileCfg, nil)

	return compgraphApp.Run(context.Background(), appConfig)
}

// loadEnvFile loads dotenv variables before the config layer reads the
// environment. A named file must exist; the default .env is best effort.
func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading env file '%s': %w", path, err)
		}
		return nil
	}
	_ = godotenv.Load()
	return nil
}
