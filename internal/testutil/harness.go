package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blackmamba/compgraph/internal/app"
	"github.com/blackmamba/compgraph/internal/config"
	"github.com/blackmamba/compgraph/internal/engine/enginetest"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Engine    *enginetest.Fake
}

// RunScriptTest provides a standardized harness for running integration
// tests using a default background context.
func RunScriptTest(t *testing.T, files map[string]string, cfg app.AppConfig) *HarnessResult {
	t.Helper()
	return RunScriptTestWithContext(context.Background(), t, files, cfg)
}

// RunScriptTestWithContext runs the harness over a zero Fake, which
// succeeds immediately.
func RunScriptTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.AppConfig) *HarnessResult {
	t.Helper()
	return RunScriptTestWithEngine(ctx, t, files, cfg, &enginetest.Fake{})
}

// RunScriptTestWithEngine writes the given composition scripts to a fresh
// temporary directory, points the app at it, and runs the app over the
// caller's fake engine so tests can script failures or progress playback.
// Startup panics are captured into the result's Err.
func RunScriptTestWithEngine(ctx context.Context, t *testing.T, files map[string]string, cfg app.AppConfig, fake *enginetest.Fake) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	if cfg.ScriptPath == "" {
		cfg.ScriptPath = tmpDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, &cfg, config.Default(), fake)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			Engine:    fake,
		}
	}

	runErr := testApp.Run(ctx, &cfg)

	if os.Getenv("COMPGRAPH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		Engine:    fake,
	}
}
