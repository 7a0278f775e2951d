// Package ffmpeg adapts the engine contract to the ffmpeg and ffprobe
// binaries. Jobs become command invocations; progress is read from the
// -progress key=value stream on stdout.
package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/blackmamba/compgraph/internal/ctxlog"
	"github.com/blackmamba/compgraph/internal/engine"
)

// stderrTail bounds how much engine stderr ends up in error messages.
const stderrTail = 1024

// Options configures the adapter. Zero fields fall back to binaries on PATH.
type Options struct {
	FFmpegPath  string
	FFprobePath string
}

// Engine shells out to ffmpeg and ffprobe.
type Engine struct {
	ffmpeg  string
	ffprobe string
}

var _ engine.Engine = (*Engine)(nil)

// New returns an adapter using the configured binary paths.
func New(opts Options) *Engine {
	e := &Engine{ffmpeg: opts.FFmpegPath, ffprobe: opts.FFprobePath}
	if e.ffmpeg == "" {
		e.ffmpeg = "ffmpeg"
	}
	if e.ffprobe == "" {
		e.ffprobe = "ffprobe"
	}
	return e
}

// Execute runs one render job to completion, forwarding progress fractions
// from the engine's progress stream.
func (e *Engine) Execute(ctx context.Context, job engine.Job) error {
	args := buildArgs(job)
	ctxlog.FromContext(ctx).Debug("starting ffmpeg", "binary", e.ffmpeg, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, e.ffmpeg, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting ffmpeg: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if f, ok := fractionFromLine(scanner.Text(), job.Duration); ok && job.OnProgress != nil {
			job.OnProgress(f)
		}
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg exited: %w: %s", err, tail(stderr.String()))
	}
	if job.OnProgress != nil {
		job.OnProgress(1)
	}
	return nil
}

// tail returns the last stderrTail bytes of s, trimmed.
func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTail {
		s = "..." + s[len(s)-stderrTail:]
	}
	return s
}
