// Package enginetest provides an in-memory engine.Engine for tests.
package enginetest

import (
	"context"
	"sync"

	"github.com/blackmamba/compgraph/internal/engine"
)

// Fake records the jobs it executes and plays back scripted progress
// fractions. The zero value succeeds immediately without progress.
type Fake struct {
	mu   sync.Mutex
	jobs []engine.Job

	// Progress fractions emitted during Execute, in order.
	Progress []float64
	// Err is returned from Execute after progress playback.
	Err error
	// Release, when non-nil, blocks Execute after progress playback until
	// the channel is closed or the context is done.
	Release chan struct{}

	// Info and ProbeErr drive Probe.
	Info     *engine.MediaInfo
	ProbeErr error
}

var _ engine.Engine = (*Fake)(nil)

func (f *Fake) Execute(ctx context.Context, job engine.Job) error {
	f.mu.Lock()
	f.jobs = append(f.jobs, job)
	f.mu.Unlock()

	for _, p := range f.Progress {
		if job.OnProgress != nil {
			job.OnProgress(p)
		}
	}
	if f.Release != nil {
		select {
		case <-f.Release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.Err
}

func (f *Fake) Probe(ctx context.Context, path string) (*engine.MediaInfo, error) {
	if f.ProbeErr != nil {
		return nil, f.ProbeErr
	}
	if f.Info != nil {
		info := *f.Info
		return &info, nil
	}
	return &engine.MediaInfo{}, nil
}

// Jobs returns a copy of every job executed so far.
func (f *Fake) Jobs() []engine.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]engine.Job, len(f.jobs))
	copy(out, f.jobs)
	return out
}

// LastJob returns the most recent job, or nil when none ran.
func (f *Fake) LastJob() *engine.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.jobs) == 0 {
		return nil
	}
	job := f.jobs[len(f.jobs)-1]
	return &job
}
