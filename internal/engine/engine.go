// Package engine defines the contract with the external rendering engine.
// The orchestrator hands a fully-formed Job to an implementation and
// receives progress fractions back; the ffmpeg subpackage is the production
// adapter.
package engine

import "context"

// Speed classes for Encoding.Speed, ordered from fastest encode to best
// compression.
const (
	SpeedFastest  = "fastest"
	SpeedBalanced = "balanced"
	SpeedSlow     = "slow"
	SpeedSlowest  = "slowest"
)

// Input is one media source fed to the engine. Inputs are positional: the
// i-th input backs the [i:v] label in the filter graph.
type Input struct {
	// URL is a file path, or a generator expression when Format names a
	// synthetic demuxer.
	URL string
	// Format forces the input demuxer, e.g. "lavfi". Empty means probe by
	// content.
	Format string
}

// Encoding picks the fidelity/speed trade-off for the encode.
type Encoding struct {
	// Rate is the constant rate factor. Lower is higher fidelity.
	Rate int
	// Speed is one of the Speed* classes.
	Speed string
}

// Job describes one complete render.
type Job struct {
	Inputs      []Input
	FilterGraph string
	// OutputLabel is the filter graph label mapped into the output file.
	// With an empty FilterGraph it degenerates to an input stream specifier.
	OutputLabel string
	OutputPath  string
	Encoding    Encoding
	// Duration and FrameRate come from the composition settings; Duration
	// also drives progress fractions.
	Duration  float64
	FrameRate float64
	// OnProgress receives fractions in [0, 1]. May be nil.
	OnProgress func(fraction float64)
}

// MediaInfo is the probe result for one media file.
type MediaInfo struct {
	Duration  float64
	Width     int
	Height    int
	FrameRate float64
	HasAudio  bool
}

// Engine executes render jobs and inspects media files.
type Engine interface {
	Execute(ctx context.Context, job Job) error
	Probe(ctx context.Context, path string) (*MediaInfo, error)
}
