package ffmpeg

import (
	"regexp"
	"strconv"

	"github.com/blackmamba/compgraph/internal/engine"
)

// presets maps the engine-neutral speed classes to ffmpeg encoder presets.
// Unknown classes encode with the balanced preset.
var presets = map[string]string{
	engine.SpeedFastest:  "ultrafast",
	engine.SpeedBalanced: "medium",
	engine.SpeedSlow:     "slow",
	engine.SpeedSlowest:  "veryslow",
}

// inputStreamLabel matches labels like [0:v] that address an input stream
// rather than a filter graph link.
var inputStreamLabel = regexp.MustCompile(`^\[(\d+:v)\]$`)

// buildArgs translates a job into an ffmpeg argument list. Inputs keep
// their positional order so the [i:v] labels in the filter graph line up.
func buildArgs(job engine.Job) []string {
	args := []string{"-y", "-nostats", "-v", "error", "-progress", "pipe:1"}

	for _, in := range job.Inputs {
		if in.Format != "" {
			args = append(args, "-f", in.Format)
		}
		args = append(args, "-i", in.URL)
	}

	if job.FilterGraph != "" {
		args = append(args, "-filter_complex", job.FilterGraph)
	}
	args = append(args, "-map", mapSpec(job.OutputLabel))

	args = append(args,
		"-c:v", "libx264",
		"-crf", strconv.Itoa(job.Encoding.Rate),
		"-preset", preset(job.Encoding.Speed),
		"-pix_fmt", "yuv420p",
	)
	if job.FrameRate > 0 {
		args = append(args, "-r", formatNum(job.FrameRate))
	}
	if job.Duration > 0 {
		args = append(args, "-t", formatNum(job.Duration))
	}
	return append(args, job.OutputPath)
}

// mapSpec converts an output label to a -map argument. Labels addressing an
// input stream lose their brackets; filter link labels keep them.
func mapSpec(label string) string {
	if m := inputStreamLabel.FindStringSubmatch(label); m != nil {
		return m[1]
	}
	return label
}

func preset(speed string) string {
	if p, ok := presets[speed]; ok {
		return p
	}
	return presets[engine.SpeedBalanced]
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
