package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/blackmamba/compgraph/internal/engine"
)

type probeDoc struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

type probeStream struct {
	CodecType    string `json:"codec_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AvgFrameRate string `json:"avg_frame_rate"`
	RFrameRate   string `json:"r_frame_rate"`
	Duration     string `json:"duration"`
}

// Probe inspects a media file with ffprobe and returns its basic geometry
// and timing.
func (e *Engine) Probe(ctx context.Context, path string) (*engine.MediaInfo, error) {
	cmd := exec.CommandContext(ctx, e.ffprobe,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("ffprobe %s: %w: %s", path, err, tail(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return parseProbeOutput(out)
}

// parseProbeOutput decodes ffprobe's JSON document into a MediaInfo,
// preferring format-level duration and the first video stream's geometry.
func parseProbeOutput(data []byte) (*engine.MediaInfo, error) {
	var doc probeDoc
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing probe output: %w", err)
	}

	info := &engine.MediaInfo{}
	info.Duration, _ = strconv.ParseFloat(doc.Format.Duration, 64)

	for _, s := range doc.Streams {
		switch s.CodecType {
		case "video":
			if info.Width != 0 {
				continue
			}
			info.Width = s.Width
			info.Height = s.Height
			info.FrameRate = parseRate(s.AvgFrameRate)
			if info.FrameRate == 0 {
				info.FrameRate = parseRate(s.RFrameRate)
			}
			if info.Duration == 0 {
				info.Duration, _ = strconv.ParseFloat(s.Duration, 64)
			}
		case "audio":
			info.HasAudio = true
		}
	}
	return info, nil
}

// parseRate parses ffprobe's rational frame rates, e.g. "30000/1001" or "25".
func parseRate(s string) float64 {
	if s == "" {
		return 0
	}
	numStr, denStr, ok := strings.Cut(s, "/")
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0
	}
	if !ok {
		return num
	}
	den, err := strconv.ParseFloat(denStr, 64)
	if err != nil || den == 0 {
		return 0
	}
	return num / den
}
