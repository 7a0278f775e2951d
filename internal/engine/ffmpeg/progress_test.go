package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFractionFromLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		duration float64
		want     float64
		ok       bool
	}{
		{name: "out_time_us", line: "out_time_us=2500000", duration: 10, want: 0.25, ok: true},
		{name: "out_time_ms carries microseconds too", line: "out_time_ms=5000000", duration: 10, want: 0.5, ok: true},
		{name: "overshoot clamps to one", line: "out_time_us=99000000", duration: 10, want: 1, ok: true},
		{name: "end marker", line: "progress=end", duration: 10, want: 1, ok: true},
		{name: "continue marker is not a fraction", line: "progress=continue", duration: 10},
		{name: "frame counter ignored", line: "frame=120", duration: 10},
		{name: "no separator", line: "garbage", duration: 10},
		{name: "negative position", line: "out_time_us=-1", duration: 10},
		{name: "unparseable position", line: "out_time_us=soon", duration: 10},
		{name: "unknown duration", line: "out_time_us=2500000", duration: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fractionFromLine(tt.line, tt.duration)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
