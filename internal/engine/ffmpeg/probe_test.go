package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probeJSON = `{
	"streams": [
		{
			"codec_type": "video",
			"width": 1920,
			"height": 1080,
			"avg_frame_rate": "30000/1001",
			"r_frame_rate": "30000/1001",
			"duration": "12.000000"
		},
		{
			"codec_type": "audio"
		}
	],
	"format": {
		"duration": "12.480000"
	}
}`

func TestParseProbeOutput(t *testing.T) {
	info, err := parseProbeOutput([]byte(probeJSON))
	require.NoError(t, err)

	assert.Equal(t, 1920, info.Width)
	assert.Equal(t, 1080, info.Height)
	assert.InDelta(t, 29.97, info.FrameRate, 0.01)
	assert.InDelta(t, 12.48, info.Duration, 1e-9)
	assert.True(t, info.HasAudio)
}

func TestParseProbeOutput_StreamDurationFallback(t *testing.T) {
	doc := `{"streams":[{"codec_type":"video","width":640,"height":360,"avg_frame_rate":"0/0","r_frame_rate":"25/1","duration":"3.5"}],"format":{}}`

	info, err := parseProbeOutput([]byte(doc))
	require.NoError(t, err)

	assert.InDelta(t, 25, info.FrameRate, 1e-9)
	assert.InDelta(t, 3.5, info.Duration, 1e-9)
	assert.False(t, info.HasAudio)
}

func TestParseProbeOutput_Malformed(t *testing.T) {
	_, err := parseProbeOutput([]byte(`{"streams": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing probe output")
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "30000/1001", want: 30000.0 / 1001},
		{in: "25", want: 25},
		{in: "24/1", want: 24},
		{in: "0/0", want: 0},
		{in: "", want: 0},
		{in: "fast", want: 0},
		{in: "30/x", want: 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, parseRate(tt.in), 1e-9, "parseRate(%q)", tt.in)
	}
}
