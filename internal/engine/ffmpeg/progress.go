package ffmpeg

import (
	"strconv"
	"strings"
)

// fractionFromLine interprets one line of ffmpeg's -progress stream.
// out_time_us lines carry the position in microseconds; a progress=end line
// marks completion. The returned fraction is clamped to [0, 1].
func fractionFromLine(line string, duration float64) (float64, bool) {
	key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok {
		return 0, false
	}
	switch key {
	case "out_time_us", "out_time_ms":
		if duration <= 0 {
			return 0, false
		}
		us, err := strconv.ParseFloat(value, 64)
		if err != nil || us < 0 {
			return 0, false
		}
		f := us / 1e6 / duration
		if f > 1 {
			f = 1
		}
		return f, true
	case "progress":
		if value == "end" {
			return 1, true
		}
	}
	return 0, false
}
