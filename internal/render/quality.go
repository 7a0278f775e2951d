package render

import "github.com/blackmamba/compgraph/internal/engine"

// Quality selects a point on the fidelity/speed curve. The levels and the
// encoder settings behind them are part of the external contract; scripts
// and the CLI name them verbatim.
type Quality string

const (
	QualityLow     Quality = "low"
	QualityMedium  Quality = "medium"
	QualityHigh    Quality = "high"
	QualityHighest Quality = "highest"
)

var qualityTable = map[Quality]engine.Encoding{
	QualityLow:     {Rate: 28, Speed: engine.SpeedFastest},
	QualityMedium:  {Rate: 23, Speed: engine.SpeedBalanced},
	QualityHigh:    {Rate: 18, Speed: engine.SpeedSlow},
	QualityHighest: {Rate: 15, Speed: engine.SpeedSlowest},
}

// Encoding returns the encoder settings for the level. Unknown levels fall
// back to medium.
func (q Quality) Encoding() engine.Encoding {
	if enc, ok := qualityTable[q]; ok {
		return enc
	}
	return qualityTable[QualityMedium]
}
