package filtergen

import "fmt"

// chromaKeyFragment knocks out pixels near the key color, with tolerance
// widening the keyed band and softness feathering its edge.
func chromaKeyFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%schromakey=color=%s:similarity=%s:blend=%s%s",
		fc.In(0),
		fc.Color("keyColor"),
		ftoa(fc.Number("tolerance")),
		ftoa(fc.Number("softness")),
		fc.Out(),
	), true
}

// luminanceMaskFragment keys on a brightness band around the threshold.
func luminanceMaskFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%slumakey=threshold=%s:tolerance=%s:softness=%s%s",
		fc.In(0),
		ftoa(fc.Number("threshold")),
		ftoa(fc.Number("tolerance")),
		ftoa(fc.Number("softness")),
		fc.Out(),
	), true
}
