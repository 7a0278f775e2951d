package filtergen

import "fmt"

// colorCorrectFragment applies the basic per-pixel adjustments.
func colorCorrectFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%seq=brightness=%s:contrast=%s:saturation=%s:gamma=%s%s",
		fc.In(0),
		ftoa(fc.Number("brightness")),
		ftoa(fc.Number("contrast")),
		ftoa(fc.Number("saturation")),
		ftoa(fc.Number("gamma")),
		fc.Out(),
	), true
}

// curvesFragment applies a named tone curve preset; "none" is a
// pass-through.
func curvesFragment(fc *FragContext) (string, bool) {
	preset := fc.Text("preset")
	if preset == "none" {
		return "", false
	}
	return fmt.Sprintf("%scurves=preset=%s%s", fc.In(0), preset, fc.Out()), true
}

// levelsFragment remaps the input range onto the output range, applied
// uniformly to all three channels.
func levelsFragment(fc *FragContext) (string, bool) {
	imin := ftoa(fc.Number("inputMin"))
	imax := ftoa(fc.Number("inputMax"))
	omin := ftoa(fc.Number("outputMin"))
	omax := ftoa(fc.Number("outputMax"))
	return fmt.Sprintf("%scolorlevels=rimin=%s:gimin=%s:bimin=%s:rimax=%s:gimax=%s:bimax=%s:romin=%s:gomin=%s:bomin=%s:romax=%s:gomax=%s:bomax=%s%s",
		fc.In(0),
		imin, imin, imin,
		imax, imax, imax,
		omin, omin, omin,
		omax, omax, omax,
		fc.Out(),
	), true
}

// hueShiftFragment rotates the hue wheel and scales saturation.
func hueShiftFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%shue=h=%s:s=%s%s",
		fc.In(0),
		ftoa(fc.Number("degrees")),
		ftoa(fc.Number("saturation")),
		fc.Out(),
	), true
}

// lutFragment applies a 3D lookup table resource. Without a path there is
// nothing to apply.
func lutFragment(fc *FragContext) (string, bool) {
	path := fc.Text("lutPath")
	if path == "" {
		return "", false
	}
	return fmt.Sprintf("%slut3d=file=%s%s", fc.In(0), quotePath(path), fc.Out()), true
}
