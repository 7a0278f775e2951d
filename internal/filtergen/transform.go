package filtergen

import "fmt"

// scaleFragment resamples to the requested geometry. The interpolation
// choice names map straight onto engine scaler flags.
func scaleFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%sscale=w=%s:h=%s:flags=%s%s",
		fc.In(0),
		ftoa(fc.Number("width")),
		ftoa(fc.Number("height")),
		fc.Text("interpolation"),
		fc.Out(),
	), true
}

// rotateFragment rotates by the angle parameter, filling the uncovered
// corners with the background color. The angle is handed to the engine as a
// degree expression so the fragment stays readable.
func rotateFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%srotate=a=%s*PI/180:c=%s%s",
		fc.In(0),
		ftoa(fc.Number("angle")),
		fc.Color("backgroundColor"),
		fc.Out(),
	), true
}

// positionFragment places the source at an offset inside a transparent
// backdrop sized to the composition, so negative offsets and overshoot crop
// naturally instead of failing.
func positionFragment(fc *FragContext) (string, bool) {
	s := fc.Settings()
	backdrop := fc.NewLabel()
	return fmt.Sprintf("color=c=0x00000000:s=%s:r=%s:d=%s%s;%s%soverlay=x=%s:y=%s:shortest=1%s",
		frameSize(s),
		ftoa(s.FrameRate),
		ftoa(s.Duration),
		backdrop,
		backdrop,
		fc.In(0),
		ftoa(fc.Number("x")),
		ftoa(fc.Number("y")),
		fc.Out(),
	), true
}

// cropFragment cuts the given window out of the source.
func cropFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%scrop=w=%s:h=%s:x=%s:y=%s%s",
		fc.In(0),
		ftoa(fc.Number("width")),
		ftoa(fc.Number("height")),
		ftoa(fc.Number("x")),
		ftoa(fc.Number("y")),
		fc.Out(),
	), true
}

// flipFragment mirrors the source on the requested axes. With neither axis
// set the node is a pass-through.
func flipFragment(fc *FragContext) (string, bool) {
	h, v := fc.Flag("horizontal"), fc.Flag("vertical")
	switch {
	case h && v:
		return fmt.Sprintf("%shflip,vflip%s", fc.In(0), fc.Out()), true
	case h:
		return fmt.Sprintf("%shflip%s", fc.In(0), fc.Out()), true
	case v:
		return fmt.Sprintf("%svflip%s", fc.In(0), fc.Out()), true
	default:
		return "", false
	}
}
