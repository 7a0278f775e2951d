package filtergen

import "fmt"

// blendModes translates the catalog's blend mode vocabulary into engine
// blend mode names. The catalog constrains the parameter to these keys.
var blendModes = map[string]string{
	"normal":     "normal",
	"add":        "addition",
	"subtract":   "subtract",
	"multiply":   "multiply",
	"screen":     "screen",
	"overlay":    "overlay",
	"darken":     "darken",
	"lighten":    "lighten",
	"difference": "difference",
	"exclusion":  "exclusion",
	"hardLight":  "hardlight",
	"softLight":  "softlight",
}

// blendFragment mixes base and overlay with the chosen blend mode.
func blendFragment(fc *FragContext) (string, bool) {
	mode, ok := blendModes[fc.Text("mode")]
	if !ok {
		mode = blendModes["normal"]
	}
	return fmt.Sprintf("%s%sblend=all_mode=%s:all_opacity=%s%s",
		fc.In(0), fc.In(1), mode, ftoa(fc.Number("opacity")), fc.Out()), true
}

// compositeFragment lays the overlay over the base at an offset. A
// non-opaque overlay is faded through its alpha channel first.
func compositeFragment(fc *FragContext) (string, bool) {
	x, y := ftoa(fc.Number("x")), ftoa(fc.Number("y"))
	opacity := fc.Number("opacity")
	if opacity >= 1 {
		return fmt.Sprintf("%s%soverlay=x=%s:y=%s%s",
			fc.In(0), fc.In(1), x, y, fc.Out()), true
	}
	faded := fc.NewLabel()
	return fmt.Sprintf("%sformat=rgba,colorchannelmixer=aa=%s%s;%s%soverlay=x=%s:y=%s%s",
		fc.In(1), ftoa(opacity), faded,
		fc.In(0), faded, x, y, fc.Out()), true
}

// mergeFragment is a plain A-over-B at the origin.
func mergeFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%s%soverlay=x=0:y=0%s", fc.In(0), fc.In(1), fc.Out()), true
}
