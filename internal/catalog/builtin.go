package catalog

import "github.com/blackmamba/compgraph/internal/model"

func num(name string, def float64) ParamSpec {
	return ParamSpec{Name: name, Type: model.TypeNumber, Default: model.NumberVal(def)}
}

func str(name, def string) ParamSpec {
	return ParamSpec{Name: name, Type: model.TypeString, Default: model.StringVal(def)}
}

func boolean(name string, def bool) ParamSpec {
	return ParamSpec{Name: name, Type: model.TypeBool, Default: model.BoolVal(def)}
}

func color(name, def string) ParamSpec {
	return ParamSpec{Name: name, Type: model.TypeColor, Default: model.ColorVal(model.MustColor(def))}
}

func point(name string, x, y float64) ParamSpec {
	return ParamSpec{Name: name, Type: model.TypePoint, Default: model.PointVal(x, y)}
}

func choice(name, def string, choices ...string) ParamSpec {
	return ParamSpec{Name: name, Type: model.TypeChoice, Default: model.ChoiceVal(def), Choices: choices}
}

var (
	srcIn    = []string{"source"}
	videoOut = []string{"video"}
	mergeIn  = []string{"base", "overlay"}
)

// builtins is the full node type table. Port and parameter names here are
// the vocabulary scripts and documents use; renaming one is a breaking
// change to the exchange format.
var builtins = []Definition{
	{
		Kind:    model.KindInputMedia,
		Outputs: []string{"video", "audio"},
		Params: []ParamSpec{
			str("filePath", ""),
			num("startTime", 0),
			num("speed", 1),
		},
	},
	{
		Kind:    model.KindInputSolidColor,
		Outputs: videoOut,
		Params: []ParamSpec{
			color("color", "#000000"),
			num("width", 0),
			num("height", 0),
		},
	},
	{
		Kind:    model.KindInputGradient,
		Outputs: videoOut,
		Params: []ParamSpec{
			color("startColor", "#000000"),
			color("endColor", "#ffffff"),
			num("angle", 0),
		},
	},
	{
		Kind:    model.KindInputNoise,
		Outputs: videoOut,
		Params: []ParamSpec{
			num("strength", 50),
			num("seed", 0),
		},
	},
	{
		Kind:    model.KindInputText,
		Outputs: videoOut,
		Params: []ParamSpec{
			str("text", ""),
			str("fontFamily", "sans"),
			num("fontSize", 48),
			color("color", "#ffffff"),
		},
	},

	{
		Kind:   model.KindTransformScale,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("width", 1920),
			num("height", 1080),
			choice("interpolation", "bicubic", "bilinear", "bicubic", "lanczos", "neighbor"),
		},
	},
	{
		Kind:   model.KindTransformRotate,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("angle", 0),
			color("backgroundColor", "#000000"),
		},
	},
	{
		Kind:   model.KindTransformPosition,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{num("x", 0), num("y", 0)},
	},
	{
		Kind:   model.KindTransformCrop,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("width", 1920),
			num("height", 1080),
			num("x", 0),
			num("y", 0),
		},
	},
	{
		Kind:   model.KindTransformFlip,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			boolean("horizontal", false),
			boolean("vertical", false),
		},
	},
	{
		Kind:   model.KindTransformCornerPin,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			point("topLeft", 0, 0),
			point("topRight", 1920, 0),
			point("bottomLeft", 0, 1080),
			point("bottomRight", 1920, 1080),
		},
	},

	{
		Kind:   model.KindMergeBlend,
		Inputs: mergeIn, Outputs: videoOut,
		Params: []ParamSpec{
			choice("mode", "normal",
				"normal", "add", "subtract", "multiply", "screen", "overlay",
				"darken", "lighten", "difference", "exclusion", "hardLight", "softLight"),
			num("opacity", 1),
		},
	},
	{
		Kind:   model.KindMergeComposite,
		Inputs: mergeIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("x", 0),
			num("y", 0),
			num("opacity", 1),
		},
	},
	{
		Kind:   model.KindMergeMerge,
		Inputs: mergeIn, Outputs: videoOut,
	},
	{
		Kind:   model.KindMergeSwitch,
		Inputs: []string{"input1", "input2"}, Outputs: videoOut,
		Params: []ParamSpec{choice("active", "input1", "input1", "input2")},
	},

	{
		Kind:   model.KindColorCorrect,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("brightness", 0),
			num("contrast", 1),
			num("saturation", 1),
			num("gamma", 1),
		},
	},
	{
		Kind:   model.KindColorCurves,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			choice("preset", "none",
				"none", "darker", "lighter", "increase_contrast", "medium_contrast",
				"strong_contrast", "vintage", "negative"),
		},
	},
	{
		Kind:   model.KindColorLevels,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("inputMin", 0),
			num("inputMax", 1),
			num("outputMin", 0),
			num("outputMax", 1),
		},
	},
	{
		Kind:   model.KindColorHueShift,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("degrees", 0),
			num("saturation", 1),
		},
	},
	{
		Kind:   model.KindColorMatrix,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			choice("preset", "identity", "identity", "bt601_to_bt709", "bt709_to_bt601"),
		},
	},
	{
		Kind:   model.KindColorLUT,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{str("lutPath", "")},
	},

	{
		Kind:   model.KindEffectsBlur,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{num("sigma", 5)},
	},
	{
		Kind:   model.KindEffectsSharpen,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{num("amount", 1)},
	},
	{
		Kind:   model.KindEffectsGlow,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("radius", 10),
			num("intensity", 0.5),
		},
	},
	{
		Kind:   model.KindEffectsDefocus,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("radius", 8),
			choice("shape", "circle", "circle", "hexagon"),
		},
	},
	{
		Kind:   model.KindEffectsMotionBlur,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{num("frames", 5)},
	},
	{
		Kind:   model.KindEffectsGrain,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{num("strength", 10)},
	},
	{
		Kind:   model.KindEffectsVignette,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{num("angle", 0.63)},
	},
	{
		Kind:   model.KindEffectsChromatic,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{num("shift", 2)},
	},

	{
		Kind:   model.KindMaskShape,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			choice("shape", "rectangle", "rectangle", "ellipse"),
			num("x", 0),
			num("y", 0),
			num("width", 100),
			num("height", 100),
			num("feather", 0),
			boolean("invert", false),
		},
	},
	{
		Kind:   model.KindMaskRoto,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			str("path", ""),
			num("feather", 0),
			boolean("invert", false),
		},
	},
	{
		Kind:   model.KindMaskLuminance,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			num("threshold", 0.5),
			num("tolerance", 0.1),
			num("softness", 0.1),
		},
	},
	{
		Kind:   model.KindMaskChroma,
		Inputs: srcIn, Outputs: videoOut,
		Params: []ParamSpec{
			color("keyColor", "#00ff00"),
			num("tolerance", 0.1),
			num("softness", 0.05),
		},
	},

	{
		Kind:   model.KindOutputViewer,
		Inputs: []string{"video"},
		Params: []ParamSpec{
			num("zoom", 1),
			choice("channel", "rgb", "rgb", "alpha"),
		},
	},
	{
		Kind:   model.KindOutputWrite,
		Inputs: []string{"video"},
		Params: []ParamSpec{
			str("filePath", ""),
			choice("format", "mp4", "mp4", "mov", "webm"),
		},
	},
}
