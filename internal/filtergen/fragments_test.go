package filtergen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackmamba/compgraph/internal/catalog"
	"github.com/blackmamba/compgraph/internal/model"
)

// renderFragment runs a single fragment function against a node seeded with
// catalog defaults plus the given overrides.
func renderFragment(t *testing.T, tag string, params map[string]model.Value, inputs ...string) (string, bool) {
	t.Helper()
	def, err := catalog.New().Lookup(tag)
	require.NoError(t, err)
	n := def.NewNode("n")
	for k, v := range params {
		n.Params[k] = v
	}
	fc := &FragContext{
		node:     n,
		inputs:   inputs,
		settings: model.DefaultSettings(),
		state:    &genState{labels: map[string]string{}},
	}
	fn := fragments[n.Kind]
	require.NotNil(t, fn, "no fragment function for %s", tag)
	return fn(fc)
}

func TestFragmentTextures(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		params map[string]model.Value
		inputs []string
		want   string
	}{
		{
			name: "scale with defaults",
			tag:  "transform.scale",
			want: "[0:v]scale=w=1920:h=1080:flags=bicubic[n1]",
		},
		{
			name: "scale resamples with lanczos",
			tag:  "transform.scale",
			params: map[string]model.Value{
				"width":         model.NumberVal(640),
				"height":        model.NumberVal(360),
				"interpolation": model.ChoiceVal("lanczos"),
			},
			want: "[0:v]scale=w=640:h=360:flags=lanczos[n1]",
		},
		{
			name:   "rotate carries degrees and fill color",
			tag:    "transform.rotate",
			params: map[string]model.Value{"angle": model.NumberVal(45)},
			want:   "[0:v]rotate=a=45*PI/180:c=0x000000[n1]",
		},
		{
			name: "position overlays onto a transparent backdrop",
			tag:  "transform.position",
			params: map[string]model.Value{
				"x": model.NumberVal(100),
				"y": model.NumberVal(-50),
			},
			want: "color=c=0x00000000:s=1920x1080:r=30:d=10[n1];" +
				"[n1][0:v]overlay=x=100:y=-50:shortest=1[n2]",
		},
		{
			name: "crop window",
			tag:  "transform.crop",
			params: map[string]model.Value{
				"width":  model.NumberVal(200),
				"height": model.NumberVal(100),
				"x":      model.NumberVal(10),
				"y":      model.NumberVal(20),
			},
			want: "[0:v]crop=w=200:h=100:x=10:y=20[n1]",
		},
		{
			name:   "flip horizontal",
			tag:    "transform.flip",
			params: map[string]model.Value{"horizontal": model.BoolVal(true)},
			want:   "[0:v]hflip[n1]",
		},
		{
			name:   "flip vertical",
			tag:    "transform.flip",
			params: map[string]model.Value{"vertical": model.BoolVal(true)},
			want:   "[0:v]vflip[n1]",
		},
		{
			name: "flip both axes chains the filters",
			tag:  "transform.flip",
			params: map[string]model.Value{
				"horizontal": model.BoolVal(true),
				"vertical":   model.BoolVal(true),
			},
			want: "[0:v]hflip,vflip[n1]",
		},
		{
			name: "color correct with defaults",
			tag:  "color.colorCorrect",
			want: "[0:v]eq=brightness=0:contrast=1:saturation=1:gamma=1[n1]",
		},
		{
			name:   "curves preset",
			tag:    "color.curves",
			params: map[string]model.Value{"preset": model.ChoiceVal("vintage")},
			want:   "[0:v]curves=preset=vintage[n1]",
		},
		{
			name: "levels spreads the range over all channels",
			tag:  "color.levels",
			params: map[string]model.Value{
				"inputMin": model.NumberVal(0.1),
				"inputMax": model.NumberVal(0.9),
			},
			want: "[0:v]colorlevels=rimin=0.1:gimin=0.1:bimin=0.1" +
				":rimax=0.9:gimax=0.9:bimax=0.9" +
				":romin=0:gomin=0:bomin=0" +
				":romax=1:gomax=1:bomax=1[n1]",
		},
		{
			name: "hue shift",
			tag:  "color.hueShift",
			params: map[string]model.Value{
				"degrees":    model.NumberVal(90),
				"saturation": model.NumberVal(0.5),
			},
			want: "[0:v]hue=h=90:s=0.5[n1]",
		},
		{
			name:   "lut quotes the table path",
			tag:    "color.lut",
			params: map[string]model.Value{"lutPath": model.StringVal("/luts/kodak's.cube")},
			want:   "[0:v]lut3d=file='/luts/kodak\\'s.cube'[n1]",
		},
		{
			name:   "blur",
			tag:    "effects.blur",
			params: map[string]model.Value{"sigma": model.NumberVal(2.5)},
			want:   "[0:v]gblur=sigma=2.5[n1]",
		},
		{
			name: "sharpen",
			tag:  "effects.sharpen",
			want: "[0:v]unsharp=la=1[n1]",
		},
		{
			name: "glow splits, blurs and screens back",
			tag:  "effects.glow",
			want: "[0:v]split[n1][n2];" +
				"[n2]gblur=sigma=10[n3];" +
				"[n1][n3]blend=all_mode=screen:all_opacity=0.5[n4]",
		},
		{
			name:   "motion blur frame window",
			tag:    "effects.motionBlur",
			params: map[string]model.Value{"frames": model.NumberVal(8)},
			want:   "[0:v]tmix=frames=8[n1]",
		},
		{
			name: "grain",
			tag:  "effects.grain",
			want: "[0:v]noise=alls=10:allf=t+u[n1]",
		},
		{
			name: "vignette",
			tag:  "effects.vignette",
			want: "[0:v]vignette=angle=0.63[n1]",
		},
		{
			name:   "chromatic shifts chroma planes apart",
			tag:    "effects.chromatic",
			params: map[string]model.Value{"shift": model.NumberVal(3)},
			want:   "[0:v]chromashift=cbh=3:crh=-3[n1]",
		},
		{
			name: "blend maps camel case modes",
			tag:  "merge.blend",
			params: map[string]model.Value{
				"mode":    model.ChoiceVal("hardLight"),
				"opacity": model.NumberVal(0.75),
			},
			inputs: []string{"[0:v]", "[1:v]"},
			want:   "[0:v][1:v]blend=all_mode=hardlight:all_opacity=0.75[n1]",
		},
		{
			name:   "composite at full opacity is a plain overlay",
			tag:    "merge.composite",
			params: map[string]model.Value{"x": model.NumberVal(25), "y": model.NumberVal(50)},
			inputs: []string{"[0:v]", "[1:v]"},
			want:   "[0:v][1:v]overlay=x=25:y=50[n1]",
		},
		{
			name: "composite fades a translucent overlay first",
			tag:  "merge.composite",
			params: map[string]model.Value{
				"x":       model.NumberVal(25),
				"y":       model.NumberVal(50),
				"opacity": model.NumberVal(0.4),
			},
			inputs: []string{"[0:v]", "[1:v]"},
			want: "[1:v]format=rgba,colorchannelmixer=aa=0.4[n1];" +
				"[0:v][n1]overlay=x=25:y=50[n2]",
		},
		{
			name:   "merge stacks at the origin",
			tag:    "merge.merge",
			inputs: []string{"[0:v]", "[1:v]"},
			want:   "[0:v][1:v]overlay=x=0:y=0[n1]",
		},
		{
			name: "chroma key",
			tag:  "mask.chromaKey",
			want: "[0:v]chromakey=color=0x00FF00:similarity=0.1:blend=0.05[n1]",
		},
		{
			name: "luminance mask",
			tag:  "mask.luminanceMask",
			want: "[0:v]lumakey=threshold=0.5:tolerance=0.1:softness=0.1[n1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := tt.inputs
			if inputs == nil {
				inputs = []string{"[0:v]"}
			}
			got, ok := renderFragment(t, tt.tag, tt.params, inputs...)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFragments_PassThroughReturns(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		params map[string]model.Value
	}{
		{name: "flip with no axes", tag: "transform.flip"},
		{name: "curves preset none", tag: "color.curves"},
		{name: "lut without a table", tag: "color.lut"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag, ok := renderFragment(t, tt.tag, tt.params, "[0:v]")
			assert.False(t, ok)
			assert.Empty(t, frag)
		})
	}
}

func TestBlendModes_CoverCatalogChoices(t *testing.T) {
	def, err := catalog.New().Lookup("merge.blend")
	require.NoError(t, err)
	spec := def.Param("mode")
	require.NotNil(t, spec)
	require.NotEmpty(t, spec.Choices)
	for _, choice := range spec.Choices {
		assert.Contains(t, blendModes, choice)
	}
	assert.Len(t, blendModes, len(spec.Choices))
}

func TestBlendFragment_UnknownModeFallsBackToNormal(t *testing.T) {
	frag, ok := renderFragment(t, "merge.blend",
		map[string]model.Value{"mode": model.ChoiceVal("dissolve")},
		"[0:v]", "[1:v]")
	require.True(t, ok)
	assert.Equal(t, "[0:v][1:v]blend=all_mode=normal:all_opacity=1[n1]", frag)
}
