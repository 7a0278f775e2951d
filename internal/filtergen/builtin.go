package filtergen

import "github.com/blackmamba/compgraph/internal/model"

// fragments maps every kind that contributes filter work to its fragment
// function. Kinds absent here must appear in passThrough; Validate enforces
// the split stays total.
var fragments = map[model.Kind]FragmentFunc{
	model.KindTransformScale:    scaleFragment,
	model.KindTransformRotate:   rotateFragment,
	model.KindTransformPosition: positionFragment,
	model.KindTransformCrop:     cropFragment,
	model.KindTransformFlip:     flipFragment,

	model.KindColorCorrect:  colorCorrectFragment,
	model.KindColorCurves:   curvesFragment,
	model.KindColorLevels:   levelsFragment,
	model.KindColorHueShift: hueShiftFragment,
	model.KindColorLUT:      lutFragment,

	model.KindEffectsBlur:       blurFragment,
	model.KindEffectsSharpen:    sharpenFragment,
	model.KindEffectsGlow:       glowFragment,
	model.KindEffectsMotionBlur: motionBlurFragment,
	model.KindEffectsGrain:      grainFragment,
	model.KindEffectsVignette:   vignetteFragment,
	model.KindEffectsChromatic:  chromaticFragment,

	model.KindMergeBlend:     blendFragment,
	model.KindMergeComposite: compositeFragment,
	model.KindMergeMerge:     mergeFragment,

	model.KindMaskChroma:    chromaKeyFragment,
	model.KindMaskLuminance: luminanceMaskFragment,
}

// passThrough names the kinds that deliberately emit no filter work.
// Inputs are resolved by the label allocator (media) or fall back to the
// base input; outputs only anchor the mapped label; the rest forward their
// upstream unchanged.
var passThrough = map[model.Kind]bool{
	model.KindInputMedia:      true,
	model.KindInputSolidColor: true,
	model.KindInputGradient:   true,
	model.KindInputNoise:      true,
	model.KindInputText:       true,

	model.KindTransformCornerPin: true,
	model.KindMergeSwitch:        true,
	model.KindColorMatrix:        true,
	model.KindEffectsDefocus:     true,
	model.KindMaskShape:          true,
	model.KindMaskRoto:           true,

	model.KindOutputViewer: true,
	model.KindOutputWrite:  true,
}
