package model

import (
	"fmt"
	"strconv"
)

// Category groups node kinds by the role they play in a composition graph.
type Category string

const (
	CategoryInput     Category = "input"
	CategoryTransform Category = "transform"
	CategoryMerge     Category = "merge"
	CategoryColor     Category = "color"
	CategoryEffects   Category = "effects"
	CategoryMask      Category = "mask"
	CategoryOutput    Category = "output"
)

// Kind identifies a node type from the closed built-in set. The zero value
// is invalid.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindInputMedia
	KindInputSolidColor
	KindInputGradient
	KindInputNoise
	KindInputText

	KindTransformScale
	KindTransformRotate
	KindTransformPosition
	KindTransformCrop
	KindTransformFlip
	KindTransformCornerPin

	KindMergeBlend
	KindMergeComposite
	KindMergeMerge
	KindMergeSwitch

	KindColorCorrect
	KindColorCurves
	KindColorLevels
	KindColorHueShift
	KindColorMatrix
	KindColorLUT

	KindEffectsBlur
	KindEffectsSharpen
	KindEffectsGlow
	KindEffectsDefocus
	KindEffectsMotionBlur
	KindEffectsGrain
	KindEffectsVignette
	KindEffectsChromatic

	KindMaskShape
	KindMaskRoto
	KindMaskLuminance
	KindMaskChroma

	KindOutputViewer
	KindOutputWrite

	kindEnd
)

type kindInfo struct {
	tag      string
	category Category
}

// kinds maps every Kind to its wire tag and category. The tag is the
// "category.subtype" string used by scripts and the exchange format.
var kinds = [kindEnd]kindInfo{
	KindInputMedia:         {"input.media", CategoryInput},
	KindInputSolidColor:    {"input.solidColor", CategoryInput},
	KindInputGradient:      {"input.gradient", CategoryInput},
	KindInputNoise:         {"input.noise", CategoryInput},
	KindInputText:          {"input.text", CategoryInput},
	KindTransformScale:     {"transform.scale", CategoryTransform},
	KindTransformRotate:    {"transform.rotate", CategoryTransform},
	KindTransformPosition:  {"transform.position", CategoryTransform},
	KindTransformCrop:      {"transform.crop", CategoryTransform},
	KindTransformFlip:      {"transform.flip", CategoryTransform},
	KindTransformCornerPin: {"transform.cornerPin", CategoryTransform},
	KindMergeBlend:         {"merge.blend", CategoryMerge},
	KindMergeComposite:     {"merge.composite", CategoryMerge},
	KindMergeMerge:         {"merge.merge", CategoryMerge},
	KindMergeSwitch:        {"merge.switch", CategoryMerge},
	KindColorCorrect:       {"color.colorCorrect", CategoryColor},
	KindColorCurves:        {"color.curves", CategoryColor},
	KindColorLevels:        {"color.levels", CategoryColor},
	KindColorHueShift:      {"color.hueShift", CategoryColor},
	KindColorMatrix:        {"color.colorMatrix", CategoryColor},
	KindColorLUT:           {"color.lut", CategoryColor},
	KindEffectsBlur:        {"effects.blur", CategoryEffects},
	KindEffectsSharpen:     {"effects.sharpen", CategoryEffects},
	KindEffectsGlow:        {"effects.glow", CategoryEffects},
	KindEffectsDefocus:     {"effects.defocus", CategoryEffects},
	KindEffectsMotionBlur:  {"effects.motionBlur", CategoryEffects},
	KindEffectsGrain:       {"effects.grain", CategoryEffects},
	KindEffectsVignette:    {"effects.vignette", CategoryEffects},
	KindEffectsChromatic:   {"effects.chromatic", CategoryEffects},
	KindMaskShape:          {"mask.shapeMask", CategoryMask},
	KindMaskRoto:           {"mask.rotoMask", CategoryMask},
	KindMaskLuminance:      {"mask.luminanceMask", CategoryMask},
	KindMaskChroma:         {"mask.chromaKey", CategoryMask},
	KindOutputViewer:       {"output.viewer", CategoryOutput},
	KindOutputWrite:        {"output.write", CategoryOutput},
}

var kindByTag = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for k := Kind(1); k < kindEnd; k++ {
		m[kinds[k].tag] = k
	}
	return m
}()

// ParseKind resolves a "category.subtype" tag to its Kind. Unknown tags
// report ErrInvalidNodeType.
func ParseKind(tag string) (Kind, error) {
	k, ok := kindByTag[tag]
	if !ok {
		return KindInvalid, fmt.Errorf("%w: %q", ErrInvalidNodeType, tag)
	}
	return k, nil
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindEnd-1)
	for k := Kind(1); k < kindEnd; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a member of the built-in set.
func (k Kind) Valid() bool { return k > KindInvalid && k < kindEnd }

// String returns the wire tag, e.g. "transform.scale".
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return kinds[k].tag
}

// Category returns the category segment of the kind.
func (k Kind) Category() Category {
	if !k.Valid() {
		return ""
	}
	return kinds[k].category
}

// MarshalJSON encodes the kind as its wire tag.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("marshal node kind: invalid value %d", uint8(k))
	}
	return strconv.AppendQuote(nil, kinds[k].tag), nil
}

// UnmarshalJSON decodes a wire tag, rejecting tags outside the built-in set.
func (k *Kind) UnmarshalJSON(data []byte) error {
	tag, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal node kind: %w", err)
	}
	parsed, err := ParseKind(tag)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
