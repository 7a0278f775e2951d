package filtergen

import "fmt"

// blurFragment is a gaussian blur.
func blurFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%sgblur=sigma=%s%s", fc.In(0), ftoa(fc.Number("sigma")), fc.Out()), true
}

// sharpenFragment is an unsharp mask over the luma plane.
func sharpenFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%sunsharp=la=%s%s", fc.In(0), ftoa(fc.Number("amount")), fc.Out()), true
}

// glowFragment screens a blurred copy of the source over itself: split,
// blur one branch, blend the branches back together.
func glowFragment(fc *FragContext) (string, bool) {
	sharp := fc.NewLabel()
	soft := fc.NewLabel()
	blurred := fc.NewLabel()
	return fmt.Sprintf("%ssplit%s%s;%sgblur=sigma=%s%s;%s%sblend=all_mode=screen:all_opacity=%s%s",
		fc.In(0), sharp, soft,
		soft, ftoa(fc.Number("radius")), blurred,
		sharp, blurred, ftoa(fc.Number("intensity")), fc.Out(),
	), true
}

// motionBlurFragment averages a sliding window of frames.
func motionBlurFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%stmix=frames=%s%s", fc.In(0), itoa(int(fc.Number("frames"))), fc.Out()), true
}

// grainFragment adds temporal uniform noise.
func grainFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%snoise=alls=%s:allf=t+u%s", fc.In(0), ftoa(fc.Number("strength")), fc.Out()), true
}

// vignetteFragment darkens towards the corners.
func vignetteFragment(fc *FragContext) (string, bool) {
	return fmt.Sprintf("%svignette=angle=%s%s", fc.In(0), ftoa(fc.Number("angle")), fc.Out()), true
}

// chromaticFragment shifts the chroma planes apart horizontally to fake
// lens fringing.
func chromaticFragment(fc *FragContext) (string, bool) {
	shift := fc.Number("shift")
	return fmt.Sprintf("%schromashift=cbh=%s:crh=%s%s",
		fc.In(0), ftoa(shift), ftoa(-shift), fc.Out()), true
}
