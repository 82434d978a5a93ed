package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/lucasb-eyer/go-colorful"
)

// lightnessSampleStride bounds the cost of MeanLightness on large regions.
const lightnessSampleStride = 4

// Preprocess prepares a cropped overlay region for text recognition.
//
// The overlay renders light text on a dark translucent panel, which
// Tesseract handles noticeably worse than dark-on-light. Regions are
// converted to grayscale, contrast-boosted, and inverted when the region is
// predominantly dark. The input image is never modified.
func Preprocess(img image.Image) image.Image {
	out := effect.Grayscale(img)
	out = adjust.Contrast(out, 0.3)
	if MeanLightness(img) < 0.5 {
		out = effect.Invert(out)
	}
	return out
}

// MeanLightness returns the mean CIE Lab lightness of an image in [0,1],
// sampled on a fixed stride. Fully transparent pixels are skipped.
func MeanLightness(img image.Image) float64 {
	b := img.Bounds()
	var sum float64
	var n int

	for y := b.Min.Y; y < b.Max.Y; y += lightnessSampleStride {
		for x := b.Min.X; x < b.Max.X; x += lightnessSampleStride {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
