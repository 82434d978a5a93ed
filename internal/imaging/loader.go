// Package imaging owns the caller-side image handling around the extraction
// core: decoding uploads, enforcing the batch and resolution limits the core
// assumes have already been checked, and preparing regions for recognition.
package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
)

// DefaultMaxImages is the per-request upload limit.
const DefaultMaxImages = 6

// LoadImage decodes a single image file. Supported formats are PNG, JPEG,
// and GIF.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadBatch decodes a batch of screenshot files and enforces the upload
// contract the extraction core relies on: at most maxCount images, each at
// exactly wantWidth x wantHeight pixels. A non-positive maxCount means
// DefaultMaxImages; non-positive expected dimensions skip the resolution
// check.
func LoadBatch(paths []string, maxCount, wantWidth, wantHeight int) ([]image.Image, error) {
	if maxCount <= 0 {
		maxCount = DefaultMaxImages
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images given")
	}
	if len(paths) > maxCount {
		return nil, fmt.Errorf("%d images exceed the limit of %d per request", len(paths), maxCount)
	}

	images := make([]image.Image, 0, len(paths))
	for _, path := range paths {
		img, err := LoadImage(path)
		if err != nil {
			return nil, err
		}

		if wantWidth > 0 && wantHeight > 0 {
			b := img.Bounds()
			if b.Dx() != wantWidth || b.Dy() != wantHeight {
				return nil, fmt.Errorf("image %s is %dx%d, expected %dx%d",
					path, b.Dx(), b.Dy(), wantWidth, wantHeight)
			}
		}
		images = append(images, img)
	}
	return images, nil
}
