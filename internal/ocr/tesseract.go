package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	dimaging "github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/guildtools/runboard/internal/imaging"
)

// TesseractRecognizer implements Recognizer on top of the locally installed
// Tesseract engine via gosseract.
type TesseractRecognizer struct {
	// Language is the Tesseract language code, e.g. "eng". Empty means the
	// engine default.
	Language string
}

// NewTesseractRecognizer creates a recognizer for the given Tesseract
// language code.
func NewTesseractRecognizer(language string) *TesseractRecognizer {
	return &TesseractRecognizer{Language: language}
}

// Recognize crops the region from the image and runs Tesseract over it with
// a freshly configured client.
//
// The crop is encoded as PNG and handed to the engine in memory; no
// temporary files are written. A fresh gosseract client is created per call
// because its configuration is mutable and must not be shared.
func (t *TesseractRecognizer) Recognize(img image.Image, region image.Rectangle, opts Options) (string, error) {
	if region.Empty() {
		return "", fmt.Errorf("empty recognition region %v", region)
	}

	cropped := dimaging.Crop(img, region)

	var prepared image.Image = cropped
	if opts.Preprocess {
		prepared = imaging.Preprocess(cropped)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, prepared); err != nil {
		return "", fmt.Errorf("failed to encode region: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.Language != "" {
		if err := client.SetLanguage(t.Language); err != nil {
			return "", fmt.Errorf("failed to set language: %w", err)
		}
	}
	if err := client.SetPageSegMode(pageSegMode(opts.Mode)); err != nil {
		return "", fmt.Errorf("failed to set segmentation mode: %w", err)
	}
	if opts.Whitelist != "" {
		if err := client.SetWhitelist(opts.Whitelist); err != nil {
			return "", fmt.Errorf("failed to set whitelist: %w", err)
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

func pageSegMode(m SegMode) gosseract.PageSegMode {
	switch m {
	case SegModeLine:
		return gosseract.PSM_SINGLE_LINE
	default:
		return gosseract.PSM_SINGLE_BLOCK
	}
}
