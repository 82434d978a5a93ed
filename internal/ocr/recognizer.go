package ocr

import "image"

// SegMode selects the page segmentation strategy for one recognition call.
type SegMode int

const (
	// SegModeBlock treats the region as a single uniform block of text.
	// Used for multi-line cells such as the player-name column.
	SegModeBlock SegMode = iota

	// SegModeLine treats the region as a single text line. Used for
	// banners and value cells.
	SegModeLine
)

// Options is the per-call engine configuration.
type Options struct {
	// Mode is the page segmentation mode.
	Mode SegMode

	// Whitelist restricts recognition to the given characters when
	// non-empty. Restricting the value cell to "0123456789:" avoids the
	// engine hallucinating letters into clear times.
	Whitelist string

	// Preprocess runs the region through imaging.Preprocess before
	// recognition.
	Preprocess bool
}

// Recognizer turns one rectangular region of an image into text.
//
// Implementations must be independent per call: no state may leak between
// recognitions, because the extraction pipeline assumes each call is
// configured from scratch.
type Recognizer interface {
	Recognize(img image.Image, region image.Rectangle, opts Options) (string, error)
}
