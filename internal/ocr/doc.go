// Package ocr provides text recognition over screenshot regions using
// Tesseract.
//
// The package exposes recognition as a narrow capability — the Recognizer
// interface — so the extraction pipeline never depends on engine internals
// and tests can substitute a deterministic fake.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//
// Language data files are required for each recognition language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// # Engine Lifecycle
//
// The underlying Tesseract client carries mutable per-call configuration
// (page segmentation mode, character whitelist) and is not safe to share
// across concurrent recognitions. TesseractRecognizer therefore creates a
// fresh client for every Recognize call and closes it before returning.
// Nothing is cached between calls.
//
// # Error Handling
//
// Recognize returns an error when cropping, encoding, or the engine itself
// fails. Callers in the extraction pipeline treat any such error as "region
// unreadable" and continue with the field absent; nothing in this package
// aborts an image.
package ocr
