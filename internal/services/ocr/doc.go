// Package ocr defines the text-recognition collaborator contract and its
// Tesseract-backed production engine.
//
// The pipeline treats recognized text as raw input regardless of confidence;
// the confidence value is surfaced for logging only. A StaticEngine with
// canned results is provided for tests and dry runs.
package ocr
