package ocr

import "context"

// Input encapsulates a single image submitted for recognition.
type Input struct {
	// Filename is the original filename, echoed back for correlation.
	Filename string
	// Image is the encoded image payload (JPEG, PNG, ...).
	Image []byte
	// Languages lists trained-data hints (e.g. "eng"); empty means engine default.
	Languages []string
}

// Result captures recognition output for a single input image.
type Result struct {
	// Text is the linearized recognized text.
	Text string
	// Confidence is the mean word confidence in [0, 100]; 0 when unknown.
	Confidence float64
}

// Engine is the recognition provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}
