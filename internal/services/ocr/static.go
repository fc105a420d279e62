package ocr

import (
	"context"
	"fmt"
)

// StaticEngine serves canned recognition results keyed by filename. Used in
// tests and dry runs where no Tesseract installation is available.
type StaticEngine struct {
	// Results maps filename to the canned result.
	Results map[string]Result
	// Errors maps filename to a forced failure.
	Errors map[string]error
}

// NewStaticEngine constructs an engine with the provided canned results.
func NewStaticEngine(results map[string]Result) *StaticEngine {
	return &StaticEngine{Results: results}
}

func (e *StaticEngine) Name() string { return "static" }

// Recognize returns the canned result for the input filename. Unknown
// filenames yield an empty result rather than an error: a real engine
// produces garbage for unreadable images, not failures.
func (e *StaticEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err, ok := e.Errors[in.Filename]; ok {
		return Result{}, fmt.Errorf("static recognize %s: %w", in.Filename, err)
	}
	if res, ok := e.Results[in.Filename]; ok {
		return res, nil
	}
	return Result{}, nil
}
