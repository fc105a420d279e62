package services

import "context"

type contextKey string

const (
	imageIDKey contextKey = "image_id"
	stageKey   contextKey = "stage"
)

// WithImageID annotates context with the image record identifier.
func WithImageID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, imageIDKey, id)
}

// ImageIDFromContext extracts the image record identifier if present.
func ImageIDFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(imageIDKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithStage annotates context with the pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the pipeline stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(stageKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}
