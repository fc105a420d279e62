package services

import (
	"context"
	"testing"
)

func TestImageIDRoundTrip(t *testing.T) {
	ctx := WithImageID(context.Background(), "img-1")
	id, ok := ImageIDFromContext(ctx)
	if !ok || id != "img-1" {
		t.Fatalf("got %q, %v", id, ok)
	}
	if _, ok := ImageIDFromContext(context.Background()); ok {
		t.Fatal("expected no image ID on empty context")
	}
}

func TestStageRoundTrip(t *testing.T) {
	ctx := WithStage(context.Background(), "grouping")
	stage, ok := StageFromContext(ctx)
	if !ok || stage != "grouping" {
		t.Fatalf("got %q, %v", stage, ok)
	}
	if got := WithStage(context.Background(), ""); got != context.Background() {
		t.Fatal("empty stage must not allocate a new context")
	}
}
