package batch

import (
	"context"
	"testing"

	"imageorganizer/internal/classify"
	"imageorganizer/internal/extract"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	img, err := store.Add(ctx, "jsmith_front.jpg", "/tmp/jsmith_front.jpg")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if img.ID == "" {
		t.Fatal("expected generated ID")
	}
	if img.Status != StatusPending {
		t.Fatalf("unexpected status %q", img.Status)
	}
	if img.Role != classify.RoleUnknown {
		t.Fatalf("unexpected role %q", img.Role)
	}

	fetched, err := store.GetByID(ctx, img.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched == nil || fetched.Filename != "jsmith_front.jpg" {
		t.Fatalf("unexpected fetch result: %+v", fetched)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)
	img, err := store.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img != nil {
		t.Fatalf("expected nil, got %+v", img)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	names := []string{"c.jpg", "a.jpg", "b.jpg"}
	for _, name := range names {
		if _, err := store.Add(ctx, name, ""); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	images, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("expected 3 records, got %d", len(images))
	}
	for i, name := range names {
		if images[i].Filename != name {
			t.Fatalf("position %d: got %q, want %q", i, images[i].Filename, name)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	img, err := store.Add(ctx, "x.jpg", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := store.Transition(ctx, img.ID, StatusCompleted, ""); err == nil {
		t.Fatal("expected pending -> completed to be rejected")
	}
	if err := store.Transition(ctx, img.ID, StatusProcessing, ""); err != nil {
		t.Fatalf("pending -> processing: %v", err)
	}
	if err := store.Transition(ctx, img.ID, StatusFailed, "ocr exploded"); err != nil {
		t.Fatalf("processing -> failed: %v", err)
	}
	if err := store.Transition(ctx, img.ID, StatusProcessing, ""); err == nil {
		t.Fatal("expected terminal status to reject transitions")
	}

	fetched, err := store.GetByID(ctx, img.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Status != StatusFailed || fetched.ErrorMessage != "ocr exploded" {
		t.Fatalf("unexpected final state: %+v", fetched)
	}
}

func TestSetIdentityRules(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	img, err := store.Add(ctx, "front.jpg", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	record := &extract.IdentityRecord{FirstName: "JOHN", LastName: "SMITH", FullName: "JOHN SMITH"}

	// Identity before role assignment must fail: the record is not a front yet.
	if err := store.SetIdentity(ctx, img.ID, record); err == nil {
		t.Fatal("expected identity on unknown role to be rejected")
	}
	if err := store.SetRole(ctx, img.ID, classify.RoleFront); err != nil {
		t.Fatalf("set role: %v", err)
	}
	if err := store.SetIdentity(ctx, img.ID, record); err != nil {
		t.Fatalf("set identity: %v", err)
	}
	if err := store.SetIdentity(ctx, img.ID, record); err == nil {
		t.Fatal("expected second identity assignment to be rejected")
	}

	fetched, err := store.GetByID(ctx, img.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !fetched.HasIdentity() || fetched.Identity.FirstName != "JOHN" {
		t.Fatalf("identity not persisted: %+v", fetched.Identity)
	}
}

func TestRoleAssignedOnce(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	img, _ := store.Add(ctx, "y.jpg", "")
	if err := store.SetRole(ctx, img.ID, classify.RoleBack); err != nil {
		t.Fatalf("set role: %v", err)
	}
	if err := store.SetRole(ctx, img.ID, classify.RoleBack); err != nil {
		t.Fatalf("idempotent same-role set should pass: %v", err)
	}
	if err := store.SetRole(ctx, img.ID, classify.RoleSelfie); err == nil {
		t.Fatal("expected role change to be rejected")
	}
}

func TestHealthSummary(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	a, _ := store.Add(ctx, "a.jpg", "")
	b, _ := store.Add(ctx, "b.jpg", "")
	if _, err := store.Add(ctx, "c.jpg", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	_ = store.Transition(ctx, a.ID, StatusProcessing, "")
	_ = store.Transition(ctx, a.ID, StatusCompleted, "")
	_ = store.Transition(ctx, b.ID, StatusProcessing, "")

	summary, err := store.HealthSummary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := HealthSummary{Total: 3, Pending: 1, Processing: 1, Completed: 1}
	if summary != want {
		t.Fatalf("got %+v, want %+v", summary, want)
	}
}

func TestParseStatus(t *testing.T) {
	if status, ok := ParseStatus(" Completed "); !ok || status != StatusCompleted {
		t.Fatalf("got %q, %v", status, ok)
	}
	if _, ok := ParseStatus("bogus"); ok {
		t.Fatal("expected bogus status to fail")
	}
}
