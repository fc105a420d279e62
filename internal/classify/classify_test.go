package classify

import "testing"

func TestClassifyPrecedence(t *testing.T) {
	cases := []struct {
		filename string
		want     Role
	}{
		{"dl_back_front.jpg", RoleBack},
		{"license_back.png", RoleBack},
		{"rear_view.jpg", RoleBack},
		{"selfie_of_license.jpg", RoleSelfie},
		{"headshot.jpg", RoleSelfie},
		{"photo_of_me.jpg", RoleSelfie},
		{"dl_front.jpg", RoleFront},
		{"drivers_license.jpg", RoleFront},
		{"jsmith_id.png", RoleFront},
		{"state_permit.jpg", RoleFront},
		{"random123.jpg", RoleUnknown},
		{"IMG_FRONT.JPG", RoleFront},
	}
	for _, tc := range cases {
		if got := Classify(tc.filename); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestClassifyWeakSelfie(t *testing.T) {
	// Weak selfie tokens only count when no document vocabulary is present.
	if got := Classify("vacation_shot.jpg"); got != RoleSelfie {
		t.Fatalf("vacation_shot.jpg: got %q, want selfie", got)
	}
	if got := Classify("photo_card.jpg"); got != RoleFront {
		t.Fatalf("photo_card.jpg: got %q, want front (card is a document token)", got)
	}
}

func TestClassifyGenericDocumentFallback(t *testing.T) {
	if got := Classify("my_doc_1.jpg"); got != RoleFront {
		t.Fatalf("my_doc_1.jpg: got %q, want front", got)
	}
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" DL_FRONT ")
	if !ok || role != RoleFront {
		t.Fatalf("ParseRole: got %q, %v", role, ok)
	}
	if _, ok := ParseRole("bogus"); ok {
		t.Fatal("expected bogus role to fail parsing")
	}
}

func TestRoleExportOrder(t *testing.T) {
	if RoleFront.ExportOrder() >= RoleBack.ExportOrder() {
		t.Fatal("front must sort before back")
	}
	if RoleSelfie.ExportOrder() >= RoleUnknown.ExportOrder() {
		t.Fatal("selfie must sort before unknown")
	}
}
