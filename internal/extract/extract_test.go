package extract

import "testing"

func TestExtractCommaName(t *testing.T) {
	rec := Extract("DRIVER LICENSE SMITH, JOHN DOB 01/02/1990 DL# D12345678 EXP 01/15/2030")
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.FirstName != "JOHN" || rec.LastName != "SMITH" {
		t.Fatalf("got %q %q, want JOHN SMITH", rec.FirstName, rec.LastName)
	}
	if rec.FullName != "JOHN SMITH" {
		t.Fatalf("unexpected full name %q", rec.FullName)
	}
	if rec.DateOfBirth != "01/02/1990" {
		t.Fatalf("unexpected DOB %q", rec.DateOfBirth)
	}
	if rec.ExpirationDate != "01/15/2030" {
		t.Fatalf("unexpected expiration %q", rec.ExpirationDate)
	}
}

func TestExtractTooShort(t *testing.T) {
	if rec := Extract("short"); rec != nil {
		t.Fatalf("expected nil for short text, got %+v", rec)
	}
	if rec := Extract("   \n\t  "); rec != nil {
		t.Fatalf("expected nil for blank text, got %+v", rec)
	}
}

func TestExtractLabeledNames(t *testing.T) {
	rec := Extract("FIRST NAME: JANE LAST NAME: DOE DOB: 03-04-1985")
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.FirstName != "JANE" || rec.LastName != "DOE" {
		t.Fatalf("got %q %q, want JANE DOE", rec.FirstName, rec.LastName)
	}
	if rec.DateOfBirth != "03-04-1985" {
		t.Fatalf("unexpected DOB %q", rec.DateOfBirth)
	}
}

func TestExtractFullNameLabel(t *testing.T) {
	rec := Extract("Name: JOHN SMITH 01/02/1990 records on file")
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.FirstName != "JOHN" || rec.LastName != "SMITH" {
		t.Fatalf("got %q %q, want JOHN SMITH", rec.FirstName, rec.LastName)
	}
}

func TestExtractHeuristicPairSkipsTemplateWords(t *testing.T) {
	rec := Extract("CLASS D STATE TX JOHN SMITH HEIGHT 5-10 EYES BRN")
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.FirstName != "JOHN" || rec.LastName != "SMITH" {
		t.Fatalf("got %q %q, want JOHN SMITH", rec.FirstName, rec.LastName)
	}
}

func TestExtractNoPartialNames(t *testing.T) {
	// A first name alone must never produce a record.
	if rec := Extract("first name: john, extra lowercase filler text"); rec != nil {
		t.Fatalf("expected nil without a last name, got %+v", rec)
	}
}

func TestExtractAddressBoundedByNextLabel(t *testing.T) {
	rec := Extract("SMITH, JOHN ADDRESS: 123 MAIN ST SPRINGFIELD IL 62704 Class D restrictions none")
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.Address != "123 MAIN ST SPRINGFIELD IL 62704" {
		t.Fatalf("unexpected address %q", rec.Address)
	}
}

func TestExtractWhitespaceCollapse(t *testing.T) {
	rec := Extract("SMITH,\n   JOHN\n\nDOB  01/02/1990 on record")
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.FirstName != "JOHN" {
		t.Fatalf("unexpected first name %q", rec.FirstName)
	}
	if rec.RawText != "SMITH, JOHN DOB 01/02/1990 on record" {
		t.Fatalf("raw text not collapsed: %q", rec.RawText)
	}
}

func TestRecordValidity(t *testing.T) {
	var nilRec *IdentityRecord
	if nilRec.Valid() {
		t.Fatal("nil record must not be valid")
	}
	rec := &IdentityRecord{FirstName: "J", LastName: "SMITH"}
	if rec.Valid() {
		t.Fatal("single-letter first name must not be valid")
	}
	rec.FirstName = "JOHN"
	if !rec.Valid() {
		t.Fatal("expected valid record")
	}
}

func TestSameName(t *testing.T) {
	a := &IdentityRecord{FirstName: "JOHN", LastName: "SMITH"}
	b := &IdentityRecord{FirstName: "JOHN", LastName: "SMITH"}
	c := &IdentityRecord{FirstName: "JANE", LastName: "SMITH"}
	if !a.SameName(b) {
		t.Fatal("identical names must match")
	}
	if a.SameName(c) {
		t.Fatal("different first names must not match")
	}
	if a.SameName(nil) {
		t.Fatal("nil comparison must not match")
	}
}
