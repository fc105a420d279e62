package grouping

import (
	"strings"
	"testing"
	"time"

	"imageorganizer/internal/extract"
)

func TestRenderSummaryLayout(t *testing.T) {
	record := &extract.IdentityRecord{
		FirstName:      "JANE",
		LastName:       "DOE",
		FullName:       "JANE DOE",
		DateOfBirth:    "01/02/1990",
		LicenseNumber:  "D1234567",
		IssuedDate:     "01/02/2020",
		ExpirationDate: "01/02/2028",
		Address:        "123 MAIN ST SPRINGFIELD IL 62701",
		RawText:        "DOE, JANE DOB 01/02/1990",
	}
	generated := time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)

	summary := renderSummary(record, generated)

	if !strings.HasPrefix(summary, "Driver License Information\n") {
		t.Fatalf("unexpected header: %q", summary)
	}
	for _, want := range []string{
		"Full Name: JANE DOE",
		"First Name: JANE",
		"Last Name: DOE",
		"Date of Birth: 01/02/1990",
		"License Number: D1234567",
		"Issued Date: 01/02/2020",
		"Expiration Date: 01/02/2028",
		"Address: 123 MAIN ST SPRINGFIELD IL 62701",
		"Raw OCR Text:\nDOE, JANE DOB 01/02/1990",
		"Generated on: 2024-06-01 12:30:45",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestRenderSummaryEmptyFields(t *testing.T) {
	record := &extract.IdentityRecord{
		FirstName: "JANE",
		LastName:  "DOE",
		FullName:  "JANE DOE",
	}
	summary := renderSummary(record, time.Now())
	if !strings.Contains(summary, "License Number: \n") {
		t.Fatal("missing secondary fields must render as empty values")
	}
}
