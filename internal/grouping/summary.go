package grouping

import (
	"fmt"
	"time"

	"imageorganizer/internal/extract"
)

// summaryTimeLayout formats the generation timestamp in the text summary.
const summaryTimeLayout = "2006-01-02 15:04:05"

// renderSummary produces the fixed-layout text report written alongside a
// person's images.
func renderSummary(record *extract.IdentityRecord, generatedAt time.Time) string {
	return fmt.Sprintf(`Driver License Information
========================

Full Name: %s
First Name: %s
Last Name: %s
Date of Birth: %s
License Number: %s
Issued Date: %s
Expiration Date: %s
Address: %s

Raw OCR Text:
%s

Generated on: %s
`,
		record.FullName,
		record.FirstName,
		record.LastName,
		record.DateOfBirth,
		record.LicenseNumber,
		record.IssuedDate,
		record.ExpirationDate,
		record.Address,
		record.RawText,
		generatedAt.Format(summaryTimeLayout),
	)
}
