package extract

import "strings"

// Name length bounds accepted by every extraction strategy.
const (
	minNameLen      = 2
	maxFirstNameLen = 20
	maxLastNameLen  = 25
)

// IdentityRecord holds the structured fields recovered from license-front
// text. FirstName and LastName are always present on a valid record; every
// other field may be empty.
type IdentityRecord struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	IssuedDate     string `json:"issued_date,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	LicenseNumber  string `json:"license_number,omitempty"`
	Address        string `json:"address,omitempty"`
	RawText        string `json:"raw_text,omitempty"`
}

// Valid reports whether the record carries a usable name pair.
func (r *IdentityRecord) Valid() bool {
	if r == nil {
		return false
	}
	return validNamePair(r.FirstName, r.LastName)
}

// SameName reports whether two records name the same person (exact match on
// first and last name).
func (r *IdentityRecord) SameName(other *IdentityRecord) bool {
	if r == nil || other == nil {
		return false
	}
	return r.FirstName == other.FirstName && r.LastName == other.LastName
}

func validNamePair(first, last string) bool {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	return len(first) >= minNameLen && len(first) <= maxFirstNameLen &&
		len(last) >= minNameLen && len(last) <= maxLastNameLen
}
