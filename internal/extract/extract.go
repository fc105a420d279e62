package extract

import (
	"regexp"
	"strings"
)

// minTextLen guards against OCR output with too little signal to parse.
const minTextLen = 20

var (
	whitespacePattern = regexp.MustCompile(`\s+`)

	// Name strategies, in resolution order.
	commaNamePattern = regexp.MustCompile(`([A-Z]{2,25}),\s*([A-Z]{2,20})`)
	firstNamePattern = regexp.MustCompile(`(?i)(?:FIRST NAME|FN|Given Name|FIRST)[:\s]*([A-Z][A-Z]{1,20})`)
	lastNamePattern  = regexp.MustCompile(`(?i)(?:LAST NAME|LN|Surname|LAST)[:\s]*([A-Z][A-Z]{1,25})`)
	fullNamePattern  = regexp.MustCompile(`(?i)(?:Name|FULL NAME|LN FN)[:\s]*([A-Z][A-Z\s]{5,40})`)
	pairNamePattern  = regexp.MustCompile(`\b([A-Z]{2,20})\s+([A-Z]{2,25})\b`)

	// Secondary fields.
	dobPattern     = regexp.MustCompile(`(?i)(?:DOB|Date of Birth|Birth|D\.?O\.?B\.?)[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`)
	issuedPattern  = regexp.MustCompile(`(?i)(?:ISS|Issued|Issue Date|ISS\s*DATE)[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`)
	expiresPattern = regexp.MustCompile(`(?i)(?:EXP|Expires|Expiration|EXP\s*DATE)[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`)
	licensePattern = regexp.MustCompile(`(?i)(?:DL|License|ID|LIC)[:\s#]*([A-Z0-9]{4,25})`)
	addressPattern = regexp.MustCompile(`(?i)(?:Address|ADDR|ADD)[:\s]*([A-Z0-9\s,.\-]{10,100})`)

	// addressBoundaryPattern marks the next recognized field label; the
	// address span ends just before it.
	addressBoundaryPattern = regexp.MustCompile(`(?i)\b(?:Class|Sex|Height|DOB|EXP|ISS)`)
)

// pairStopWords lists license-template words that never form a person name.
var pairStopWords = map[string]struct{}{
	"CLASS": {}, "STATE": {}, "DRIVER": {}, "LICENSE": {}, "EXPIRES": {},
	"ISSUED": {}, "HEIGHT": {}, "WEIGHT": {}, "EYES": {}, "HAIR": {},
	"SEX": {}, "ORGAN": {}, "DONOR": {}, "VETERAN": {},
}

// Extract parses raw OCR text into an IdentityRecord. It returns nil when the
// text is too short or no valid name pair can be resolved; a nil result is an
// expected outcome, not an error.
func Extract(rawText string) *IdentityRecord {
	if len(strings.TrimSpace(rawText)) < minTextLen {
		return nil
	}
	cleanText := strings.TrimSpace(whitespacePattern.ReplaceAllString(rawText, " "))

	first, last := resolveName(cleanText)
	if !validNamePair(first, last) {
		return nil
	}

	return &IdentityRecord{
		FirstName:      first,
		LastName:       last,
		FullName:       first + " " + last,
		DateOfBirth:    firstGroup(dobPattern, cleanText),
		IssuedDate:     firstGroup(issuedPattern, cleanText),
		ExpirationDate: firstGroup(expiresPattern, cleanText),
		LicenseNumber:  firstGroup(licensePattern, cleanText),
		Address:        extractAddress(cleanText),
		RawText:        cleanText,
	}
}

// resolveName applies the four name strategies in order, returning the first
// (first, last) pair that looks plausible.
func resolveName(text string) (string, string) {
	// Strategy 1: LASTNAME, FIRSTNAME comma form.
	for _, m := range commaNamePattern.FindAllStringSubmatch(text, -1) {
		last, first := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if validNamePair(first, last) {
			return first, last
		}
	}

	// Strategy 2: explicitly labeled first and last names, both required.
	firstMatch := firstNamePattern.FindStringSubmatch(text)
	lastMatch := lastNamePattern.FindStringSubmatch(text)
	if firstMatch != nil && lastMatch != nil {
		return strings.TrimSpace(firstMatch[1]), strings.TrimSpace(lastMatch[1])
	}

	// Strategy 3: a single labeled full name, split on whitespace.
	if m := fullNamePattern.FindStringSubmatch(text); m != nil {
		parts := strings.Fields(strings.TrimSpace(m[1]))
		if len(parts) >= 2 {
			return parts[0], strings.Join(parts[1:], " ")
		}
	}

	// Strategy 4: first adjacent capitalized pair not in the template stoplist.
	for _, m := range pairNamePattern.FindAllStringSubmatch(text, -1) {
		if _, skip := pairStopWords[m[1]]; skip {
			continue
		}
		if _, skip := pairStopWords[m[2]]; skip {
			continue
		}
		return m[1], m[2]
	}

	return "", ""
}

// extractAddress captures an address-labeled span and truncates it at the
// next recognized field label.
func extractAddress(text string) string {
	m := addressPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	span := m[1]
	if loc := addressBoundaryPattern.FindStringIndex(span); loc != nil {
		span = span[:loc[0]]
	}
	return strings.TrimSpace(span)
}

func firstGroup(pattern *regexp.Regexp, text string) string {
	if m := pattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
