package classify

import "strings"

// Role identifies the document function of an image.
type Role string

const (
	RoleFront   Role = "dl_front"
	RoleBack    Role = "dl_back"
	RoleSelfie  Role = "selfie"
	RoleUnknown Role = "unknown"
)

// Label returns a human-readable name for the role.
func (r Role) Label() string {
	switch r {
	case RoleFront:
		return "DL Front"
	case RoleBack:
		return "DL Back"
	case RoleSelfie:
		return "Selfie"
	default:
		return "Unknown"
	}
}

// ExportOrder ranks roles for archive layout: front, back, selfie, unknown.
func (r Role) ExportOrder() int {
	switch r {
	case RoleFront:
		return 0
	case RoleBack:
		return 1
	case RoleSelfie:
		return 2
	default:
		return 3
	}
}

// ParseRole converts a string into a known Role.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleFront:
		return RoleFront, true
	case RoleBack:
		return RoleBack, true
	case RoleSelfie:
		return RoleSelfie, true
	case RoleUnknown:
		return RoleUnknown, true
	default:
		return "", false
	}
}

var backIndicators = []string{
	"back", "rear", "reverse", "dl_back", "license_back", "id_back",
}

var selfieIndicators = []string{
	"selfie", "portrait", "headshot", "profile", "face_",
	"person_", "me_", "self_", "pic_of_", "photo_of_me",
}

var weakSelfieIndicators = []string{"photo", "pic", "shot"}

var frontIndicators = []string{
	"front", "dl_front", "license_front", "id_front",
}

// documentIndicators is the implicit front vocabulary: a filename carrying any
// of these tokens is treated as a license front unless a stronger rule fired.
var documentIndicators = []string{
	"dl", "license", "licence", "id", "driver", "identification",
	"state", "gov", "official", "permit", "card",
}

// genericDocumentIndicators catches ambiguous document-like filenames, which
// fall back to front so they still receive an extraction attempt.
var genericDocumentIndicators = []string{
	"doc", "document", "card", "scan", "copy", "image",
}

// Classify maps a filename to a document role. Case-insensitive, total, and
// deterministic; the first matching rule wins.
func Classify(filename string) Role {
	name := strings.ToLower(filename)

	if containsAny(name, backIndicators) {
		return RoleBack
	}
	if isSelfie(name) {
		return RoleSelfie
	}
	if containsAny(name, frontIndicators) || containsAny(name, documentIndicators) {
		return RoleFront
	}
	if containsAny(name, genericDocumentIndicators) {
		return RoleFront
	}
	return RoleUnknown
}

// isSelfie applies strong indicators unconditionally; weak indicators count
// only when no document vocabulary is present.
func isSelfie(name string) bool {
	if containsAny(name, selfieIndicators) {
		return true
	}
	return containsAny(name, weakSelfieIndicators) && !containsAny(name, documentIndicators)
}

func containsAny(name string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}
