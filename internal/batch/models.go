package batch

import (
	"strings"
	"time"

	"imageorganizer/internal/classify"
	"imageorganizer/internal/extract"
)

// Status represents the processing outcome of an image record.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

var allStatuses = []Status{StatusPending, StatusProcessing, StatusCompleted, StatusFailed}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	for _, status := range allStatuses {
		if status == normalized {
			return status, true
		}
	}
	return "", false
}

// CanTransition reports whether moving to next is a legal forward transition.
// Outcomes only move forward: pending -> processing -> completed or failed.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Image is one input file tracked through the pipeline. The ID is opaque and
// immutable; Role is assigned once; Identity is assigned at most once and
// only for front-role images.
type Image struct {
	ID            string
	Filename      string
	SourcePath    string
	Role          classify.Role
	Identity      *extract.IdentityRecord
	Status        Status
	ErrorMessage  string
	OCRConfidence float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasIdentity reports whether the image carries a valid extracted identity.
// Only front-role images ever do.
func (i *Image) HasIdentity() bool {
	return i != nil && i.Role == classify.RoleFront && i.Identity.Valid()
}

// HealthSummary describes aggregated batch counts per lifecycle state.
type HealthSummary struct {
	Total      int
	Pending    int
	Processing int
	Completed  int
	Failed     int
}
