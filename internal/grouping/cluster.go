package grouping

import (
	"strings"

	"imageorganizer/internal/batch"
	"imageorganizer/internal/classify"
	"imageorganizer/internal/extract"
)

// DefaultClusterKey is the reserved routing key for images with no derivable
// identity or filename signal.
const DefaultClusterKey = "ungrouped"

// DefaultClusterName labels the default cluster in exports and listings.
const DefaultClusterName = "Ungrouped Images"

// Cluster is the set of images attributed to one person, plus the derived
// display name and generated text summary.
type Cluster struct {
	Key     string
	Name    string
	Members []*batch.Image
	Summary string
}

// Identity returns the cluster's representative identity record: the first
// front-role member with a valid record, falling back to any member with one.
// Returns nil when no member carries an identity.
func (c *Cluster) Identity() *extract.IdentityRecord {
	var fallback *extract.IdentityRecord
	for _, member := range c.Members {
		if !member.Identity.Valid() {
			continue
		}
		if member.Role == classify.RoleFront {
			return member.Identity
		}
		if fallback == nil {
			fallback = member.Identity
		}
	}
	return fallback
}

// IsDefault reports whether this is the reserved ungrouped cluster.
func (c *Cluster) IsDefault() bool { return c.Key == DefaultClusterKey }

// Result holds the final cluster partition of a batch.
type Result struct {
	clusters []*Cluster
	byKey    map[string]*Cluster
}

// Clusters returns the surviving clusters in creation order.
func (r *Result) Clusters() []*Cluster { return r.clusters }

// Lookup resolves a cluster key. Keys of absorbed clusters no longer resolve.
func (r *Result) Lookup(key string) (*Cluster, bool) {
	c, ok := r.byKey[key]
	return c, ok
}

// TotalImages counts members across all clusters.
func (r *Result) TotalImages() int {
	total := 0
	for _, c := range r.clusters {
		total += len(c.Members)
	}
	return total
}

// keyForIdentity builds the cluster routing key for an extracted identity:
// lowercase firstname_lastname with interior whitespace collapsed to
// underscores.
func keyForIdentity(record *extract.IdentityRecord) string {
	joined := record.FirstName + "_" + record.LastName
	return strings.ToLower(strings.Join(strings.Fields(joined), "_"))
}
