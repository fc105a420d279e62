package grouping

import (
	"log/slog"
	"strings"
	"time"

	"imageorganizer/internal/batch"
	"imageorganizer/internal/classify"
	"imageorganizer/internal/logging"
	"imageorganizer/internal/textutil"
)

// Engine assigns images to clusters and reconciles clusters that turn out to
// describe the same person. It is single-threaded by design: reconciliation
// must observe the complete assignment pass.
type Engine struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine constructs a grouping engine.
func NewEngine(logger *slog.Logger) *Engine {
	return NewEngineWithClock(logger, time.Now)
}

// NewEngineWithClock allows injecting the summary timestamp source (used in
// tests).
func NewEngineWithClock(logger *slog.Logger, now func() time.Time) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		logger: logger.With(logging.String(logging.FieldComponent, "grouping")),
		now:    now,
	}
}

// Group partitions the batch into per-person clusters. Every input image
// lands in exactly one cluster; images with no usable signal land in the
// default cluster.
func (e *Engine) Group(images []*batch.Image) *Result {
	clusters, order := e.assign(images)
	order = e.reconcile(clusters, order)
	e.finalize(clusters, order)

	result := &Result{byKey: make(map[string]*Cluster, len(order))}
	for _, key := range order {
		cluster := clusters[key]
		result.clusters = append(result.clusters, cluster)
		result.byKey[key] = cluster
	}
	return result
}

// assign is pass 1: route each image to a cluster key in input order.
func (e *Engine) assign(images []*batch.Image) (map[string]*Cluster, []string) {
	clusters := make(map[string]*Cluster)
	var order []string

	join := func(key, name string, img *batch.Image) {
		cluster, ok := clusters[key]
		if !ok {
			cluster = &Cluster{Key: key, Name: name}
			clusters[key] = cluster
			order = append(order, key)
		}
		cluster.Members = append(cluster.Members, img)
	}

	for _, img := range images {
		if img.HasIdentity() {
			key := keyForIdentity(img.Identity)
			name := textutil.TitleWords(key)
			e.logger.Debug("grouped by extracted identity",
				logging.String(logging.FieldImageID, img.ID),
				logging.String(logging.FieldClusterKey, key))
			join(key, name, img)
			continue
		}

		if identifier := classify.DeriveIdentifier(img.Filename); identifier != "" {
			e.logger.Debug("grouped by filename identifier",
				logging.String(logging.FieldImageID, img.ID),
				logging.String(logging.FieldClusterKey, identifier))
			join(identifier, textutil.TitleWords(identifier), img)
			continue
		}

		if key, ok := e.findSimilarCluster(img, clusters, order); ok {
			e.logger.Debug("grouped by filename similarity",
				logging.String(logging.FieldImageID, img.ID),
				logging.String(logging.FieldClusterKey, key))
			join(key, clusters[key].Name, img)
			continue
		}

		e.logger.Debug("no grouping signal; using default cluster",
			logging.String(logging.FieldImageID, img.ID))
		join(DefaultClusterKey, DefaultClusterName, img)
	}

	return clusters, order
}

// findSimilarCluster scans existing non-default clusters in creation order
// for a member whose cleaned base name is similar to this image's.
func (e *Engine) findSimilarCluster(img *batch.Image, clusters map[string]*Cluster, order []string) (string, bool) {
	base := textutil.StripExtension(img.Filename)
	for _, key := range order {
		if key == DefaultClusterKey {
			continue
		}
		for _, member := range clusters[key].Members {
			if textutil.Similar(base, textutil.StripExtension(member.Filename)) {
				return key, true
			}
		}
	}
	return "", false
}

// similarIdentityCluster finds the first candidate cluster holding a member
// whose cleaned filename is similar to any member of the given cluster.
func (e *Engine) similarIdentityCluster(clusters map[string]*Cluster, key string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		for _, member := range clusters[candidate].Members {
			base := textutil.StripExtension(member.Filename)
			for _, own := range clusters[key].Members {
				if textutil.Similar(base, textutil.StripExtension(own.Filename)) {
					return candidate, true
				}
			}
		}
	}
	return "", false
}

// reconcile is pass 2: merge clusters that describe the same person.
// Union-find keyed by cluster key makes transitive chains collapse without
// index juggling; members always flow into the earliest-created cluster of
// each set.
//
// Two merge rules apply. Clusters whose extracted identities carry the exact
// same first and last name are one person. A cluster with no identity at all
// is absorbed into an identity-bearing cluster when their member filenames
// are similar: a front routed by its extracted name and its back or selfie
// routed by filename would otherwise never rejoin.
func (e *Engine) reconcile(clusters map[string]*Cluster, order []string) []string {
	parent := make(map[string]string, len(order))
	for _, key := range order {
		parent[key] = key
	}
	var find func(string) string
	find = func(key string) string {
		if parent[key] != key {
			parent[key] = find(parent[key])
		}
		return parent[key]
	}

	// Bucket clusters by the exact first/last name of their representative
	// identity; every cluster in a bucket proves the same person.
	byName := make(map[string]string)
	var withIdentity, withoutIdentity []string
	for _, key := range order {
		if key == DefaultClusterKey {
			continue
		}
		identity := clusters[key].Identity()
		if identity == nil {
			withoutIdentity = append(withoutIdentity, key)
			continue
		}
		withIdentity = append(withIdentity, key)
		nameKey := identity.FirstName + "\x00" + identity.LastName
		if rootKey, ok := byName[nameKey]; ok {
			parent[find(key)] = find(rootKey)
		} else {
			byName[nameKey] = key
		}
	}

	// Identity-less clusters join the first identity-bearing cluster with a
	// similar member filename, in creation order.
	for _, key := range withoutIdentity {
		if root, ok := e.similarIdentityCluster(clusters, key, withIdentity); ok {
			parent[find(key)] = find(root)
		}
	}

	// Rebuild: move members of absorbed clusters into their root, preserving
	// creation order of survivors.
	survivors := order[:0]
	for _, key := range order {
		root := find(key)
		if root == key {
			survivors = append(survivors, key)
			continue
		}
		e.logger.Info("merged clusters with matching identity",
			logging.String("absorbed_key", key),
			logging.String(logging.FieldClusterKey, root))
		clusters[root].Members = append(clusters[root].Members, clusters[key].Members...)
		delete(clusters, key)
	}
	return survivors
}

// finalize is pass 3: regenerate display names and produce text summaries
// for clusters that hold a valid identity. The default cluster keeps its
// reserved name even when a member carries a record.
func (e *Engine) finalize(clusters map[string]*Cluster, order []string) {
	for _, key := range order {
		cluster := clusters[key]
		if cluster.IsDefault() {
			continue
		}
		identity := cluster.Identity()
		if identity == nil {
			continue
		}
		cluster.Name = textutil.TitleWords(strings.ToLower(identity.FirstName + "_" + identity.LastName))
		cluster.Summary = renderSummary(identity, e.now())
	}
}
