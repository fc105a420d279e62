// Package grouping clusters a batch of classified images into per-person
// groups.
//
// Assignment is layered: an extracted identity wins, then a filename-derived
// identifier, then fuzzy filename similarity against existing clusters, and
// finally the default "Ungrouped Images" cluster as the universal safety net.
// A reconciliation pass then merges clusters that describe the same person:
// matching extracted identities, or an identity-less cluster whose filenames
// resemble those of an identity-bearing one. Union-find makes transitive
// chains collapse correctly.
// The engine never drops or duplicates an image: the final clusters always
// partition the input batch.
package grouping
