// Package pipeline orchestrates a batch run: admit files, classify them by
// filename, recognize text on document fronts, extract identity fields, and
// hand the settled batch to the grouping engine.
//
// Recognition failures never abort a run. A failed image keeps its
// filename-derived role and still lands in a cluster; the pipeline always
// produces a complete partition of the admitted set.
package pipeline
