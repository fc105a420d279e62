// Package textutil provides text processing utilities for filename
// normalization, fuzzy matching, and folder-name sanitization.
//
// The primary use cases are:
//   - Stripping document/role vocabulary from filenames so that the
//     classifier, identifier deriver, and similarity matcher share one
//     normalization path
//   - Computing normalized edit-distance similarity between cleaned names
//   - Sanitizing person display names for safe filesystem use
//
// Vocabulary stripping is deliberately centralized here: three components
// consume the same token lists, and letting them drift independently would
// silently change grouping behavior.
package textutil
