// Package batch holds the image-record model and the SQLite-backed session
// store that tracks every record's role, extracted identity, and processing
// outcome while a batch runs.
//
// The store is deliberately session-scoped: it defaults to an in-memory
// database and exists to give the pipeline one authoritative view of record
// state and batch health, not durability across runs. Outcome transitions are
// monotonic (pending -> processing -> completed or failed) and enforced at
// the store boundary.
package batch
