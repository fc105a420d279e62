// Package extract parses structured identity fields out of raw OCR text from
// license fronts.
//
// Name resolution tries four strategies in order (comma form, labeled
// first/last fields, a labeled full name, and a heuristic capitalized pair)
// and accepts a record only when both a first and last name survive
// validation. Partial names are never emitted: a text with no confident name
// pair yields no record at all. Secondary fields (dates, document number,
// address) are best-effort and independently optional.
package extract
