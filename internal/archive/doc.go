// Package archive exports a grouped batch to the output directory: one folder
// per cluster, role-suffixed image filenames, and a text summary per person.
// An exclusive file lock guards the output directory so concurrent runs never
// interleave writes.
package archive
