// Package classify assigns a document role to each scanned image based on its
// filename, and derives candidate person identifiers from filenames when no
// extracted identity is available.
//
// Classification is pure and deterministic. The precedence order is a designed
// contract, not an optimization: back indicators are checked before front
// indicators because "dl_back" contains "dl" (a front token), and strong selfie
// indicators are checked before implicit front tokens to protect filenames like
// "selfie_of_dl_holder". Changing token lists or their order changes grouping
// behavior and requires new test cases.
package classify
