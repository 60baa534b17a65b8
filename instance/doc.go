// Package instance parses DIMACS-style spin-glass problem files into the
// node count and weight triples the ising package consumes.
//
// Format:
//
//	c lines starting with 'c' are comments
//	p sg 4 3        ← header: third field is the node count (extras ignored)
//	0 1 5           ← coupling triple (distinct endpoints)
//	2 3 -2
//	1 1 3           ← self-loop triple: field weight for node 1
//
// Blank lines are ignored. Several header lines are legal; the last one
// wins, matching the reference reader. Triples are kept in file order and
// never validated against the node count here — range checking belongs to
// ising.NewModel, the single owner of that invariant.
//
// Errors:
//
//   - ErrNoHeader: the file contains no 'p' header line.
//   - Grammar violations surface as wrapped participle parse errors.
package instance
