// Package textnorm cleans individual corpus lines before they are assembled
// into documents.
//
// Cleaning is a fixed two-step transform: delete a constant set of control,
// private-use, and invisible-formatting code points, then apply NFKC so
// compatibility variants (half-width katakana, CJK compatibility ideographs,
// full-width ASCII) collapse to one canonical form. A separate predicate
// recognizes blog "continued..." boilerplate lines so callers can drop them.
package textnorm
