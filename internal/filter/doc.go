// Package filter scores reconstructed documents against the corpus quality
// checks: minimum length, hiragana ratio, and line repetition. Each check is
// a pure function of the document's line sequence, so verdicts are
// reproducible bit-for-bit across runs.
package filter
