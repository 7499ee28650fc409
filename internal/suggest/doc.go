// Package suggest finds the closest known name for a misspelled one. It backs
// the "did you mean" hints of mapping validation and conversion errors.
//
// Names are compared after normalization (case folding and separator
// removal) using a rune-wise Levenshtein similarity in [0, 1].
package suggest
