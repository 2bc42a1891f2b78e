// Package match provides name normalization and Levenshtein similarity used
// to suggest the intended sub-field when a summary source names one that
// does not exist.
//
// Key functions:
//   - NormalizeIdent: normalizes schema identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest candidate name above a threshold
package match
