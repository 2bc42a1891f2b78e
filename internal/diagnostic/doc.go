// Package diagnostic provides structured warnings, errors, and
// "why this was mapped" explanations for vsmsummary derivation.
//
// Key capabilities:
//   - Schema validation findings (duplicate fields, unknown commands)
//   - Per-summary-field mapping explanations
//   - "Did you mean" suggestions for unknown struct sources
package diagnostic
