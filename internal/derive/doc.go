// Package derive computes the vsmsummary field map of a schema: for each
// field of the "default" summary class, whether the streaming matcher needs
// an explicit list of document fields, and which.
//
// Derivation pipeline:
//  1. Look up the "default" summary class (absent → empty map)
//  2. For each summary field in declaration order:
//     - Decide whether an explicit mapping is required (see Decide)
//     - Position fields map to the field's own name only
//     - Otherwise map to the declared sources
//  3. Emit the map as vsmsummary config through vsmconfig.Producer
//
// Fields left out of the map are resolved implicitly by the backend from the
// schema, so omitting them is an optimization, never a loss.
package derive
