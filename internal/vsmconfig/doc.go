// Package vsmconfig provides the vsmsummary config model, the producer
// contract used to populate it, and deterministic renderers.
//
// The config definition (namespace vespa.config.search.vsm) is:
//
//	outputclass string default=""
//	fieldmap[].summary string default=""
//	fieldmap[].document[].field string default=""
//	fieldmap[].command enum { NONE, FLATTENJUNIPER, FLATTENSPACE } default=NONE
//
// Rendering formats:
//   - cfg: the flat "key value" payload format read by the backend
//   - yaml: a structured dump of the same content for review
package vsmconfig
