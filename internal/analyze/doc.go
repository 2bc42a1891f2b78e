// Package analyze builds schemas from annotated Go struct types.
//
// It uses golang.org/x/tools/go/packages with go/types to read one struct
// type and convert it to a *schema.Schema. Exported fields become document
// fields; the vsm struct tag controls naming and summaries:
//
//	Title  string   `vsm:"title,summary"`
//	Body   string   `vsm:",summary,command=flattenjuniper"`
//	Secret string   `vsm:"-"`
//	Where  Position `vsm:"location,summary"`
//
// Every summarying top-level field also becomes a field of the default
// summary class.
package analyze
