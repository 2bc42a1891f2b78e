// Package schema provides the read-only schema model consumed by vsmsummary
// derivation, the YAML schema file format, and structural validation.
//
// The model is a plain object graph addressed by name:
//
//	Schema
//	├── Document            document type with its ordered field catalog
//	├── extra fields        schema-level fields declared outside the document
//	└── summary classes     ordered, named sets of SummaryField
//
// Field lookups on a Schema consult the extra fields first, then the document,
// then field aliases. Derivation relies on this: a field returned by Schema.Field that is
// the very same *Field as Document().Field is a plain document field.
//
// # YAML format
//
//	schema: music
//	document:
//	  fields:
//	    - name: title
//	      type: string
//	      summary: true
//	    - name: address
//	      type: struct
//	      fields:
//	        - {name: street, type: string, summary: true}
//	        - {name: city, type: string}
//	    - name: year
//	      type: int
//	      aliases: [released]
//	fields:
//	  - name: artist_sort
//	    type: string
//	summaries:
//	  - name: default
//	    fields:
//	      - name: title
//	      - name: address
//	        source: [street, city]
//	        command: flattenjuniper
//
// A summary field's source may be a single string or a list and defaults to the
// summary field's own name. Commands are matched case-insensitively.
package schema
