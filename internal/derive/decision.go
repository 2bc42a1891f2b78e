package derive

import (
	"fmt"

	"vsmsummary-generator/internal/common"
)

// Reason identifies the rule that settled a mapping decision.
type Reason int

const (
	// ReasonNoSchemaField - no field with the summary field's name exists.
	ReasonNoSchemaField Reason = iota
	// ReasonDocumentField - the field is the document's own field.
	ReasonDocumentField
	// ReasonFlattenJuniper - the command always needs explicit fields.
	ReasonFlattenJuniper
	// ReasonRenamed - non-struct field whose name differs from the summary field.
	ReasonRenamed
	// ReasonImplicitSameName - non-struct field with the same name; omitted.
	ReasonImplicitSameName
	// ReasonSourceCountMismatch - source count differs from sub-field count.
	ReasonSourceCountMismatch
	// ReasonUnknownSource - a source is not a sub-field of the struct.
	ReasonUnknownSource
	// ReasonSubFieldNotSummarized - a matched sub-field does not do summarying.
	ReasonSubFieldNotSummarized
	// ReasonStructCovered - sources equal the summarying sub-fields; omitted.
	ReasonStructCovered
)

// String returns a short machine-friendly reason name.
func (r Reason) String() string {
	switch r {
	case ReasonNoSchemaField:
		return "no_schema_field"
	case ReasonDocumentField:
		return "document_field"
	case ReasonFlattenJuniper:
		return "flatten_juniper"
	case ReasonRenamed:
		return "renamed"
	case ReasonImplicitSameName:
		return "implicit_same_name"
	case ReasonSourceCountMismatch:
		return "source_count_mismatch"
	case ReasonUnknownSource:
		return "unknown_source"
	case ReasonSubFieldNotSummarized:
		return "sub_field_not_summarized"
	case ReasonStructCovered:
		return "struct_covered"
	default:
		return common.UnknownStr
	}
}

// Decision is the outcome of Decide for one summary field.
type Decision struct {
	// Summary is the summary field name.
	Summary string
	// Map is true when an explicit field map entry is required.
	Map bool
	// Reason is the rule that settled the decision.
	Reason Reason
	// Source is the offending source for ReasonUnknownSource and
	// ReasonSubFieldNotSummarized.
	Source string
	// Suggestion is a close sub-field name when Source is unknown.
	Suggestion string
}

// Explain returns a one-line human-readable account of the decision.
func (d Decision) Explain() string {
	verdict := "omitted"
	if d.Map {
		verdict = "mapped"
	}

	var why string

	switch d.Reason {
	case ReasonNoSchemaField:
		why = "no schema field has this name"
	case ReasonDocumentField:
		why = "it is a plain document field"
	case ReasonFlattenJuniper:
		why = "FLATTENJUNIPER always needs explicit fields"
	case ReasonRenamed:
		why = "the schema field has a different name"
	case ReasonImplicitSameName:
		why = "the schema field of the same name is used implicitly"
	case ReasonSourceCountMismatch:
		why = "source count differs from the struct's sub-field count"
	case ReasonUnknownSource:
		why = fmt.Sprintf("source %q is not a sub-field", d.Source)
	case ReasonSubFieldNotSummarized:
		why = fmt.Sprintf("sub-field %q does not do summarying", d.Source)
	case ReasonStructCovered:
		why = "the struct's summarying sub-fields cover it"
	default:
		why = common.UnknownStr
	}

	return verdict + ": " + why
}
