package derive

import (
	"fmt"

	"vsmsummary-generator/internal/common"
	"vsmsummary-generator/internal/diagnostic"
	"vsmsummary-generator/internal/schema"
	"vsmsummary-generator/internal/vsmconfig"
)

// VsmSummary is the derived vsmsummary artifact of one schema.
type VsmSummary struct {
	schemaName string
	fieldMap   *FieldMap
	decisions  []Decision
}

var _ vsmconfig.Producer = (*VsmSummary)(nil)

// NewVsmSummary derives the field map from the schema's default summary
// class, which is the superset of all classes. A schema without that class
// yields an empty map.
func NewVsmSummary(s *schema.Schema) *VsmSummary {
	v := &VsmSummary{schemaName: s.Name, fieldMap: newFieldMap()}

	class := s.SummaryClass(schema.DefaultSummaryClass)
	if class == nil {
		return v
	}

	for _, sf := range class.Fields() {
		from := sf.SourceNames()

		d := Decide(s, sf)
		v.decisions = append(v.decisions, d)

		if !d.Map {
			continue
		}

		if f := s.Field(sf.Name); f != nil && f.DataType.IsPosition() {
			v.fieldMap.put(sf, []string{sf.Name})
		} else {
			v.fieldMap.put(sf, from)
		}
	}

	return v
}

// DerivedName returns the artifact's fixed identifier.
func (v *VsmSummary) DerivedName() string {
	return vsmconfig.DefName
}

// SchemaName returns the name of the schema the artifact was derived from.
func (v *VsmSummary) SchemaName() string {
	return v.schemaName
}

// FieldMap returns the derived field map.
func (v *VsmSummary) FieldMap() *FieldMap {
	return v.fieldMap
}

// Decisions returns the decision made for every default summary field, in
// declaration order, including the omitted ones.
func (v *VsmSummary) Decisions() []Decision {
	return common.Clone(v.decisions)
}

// GetConfig appends one field map record per entry, in map order.
func (v *VsmSummary) GetConfig(b *vsmconfig.Builder) error {
	for _, e := range v.fieldMap.entries {
		cmd, err := vsmconfig.FromSchemaCommand(e.Field.Command)
		if err != nil {
			return fmt.Errorf("schema %s, summary field %s: %w", v.schemaName, e.Field.Name, err)
		}

		b.AddFieldMap(e.Field.Name, cmd, e.Sources...)
	}

	return nil
}

// Diagnostics explains the decisions: one info per summary field, plus a
// warning with a suggestion for each source that names no sub-field.
func (v *VsmSummary) Diagnostics() diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	for _, d := range v.decisions {
		if d.Reason == ReasonUnknownSource && d.Suggestion != "" {
			res.AddWarning("unknown_source",
				fmt.Sprintf("source %q is not a sub-field of %q", d.Source, d.Summary),
				v.schemaName, d.Summary, d.Suggestion)
		}

		res.AddInfo(d.Reason.String(), d.Explain(), v.schemaName, d.Summary)
	}

	return res
}
