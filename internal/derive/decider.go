package derive

import (
	"vsmsummary-generator/internal/match"
	"vsmsummary-generator/internal/schema"
)

// Decide reports whether sf needs an explicit vsmsummary entry. The rules are
// tried in order and the first that applies wins:
//
//  1. No field of that name, or the field is the document's own field: map.
//  2. FLATTENJUNIPER command: map.
//  3. Not struct-or-map: map only if the field is named differently.
//  4. Struct-or-map: omit only if the sources are exactly as many as the
//     sub-fields, each names a sub-field, and each of those does summarying.
func Decide(s *schema.Schema, sf *schema.SummaryField) Decision {
	d := Decision{Summary: sf.Name}

	field := s.Field(sf.Name)
	if field == nil {
		return d.mapped(ReasonNoSchemaField)
	}

	if field == s.Document().Field(sf.Name) {
		return d.mapped(ReasonDocumentField)
	}

	if sf.Command == schema.CommandFlattenJuniper {
		return d.mapped(ReasonFlattenJuniper)
	}

	if !field.UsesStructOrMap() {
		if field.Name != sf.Name {
			return d.mapped(ReasonRenamed)
		}

		return d.omitted(ReasonImplicitSameName)
	}

	if sf.SourceCount() != field.StructFieldCount() {
		return d.mapped(ReasonSourceCountMismatch)
	}

	for _, src := range sf.Sources() {
		// Sub-fields match on name alone.
		if !field.HasStructField(src.Name) {
			d.Source = src.Name
			d.Suggestion = suggestSubField(field, src.Name)

			return d.mapped(ReasonUnknownSource)
		}

		if !field.StructField(src.Name).Summarying {
			d.Source = src.Name
			return d.mapped(ReasonSubFieldNotSummarized)
		}
	}

	return d.omitted(ReasonStructCovered)
}

func (d Decision) mapped(r Reason) Decision {
	d.Map = true
	d.Reason = r

	return d
}

func (d Decision) omitted(r Reason) Decision {
	d.Map = false
	d.Reason = r

	return d
}

func suggestSubField(field *schema.Field, name string) string {
	subs := field.StructFields()

	names := make([]string, len(subs))
	for i, sub := range subs {
		names[i] = sub.Name
	}

	s, _ := match.Suggest(name, names, match.DefaultThreshold)

	return s
}
