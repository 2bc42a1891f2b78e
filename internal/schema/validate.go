package schema

import (
	"fmt"
	"slices"

	"vsmsummary-generator/internal/common"
	"vsmsummary-generator/internal/diagnostic"
)

// Validate performs structural checks on a schema model. Derivation never
// calls it; it accepts any schema.
func Validate(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("schema_is_nil", "schema is nil", "", "")
		return res
	}

	if s.Document() == nil {
		res.AddWarning("document_missing", "schema has no document type", s.Name, "")
	}

	validateFields(res, s.Name, "document", s.Document().Fields())
	validateFields(res, s.Name, "schema", s.ExtraFields())

	validateAliases(res, s)

	seenClasses := map[string]struct{}{}

	for _, class := range s.SummaryClasses() {
		if _, ok := seenClasses[class.Name]; ok {
			res.AddError("duplicate_summary_class",
				fmt.Sprintf("duplicate summary class %q", class.Name), s.Name, "")

			continue
		}

		seenClasses[class.Name] = struct{}{}
		validateSummaryClass(res, s, class)
	}

	if _, ok := seenClasses[DefaultSummaryClass]; !ok {
		res.AddWarning("summary_class_missing",
			fmt.Sprintf("no %q summary class; vsmsummary will be empty", DefaultSummaryClass), s.Name, "")
	}

	return res
}

func validateFields(res *diagnostic.Diagnostics, schemaName, scope string, fields []*Field) {
	seen := map[string]struct{}{}

	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			res.AddError("duplicate_field",
				fmt.Sprintf("duplicate %s field %q", scope, f.Name), schemaName, f.Name)

			continue
		}

		seen[f.Name] = struct{}{}

		if f.DataType == nil {
			res.AddError("missing_type", fmt.Sprintf("field %q has no type", f.Name), schemaName, f.Name)
		}

		if f.StructFieldCount() > 0 {
			validateFields(res, schemaName, "sub", f.StructFields())
		}
	}
}

func validateSummaryClass(res *diagnostic.Diagnostics, s *Schema, class *SummaryClass) {
	seen := map[string]struct{}{}
	path := func(sf *SummaryField) string { return class.Name + "." + sf.Name }

	for _, sf := range class.Fields() {
		if _, ok := seen[sf.Name]; ok {
			res.AddError("duplicate_summary_field",
				fmt.Sprintf("duplicate summary field %q in class %q", sf.Name, class.Name), s.Name, path(sf))

			continue
		}

		seen[sf.Name] = struct{}{}

		if sf.Command.String() == common.UnknownStr {
			res.AddError("unknown_command",
				fmt.Sprintf("summary field %q has unknown command %d", sf.Name, int(sf.Command)), s.Name, path(sf))
		}

		if common.IsEmpty(sf.Sources()) {
			res.AddWarning("empty_sources",
				fmt.Sprintf("summary field %q declares no sources", sf.Name), s.Name, path(sf))
		}
	}
}

func validateAliases(res *diagnostic.Diagnostics, s *Schema) {
	aliases := s.Aliases()

	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}

	slices.Sort(names)

	for _, alias := range names {
		target := aliases[alias]

		if s.concreteField(alias) != nil {
			res.AddWarning("shadowed_alias",
				fmt.Sprintf("alias %q is hidden by a field of the same name", alias), s.Name, alias)
		}

		if s.concreteField(target) == nil {
			res.AddError("dangling_alias",
				fmt.Sprintf("alias %q refers to unknown field %q", alias, target), s.Name, alias)
		}
	}
}
