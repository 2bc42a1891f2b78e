package schema

import (
	"vsmsummary-generator/internal/common"
)

// DefaultSummaryClass is the summary class vsmsummary is derived from; it is
// the superset of all other classes.
const DefaultSummaryClass = "default"

// Document is a document type with an ordered field catalog.
type Document struct {
	Name string

	fields []*Field
	byName map[string]*Field
}

// NewDocument creates an empty document type.
func NewDocument(name string) *Document {
	return &Document{Name: name, byName: make(map[string]*Field)}
}

// AddField appends a field and returns d. Duplicate names are kept in the
// catalog but lookups return the first.
func (d *Document) AddField(f *Field) *Document {
	d.fields = append(d.fields, f)
	if _, ok := d.byName[f.Name]; !ok {
		d.byName[f.Name] = f
	}

	return d
}

// Field returns the document field with the given name, or nil.
func (d *Document) Field(name string) *Field {
	if d == nil {
		return nil
	}

	return d.byName[name]
}

// Fields returns the document fields in declaration order.
func (d *Document) Fields() []*Field {
	if d == nil {
		return nil
	}

	return common.Clone(d.fields)
}

// Schema is a document type plus the schema-level fields and summary classes
// declared around it.
type Schema struct {
	Name string

	document    *Document
	extra       []*Field
	extraByName map[string]*Field
	aliases     map[string]string
	summaries   []*SummaryClass
	summaryByID map[string]*SummaryClass
}

// New creates a schema around the given document. doc may be nil.
func New(name string, doc *Document) *Schema {
	return &Schema{
		Name:        name,
		document:    doc,
		extraByName: make(map[string]*Field),
		aliases:     make(map[string]string),
		summaryByID: make(map[string]*SummaryClass),
	}
}

// Document returns the schema's document type, or nil if it has none.
func (s *Schema) Document() *Document {
	return s.document
}

// AddExtraField declares a schema-level field outside the document.
func (s *Schema) AddExtraField(f *Field) *Schema {
	s.extra = append(s.extra, f)
	if _, ok := s.extraByName[f.Name]; !ok {
		s.extraByName[f.Name] = f
	}

	return s
}

// ExtraFields returns the schema-level fields in declaration order.
func (s *Schema) ExtraFields() []*Field {
	return common.Clone(s.extra)
}

// AddAlias makes Field(alias) resolve to the field named target.
func (s *Schema) AddAlias(alias, target string) *Schema {
	s.aliases[alias] = target
	return s
}

// Aliases returns a copy of the alias table.
func (s *Schema) Aliases() map[string]string {
	out := make(map[string]string, len(s.aliases))
	for k, v := range s.aliases {
		out[k] = v
	}

	return out
}

// Field resolves a field by name: schema-level fields first, then the
// document's fields, then aliases. Returns nil when nothing matches.
func (s *Schema) Field(name string) *Field {
	if f := s.concreteField(name); f != nil {
		return f
	}

	if target, ok := s.aliases[name]; ok {
		return s.concreteField(target)
	}

	return nil
}

func (s *Schema) concreteField(name string) *Field {
	if f, ok := s.extraByName[name]; ok {
		return f
	}

	return s.document.Field(name)
}

// AddSummaryClass appends a summary class and returns s.
func (s *Schema) AddSummaryClass(c *SummaryClass) *Schema {
	s.summaries = append(s.summaries, c)
	if _, ok := s.summaryByID[c.Name]; !ok {
		s.summaryByID[c.Name] = c
	}

	return s
}

// SummaryClass returns the summary class with the given name, or nil.
func (s *Schema) SummaryClass(name string) *SummaryClass {
	return s.summaryByID[name]
}

// SummaryClasses returns all summary classes in declaration order.
func (s *Schema) SummaryClasses() []*SummaryClass {
	return common.Clone(s.summaries)
}
