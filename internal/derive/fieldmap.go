package derive

import (
	"vsmsummary-generator/internal/common"
	"vsmsummary-generator/internal/schema"
)

// Entry is one field map entry: a summary field and the document fields
// feeding it, in order.
type Entry struct {
	Field   *schema.SummaryField
	Sources []string
}

// FieldMap is an insertion-ordered map from summary field to source names.
// Keys compare by identity.
type FieldMap struct {
	entries []Entry
	index   map[*schema.SummaryField]int
}

func newFieldMap() *FieldMap {
	return &FieldMap{index: make(map[*schema.SummaryField]int)}
}

// put stores sources for sf. Re-putting a key replaces its sources in place.
func (m *FieldMap) put(sf *schema.SummaryField, sources []string) {
	if i, ok := m.index[sf]; ok {
		m.entries[i].Sources = sources
		return
	}

	m.index[sf] = len(m.entries)
	m.entries = append(m.entries, Entry{Field: sf, Sources: sources})
}

// Len returns the number of entries.
func (m *FieldMap) Len() int {
	return len(m.entries)
}

// Get returns the sources mapped for sf.
func (m *FieldMap) Get(sf *schema.SummaryField) ([]string, bool) {
	i, ok := m.index[sf]
	if !ok {
		return nil, false
	}

	return common.Clone(m.entries[i].Sources), true
}

// Lookup returns the entry for the summary field with the given name.
func (m *FieldMap) Lookup(name string) (Entry, bool) {
	for _, e := range m.entries {
		if e.Field.Name == name {
			return Entry{Field: e.Field, Sources: common.Clone(e.Sources)}, true
		}
	}

	return Entry{}, false
}

// Entries returns the entries in insertion order.
func (m *FieldMap) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		out[i] = Entry{Field: e.Field, Sources: common.Clone(e.Sources)}
	}

	return out
}
