package schema

import (
	"fmt"
)

// Build converts a parsed schema file into the schema model.
func (f *File) Build() (*Schema, error) {
	var doc *Document

	if f.Document != nil {
		doc = NewDocument(f.Document.Name)

		for _, fd := range f.Document.Fields {
			fld, err := fd.build()
			if err != nil {
				return nil, fmt.Errorf("document %s: %w", doc.Name, err)
			}

			doc.AddField(fld)
		}
	}

	s := New(f.Schema, doc)

	if f.Document != nil {
		for _, fd := range f.Document.Fields {
			for _, alias := range fd.Aliases {
				s.AddAlias(alias, fd.Name)
			}
		}
	}

	for _, fd := range f.Fields {
		fld, err := fd.build()
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", f.Schema, err)
		}

		s.AddExtraField(fld)

		for _, alias := range fd.Aliases {
			s.AddAlias(alias, fd.Name)
		}
	}

	for _, cd := range f.Summaries {
		class := NewSummaryClass(cd.Name)
		for _, sd := range cd.Fields {
			class.AddField(NewSummaryField(sd.Name, sd.Command.Command(), sd.Source...))
		}

		s.AddSummaryClass(class)
	}

	return s, nil
}

func (fd FieldDef) build() (*Field, error) {
	if fd.Name == "" {
		return nil, fmt.Errorf("field without name")
	}

	if fd.Type == "position" {
		if len(fd.Fields) > 0 {
			return nil, fmt.Errorf("field %s: position fields cannot declare sub-fields", fd.Name)
		}

		f := NewPositionField(fd.Name)
		f.Summarying = fd.Summary

		return f, nil
	}

	var (
		dt  *DataType
		err error
	)

	if fd.Type == "struct" {
		dt = StructType(fd.Name)
	} else {
		dt, err = ParseDataType(fd.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}
	}

	f := NewField(fd.Name, dt)
	f.Summarying = fd.Summary

	if len(fd.Fields) > 0 && !f.UsesStructOrMap() {
		return nil, fmt.Errorf("field %s: type %s cannot declare sub-fields", fd.Name, dt)
	}

	for _, sub := range fd.Fields {
		sf, err := sub.build()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}

		f.AddStructField(sf)
	}

	return f, nil
}
