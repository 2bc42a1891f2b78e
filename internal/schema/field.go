package schema

import (
	"vsmsummary-generator/internal/common"
)

// Field is a field defined on a document type or at schema level. Struct, map
// and position typed fields carry ordered sub-fields.
type Field struct {
	// Name is unique within the owning document, schema or parent field.
	Name string
	// DataType is the field's type.
	DataType *DataType
	// Summarying is set when the field's value is stored for summaries.
	Summarying bool

	structFields []*Field
	byName       map[string]*Field
}

// NewField creates a field with the given name and type.
func NewField(name string, dt *DataType) *Field {
	return &Field{Name: name, DataType: dt}
}

// WithSummary marks the field as summarying and returns it.
func (f *Field) WithSummary() *Field {
	f.Summarying = true
	return f
}

// AddStructField appends a sub-field and returns f. When a sub-field with the
// same name already exists the first one stays visible to StructField.
func (f *Field) AddStructField(sub *Field) *Field {
	if f.byName == nil {
		f.byName = make(map[string]*Field)
	}

	f.structFields = append(f.structFields, sub)
	if _, ok := f.byName[sub.Name]; !ok {
		f.byName[sub.Name] = sub
	}

	return f
}

// StructFields returns the sub-fields in declaration order.
func (f *Field) StructFields() []*Field {
	return common.Clone(f.structFields)
}

// StructFieldCount returns the number of declared sub-fields.
func (f *Field) StructFieldCount() int {
	return len(f.structFields)
}

// StructField returns the sub-field with the given name, or nil.
func (f *Field) StructField(name string) *Field {
	return f.byName[name]
}

// HasStructField reports whether a sub-field with the given name exists.
// Matching is by name only; the sub-field's type is not compared.
func (f *Field) HasStructField(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// UsesStructOrMap reports whether the field's value decomposes into named
// sub-fields: struct and map types, and arrays or weighted sets of structs.
func (f *Field) UsesStructOrMap() bool {
	dt := f.DataType
	if dt == nil {
		return false
	}

	if dt.Kind == KindMap {
		return true
	}

	if (dt.Kind == KindArray || dt.Kind == KindWeightedSet) && dt.Elem != nil {
		dt = dt.Elem
	}

	return dt.Kind == KindStruct
}

// NewPositionField creates a position field with its x and y sub-fields.
func NewPositionField(name string) *Field {
	f := NewField(name, PositionDataType)
	f.AddStructField(NewField("x", IntType))
	f.AddStructField(NewField("y", IntType))

	return f
}
