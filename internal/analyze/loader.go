package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"

	"vsmsummary-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// PositionTypeName is the Go struct name converted to the position type when
// it has integer X and Y fields.
const PositionTypeName = "Position"

// Analyzer converts Go struct types to schemas.
type Analyzer struct {
	visiting map[*types.Named]bool
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{visiting: make(map[*types.Named]bool)}
}

// LoadSchema loads the package matching pattern and converts its typeName
// struct into a schema named name.
func LoadSchema(name, pattern, typeName string) (*schema.Schema, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		obj, ok := pkg.Types.Scope().Lookup(typeName).(*types.TypeName)
		if !ok {
			continue
		}

		named, ok := obj.Type().(*types.Named)
		if !ok {
			return nil, fmt.Errorf("type %s.%s is not a named type", pkg.PkgPath, typeName)
		}

		return NewAnalyzer().Convert(name, named)
	}

	return nil, fmt.Errorf("type %s not found in %s", typeName, pattern)
}

// Convert builds a schema from a named struct type. The document takes the
// schema name.
func (a *Analyzer) Convert(name string, named *types.Named) (*schema.Schema, error) {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("type %s is not a struct", named.Obj().Name())
	}

	path := NewTypePath(named.Obj().Name())
	a.visiting[named] = true

	defer delete(a.visiting, named)

	doc := schema.NewDocument(name)
	class := schema.NewSummaryClass(schema.DefaultSummaryClass)

	err := a.eachField(st, path, func(f *schema.Field, tag Tag) {
		doc.AddField(f)

		if tag.Summary {
			class.AddField(schema.NewSummaryField(f.Name, tag.Command, summarySources(f)...))
		}
	})
	if err != nil {
		return nil, err
	}

	s := schema.New(name, doc)
	if len(class.Fields()) > 0 {
		s.AddSummaryClass(class)
	}

	return s, nil
}

// eachField converts the exported, non-skipped fields of st in order.
func (a *Analyzer) eachField(st *types.Struct, path *TypePath, fn func(*schema.Field, Tag)) error {
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if !v.Exported() {
			continue
		}

		fieldPath := path.Field(v.Name())

		tag, err := ParseTag(v.Name(), reflect.StructTag(st.Tag(i)))
		if err != nil {
			return fmt.Errorf("%s: %w", fieldPath, err)
		}

		if tag.Skip {
			continue
		}

		f, err := a.convertField(tag.Name, v.Type(), fieldPath)
		if err != nil {
			return err
		}

		if tag.Summary {
			f.WithSummary()
		}

		fn(f, tag)
	}

	return nil
}

// convertField maps a Go type to a schema field, descending into structs.
func (a *Analyzer) convertField(name string, t types.Type, path *TypePath) (*schema.Field, error) {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	if isPosition(t) {
		return schema.NewPositionField(name), nil
	}

	if named, ok := t.(*types.Named); ok {
		if st, ok := named.Underlying().(*types.Struct); ok {
			return a.convertStruct(name, named, st, path)
		}
	}

	if sl, ok := t.Underlying().(*types.Slice); ok {
		if b, ok := sl.Elem().Underlying().(*types.Basic); ok && b.Kind() == types.Byte {
			return schema.NewField(name, schema.RawType), nil
		}

		elem, err := a.convertField(name, sl.Elem(), path.Slice())
		if err != nil {
			return nil, err
		}

		f := schema.NewField(name, schema.ArrayOf(elem.DataType))
		for _, sub := range elem.StructFields() {
			f.AddStructField(sub)
		}

		return f, nil
	}

	if m, ok := t.Underlying().(*types.Map); ok {
		key, err := dataType(m.Key(), path)
		if err != nil {
			return nil, err
		}

		value, err := dataType(m.Elem(), path)
		if err != nil {
			return nil, err
		}

		return schema.NewField(name, schema.MapOf(key, value)), nil
	}

	dt, err := dataType(t, path)
	if err != nil {
		return nil, err
	}

	return schema.NewField(name, dt), nil
}

func (a *Analyzer) convertStruct(name string, named *types.Named, st *types.Struct, path *TypePath) (*schema.Field, error) {
	if a.visiting[named] {
		return nil, fmt.Errorf("%s: recursive type %s", path, named.Obj().Name())
	}

	a.visiting[named] = true

	defer delete(a.visiting, named)

	f := schema.NewField(name, schema.StructType(SnakeCase(named.Obj().Name())))

	err := a.eachField(st, path, func(sub *schema.Field, _ Tag) {
		f.AddStructField(sub)
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

// dataType maps a non-struct Go type to a primitive schema type.
func dataType(t types.Type, path *TypePath) (*schema.DataType, error) {
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return nil, fmt.Errorf("%s: unsupported type %s", path, t)
	}

	switch b.Kind() {
	case types.String:
		return schema.StringType, nil
	case types.Bool:
		return schema.BoolType, nil
	case types.Int, types.Int8, types.Int16, types.Int32, types.Uint16:
		return schema.IntType, nil
	case types.Int64, types.Uint32, types.Uint, types.Uint64:
		return schema.LongType, nil
	case types.Uint8:
		return schema.ByteType, nil
	case types.Float32:
		return schema.FloatType, nil
	case types.Float64:
		return schema.DoubleType, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", path, t)
	}
}

// isPosition reports whether t is a struct named Position with integer X and
// Y fields.
func isPosition(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Name() != PositionTypeName {
		return false
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	var x, y bool

	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)

		b, ok := v.Type().Underlying().(*types.Basic)
		if !ok || b.Info()&types.IsInteger == 0 {
			continue
		}

		switch v.Name() {
		case "X":
			x = true
		case "Y":
			y = true
		}
	}

	return x && y
}

// summarySources returns the sources of a summarying top-level field: the
// summarying sub-field names of a struct, otherwise the field's own name.
func summarySources(f *schema.Field) []string {
	if f.DataType.IsPosition() || !f.UsesStructOrMap() {
		return []string{f.Name}
	}

	var names []string

	for _, sub := range f.StructFields() {
		if sub.Summarying {
			names = append(names, sub.Name)
		}
	}

	if len(names) == 0 {
		return []string{f.Name}
	}

	return names
}
