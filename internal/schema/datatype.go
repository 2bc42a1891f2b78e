package schema

import (
	"fmt"
	"strings"

	"vsmsummary-generator/internal/common"
)

// TypeKind classifies a DataType.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindStruct
	KindMap
	KindArray
	KindWeightedSet
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindStruct:
		return "struct"
	case KindMap:
		return "map"
	case KindArray:
		return "array"
	case KindWeightedSet:
		return "weightedset"
	default:
		return common.UnknownStr
	}
}

// DataType describes the type of a schema field.
type DataType struct {
	Kind TypeKind
	// Name is the primitive or struct type name; composite types derive theirs.
	Name string
	// Elem is the element type of arrays and weighted sets.
	Elem *DataType
	// Key and Value are the map key and value types.
	Key   *DataType
	Value *DataType
}

// Primitive types.
var (
	StringType    = &DataType{Kind: KindPrimitive, Name: "string"}
	IntType       = &DataType{Kind: KindPrimitive, Name: "int"}
	LongType      = &DataType{Kind: KindPrimitive, Name: "long"}
	FloatType     = &DataType{Kind: KindPrimitive, Name: "float"}
	DoubleType    = &DataType{Kind: KindPrimitive, Name: "double"}
	BoolType      = &DataType{Kind: KindPrimitive, Name: "bool"}
	ByteType      = &DataType{Kind: KindPrimitive, Name: "byte"}
	RawType       = &DataType{Kind: KindPrimitive, Name: "raw"}
	URIType       = &DataType{Kind: KindPrimitive, Name: "uri"}
	PredicateType = &DataType{Kind: KindPrimitive, Name: "predicate"}
)

// PositionDataType marks geo-position fields. It is a struct of x and y.
var PositionDataType = &DataType{Kind: KindStruct, Name: "position"}

var primitives = map[string]*DataType{
	StringType.Name:    StringType,
	IntType.Name:       IntType,
	LongType.Name:      LongType,
	FloatType.Name:     FloatType,
	DoubleType.Name:    DoubleType,
	BoolType.Name:      BoolType,
	ByteType.Name:      ByteType,
	RawType.Name:       RawType,
	URIType.Name:       URIType,
	PredicateType.Name: PredicateType,
}

// StructType returns a struct type with the given name.
func StructType(name string) *DataType {
	return &DataType{Kind: KindStruct, Name: name}
}

// ArrayOf returns an array type with the given element type.
func ArrayOf(elem *DataType) *DataType {
	return &DataType{Kind: KindArray, Elem: elem}
}

// WeightedSetOf returns a weighted set type with the given element type.
func WeightedSetOf(elem *DataType) *DataType {
	return &DataType{Kind: KindWeightedSet, Elem: elem}
}

// MapOf returns a map type with the given key and value types.
func MapOf(key, value *DataType) *DataType {
	return &DataType{Kind: KindMap, Key: key, Value: value}
}

// String renders the type the way it is written in a schema file.
func (t *DataType) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case KindArray:
		return "array<" + t.Elem.String() + ">"
	case KindWeightedSet:
		return "weightedset<" + t.Elem.String() + ">"
	case KindMap:
		return "map<" + t.Key.String() + "," + t.Value.String() + ">"
	default:
		return t.Name
	}
}

// Equal reports whether two types are the same type. Types compare by kind and
// rendered name, so two separately built "array<string>" are equal.
func (t *DataType) Equal(other *DataType) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.Kind == other.Kind && t.String() == other.String()
}

// IsPosition reports whether t is the position marker type.
func (t *DataType) IsPosition() bool {
	return t.Equal(PositionDataType)
}

// ParseDataType parses a type expression such as "string", "array<long>",
// "map<string,int>" or a struct name. Names that are neither primitives nor
// "position" are taken to be struct types.
func ParseDataType(expr string) (*DataType, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty type")
	}

	if open := strings.IndexByte(expr, '<'); open >= 0 {
		if !strings.HasSuffix(expr, ">") {
			return nil, fmt.Errorf("invalid type %q: missing '>'", expr)
		}

		outer := expr[:open]
		inner := expr[open+1 : len(expr)-1]

		switch outer {
		case "array", "weightedset":
			elem, err := ParseDataType(inner)
			if err != nil {
				return nil, fmt.Errorf("invalid type %q: %w", expr, err)
			}

			if outer == "array" {
				return ArrayOf(elem), nil
			}

			return WeightedSetOf(elem), nil

		case "map":
			key, value, ok := splitTopLevel(inner)
			if !ok {
				return nil, fmt.Errorf("invalid type %q: map needs key and value types", expr)
			}

			kt, err := ParseDataType(key)
			if err != nil {
				return nil, fmt.Errorf("invalid type %q: %w", expr, err)
			}

			vt, err := ParseDataType(value)
			if err != nil {
				return nil, fmt.Errorf("invalid type %q: %w", expr, err)
			}

			return MapOf(kt, vt), nil

		default:
			return nil, fmt.Errorf("invalid type %q: unknown collection %q", expr, outer)
		}
	}

	if p, ok := primitives[expr]; ok {
		return p, nil
	}

	if expr == PositionDataType.Name {
		return PositionDataType, nil
	}

	if expr == "struct" {
		return nil, fmt.Errorf("struct type needs a name")
	}

	return StructType(expr), nil
}

// splitTopLevel splits "a,b" on the first comma that is not nested inside <>.
func splitTopLevel(s string) (string, string, bool) {
	depth := 0

	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}

	return "", "", false
}
