package derive

import (
	"vsmsummary-generator/internal/schema"
)

// addressStruct builds a struct field address{street, city} where only
// street does summarying.
func addressStruct() *schema.Field {
	return schema.NewField("address", schema.StructType("address")).
		AddStructField(schema.NewField("street", schema.StringType).WithSummary()).
		AddStructField(schema.NewField("city", schema.StringType))
}

// summarizedStruct builds a struct field whose sub-fields all do summarying.
func summarizedStruct(name string, subs ...string) *schema.Field {
	f := schema.NewField(name, schema.StructType(name))
	for _, s := range subs {
		f.AddStructField(schema.NewField(s, schema.StringType).WithSummary())
	}

	return f
}

// newSchema builds a schema with a "music" document holding docFields, the
// given schema-level fields, and a default class holding summaryFields.
func newSchema(docFields, extraFields []*schema.Field, summaryFields ...*schema.SummaryField) *schema.Schema {
	doc := schema.NewDocument("music")
	for _, f := range docFields {
		doc.AddField(f)
	}

	s := schema.New("music", doc)
	for _, f := range extraFields {
		s.AddExtraField(f)
	}

	class := schema.NewSummaryClass(schema.DefaultSummaryClass)
	for _, sf := range summaryFields {
		class.AddField(sf)
	}

	return s.AddSummaryClass(class)
}

func fields(f ...*schema.Field) []*schema.Field {
	return f
}
