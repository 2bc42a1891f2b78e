package derive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsmsummary-generator/internal/schema"
	"vsmsummary-generator/internal/vsmconfig"
)

func namedSchema(name string, summaries ...*schema.SummaryField) *schema.Schema {
	class := schema.NewSummaryClass(schema.DefaultSummaryClass)
	for _, sf := range summaries {
		class.AddField(sf)
	}

	return schema.New(name, schema.NewDocument(name)).AddSummaryClass(class)
}

func TestDeriveAll(t *testing.T) {
	schemas := []*schema.Schema{
		namedSchema("music", schema.NewSummaryField("snippet", schema.CommandNone, "title")),
		namedSchema("books"),
		namedSchema("video",
			schema.NewSummaryField("a", schema.CommandNone, "x"),
			schema.NewSummaryField("b", schema.CommandFlattenSpace, "y")),
	}

	results, err := DeriveAll(context.Background(), schemas, vsmconfig.WithOutputClass("default"))
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, schemas[i].Name, r.Summary.SchemaName())
		assert.Equal(t, "default", r.Config.OutputClass)
	}

	assert.Len(t, results[0].Config.FieldMap, 1)
	assert.Empty(t, results[1].Config.FieldMap)
	assert.Len(t, results[2].Config.FieldMap, 2)
}

func TestDeriveAll_Empty(t *testing.T) {
	results, err := DeriveAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDeriveAll_ProducerError(t *testing.T) {
	schemas := []*schema.Schema{
		namedSchema("music"),
		namedSchema("broken", schema.NewSummaryField("snippet", schema.Command(42), "title")),
	}

	results, err := DeriveAll(context.Background(), schemas)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, vsmconfig.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "schema broken")
}

func TestDeriveAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DeriveAll(ctx, []*schema.Schema{namedSchema("music")})
	assert.ErrorIs(t, err, context.Canceled)
}
