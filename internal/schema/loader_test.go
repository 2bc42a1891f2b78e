package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const musicYAML = `
schema: music
document:
  fields:
    - name: title
      type: string
      summary: true
    - name: address
      type: struct
      fields:
        - {name: street, type: string, summary: true}
        - {name: city, type: string}
    - name: location
      type: position
    - name: tags
      type: weightedset<string>
fields:
  - name: artist_sort
    type: string
summaries:
  - name: default
    fields:
      - name: title
      - name: address
        source: [street, city]
        command: FlattenJuniper
      - name: artist
        source: artist_sort
  - name: short
    fields:
      - name: title
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(musicYAML))
	require.NoError(t, err)

	assert.Equal(t, "music", f.Schema)
	require.NotNil(t, f.Document)
	assert.Equal(t, "music", f.Document.Name, "document name defaults to schema name")
	require.Len(t, f.Document.Fields, 4)
	assert.Len(t, f.Document.Fields[1].Fields, 2)

	require.Len(t, f.Summaries, 2)
	def := f.Summaries[0]
	assert.Equal(t, "default", def.Name)
	require.Len(t, def.Fields, 3)

	assert.Equal(t, StringOrArray{"title"}, def.Fields[0].Source, "source defaults to own name")
	assert.Equal(t, StringOrArray{"street", "city"}, def.Fields[1].Source)
	assert.Equal(t, CommandFlattenJuniper, def.Fields[1].Command.Command())
	assert.Equal(t, StringOrArray{"artist_sort"}, def.Fields[2].Source)
	assert.Equal(t, CommandNone, def.Fields[2].Command.Command())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing schema name",
			yaml:    "document:\n  fields: []\n",
			wantErr: "schema name is required",
		},
		{
			name: "unknown command",
			yaml: `
schema: s
summaries:
  - name: default
    fields:
      - name: a
        command: bold
`,
			wantErr: `unknown summary command "bold"`,
		},
		{
			name: "source as mapping",
			yaml: `
schema: s
summaries:
  - name: default
    fields:
      - name: a
        source: {x: y}
`,
			wantErr: "expected string or array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_ExplicitEmptySourceIsKept(t *testing.T) {
	f, err := Parse([]byte(`
schema: s
summaries:
  - name: default
    fields:
      - name: a
        source: []
`))
	require.NoError(t, err)
	assert.Empty(t, f.Summaries[0].Fields[0].Source)
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(musicYAML))
	require.NoError(t, err)

	s, err := f.Build()
	require.NoError(t, err)

	assert.Equal(t, "music", s.Name)
	require.NotNil(t, s.Document())

	address := s.Document().Field("address")
	require.NotNil(t, address)
	assert.True(t, address.UsesStructOrMap())
	assert.Equal(t, 2, address.StructFieldCount())
	assert.True(t, address.StructField("street").Summarying)
	assert.False(t, address.StructField("city").Summarying)

	location := s.Field("location")
	require.NotNil(t, location)
	assert.True(t, location.DataType.IsPosition())
	assert.True(t, location.HasStructField("x"))
	assert.True(t, location.HasStructField("y"))

	tags := s.Field("tags")
	require.NotNil(t, tags)
	assert.Equal(t, "weightedset<string>", tags.DataType.String())
	assert.False(t, tags.UsesStructOrMap())

	extra := s.Field("artist_sort")
	require.NotNil(t, extra)
	assert.Nil(t, s.Document().Field("artist_sort"))

	def := s.SummaryClass(DefaultSummaryClass)
	require.NotNil(t, def)

	names := make([]string, 0)
	for _, sf := range def.Fields() {
		names = append(names, sf.Name)
	}

	assert.Equal(t, []string{"title", "address", "artist"}, names)
	assert.Equal(t, []string{"street", "city"}, def.Field("address").SourceNames())
	assert.Equal(t, CommandFlattenJuniper, def.Field("address").Command)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "sub-fields on primitive",
			yaml: `
schema: s
document:
  fields:
    - name: title
      type: string
      fields:
        - {name: x, type: string}
`,
			wantErr: "type string cannot declare sub-fields",
		},
		{
			name: "bad collection",
			yaml: `
schema: s
fields:
  - name: x
    type: list<string>
`,
			wantErr: `unknown collection "list"`,
		},
		{
			name: "position with sub-fields",
			yaml: `
schema: s
document:
  fields:
    - name: loc
      type: position
      fields:
        - {name: lat, type: double}
`,
			wantErr: "position fields cannot declare sub-fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = f.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "music.yaml")
	require.NoError(t, os.WriteFile(path, []byte(musicYAML), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "music", s.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}

func TestMarshal_SingleSourceAsScalar(t *testing.T) {
	f := &File{
		Schema: "s",
		Summaries: []SummaryClassDef{{
			Name: "default",
			Fields: []SummaryFieldDef{
				{Name: "a", Source: StringOrArray{"a"}},
				{Name: "b", Source: StringOrArray{"x", "y"}},
			},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "source: a\n")
	assert.Contains(t, out, "- x\n")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f.Summaries, back.Summaries)
}

func TestBuild_Aliases(t *testing.T) {
	f, err := Parse([]byte(`
schema: s
document:
  fields:
    - name: year
      type: int
      aliases: [released]
fields:
  - name: sort_title
    type: string
    aliases: [st]
`))
	require.NoError(t, err)

	s, err := f.Build()
	require.NoError(t, err)

	assert.Same(t, s.Document().Field("year"), s.Field("released"))
	assert.Same(t, s.Field("sort_title"), s.Field("st"))
	assert.Nil(t, s.Document().Field("released"), "aliases do not add document fields")
	assert.Equal(t, map[string]string{"released": "year", "st": "sort_title"}, s.Aliases())
}
