package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const musicYAML = "../../examples/music/music.yaml"

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func writeSchema(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const addressSchema = `schema: shop
fields:
  - name: address
    type: struct
    fields:
      - {name: street, type: string, summary: true}
      - {name: city, type: string}
  - name: title
    type: string
summaries:
  - name: default
    fields:
      - name: address
        source: [street, city]
      - name: title
`

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage: vsmsummary-generator")

	code, _, _ = runCLI(t, "bogus")
	assert.Equal(t, 2, code)

	code, stdout, _ := runCLI(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "derive")

	code, _, _ = runCLI(t, "derive")
	assert.Equal(t, 2, code, "derive needs at least one schema")
}

func TestDerive_Stdout(t *testing.T) {
	path := writeSchema(t, addressSchema)

	code, stdout, stderr := runCLI(t, "derive", "--stdout", "--output-class", "default", path)
	require.Equal(t, 0, code, stderr)

	want := `# shop/vsmsummary.cfg
outputclass "default"
fieldmap[1]
fieldmap[0].summary "address"
fieldmap[0].document[2]
fieldmap[0].document[0].field "street"
fieldmap[0].document[1].field "city"
fieldmap[0].command NONE
`
	assert.Equal(t, want, stdout)
}

func TestDerive_WritesFiles(t *testing.T) {
	out := t.TempDir()
	path := writeSchema(t, addressSchema)

	code, _, stderr := runCLI(t, "derive", "--out", out, "--format", "yaml", path)
	require.Equal(t, 0, code, stderr)

	content, err := os.ReadFile(filepath.Join(out, "shop", "vsmsummary.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "summary: address")
	assert.Contains(t, string(content), "- field: street")
	assert.Contains(t, string(content), "command: NONE")
}

func TestDerive_MusicExample(t *testing.T) {
	code, stdout, stderr := runCLI(t, "derive", "--stdout", musicYAML)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "fieldmap[7]\n")
	assert.Contains(t, stdout, `fieldmap[1].summary "body"`+"\n")
	assert.Contains(t, stdout, "fieldmap[1].command FLATTENJUNIPER\n")
	assert.Contains(t, stdout, `fieldmap[2].summary "released"`+"\n")
	assert.Contains(t, stdout, `fieldmap[2].document[0].field "year"`+"\n")
	assert.Contains(t, stdout, "fieldmap[3].document[1]\n")
	assert.Contains(t, stdout, `fieldmap[3].document[0].field "location"`+"\n")
	assert.Contains(t, stdout, `fieldmap[4].summary "performer"`+"\n")
	assert.Contains(t, stdout, `fieldmap[6].summary "snippet"`+"\n")
	assert.NotContains(t, stdout, `"label"`)
	assert.NotContains(t, stdout, `"keywords"`)
}

func TestDerive_GoSource(t *testing.T) {
	code, stdout, stderr := runCLI(t, "derive", "--stdout", "go:vsmsummary-generator/examples/music#Album")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "# music/vsmsummary.cfg\n")
	assert.Contains(t, stdout, "fieldmap[7]\n")
	assert.Contains(t, stdout, `fieldmap[5].summary "studio"`+"\n")
	assert.Contains(t, stdout, `fieldmap[5].document[0].field "street"`+"\n")
}

func TestDerive_ValidationErrors(t *testing.T) {
	path := writeSchema(t, `schema: broken
fields:
  - {name: title, type: string}
  - {name: title, type: string}
summaries:
  - name: default
    fields:
      - name: title
`)

	code, _, stderr := runCLI(t, "derive", "--stdout", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "duplicate_field")

	code, _, stderr = runCLI(t, "derive", "--stdout", "--no-validate", path)
	assert.Equal(t, 0, code, stderr)
}

func TestDerive_BadInput(t *testing.T) {
	code, _, _ := runCLI(t, "derive", "--stdout", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)

	code, _, _ = runCLI(t, "derive", "--stdout", "go:no-type-here")
	assert.Equal(t, 1, code)

	code, _, stderr := runCLI(t, "derive", "--format", "xml", musicYAML)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "output.format")
}

func TestExplain(t *testing.T) {
	path := writeSchema(t, `schema: shop
fields:
  - name: address
    type: struct
    fields:
      - {name: street, type: string, summary: true}
      - {name: city, type: string, summary: true}
summaries:
  - name: default
    fields:
      - name: address
        source: [stret, city]
`)

	code, stdout, stderr := runCLI(t, "explain", path)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "shop:\n")
	assert.Contains(t, stdout, `mapped: source "stret" is not a sub-field`)
	assert.Contains(t, stdout, `did you mean "street"?`)
}

func TestExplain_NoDefaultClass(t *testing.T) {
	path := writeSchema(t, "schema: empty\n")

	code, stdout, _ := runCLI(t, "explain", path)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "(no default summary class)")
}

func TestCheck(t *testing.T) {
	code, stdout, stderr := runCLI(t, "check", musicYAML, "../../examples/books.yaml")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "music: ok\nbooks: ok\n", stdout)

	path := writeSchema(t, `schema: broken
document:
  fields:
    - {name: title, type: string, aliases: [name]}
fields:
  - {name: body, type: string, aliases: [text]}
  - {name: text, type: string}
  - {name: text, type: string}
summaries:
  - name: default
    fields:
      - name: body
`)

	// check validates even when asked not to.
	code, _, stderr = runCLI(t, "check", "--no-validate", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "shadowed_alias")
	assert.Contains(t, stderr, "duplicate_field")
}

func TestParseGoSource(t *testing.T) {
	pattern, typeName, err := parseGoSource("./examples/music#Album")
	require.NoError(t, err)
	assert.Equal(t, "./examples/music", pattern)
	assert.Equal(t, "Album", typeName)

	for _, bad := range []string{"./examples/music", "#Album", "./examples/music#"} {
		_, _, err := parseGoSource(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "music", goSchemaName("vsmsummary-generator/examples/music"))
	assert.Equal(t, "my_docs", goSchemaName("./my-docs/..."))
}
