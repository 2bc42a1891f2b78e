package vsmconfig

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"vsmsummary-generator/internal/common"
)

// Format selects a rendering.
type Format string

const (
	FormatCfg  Format = "cfg"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatCfg, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want cfg or yaml)", name)
	}
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	return "." + string(f)
}

// Render renders cfg in the given format.
func Render(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatCfg:
		return RenderCfg(cfg)
	case FormatYAML:
		return RenderYAML(cfg)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// RenderCfg renders cfg in the flat payload format, one "key value" per line,
// with array sizes before their elements.
func RenderCfg(cfg *Config) ([]byte, error) {
	for _, fm := range cfg.FieldMap {
		if fm.Command.String() == common.UnknownStr {
			return nil, fmt.Errorf("summary %s: %w: %d", fm.Summary, ErrUnknownCommand, int(fm.Command))
		}
	}

	var buf bytes.Buffer
	if err := cfgTemplate.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderYAML renders cfg as YAML.
func RenderYAML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}

	return buf.Bytes(), nil
}

var cfgTemplate = template.Must(template.New("vsmsummary").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	Parse(`outputclass {{quote .OutputClass}}
fieldmap[{{len .FieldMap}}]
{{range $i, $fm := .FieldMap}}fieldmap[{{$i}}].summary {{quote $fm.Summary}}
fieldmap[{{$i}}].document[{{len $fm.Document}}]
{{range $j, $d := $fm.Document}}fieldmap[{{$i}}].document[{{$j}}].field {{quote $d.Field}}
{{end}}fieldmap[{{$i}}].command {{$fm.Command}}
{{end}}`))
