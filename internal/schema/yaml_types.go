package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"vsmsummary-generator/internal/common"
)

// File represents the root of a YAML schema definition file.
type File struct {
	// Schema is the schema name.
	Schema string `yaml:"schema"`

	// Document declares the document type. Omitted documents are allowed.
	Document *DocumentDef `yaml:"document,omitempty"`

	// Fields are schema-level fields declared outside the document.
	Fields []FieldDef `yaml:"fields,omitempty"`

	// Summaries are the summary classes in declaration order.
	Summaries []SummaryClassDef `yaml:"summaries,omitempty"`
}

// DocumentDef declares a document type.
type DocumentDef struct {
	// Name defaults to the schema name.
	Name   string     `yaml:"name,omitempty"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef declares a field and, for struct-like types, its sub-fields.
type FieldDef struct {
	Name    string     `yaml:"name"`
	Type    string     `yaml:"type"`
	Summary bool       `yaml:"summary,omitempty"`
	Fields  []FieldDef `yaml:"fields,omitempty"`
	// Aliases are alternative names the field can be looked up by. They are
	// only honored on top-level document and schema fields.
	Aliases []string `yaml:"aliases,omitempty"`
}

// SummaryClassDef declares a summary class.
type SummaryClassDef struct {
	Name   string            `yaml:"name"`
	Fields []SummaryFieldDef `yaml:"fields"`
}

// SummaryFieldDef declares one summary field.
type SummaryFieldDef struct {
	Name string `yaml:"name"`
	// Source defaults to the summary field's own name.
	Source StringOrArray `yaml:"source,omitempty"`
	// Command is matched case-insensitively; empty means NONE.
	Command CommandName `yaml:"command,omitempty"`
}

// StringOrArray is a list of strings that can be written as a single string.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// CommandName is a summary command as written in a schema file.
type CommandName string

// UnmarshalYAML rejects unknown command names at parse time.
func (c *CommandName) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}

	if _, err := ParseCommand(str); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*c = CommandName(str)

	return nil
}

// Command returns the parsed command.
func (c CommandName) Command() Command {
	cmd, _ := ParseCommand(string(c))
	return cmd
}
