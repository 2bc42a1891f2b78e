package schema

import (
	"fmt"
	"strings"

	"vsmsummary-generator/internal/common"
)

// Command tells the streaming matcher how to render a summary field from its
// sources.
type Command int

const (
	// CommandNone copies the source values verbatim.
	CommandNone Command = iota
	// CommandFlattenSpace joins the source values with spaces.
	CommandFlattenSpace
	// CommandFlattenJuniper flattens the sources and marks them for dynamic
	// highlighting.
	CommandFlattenJuniper

	// NumCommands is the number of defined commands.
	NumCommands = int(iota)
)

// String returns the symbolic command name as used in config files.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "NONE"
	case CommandFlattenSpace:
		return "FLATTENSPACE"
	case CommandFlattenJuniper:
		return "FLATTENJUNIPER"
	default:
		return common.UnknownStr
	}
}

// ParseCommand parses a command name case-insensitively. An empty name is
// CommandNone.
func ParseCommand(name string) (Command, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "NONE":
		return CommandNone, nil
	case "FLATTENSPACE":
		return CommandFlattenSpace, nil
	case "FLATTENJUNIPER":
		return CommandFlattenJuniper, nil
	default:
		return CommandNone, fmt.Errorf("unknown summary command %q", name)
	}
}

// Source names a field a summary field is read from.
type Source struct {
	Name string
}

// String returns the source name.
func (s Source) String() string {
	return s.Name
}

// SummaryField is one requested output field of a summary class.
type SummaryField struct {
	Name    string
	Command Command

	sources []Source
}

// NewSummaryField creates a summary field with the given sources in order.
func NewSummaryField(name string, cmd Command, sources ...string) *SummaryField {
	sf := &SummaryField{Name: name, Command: cmd}
	for _, s := range sources {
		sf.sources = append(sf.sources, Source{Name: s})
	}

	return sf
}

// Sources returns the declared sources in order.
func (sf *SummaryField) Sources() []Source {
	return common.Clone(sf.sources)
}

// SourceNames returns the declared source names in order.
func (sf *SummaryField) SourceNames() []string {
	names := make([]string, len(sf.sources))
	for i, s := range sf.sources {
		names[i] = s.String()
	}

	return names
}

// SourceCount returns the number of declared sources.
func (sf *SummaryField) SourceCount() int {
	return len(sf.sources)
}

// SummaryClass is a named, ordered set of summary fields.
type SummaryClass struct {
	Name string

	fields []*SummaryField
	byName map[string]*SummaryField
}

// NewSummaryClass creates an empty summary class.
func NewSummaryClass(name string) *SummaryClass {
	return &SummaryClass{Name: name, byName: make(map[string]*SummaryField)}
}

// AddField appends a summary field and returns c.
func (c *SummaryClass) AddField(sf *SummaryField) *SummaryClass {
	c.fields = append(c.fields, sf)
	if _, ok := c.byName[sf.Name]; !ok {
		c.byName[sf.Name] = sf
	}

	return c
}

// Field returns the summary field with the given name, or nil.
func (c *SummaryClass) Field(name string) *SummaryField {
	return c.byName[name]
}

// Fields returns the summary fields in declaration order.
func (c *SummaryClass) Fields() []*SummaryField {
	return common.Clone(c.fields)
}
