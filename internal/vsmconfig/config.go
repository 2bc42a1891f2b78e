package vsmconfig

import (
	"errors"
	"fmt"

	"vsmsummary-generator/internal/common"
)

const (
	// DefName is the config definition name and the derived artifact's identifier.
	DefName = "vsmsummary"
	// DefNamespace is the config definition namespace.
	DefNamespace = "vespa.config.search.vsm"
)

// ErrUnknownCommand is returned when a command has no symbol in this config.
var ErrUnknownCommand = errors.New("unknown vsmsummary command")

// Command is the fieldmap[].command enum of the config definition.
type Command int

const (
	CommandNone Command = iota
	CommandFlattenJuniper
	CommandFlattenSpace
)

// commandSymbols holds the enum symbols indexed by Command.
var commandSymbols = [...]string{
	CommandNone:           "NONE",
	CommandFlattenJuniper: "FLATTENJUNIPER",
	CommandFlattenSpace:   "FLATTENSPACE",
}

// String returns the enum symbol.
func (c Command) String() string {
	if c < 0 || int(c) >= len(commandSymbols) {
		return common.UnknownStr
	}

	return commandSymbols[c]
}

// CommandByName returns the command with the given symbol.
func CommandByName(symbol string) (Command, error) {
	for i, s := range commandSymbols {
		if s == symbol {
			return Command(i), nil
		}
	}

	return CommandNone, fmt.Errorf("%w: %q", ErrUnknownCommand, symbol)
}

// MarshalYAML renders the command as its symbol.
func (c Command) MarshalYAML() (any, error) {
	if c.String() == common.UnknownStr {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCommand, int(c))
	}

	return c.String(), nil
}

// DocumentRef names one document field feeding a summary field.
type DocumentRef struct {
	Field string `yaml:"field"`
}

// FieldMap maps one summary field to its document fields.
type FieldMap struct {
	Summary  string        `yaml:"summary"`
	Document []DocumentRef `yaml:"document"`
	Command  Command       `yaml:"command"`
}

// Config is a built vsmsummary config.
type Config struct {
	OutputClass string     `yaml:"outputclass"`
	FieldMap    []FieldMap `yaml:"fieldmap"`
}

// Builder accumulates config content. The zero value is ready to use.
type Builder struct {
	outputClass string
	fieldMaps   []FieldMap
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// OutputClass sets the result class used for streaming search results.
func (b *Builder) OutputClass(name string) *Builder {
	b.outputClass = name
	return b
}

// AddFieldMap appends a field map record.
func (b *Builder) AddFieldMap(summary string, command Command, fields ...string) *Builder {
	fm := FieldMap{Summary: summary, Command: command, Document: make([]DocumentRef, 0, len(fields))}
	for _, f := range fields {
		fm.Document = append(fm.Document, DocumentRef{Field: f})
	}

	b.fieldMaps = append(b.fieldMaps, fm)

	return b
}

// Build returns the config. Later builder changes do not affect it.
func (b *Builder) Build() *Config {
	cfg := &Config{OutputClass: b.outputClass, FieldMap: make([]FieldMap, len(b.fieldMaps))}
	for i, fm := range b.fieldMaps {
		fm.Document = common.Clone(fm.Document)
		cfg.FieldMap[i] = fm
	}

	return cfg
}

// Producer populates a config builder from its internal state.
type Producer interface {
	GetConfig(b *Builder) error
}

// Produce runs p against a fresh builder and returns the built config.
func Produce(p Producer, opts ...Option) (*Config, error) {
	b := NewBuilder()
	for _, opt := range opts {
		opt(b)
	}

	if err := p.GetConfig(b); err != nil {
		return nil, fmt.Errorf("producing %s config: %w", DefName, err)
	}

	return b.Build(), nil
}

// Option presets builder content before a producer runs.
type Option func(b *Builder)

// WithOutputClass presets the outputclass value.
func WithOutputClass(name string) Option {
	return func(b *Builder) {
		b.OutputClass(name)
	}
}
