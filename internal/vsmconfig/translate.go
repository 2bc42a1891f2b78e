package vsmconfig

import (
	"vsmsummary-generator/internal/schema"
)

// Both command enumerations must list the same number of symbols; a
// compile error here means one side gained a command the other lacks.
func _() {
	var x [1]struct{}
	_ = x[len(commandSymbols)-schema.NumCommands]
}

// FromSchemaCommand translates a schema command to the config enum by symbolic
// name. A command without a config symbol yields ErrUnknownCommand.
func FromSchemaCommand(c schema.Command) (Command, error) {
	return CommandByName(c.String())
}
