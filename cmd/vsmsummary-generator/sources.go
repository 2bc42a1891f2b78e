package main

import (
	"fmt"
	"strings"

	"vsmsummary-generator/internal/analyze"
	"vsmsummary-generator/internal/common"
	"vsmsummary-generator/internal/schema"
)

// goSourcePrefix marks a schema argument naming a Go struct type.
const goSourcePrefix = "go:"

// loadSchemas loads every schema argument in order.
func loadSchemas(args []string) ([]*schema.Schema, error) {
	schemas := make([]*schema.Schema, 0, len(args))

	for _, arg := range args {
		s, err := loadSchema(arg)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", arg, err)
		}

		schemas = append(schemas, s)
	}

	return schemas, nil
}

func loadSchema(arg string) (*schema.Schema, error) {
	if !strings.HasPrefix(arg, goSourcePrefix) {
		return schema.Load(arg)
	}

	pattern, typeName, err := parseGoSource(strings.TrimPrefix(arg, goSourcePrefix))
	if err != nil {
		return nil, err
	}

	return analyze.LoadSchema(goSchemaName(pattern), pattern, typeName)
}

// parseGoSource splits "<pattern>#<Type>".
func parseGoSource(src string) (pattern, typeName string, err error) {
	pattern, typeName, ok := strings.Cut(src, "#")
	if !ok || pattern == "" || typeName == "" {
		return "", "", fmt.Errorf("go schema source %q: want <pattern>#<Type>", src)
	}

	return pattern, typeName, nil
}

// goSchemaName names a Go-sourced schema after its package.
func goSchemaName(pattern string) string {
	pattern = strings.TrimSuffix(pattern, "/...")
	return common.SchemaName(common.PkgAlias(pattern))
}
