package common

import (
	"path"
	"strings"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SchemaName derives a schema name from a Go identifier or package alias:
// lower-cased, with dashes turned into underscores.
func SchemaName(ident string) string {
	return strings.ReplaceAll(strings.ToLower(ident), "-", "_")
}
