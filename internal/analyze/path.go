package analyze

import (
	"strings"
)

// TypePath builds a readable path to a field for error messages, e.g.
// "Album.Tracks[].Title".
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{parts: []string{root}}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{parts: append(append([]string{}, p.parts...), name)}
}

// Slice marks the last element as a slice.
func (p *TypePath) Slice() *TypePath {
	parts := append([]string{}, p.parts...)
	if len(parts) == 0 {
		return &TypePath{parts: []string{"[]"}}
	}

	parts[len(parts)-1] += "[]"

	return &TypePath{parts: parts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}
