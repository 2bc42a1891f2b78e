package analyze

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"vsmsummary-generator/internal/schema"
)

// TagKey is the struct tag key read by the analyzer.
const TagKey = "vsm"

// Tag is a parsed vsm struct tag.
type Tag struct {
	Name    string
	Skip    bool
	Summary bool
	Command schema.Command
}

// ParseTag parses the vsm tag of a struct field. An empty name means the
// Go field name in snake case.
func ParseTag(goName string, tag reflect.StructTag) (Tag, error) {
	raw, ok := tag.Lookup(TagKey)
	if !ok {
		return Tag{Name: SnakeCase(goName)}, nil
	}

	if raw == "-" {
		return Tag{Skip: true}, nil
	}

	parts := strings.Split(raw, ",")

	t := Tag{Name: strings.TrimSpace(parts[0])}
	if t.Name == "" {
		t.Name = SnakeCase(goName)
	}

	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)

		switch {
		case opt == "":
		case opt == "summary":
			t.Summary = true
		case strings.HasPrefix(opt, "command="):
			cmd, err := schema.ParseCommand(strings.TrimPrefix(opt, "command="))
			if err != nil {
				return Tag{}, err
			}

			t.Command = cmd
		default:
			return Tag{}, fmt.Errorf("unknown %s tag option %q", TagKey, opt)
		}
	}

	return t, nil
}

// SnakeCase converts a Go identifier to snake case: SortTitle -> sort_title,
// URLPath -> url_path.
func SnakeCase(ident string) string {
	runes := []rune(ident)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
