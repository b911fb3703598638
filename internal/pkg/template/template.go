// Package template renders short human-authored message templates of the
// form "Hi {{contact_name}}". No escaping, no nesting, no loops.
package template

import (
	"fmt"
	"strings"
)

// InternalKeyPrefix marks payload keys that carry engine context (tenant id,
// reminder flag). They are never substituted into templates and are stripped
// before logging.
const InternalKeyPrefix = "_"

// Render replaces every {{key}} placeholder whose key is present in the
// payload and is not internal. Placeholders with no matching key are left
// verbatim in the output.
func Render(tmpl string, payload map[string]any) string {
	result := tmpl
	for key, value := range payload {
		if strings.HasPrefix(key, InternalKeyPrefix) {
			continue
		}
		result = strings.ReplaceAll(result, "{{"+key+"}}", stringify(value))
	}
	return result
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
