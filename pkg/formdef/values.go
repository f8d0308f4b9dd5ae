package formdef

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadValues reads a YAML (or JSON) mapping of field name to initial value.
// Nested mappings are flattened into dotted names so they line up with
// field paths such as "author.email".
func LoadValues(fsys fs.FS, path string) (map[string]any, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("formdef: read values %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return map[string]any{}, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("formdef: parse values %s: %w", path, err)
	}
	out := make(map[string]any)
	flatten(out, "", normaliseMap(raw))
	return out, nil
}

func flatten(out map[string]any, prefix string, in map[string]any) {
	for key, value := range in {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flatten(out, path, nested)
			continue
		}
		out[path] = value
	}
}

// LoadErrors reads a YAML (or JSON) error payload mapping paths to
// messages, as returned by a server-side validation step. A single message
// may be given as a plain string.
func LoadErrors(fsys fs.FS, path string) (map[string][]string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("formdef: read errors %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("formdef: parse errors %s: %w", path, err)
	}
	out := make(map[string][]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
		case string:
			out[key] = append(out[key], v)
		case []any:
			for _, item := range v {
				out[key] = append(out[key], fmt.Sprint(item))
			}
		default:
			return nil, fmt.Errorf("formdef: errors %s: key %q must be a string or a list", path, key)
		}
	}
	return out, nil
}
