package formdef

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbind/pkg/props"
)

// KeyDefault names the field prop holding the initial value used when no
// value is supplied for the field. It is not forwarded as a component prop.
const KeyDefault = "default"

// Definition describes a form: its element attributes and the ordered list
// of fields registered with the form-state host.
type Definition struct {
	Source string `json:"-" yaml:"-"`
	Form   Form    `json:"form" yaml:"form"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Form holds the attributes of the rendered form element.
type Form struct {
	ID     string `json:"id" yaml:"id"`
	Action string `json:"action" yaml:"action"`
	Method string `json:"method" yaml:"method"`
}

// Field registers one presentation component. Props become the static
// configuration handed to registrar.Field.
type Field struct {
	Name      string         `json:"name" yaml:"name"`
	Component string         `json:"component" yaml:"component"`
	Props     map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// Load reads and parses a definition file from fsys.
func Load(fsys fs.FS, path string) (Definition, error) {
	if fsys == nil {
		return Definition{}, fmt.Errorf("formdef: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Definition{}, fmt.Errorf("formdef: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML definition and validates it. source is only
// used in error messages.
func Parse(data []byte, source string) (Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Definition{}, fmt.Errorf("formdef: file %s is empty", source)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		def = Definition{}
		if err := yaml.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("formdef: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}
	def.Source = source

	if err := def.normalise(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func (d *Definition) normalise() error {
	d.Form.ID = strings.TrimSpace(d.Form.ID)
	d.Form.Action = strings.TrimSpace(d.Form.Action)
	d.Form.Method = strings.ToLower(strings.TrimSpace(d.Form.Method))
	if d.Form.Method == "" {
		d.Form.Method = "post"
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for idx := range d.Fields {
		f := &d.Fields[idx]
		f.Name = strings.TrimSpace(f.Name)
		f.Component = strings.ToLower(strings.TrimSpace(f.Component))
		if f.Name == "" {
			return fmt.Errorf("formdef: %s: field %d has no name", d.Source, idx)
		}
		if f.Component == "" {
			return fmt.Errorf("formdef: %s: field %q has no component", d.Source, f.Name)
		}
		if _, exists := seen[f.Name]; exists {
			return fmt.Errorf("formdef: %s: duplicate field %q", d.Source, f.Name)
		}
		seen[f.Name] = struct{}{}
		f.Props = normaliseMap(f.Props)
	}
	return nil
}

// Names returns the field names in declaration order.
func (d Definition) Names() []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Defaults returns the declared default value of every field that has one.
func (d Definition) Defaults() map[string]any {
	out := make(map[string]any)
	for _, f := range d.Fields {
		if value, ok := f.Props[KeyDefault]; ok {
			out[f.Name] = value
		}
	}
	return out
}

// Values returns an initial value for every declared field: the supplied
// value, else the declared default, else nil. Undeclared names are dropped.
func (d Definition) Values(values map[string]any) map[string]any {
	out := d.Defaults()
	for _, name := range d.Names() {
		if value, ok := values[name]; ok {
			out[name] = value
			continue
		}
		if _, ok := out[name]; !ok {
			out[name] = nil
		}
	}
	return out
}

// Config returns the static registrar configuration for the field. A label
// derived from the name is added when the definition has none.
func (f Field) Config() props.Props {
	config := props.Omit(f.Props, KeyDefault)
	if strings.TrimSpace(config.String("label")) == "" {
		config["label"] = Humanize(f.Name)
	}
	return config
}

// Humanize turns a field path such as "author.first_name" into "First name".
func Humanize(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	var builder strings.Builder
	prevLower := false
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			builder.WriteByte(' ')
			prevLower = false
		case unicode.IsUpper(r) && prevLower:
			builder.WriteByte(' ')
			builder.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			builder.WriteRune(unicode.ToLower(r))
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	words := strings.Fields(builder.String())
	if len(words) == 0 {
		return ""
	}
	out := strings.Join(words, " ")
	first := []rune(out)
	first[0] = unicode.ToUpper(first[0])
	return string(first)
}

// normaliseMap converts the map[any]any values yaml.v3 can produce for
// nested mappings into map[string]any so templates and props see one shape.
func normaliseMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = normaliseValue(value)
	}
	return out
}

func normaliseValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normaliseMap(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, nested := range v {
			out[fmt.Sprint(key)] = normaliseValue(nested)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for idx, nested := range v {
			out[idx] = normaliseValue(nested)
		}
		return out
	default:
		return value
	}
}
