package presenters

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/props"
	"github.com/goliatone/go-formbind/pkg/render/template"
	"github.com/goliatone/go-formbind/pkg/render/template/gotemplate"
)

// Canonical presenter names used by the default registry.
const (
	NameText     = "text"
	NameTextarea = "textarea"
	NameCheckbox = "checkbox"
	NameSelect   = "select"
)

// Template name used by RenderForm.
const FormTemplate = "form"

//go:embed templates/*.tpl
var embedded embed.FS

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// Templates returns the embedded presenter templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Errorf("presenters: embedded templates: %w", err))
	}
	return sub
}

// NewEngine builds a template engine loaded with the embedded templates.
// Extra options are applied afterwards, so WithBaseDir can override
// individual templates.
func NewEngine(opts ...gotemplate.Option) (*gotemplate.Engine, error) {
	return gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(Templates())}, opts...)...)
}

// Text renders a single-line input. The `type` prop selects the HTML input
// type and defaults to "text".
func Text(r template.TemplateRenderer) component.Component {
	return templateComponent(r, NameText)
}

// Textarea renders a multi-line input. `rows` defaults to 4.
func Textarea(r template.TemplateRenderer) component.Component {
	return templateComponent(r, NameTextarea)
}

// Checkbox renders a boolean input checked when `value` is truthy.
func Checkbox(r template.TemplateRenderer) component.Component {
	return templateComponent(r, NameCheckbox)
}

// Select renders a single choice from the `options` prop.
func Select(r template.TemplateRenderer) component.Component {
	return templateComponent(r, NameSelect)
}

func templateComponent(r template.TemplateRenderer, name string) component.Component {
	return func(buf *bytes.Buffer, p props.Props) error {
		if r == nil {
			return fmt.Errorf("presenters: template renderer not configured for %q", name)
		}
		rendered, err := r.RenderTemplate(name, viewData(p))
		if err != nil {
			return fmt.Errorf("presenters: render %q: %w", name, err)
		}
		buf.WriteString(rendered)
		return component.RenderChildren(buf, p)
	}
}

func viewData(p props.Props) map[string]any {
	name := strings.TrimSpace(p.String(field.InputName))
	value := p[field.InputValue]

	inputType := strings.TrimSpace(p.String("type"))
	if inputType == "" {
		inputType = "text"
	}
	rows := 4
	if n, ok := p["rows"].(int); ok && n > 0 {
		rows = n
	}

	return map[string]any{
		"id":          controlID(name),
		"name":        name,
		"value":       stringValue(value),
		"checked":     truthy(value),
		"label":       p.String("label"),
		"placeholder": p.String("placeholder"),
		"help":        sanitizeHelp(p.String("help")),
		"required":    p.Bool("required"),
		"touched":     p.Bool("isTouched"),
		"errorText":   p.String("errorText"),
		"inputType":   inputType,
		"rows":        strconv.Itoa(rows),
		"options":     optionData(p["options"], stringValue(value)),
		"changeBound": bound(p[field.InputOnChange]),
		"blurBound":   bound(p[field.InputOnBlur]),
	}
}

func sanitizeHelp(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	helpPolicyOnce.Do(func() {
		helpPolicy = bluemonday.UGCPolicy()
	})
	return strings.TrimSpace(helpPolicy.Sanitize(trimmed))
}

func controlID(name string) string {
	if name == "" {
		return ""
	}
	var builder strings.Builder
	builder.WriteString("field-")
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			builder.WriteRune(r)
		default:
			builder.WriteByte('-')
		}
	}
	return builder.String()
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "yes":
			return true
		}
	}
	return false
}

func bound(value any) bool {
	h, ok := value.(*field.Handler)
	return ok && h != nil
}
