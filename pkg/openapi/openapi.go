package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbind/pkg/formdef"
	"github.com/goliatone/go-formbind/pkg/presenters"
)

// ErrSchemaNotFound is returned when the named component schema is missing.
var ErrSchemaNotFound = errors.New("openapi: schema not found")

// textareaThreshold is the maxLength above which strings get a textarea.
const textareaThreshold = 255

// Options configures how a schema becomes a form definition.
type Options struct {
	Action           string
	Method           string
	IncludeReadOnly  bool
	ExternalRefs     bool
	ValidateDocument bool
}

// Option mutates Options.
type Option func(*Options)

// WithAction sets the form action of the produced definition.
func WithAction(action string) Option {
	return func(o *Options) {
		o.Action = action
	}
}

// WithMethod sets the form method of the produced definition.
func WithMethod(method string) Option {
	return func(o *Options) {
		o.Method = method
	}
}

// WithReadOnly keeps properties flagged readOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *Options) {
		o.IncludeReadOnly = enabled
	}
}

// WithExternalRefs allows the loader to follow $refs outside the document.
func WithExternalRefs(enabled bool) Option {
	return func(o *Options) {
		o.ExternalRefs = enabled
	}
}

// WithValidation validates the document before conversion.
func WithValidation(enabled bool) Option {
	return func(o *Options) {
		o.ValidateDocument = enabled
	}
}

// Load reads an OpenAPI document from fsys and converts the named schema.
func Load(ctx context.Context, fsys fs.FS, path, schema string, opts ...Option) (formdef.Definition, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return formdef.Definition{}, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	def, err := Definition(ctx, raw, schema, opts...)
	if err != nil {
		return formdef.Definition{}, err
	}
	def.Source = path
	return def, nil
}

// Definition converts the component schema into a form definition whose id
// is the schema name.
func Definition(ctx context.Context, raw []byte, schema string, opts ...Option) (formdef.Definition, error) {
	cfg := newOptions(opts...)
	list, err := fields(ctx, raw, schema, cfg)
	if err != nil {
		return formdef.Definition{}, err
	}
	def := formdef.Definition{
		Source: schema,
		Form: formdef.Form{
			ID:     strings.ToLower(schema),
			Action: cfg.Action,
			Method: strings.ToLower(cfg.Method),
		},
		Fields: list,
	}
	if def.Form.Method == "" {
		def.Form.Method = "post"
	}
	return def, nil
}

// Fields converts the properties of a component schema into field
// registrations sorted by name. Nested objects are flattened into dotted
// names.
func Fields(ctx context.Context, raw []byte, schema string, opts ...Option) ([]formdef.Field, error) {
	return fields(ctx, raw, schema, newOptions(opts...))
}

func newOptions(opts ...Option) Options {
	cfg := Options{Method: "post"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func fields(ctx context.Context, raw []byte, schema string, cfg Options) ([]formdef.Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.ExternalRefs,
	}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.ValidateDocument {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	if doc.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, schema)
	}
	ref, ok := doc.Components.Schemas[schema]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, schema)
	}

	var out []formdef.Field
	collect(&out, "", ref.Value, cfg)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func collect(out *[]formdef.Field, prefix string, schema *openapi3.Schema, cfg Options) {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		property := ref.Value
		if property.ReadOnly && !cfg.IncludeReadOnly {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		if property.Type.Is(openapi3.TypeObject) && len(property.Properties) > 0 {
			collect(out, path, property, cfg)
			continue
		}
		*out = append(*out, convert(path, property, required[name]))
	}
}

func convert(name string, schema *openapi3.Schema, required bool) formdef.Field {
	config := make(map[string]any)
	if schema.Title != "" {
		config["label"] = schema.Title
	}
	if schema.Description != "" {
		config["help"] = schema.Description
	}
	if required {
		config["required"] = true
	}
	if schema.Default != nil {
		config[formdef.KeyDefault] = schema.Default
	}

	component := presenters.NameText
	switch {
	case len(schema.Enum) > 0:
		component = presenters.NameSelect
		config["options"] = append([]any(nil), schema.Enum...)
	case schema.Type.Is(openapi3.TypeBoolean):
		component = presenters.NameCheckbox
	case schema.Type.Is(openapi3.TypeString) && isLongText(schema):
		component = presenters.NameTextarea
	default:
		if kind := inputType(schema); kind != "" {
			config["type"] = kind
		}
	}

	if len(config) == 0 {
		config = nil
	}
	return formdef.Field{Name: name, Component: component, Props: config}
}

func isLongText(schema *openapi3.Schema) bool {
	if strings.EqualFold(schema.Format, "textarea") {
		return true
	}
	return schema.MaxLength != nil && *schema.MaxLength > textareaThreshold
}

func inputType(schema *openapi3.Schema) string {
	switch {
	case schema.Type.Is(openapi3.TypeInteger), schema.Type.Is(openapi3.TypeNumber):
		return "number"
	case schema.Type.Is(openapi3.TypeString):
		switch strings.ToLower(schema.Format) {
		case "email":
			return "email"
		case "uri", "url":
			return "url"
		case "date":
			return "date"
		case "date-time":
			return "datetime-local"
		case "password":
			return "password"
		}
	}
	return ""
}
