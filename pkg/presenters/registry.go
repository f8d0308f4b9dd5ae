package presenters

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/compose"
	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/mapping"
	"github.com/goliatone/go-formbind/pkg/props"
	"github.com/goliatone/go-formbind/pkg/render/template"
)

// MapMeta derives the status props presenters understand: `isTouched`,
// `isDirty` and, once the field is touched and invalid, `errorText`.
func MapMeta(meta field.Meta, _ props.Props) props.Props {
	out := props.Props{
		"isTouched": meta.Touched,
		"isDirty":   meta.Dirty,
	}
	if meta.Touched && meta.Invalid && meta.Error != nil {
		out["errorText"] = fmt.Sprint(meta.Error)
	}
	return out
}

// MapInput projects the input keys presenters render.
var MapInput = mapping.InputKeys(
	field.InputName,
	field.InputValue,
	field.InputOnChange,
	field.InputOnBlur,
)

// Mappers returns the meta and input mappers used by NewRegistry.
func Mappers() (compose.MetaMapper, compose.InputMapper) {
	return MapMeta, MapInput
}

// NewRegistry returns a registry holding the built-in presenters, each
// already composed with Mappers so it can be handed straight to a
// registrar.Field. Fields sharing a presenter share its memo slot.
func NewRegistry(r template.TemplateRenderer, opts ...compose.Option) *component.Registry {
	wrap := compose.Compose(MapMeta, MapInput, opts...)
	registry := component.NewRegistry()

	registry.MustRegister(NameText, component.Descriptor{Component: wrap(Text(r))})
	registry.MustRegister(NameTextarea, component.Descriptor{Component: wrap(Textarea(r))})
	registry.MustRegister(NameCheckbox, component.Descriptor{Component: wrap(Checkbox(r))})
	registry.MustRegister(NameSelect, component.Descriptor{Component: wrap(Select(r))})

	return registry
}
