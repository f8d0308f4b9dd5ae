package formbind

import (
	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/compose"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/mapping"
	"github.com/goliatone/go-formbind/pkg/props"
	"github.com/goliatone/go-formbind/pkg/registrar"
)

// Props is the property bag every component receives.
type Props = props.Props

// Component renders markup for a set of props.
type Component = component.Component

// Meta is the field status record supplied by form state.
type Meta = field.Meta

// Input is the field binding record supplied by form state.
type Input = field.Input

// MetaMapper derives props from Meta.
type MetaMapper = compose.MetaMapper

// InputMapper derives props from Input.
type InputMapper = compose.InputMapper

// Wrapper turns a presentation component into a bound one.
type Wrapper = compose.Wrapper

// Compose returns a wrapper that hands its target the merge of mapped meta,
// mapped input and the caller's own props, own props winning.
func Compose(mapMeta MetaMapper, mapInput InputMapper, opts ...compose.Option) Wrapper {
	return compose.Compose(mapMeta, mapInput, opts...)
}

// MapInputKeys returns an input mapper copying exactly keys from Input.
func MapInputKeys(keys ...string) InputMapper {
	return mapping.InputKeys(keys...)
}

// Field returns a wrapper registering a component with the form-state host
// under the given static configuration.
func Field(host Component, config Props) Wrapper {
	return registrar.Field(host, config)
}
