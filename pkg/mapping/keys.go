package mapping

import (
	"fmt"
	"slices"

	"github.com/goliatone/go-formbind/pkg/compose"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/props"
)

// InputKeys returns an input mapper copying exactly the named keys from the
// field input. Values are shared, not copied, so handlers keep their
// identity. A key the input does not expose is still present with a nil
// value; repeating a key has no effect.
func InputKeys(keys ...string) compose.InputMapper {
	keys = slices.Clone(keys)
	return func(input field.Input, _ props.Props) props.Props {
		return props.Pick(input.Props(), keys...)
	}
}

// StrictInputKeys behaves like InputKeys but rejects names that no input
// can ever expose, catching typos when the mapper is built instead of
// rendering nil props later.
func StrictInputKeys(keys ...string) (compose.InputMapper, error) {
	for _, key := range keys {
		if !field.IsInputKey(key) {
			return nil, fmt.Errorf("mapping: unknown input key %q", key)
		}
	}
	return InputKeys(keys...), nil
}

// MustInputKeys mirrors StrictInputKeys but panics on unknown keys.
func MustInputKeys(keys ...string) compose.InputMapper {
	mapper, err := StrictInputKeys(keys...)
	if err != nil {
		panic(err)
	}
	return mapper
}

// MetaKeys returns a meta mapper copying exactly the named meta props
// (`touched`, `dirty`, `valid`...). Missing keys are present with a nil value.
func MetaKeys(keys ...string) compose.MetaMapper {
	keys = slices.Clone(keys)
	return func(meta field.Meta, _ props.Props) props.Props {
		return props.Pick(meta.Props(), keys...)
	}
}
