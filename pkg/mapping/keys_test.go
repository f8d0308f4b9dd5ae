package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/mapping"
	"github.com/goliatone/go-formbind/pkg/props"
)

func sampleInput() field.Input {
	return field.Input{
		OnChange:    field.NewHandler(nil),
		OnBlur:      field.NewHandler(nil),
		OnFocus:     field.NewHandler(nil),
		OnDragStart: field.NewHandler(nil),
		OnDrop:      field.NewHandler(nil),
		Name:        "test props",
		Value:       1,
	}
}

func TestInputKeys_MapsKeysToInput(t *testing.T) {
	input := sampleInput()
	mapKeys := []string{"onChange", "name"}

	got := mapping.InputKeys(mapKeys...)(input, nil)
	source := input.Props()

	for _, key := range mapKeys {
		assert.True(t, props.Same(source[key], got[key]), "key %q", key)
	}
	assert.Equal(t, "test props", got["name"])
	assert.True(t, got["onChange"] == input.OnChange, "onChange must keep identity")
}

func TestInputKeys_ExcludesExtraneousKeys(t *testing.T) {
	input := sampleInput()
	got := mapping.InputKeys("onChange", "name")(input, nil)

	assert.ElementsMatch(t, []string{"name", "onChange"}, got.Keys())
	for _, key := range field.InputKeys() {
		if key == "onChange" || key == "name" {
			continue
		}
		assert.Nil(t, got[key], "key %q", key)
		assert.False(t, got.Has(key), "key %q", key)
	}
}

func TestInputKeys_EdgeCases(t *testing.T) {
	input := sampleInput()

	empty := mapping.InputKeys()(input, nil)
	require.NotNil(t, empty)
	assert.Empty(t, empty)

	once := mapping.InputKeys("value")(input, nil)
	twice := mapping.InputKeys("value", "value")(input, nil)
	assert.Equal(t, once, twice)

	absent := mapping.InputKeys("otherProp")(input, nil)
	require.True(t, absent.Has("otherProp"))
	assert.Nil(t, absent["otherProp"])

	unbound := mapping.InputKeys("onBlur")(field.Input{Name: "title"}, nil)
	require.True(t, unbound.Has("onBlur"))
	assert.Nil(t, unbound["onBlur"])
}

func TestInputKeys_CopiesKeyList(t *testing.T) {
	keys := []string{"name"}
	mapper := mapping.InputKeys(keys...)
	keys[0] = "value"

	got := mapper(sampleInput(), nil)
	assert.Equal(t, props.Props{"name": "test props"}, got)
}

func TestStrictInputKeys(t *testing.T) {
	mapper, err := mapping.StrictInputKeys("onChange", "value")
	require.NoError(t, err)
	assert.Len(t, mapper(sampleInput(), nil), 2)

	_, err = mapping.StrictInputKeys("onChnage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown input key "onChnage"`)

	assert.Panics(t, func() { mapping.MustInputKeys("bogus") })
}

func TestMetaKeys(t *testing.T) {
	meta := field.Meta{Touched: true, Error: "required"}

	got := mapping.MetaKeys("touched", "error", "warning")(meta, nil)

	assert.Equal(t, props.Props{"touched": true, "error": "required", "warning": nil}, got)
}
