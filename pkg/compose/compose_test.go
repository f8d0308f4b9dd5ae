package compose_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/compose"
	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/mapping"
	"github.com/goliatone/go-formbind/pkg/props"
	"github.com/goliatone/go-formbind/pkg/testsupport"
)

func mapMetaToProps(meta field.Meta, _ props.Props) props.Props {
	return props.Props{"isTouched": meta.Touched}
}

var mapInputToProps = mapping.InputKeys("onChange")

func fieldProps() props.Props {
	return props.Props{
		"ownProp": true,
		"input": field.Input{
			Name:        "test props",
			Value:       1,
			OnChange:    field.NewHandler(nil),
			OnBlur:      field.NewHandler(nil),
			OnFocus:     field.NewHandler(nil),
			OnDragStart: field.NewHandler(nil),
			OnDrop:      field.NewHandler(nil),
		},
		"meta": field.Meta{},
	}
}

func render(t *testing.T, wrapper compose.Wrapper, p props.Props) (*testsupport.Recorder, props.Props) {
	t.Helper()
	rec := testsupport.NewRecorder("<field/>")
	testsupport.MustRender(t, wrapper(rec.Component()), p)
	return rec, rec.Last(t)
}

func TestCompose_RendersUnderlyingComponent(t *testing.T) {
	rec := testsupport.NewRecorder("<field/>")
	wrapped := compose.Compose(mapMetaToProps, mapInputToProps)(rec.Component())

	out := testsupport.MustRender(t, wrapped, fieldProps())
	if out != "<field/>" {
		t.Fatalf("unexpected markup %q", out)
	}
	if rec.Count() != 1 {
		t.Fatalf("expected one render, got %d", rec.Count())
	}
}

func TestCompose_MapsMetaProps(t *testing.T) {
	p := fieldProps()
	_, got := render(t, compose.Compose(mapMetaToProps, mapInputToProps), p)

	if got["isTouched"] != false {
		t.Fatalf("isTouched = %v, want false", got["isTouched"])
	}
}

func TestCompose_MapsInputPropsByIdentity(t *testing.T) {
	p := fieldProps()
	_, got := render(t, compose.Compose(mapMetaToProps, mapInputToProps), p)

	want := p["input"].(field.Input).OnChange
	if got["onChange"] != want {
		t.Fatalf("onChange must be the same handler")
	}
}

func TestCompose_PassesOwnProps(t *testing.T) {
	_, got := render(t, compose.Compose(mapMetaToProps, mapInputToProps), fieldProps())

	if got["ownProp"] != true {
		t.Fatalf("ownProp = %v, want true", got["ownProp"])
	}
}

func TestCompose_ExactSeparation(t *testing.T) {
	_, got := render(t, compose.Compose(mapMetaToProps, mapInputToProps), fieldProps())

	if diff := cmp.Diff([]string{"isTouched", "onChange", "ownProp"}, got.Keys()); diff != "" {
		t.Fatalf("received keys mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_WithoutMetaMapper(t *testing.T) {
	_, got := render(t, compose.Compose(nil, mapInputToProps), fieldProps())

	if got["isTouched"] != nil {
		t.Fatalf("expected no meta props, got isTouched=%v", got["isTouched"])
	}
	if got["onChange"] == nil {
		t.Fatalf("input props must still be mapped")
	}
}

func TestCompose_WithoutInputMapper(t *testing.T) {
	_, got := render(t, compose.Compose(mapMetaToProps, nil), fieldProps())

	if got["onChange"] != nil {
		t.Fatalf("expected no input props, got onChange=%v", got["onChange"])
	}
	if got["isTouched"] != false {
		t.Fatalf("meta props must still be mapped")
	}
}

func TestCompose_WithoutMappers(t *testing.T) {
	_, got := render(t, compose.Compose(nil, nil), fieldProps())

	if diff := cmp.Diff(props.Props{"ownProp": true}, got); diff != "" {
		t.Fatalf("expected only own props (-want +got):\n%s", diff)
	}
}

func TestCompose_MergePrecedence(t *testing.T) {
	mapMeta := func(field.Meta, props.Props) props.Props {
		return props.Props{"k": "meta", "fromMeta": 1, "mi": "meta"}
	}
	mapInput := func(field.Input, props.Props) props.Props {
		return props.Props{"k": "input", "fromInput": 2, "mi": "input"}
	}

	cases := []struct {
		name string
		own  props.Props
		want props.Props
	}{
		{
			name: "own wins over both",
			own:  props.Props{"k": "own"},
			want: props.Props{"k": "own", "fromMeta": 1, "fromInput": 2, "mi": "input"},
		},
		{
			name: "input wins over meta without own",
			own:  props.Props{},
			want: props.Props{"k": "input", "fromMeta": 1, "fromInput": 2, "mi": "input"},
		},
		{
			name: "own nil still wins",
			own:  props.Props{"k": nil},
			want: props.Props{"k": nil, "fromMeta": 1, "fromInput": 2, "mi": "input"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, got := render(t, compose.Compose(mapMeta, mapInput), tc.own)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("merged props mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompose_MappersReceiveOwnProps(t *testing.T) {
	var seenMeta, seenInput props.Props
	mapMeta := func(_ field.Meta, own props.Props) props.Props {
		seenMeta = own
		return nil
	}
	mapInput := func(_ field.Input, own props.Props) props.Props {
		seenInput = own
		return nil
	}

	render(t, compose.Compose(mapMeta, mapInput), fieldProps())

	want := props.Props{"ownProp": true}
	if diff := cmp.Diff(want, seenMeta); diff != "" {
		t.Fatalf("meta mapper own props (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, seenInput); diff != "" {
		t.Fatalf("input mapper own props (-want +got):\n%s", diff)
	}
}

func TestCompose_MissingMetaAndInput(t *testing.T) {
	var gotMeta field.Meta
	var gotInput field.Input
	mapMeta := func(meta field.Meta, _ props.Props) props.Props {
		gotMeta = meta
		return props.Props{"isTouched": meta.Touched}
	}
	mapInput := func(input field.Input, _ props.Props) props.Props {
		gotInput = input
		return nil
	}

	_, got := render(t, compose.Compose(mapMeta, mapInput), props.Props{"ownProp": true})

	if gotMeta != (field.Meta{}) {
		t.Fatalf("expected zero meta, got %+v", gotMeta)
	}
	if gotInput.Name != "" || gotInput.OnChange != nil {
		t.Fatalf("expected zero input, got %+v", gotInput)
	}
	if got["isTouched"] != false {
		t.Fatalf("isTouched = %v", got["isTouched"])
	}
}

func TestCompose_ForwardsChildren(t *testing.T) {
	p := fieldProps()
	p[props.KeyChildren] = component.Text("<child>")

	rec, got := render(t, compose.Compose(mapMetaToProps, mapInputToProps), p)
	if !got.Has(props.KeyChildren) {
		t.Fatalf("children not forwarded")
	}

	out := testsupport.MustRender(t, compose.Compose(nil, nil)(rec.Component()), props.Props{
		props.KeyChildren: "<text>",
	})
	if out != "<field/>&lt;text&gt;" {
		t.Fatalf("unexpected markup %q", out)
	}
}

func TestCompose_MemoSkipsUnchangedRenders(t *testing.T) {
	rec := testsupport.NewRecorder("x")
	wrapped := compose.Compose(mapMetaToProps, mapInputToProps)(rec.Component())

	input := field.Input{Name: "title", OnChange: field.NewHandler(nil)}
	for i := 0; i < 3; i++ {
		out := testsupport.MustRender(t, wrapped, props.Props{
			"meta":  field.Meta{Touched: true},
			"input": input,
			"label": "Title",
		})
		if out != "x" {
			t.Fatalf("render %d: unexpected output %q", i, out)
		}
	}
	if rec.Count() != 1 {
		t.Fatalf("expected memoized renders, got %d", rec.Count())
	}

	testsupport.MustRender(t, wrapped, props.Props{
		"meta":  field.Meta{Touched: false},
		"input": input,
		"label": "Title",
	})
	if rec.Count() != 2 {
		t.Fatalf("expected re-render after meta change, got %d", rec.Count())
	}
}

func TestCompose_MemoSlotSharedAcrossFields(t *testing.T) {
	rec := testsupport.NewRecorder("x")
	wrapped := compose.Compose(nil, nil)(rec.Component())

	for _, name := range []string{"title", "summary", "title", "title"} {
		testsupport.MustRender(t, wrapped, props.Props{"name": name})
	}
	if rec.Count() != 3 {
		t.Fatalf("expected one slot keyed on the last props, got %d renders", rec.Count())
	}
}

func TestCompose_WithoutMemo(t *testing.T) {
	rec := testsupport.NewRecorder("x")
	wrapped := compose.Compose(nil, nil, compose.WithoutMemo())(rec.Component())

	for i := 0; i < 2; i++ {
		testsupport.MustRender(t, wrapped, props.Props{"label": "Title"})
	}
	if rec.Count() != 2 {
		t.Fatalf("expected every render to reach the target, got %d", rec.Count())
	}
}

func TestCompose_NilTarget(t *testing.T) {
	wrapped := compose.Compose(nil, nil)(nil)
	if _, err := component.Render(wrapped, nil); !errors.Is(err, compose.ErrNilTarget) {
		t.Fatalf("expected ErrNilTarget, got %v", err)
	}
}

func TestCompose_TargetErrorReturnedAsIs(t *testing.T) {
	boom := errors.New("boom")
	wrapped := compose.Compose(nil, nil)(func(*bytes.Buffer, props.Props) error { return boom })
	if _, err := component.Render(wrapped, nil); err != boom {
		t.Fatalf("expected target error unchanged, got %v", err)
	}
}

func TestCompose_MapperPanicPropagates(t *testing.T) {
	mapMeta := func(field.Meta, props.Props) props.Props { panic("mapper failed") }
	wrapped := compose.Compose(mapMeta, nil)(testsupport.NewRecorder("").Component())

	defer func() {
		if r := recover(); r != "mapper failed" {
			t.Fatalf("expected mapper panic to propagate, got %v", r)
		}
	}()
	_, _ = component.Render(wrapped, nil)
	t.Fatalf("expected panic")
}
