package component_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/props"
)

func TestRenderChildren(t *testing.T) {
	bold := func(buf *bytes.Buffer, _ props.Props) error {
		buf.WriteString("<b>x</b>")
		return nil
	}

	cases := []struct {
		name     string
		children any
		want     string
	}{
		{name: "absent", want: ""},
		{name: "string escaped", children: "<i>", want: "&lt;i&gt;"},
		{name: "single component", children: component.Component(bold), want: "<b>x</b>"},
		{name: "list", children: component.Children{component.Text("a"), nil, component.Text("b")}, want: "ab"},
		{name: "slice of components", children: []component.Component{component.Text("c")}, want: "c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := props.Props{}
			if tc.children != nil {
				p[props.KeyChildren] = tc.children
			}
			var buf bytes.Buffer
			if err := component.RenderChildren(&buf, p); err != nil {
				t.Fatalf("render children: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Fatalf("children mismatch: want %q got %q", tc.want, got)
			}
		})
	}
}

func TestRenderChildren_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := component.RenderChildren(&buf, props.Props{props.KeyChildren: 42})
	if err == nil || !strings.Contains(err.Error(), "unsupported children type int") {
		t.Fatalf("expected unsupported type error, got %v", err)
	}
}

func TestRender_NilComponent(t *testing.T) {
	if _, err := component.Render(nil, nil); err == nil {
		t.Fatalf("expected error for nil component")
	}
}

func TestPure_SkipsShallowEqualRenders(t *testing.T) {
	calls := 0
	counted := component.Pure(func(buf *bytes.Buffer, p props.Props) error {
		calls++
		buf.WriteString(p.String("label"))
		return nil
	})

	options := []string{"a"}
	first := props.Props{"label": "Title", "options": options}

	if _, err := component.Render(counted, first); err != nil {
		t.Fatalf("render: %v", err)
	}
	for i := 0; i < 2; i++ {
		out, err := component.Render(counted, props.Props{"label": "Title", "options": options})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if out != "Title" {
			t.Fatalf("unexpected output %q", out)
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single render, got %d", calls)
	}

	first["label"] = "mutated after render"
	if _, err := component.Render(counted, props.Props{"label": "Title", "options": options}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if calls != 1 {
		t.Fatalf("memo must keep its own copy of props, got %d renders", calls)
	}

	out, err := component.Render(counted, props.Props{"label": "Other", "options": options})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Other" || calls != 2 {
		t.Fatalf("expected re-render on changed props, out=%q calls=%d", out, calls)
	}
}

func TestPure_DoesNotCacheErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := component.Pure(func(*bytes.Buffer, props.Props) error {
		calls++
		return boom
	})

	for i := 0; i < 2; i++ {
		if _, err := component.Render(failing, props.Props{"a": 1}); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("failed renders must not be cached, got %d calls", calls)
	}
}

func TestPure_FuncPropsAlwaysRerender(t *testing.T) {
	calls := 0
	counted := component.Pure(func(*bytes.Buffer, props.Props) error {
		calls++
		return nil
	})
	fn := func() {}
	for i := 0; i < 2; i++ {
		if _, err := component.Render(counted, props.Props{"fn": fn}); err != nil {
			t.Fatalf("render: %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("func props cannot be compared, expected 2 renders, got %d", calls)
	}
}

func TestPure_ConcurrentRenders(t *testing.T) {
	pure := component.Pure(func(buf *bytes.Buffer, p props.Props) error {
		buf.WriteString(p.String("label"))
		return nil
	})

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			label := "even"
			if i%2 == 1 {
				label = "odd"
			}
			out, err := component.Render(pure, props.Props{"label": label})
			if err != nil {
				errs <- err
				return
			}
			if out != label {
				errs <- errors.New("output " + out + " does not match " + label)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
