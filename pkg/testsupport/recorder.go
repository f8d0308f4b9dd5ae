package testsupport

import (
	"bytes"
	"sync"
	"testing"

	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/props"
)

// Recorder captures the props a component receives, standing in for a
// presentation component in tests.
type Recorder struct {
	mu      sync.Mutex
	renders []props.Props
	output  string
}

// NewRecorder returns a recorder whose component writes output on every
// render.
func NewRecorder(output string) *Recorder {
	return &Recorder{output: output}
}

// Component returns the recording component.
func (r *Recorder) Component() component.Component {
	return func(buf *bytes.Buffer, p props.Props) error {
		r.mu.Lock()
		r.renders = append(r.renders, p.Clone())
		r.mu.Unlock()
		buf.WriteString(r.output)
		return component.RenderChildren(buf, p)
	}
}

// Count returns how many times the component rendered.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.renders)
}

// Last returns the props of the most recent render, failing the test when
// the component never rendered.
func (r *Recorder) Last(t testing.TB) props.Props {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.renders) == 0 {
		t.Fatalf("testsupport: component was never rendered")
	}
	return r.renders[len(r.renders)-1]
}

// MustRender renders c with p and returns the markup, failing the test on
// error.
func MustRender(t testing.TB, c component.Component, p props.Props) string {
	t.Helper()
	out, err := component.Render(c, p)
	if err != nil {
		t.Fatalf("testsupport: render: %v", err)
	}
	return out
}
