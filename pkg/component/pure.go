package component

import (
	"bytes"
	"sync"

	"github.com/goliatone/go-formbind/pkg/props"
)

// Pure wraps c with a shallow-equality memo. When a render receives props
// shallowly equal to those of the previous successful render, the cached
// markup is written and c is not called. Failed renders are never cached.
func Pure(c Component) Component {
	if c == nil {
		return nil
	}
	m := &memo{render: c}
	return m.Render
}

type memo struct {
	render Component

	mu     sync.Mutex
	primed bool
	last   props.Props
	output []byte
}

func (m *memo) Render(buf *bytes.Buffer, p props.Props) error {
	m.mu.Lock()
	if m.primed && props.ShallowEqual(m.last, p) {
		out := m.output
		m.mu.Unlock()
		buf.Write(out)
		return nil
	}
	m.mu.Unlock()

	var scratch bytes.Buffer
	if err := m.render(&scratch, p); err != nil {
		return err
	}
	out := scratch.Bytes()

	m.mu.Lock()
	m.primed = true
	m.last = p.Clone()
	m.output = out
	m.mu.Unlock()

	buf.Write(out)
	return nil
}
