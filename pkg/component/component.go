package component

import (
	"bytes"
	"fmt"
	"html"

	"github.com/goliatone/go-formbind/pkg/props"
)

// Component renders markup for the supplied props into buf. Components are
// pure functions of their props: the same props must produce the same
// output, and props must not be mutated.
type Component func(buf *bytes.Buffer, p props.Props) error

// Children is an ordered list of child components stored under the
// `children` prop.
type Children []Component

// Render runs c against a fresh buffer and returns the markup.
func Render(c Component, p props.Props) (string, error) {
	if c == nil {
		return "", fmt.Errorf("component: component is nil")
	}
	var buf bytes.Buffer
	if err := c(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Text returns a component that writes s escaped, ignoring its props.
func Text(s string) Component {
	return func(buf *bytes.Buffer, _ props.Props) error {
		buf.WriteString(html.EscapeString(s))
		return nil
	}
}

// RenderChildren writes the `children` prop of p. Children may be a single
// Component, Children, a string (escaped) or absent.
func RenderChildren(buf *bytes.Buffer, p props.Props) error {
	value, ok := p.Get(props.KeyChildren)
	if !ok || value == nil {
		return nil
	}

	switch children := value.(type) {
	case Component:
		return renderChild(buf, children)
	case func(*bytes.Buffer, props.Props) error:
		return renderChild(buf, children)
	case Children:
		for _, child := range children {
			if err := renderChild(buf, child); err != nil {
				return err
			}
		}
		return nil
	case []Component:
		return RenderChildren(buf, props.Props{props.KeyChildren: Children(children)})
	case string:
		buf.WriteString(html.EscapeString(children))
		return nil
	default:
		return fmt.Errorf("component: unsupported children type %T", value)
	}
}

func renderChild(buf *bytes.Buffer, child Component) error {
	if child == nil {
		return nil
	}
	return child(buf, nil)
}
