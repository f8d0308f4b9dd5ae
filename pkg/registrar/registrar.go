package registrar

import (
	"bytes"
	"errors"

	"github.com/goliatone/go-formbind/pkg/compose"
	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/props"
)

// KeyComponent is the prop carrying the presentation component handed to the
// form-state host.
const KeyComponent = "component"

// ErrNilHost is returned when a registered field has no host to render.
var ErrNilHost = errors.New("registrar: field host is nil")

// Field returns a wrapper registering presentation components with a
// form-state host. The produced component renders host with the wrapped
// component under `component`, overlaid by config, overlaid by the caller
// props. Nothing else is added.
//
// config is copied when Field is called.
func Field(host component.Component, config props.Props) compose.Wrapper {
	defaults := config.Clone()
	return func(c component.Component) component.Component {
		if host == nil {
			return func(*bytes.Buffer, props.Props) error {
				return ErrNilHost
			}
		}
		// Not memoized: the host reads form state at render time, so equal
		// caller props can still produce different markup.
		return func(buf *bytes.Buffer, p props.Props) error {
			return host(buf, Props(c, defaults, p))
		}
	}
}

// Props computes the prop set a registered field hands to its host.
func Props(c component.Component, config, caller props.Props) props.Props {
	return props.Merge(props.Props{KeyComponent: c}, config, caller)
}
