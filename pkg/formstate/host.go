package formstate

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/props"
	"github.com/goliatone/go-formbind/pkg/registrar"
)

var (
	// ErrMissingComponent is returned when the host props carry no component.
	ErrMissingComponent = errors.New("formstate: component prop is required")
	// ErrMissingName is returned when the host props carry no field name.
	ErrMissingName = errors.New("formstate: name prop is required")
)

// HostOption configures Host.
type HostOption func(*hostConfig)

type hostConfig struct {
	logger *zap.Logger
}

// WithLogger logs failed state lookups at warn level.
func WithLogger(l *zap.Logger) HostOption {
	return func(cfg *hostConfig) {
		cfg.logger = l
	}
}

// Host returns the component registered fields render into. It reads the
// `component` and `name` props, looks the field up in state and renders the
// component with the remaining props plus `meta` and `input`.
func Host(state State, opts ...HostOption) component.Component {
	cfg := hostConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return func(buf *bytes.Buffer, p props.Props) error {
		target, ok := p[registrar.KeyComponent].(component.Component)
		if !ok || target == nil {
			return ErrMissingComponent
		}
		name := strings.TrimSpace(p.String(field.InputName))
		if name == "" {
			return ErrMissingName
		}
		if state == nil {
			return fmt.Errorf("formstate: field %q: state is nil", name)
		}

		meta, input, err := state.Field(name)
		if err != nil {
			cfg.logger.Warn("formstate: field lookup failed",
				zap.String("field", name),
				zap.Error(err))
			return fmt.Errorf("formstate: field %q: %w", name, err)
		}

		return target(buf, props.Merge(
			props.Omit(p, registrar.KeyComponent),
			props.Props{
				props.KeyMeta:  meta,
				props.KeyInput: input,
			},
		))
	}
}
