package compose

import (
	"bytes"
	"errors"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/props"
)

// ErrNilTarget is returned when a composed component wraps a nil target.
var ErrNilTarget = errors.New("compose: target component is nil")

// MetaMapper derives presentation props from a field's meta state. Mappers
// run on every render and must be cheap and free of side effects.
type MetaMapper func(meta field.Meta, own props.Props) props.Props

// InputMapper derives presentation props from a field's input.
type InputMapper func(input field.Input, own props.Props) props.Props

// Wrapper turns a presentation component into a form-bound one.
type Wrapper func(target component.Component) component.Component

// Option configures Compose.
type Option func(*config)

type config struct {
	logger *zap.Logger
	memo   bool
}

// WithLogger logs every render of the composed component at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithoutMemo disables the shallow-equality memo on the merged props.
func WithoutMemo() Option {
	return func(cfg *config) {
		cfg.memo = false
	}
}

// Compose returns a wrapper mapping the `meta` and `input` props of a
// form-bound component into props for target. Either mapper may be nil, in
// which case it contributes nothing.
//
// On each render the incoming props are split into children, meta, input
// and own props. The target then receives the mapped meta props, overlaid
// by the mapped input props, overlaid by the own props, with children
// forwarded unchanged. Mapper panics are not recovered.
//
// Each component returned by the wrapper owns a single memo slot holding the
// last merged props. Rendering that one value for several fields, as a
// registry does, makes alternating fields miss the memo; wrap the target once
// per field when skipped renders across fields matter.
func Compose(mapMeta MetaMapper, mapInput InputMapper, opts ...Option) Wrapper {
	cfg := config{memo: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return func(target component.Component) component.Component {
		if target == nil {
			return func(*bytes.Buffer, props.Props) error {
				return ErrNilTarget
			}
		}

		render := target
		if cfg.memo {
			render = component.Pure(target)
		}

		return func(buf *bytes.Buffer, p props.Props) error {
			merged := MergeProps(p, mapMeta, mapInput)
			log := cfg.logger
			if log == nil {
				log = Logger()
			}
			if ce := log.Check(zap.DebugLevel, "compose: render"); ce != nil {
				ce.Write(zap.Int("props", len(merged)), zap.Strings("keys", merged.Keys()))
			}
			return render(buf, merged)
		}
	}
}

// MergeProps computes the props a composed component hands to its target for
// the incoming props p.
func MergeProps(p props.Props, mapMeta MetaMapper, mapInput InputMapper) props.Props {
	wrapped := field.Split(p)

	var metaProps, inputProps props.Props
	if mapMeta != nil {
		metaProps = mapMeta(wrapped.Meta, wrapped.Own)
	}
	if mapInput != nil {
		inputProps = mapInput(wrapped.Input, wrapped.Own)
	}

	merged := props.Merge(metaProps, inputProps, wrapped.Own)
	if wrapped.HasChildren {
		merged[props.KeyChildren] = wrapped.Children
	}
	return merged
}
