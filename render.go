package formbind

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbind/pkg/component"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/formdef"
	"github.com/goliatone/go-formbind/pkg/formstate"
	"github.com/goliatone/go-formbind/pkg/presenters"
	"github.com/goliatone/go-formbind/pkg/props"
	"github.com/goliatone/go-formbind/pkg/registrar"
	"github.com/goliatone/go-formbind/pkg/render/template"
)

// RenderOption configures Render and Register.
type RenderOption func(*renderConfig)

type renderConfig struct {
	templates template.TemplateRenderer
	registry  *component.Registry
	logger    *zap.Logger
	errors    map[string][]string
}

// WithTemplateRenderer sets the engine rendering the form element and, when
// no registry is supplied, the built-in presenters.
func WithTemplateRenderer(r template.TemplateRenderer) RenderOption {
	return func(cfg *renderConfig) {
		cfg.templates = r
	}
}

// WithRegistry sets the registry field components are resolved from.
func WithRegistry(r *component.Registry) RenderOption {
	return func(cfg *renderConfig) {
		cfg.registry = r
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(l *zap.Logger) RenderOption {
	return func(cfg *renderConfig) {
		cfg.logger = l
	}
}

// WithErrors supplies a server error payload. Messages whose keys match a
// field mark it touched and invalid; the rest are listed on the form.
func WithErrors(payload map[string][]string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.errors = payload
	}
}

// Registered is a field component bound to the form-state host.
type Registered struct {
	Name      string
	Component Component
}

// Render renders def as a form element. Every field is registered with the
// host over state and rendered with its name as the only caller prop.
func Render(ctx context.Context, def formdef.Definition, state formstate.State, opts ...RenderOption) (string, error) {
	cfg, err := newRenderConfig(opts...)
	if err != nil {
		return "", err
	}

	mapped := formstate.MapErrors(def.Names(), cfg.errors)
	fields, err := register(def, formstate.WithErrors(state, mapped.Fields), cfg)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := f.Component(&body, props.Props{field.InputName: f.Name}); err != nil {
			return "", fmt.Errorf("formbind: render field %q: %w", f.Name, err)
		}
	}

	cfg.logger.Debug("formbind: rendered form",
		zap.String("form", def.Form.ID),
		zap.Int("fields", len(fields)),
		zap.Int("form_errors", len(mapped.Form)))

	return cfg.templates.RenderTemplate(presenters.FormTemplate, map[string]any{
		"id":     def.Form.ID,
		"action": def.Form.Action,
		"method": def.Form.Method,
		"errors": mapped.Form,
		"body":   body.String(),
	})
}

// Register resolves every field of def from the registry and binds it to the
// host over state, in declaration order.
func Register(def formdef.Definition, state formstate.State, opts ...RenderOption) ([]Registered, error) {
	cfg, err := newRenderConfig(opts...)
	if err != nil {
		return nil, err
	}
	return register(def, state, cfg)
}

func register(def formdef.Definition, state formstate.State, cfg renderConfig) ([]Registered, error) {
	host := formstate.Host(state, formstate.WithLogger(cfg.logger))
	out := make([]Registered, 0, len(def.Fields))
	for _, f := range def.Fields {
		c, err := cfg.registry.Component(f.Component)
		if err != nil {
			return nil, fmt.Errorf("formbind: field %q: %w", f.Name, err)
		}
		out = append(out, Registered{
			Name:      f.Name,
			Component: registrar.Field(host, f.Config())(c),
		})
	}
	return out, nil
}

func newRenderConfig(opts ...RenderOption) (renderConfig, error) {
	var cfg renderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.templates == nil {
		engine, err := presenters.NewEngine()
		if err != nil {
			return renderConfig{}, fmt.Errorf("formbind: template engine: %w", err)
		}
		cfg.templates = engine
	}
	if cfg.registry == nil {
		cfg.registry = presenters.NewRegistry(cfg.templates)
	}
	return cfg, nil
}
