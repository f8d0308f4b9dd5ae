package gotemplate

import (
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	gotpl "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/props"
	"github.com/goliatone/go-formbind/pkg/render/template"
)

// Option configures the underlying go-template engine.
type Option = gotpl.Option

// WithBaseDir loads templates from a directory on disk. Files found there
// take precedence over the ones supplied through WithFS, which lets callers
// override individual presenter templates.
func WithBaseDir(dir string) Option {
	return gotpl.WithBaseDir(strings.TrimSpace(dir))
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return gotpl.WithFS(files)
}

// WithGlobalData seeds global context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return gotpl.WithGlobalData(viewMap(data))
}

// Engine is a go-template engine that accepts prop maps. View data is
// normalised by a pre hook before the engine converts it to a pongo2
// context.
type Engine struct {
	*gotpl.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine using the provided options.
func New(options ...Option) (*Engine, error) {
	renderer, err := gotpl.NewRenderer(options...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: %w", err)
	}
	renderer.RegisterPreHook(normaliseData)
	return &Engine{Engine: renderer}, nil
}

func normaliseData(ctx *gotpl.HookContext) error {
	switch data := ctx.Data.(type) {
	case nil:
		ctx.Data = map[string]any{}
	case props.Props:
		ctx.Data = viewMap(data)
	case map[string]any:
		ctx.Data = viewMap(data)
	}
	return nil
}

func viewMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		key = strings.TrimSpace(key)
		if key == "" || isFunc(value) {
			continue
		}
		out[key] = viewValue(value)
	}
	return out
}

// viewValue turns handlers into a bound flag, since templates can only tell
// whether an event is wired. Functions cannot cross the engine's JSON
// conversion and are dropped.
func viewValue(value any) any {
	switch v := value.(type) {
	case *field.Handler:
		return v != nil
	case props.Props:
		return viewMap(v)
	case map[string]any:
		return viewMap(v)
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			if isFunc(item) {
				continue
			}
			out = append(out, viewValue(item))
		}
		return out
	default:
		return value
	}
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
