package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	formbind "github.com/goliatone/go-formbind"
	"github.com/goliatone/go-formbind/internal/prompt"
	"github.com/goliatone/go-formbind/pkg/compose"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/formdef"
	"github.com/goliatone/go-formbind/pkg/formstate"
	"github.com/goliatone/go-formbind/pkg/openapi"
	"github.com/goliatone/go-formbind/pkg/presenters"
	"github.com/goliatone/go-formbind/pkg/render/template/gotemplate"
)

type options struct {
	definition  string
	openapi     string
	schema      string
	action      string
	values      string
	errors      string
	templates   string
	output      string
	interactive bool
	debug       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.definition, "definition", "", "form definition file (YAML or JSON)")
	flag.StringVar(&opts.openapi, "openapi", "", "OpenAPI document used instead of -definition")
	flag.StringVar(&opts.schema, "schema", "", "component schema to render with -openapi")
	flag.StringVar(&opts.action, "action", "", "form action when rendering from -openapi")
	flag.StringVar(&opts.values, "values", "", "YAML file with initial field values")
	flag.StringVar(&opts.errors, "errors", "", "YAML file with a server error payload to display")
	flag.StringVar(&opts.templates, "templates", "", "directory with templates overriding the built-in presenters")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.BoolVar(&opts.interactive, "interactive", false, "prompt for every field value before rendering")
	flag.BoolVar(&opts.debug, "debug", false, "enable development logging")
	flag.Parse()

	logger, err := newLogger(opts.debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	compose.SetLogger(logger)

	html, err := run(context.Background(), logger, opts)
	if err != nil {
		logger.Fatal("Failed to render form", zap.Error(err))
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(html), 0o644); err != nil {
			logger.Fatal("Failed to write output", zap.String("path", opts.output), zap.Error(err))
		}
		fmt.Printf("Form written to %s\n", opts.output)
		return
	}
	fmt.Println(html)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, logger *zap.Logger, opts options) (string, error) {
	def, err := loadDefinition(ctx, opts)
	if err != nil {
		return "", err
	}
	logger.Debug("definition loaded",
		zap.String("source", def.Source),
		zap.Strings("fields", def.Names()))

	current := map[string]any{}
	if opts.values != "" {
		fsys, name := dirFS(opts.values)
		if current, err = formdef.LoadValues(fsys, name); err != nil {
			return "", err
		}
	}
	values := def.Values(current)

	if opts.interactive {
		if values, err = prompt.Collect(ctx, prompt.NewSurveyDriver(), def, values); err != nil {
			return "", err
		}
	}

	state := formstate.NewSnapshot(def.Form.ID, values, func(ev field.Event) error {
		logger.Debug("field event", zap.String("type", string(ev.Type)), zap.String("field", ev.Name))
		return nil
	})

	var engineOpts []gotemplate.Option
	if opts.templates != "" {
		engineOpts = append(engineOpts, gotemplate.WithBaseDir(opts.templates))
	}
	engine, err := presenters.NewEngine(engineOpts...)
	if err != nil {
		return "", err
	}

	var payload map[string][]string
	if opts.errors != "" {
		fsys, name := dirFS(opts.errors)
		if payload, err = formdef.LoadErrors(fsys, name); err != nil {
			return "", err
		}
	}

	return formbind.Render(ctx, def, state,
		formbind.WithErrors(payload),
		formbind.WithTemplateRenderer(engine),
		formbind.WithRegistry(presenters.NewRegistry(engine, compose.WithLogger(logger))),
		formbind.WithLogger(logger),
	)
}

func loadDefinition(ctx context.Context, opts options) (formdef.Definition, error) {
	switch {
	case opts.openapi != "":
		if strings.TrimSpace(opts.schema) == "" {
			return formdef.Definition{}, errors.New("-schema is required with -openapi")
		}
		fsys, name := dirFS(opts.openapi)
		return openapi.Load(ctx, fsys, name, opts.schema, openapi.WithAction(opts.action))
	case opts.definition != "":
		fsys, name := dirFS(opts.definition)
		return formdef.Load(fsys, name)
	default:
		return formdef.Definition{}, errors.New("one of -definition or -openapi is required")
	}
}

func dirFS(path string) (fs.FS, string) {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return os.DirFS(dir), name
}
