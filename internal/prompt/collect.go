package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formbind/pkg/formdef"
	"github.com/goliatone/go-formbind/pkg/presenters"
	"github.com/goliatone/go-formbind/pkg/props"
)

// Collect asks for a value for every field of def, in declaration order.
// current seeds the prompt defaults; the returned map holds one entry per
// field. The prompt kind follows the field component: checkbox asks a
// confirmation, select offers its options, textarea opens a multi-line
// editor and anything else reads a line.
func Collect(ctx context.Context, driver Driver, def formdef.Definition, current map[string]any) (map[string]any, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}
	out := make(map[string]any, len(def.Fields))
	for _, f := range def.Fields {
		value, err := ask(ctx, driver, f, current[f.Name])
		if err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", f.Name, err)
		}
		out[f.Name] = value
	}
	return out, nil
}

func ask(ctx context.Context, driver Driver, f formdef.Field, current any) (any, error) {
	config := f.Config()
	message := config.String("label")
	help := config.String("help")

	switch f.Component {
	case presenters.NameCheckbox:
		return driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Help:    help,
			Default: current == true,
		})
	case presenters.NameSelect:
		options := presenters.Options(config["options"])
		if len(options) == 0 {
			return nil, errors.New("select has no options")
		}
		labels := make([]string, len(options))
		selected := 0
		for idx, option := range options {
			labels[idx] = option.Label
			if option.Value == asString(current) {
				selected = idx
			}
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      message,
			Help:         help,
			Options:      labels,
			DefaultIndex: selected,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(options) {
			return nil, fmt.Errorf("selection %d out of range", idx)
		}
		return options[idx].Value, nil
	case presenters.NameTextarea:
		return driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Help:    help,
			Default: asString(current),
		})
	default:
		return driver.Input(ctx, InputConfig{
			Message:   message,
			Help:      help,
			Default:   asString(current),
			Validator: required(config),
		})
	}
}

func required(config props.Props) func(string) error {
	if !config.Bool("required") {
		return nil
	}
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New("a value is required")
		}
		return nil
	}
}

func asString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
