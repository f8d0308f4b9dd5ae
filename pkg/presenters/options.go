package presenters

import (
	"fmt"
	"strings"
)

// Option is a single choice rendered by Select.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Options normalises the `options` prop. It accepts []Option, []string and
// the []any shapes produced by YAML or JSON decoding (scalars or maps with
// value/label keys). Labels default to the value.
func Options(raw any) []Option {
	switch v := raw.(type) {
	case nil:
		return nil
	case []Option:
		out := make([]Option, 0, len(v))
		for _, opt := range v {
			out = append(out, withLabel(opt))
		}
		return out
	case []string:
		out := make([]Option, 0, len(v))
		for _, value := range v {
			out = append(out, withLabel(Option{Value: value}))
		}
		return out
	case []any:
		out := make([]Option, 0, len(v))
		for _, item := range v {
			if opt, ok := optionFrom(item); ok {
				out = append(out, opt)
			}
		}
		return out
	default:
		return nil
	}
}

func optionFrom(item any) (Option, bool) {
	switch v := item.(type) {
	case nil:
		return Option{}, false
	case Option:
		return withLabel(v), true
	case map[string]any:
		opt := Option{
			Value: scalar(v["value"]),
			Label: scalar(v["label"]),
		}
		if opt.Value == "" && opt.Label == "" {
			return Option{}, false
		}
		return withLabel(opt), true
	default:
		return withLabel(Option{Value: scalar(v)}), true
	}
}

func withLabel(opt Option) Option {
	if strings.TrimSpace(opt.Label) == "" {
		opt.Label = opt.Value
	}
	return opt
}

func scalar(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func optionData(raw any, selected string) []map[string]any {
	opts := Options(raw)
	if len(opts) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(opts))
	for _, opt := range opts {
		out = append(out, map[string]any{
			"value":    opt.Value,
			"label":    opt.Label,
			"selected": opt.Value == selected,
		})
	}
	return out
}
