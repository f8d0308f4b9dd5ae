package formstate

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbind/pkg/field"
)

// ErrorMapping splits a server error payload into field-level and form-level
// messages. Field keys are the dotted field names known to the form.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors normalises payload keys (dotted paths, JSON pointers, or paths
// wrapped in body/request/payload/data segments) onto names. Keys that match
// no field are kept as form-level messages so nothing is lost. Payload keys
// are visited in sorted order, so messages keep a stable order.
func MapErrors(names []string, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			known[name] = struct{}{}
		}
	}

	for _, raw := range slices.Sorted(maps.Keys(payload)) {
		normalised := normalizeMessages(payload[raw])
		if len(normalised) == 0 {
			continue
		}
		mapped, formLevel := mapErrorPath(raw, known)
		if formLevel {
			mapping.Form = append(mapping.Form, normalised...)
			continue
		}
		mapping.Fields[mapped] = append(mapping.Fields[mapped], normalised...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// WithErrors decorates state so the named fields read as touched and
// invalid, with their messages joined into Meta.Error.
func WithErrors(state State, fields map[string][]string) State {
	if state == nil || len(fields) == 0 {
		return state
	}
	return StateFunc(func(name string) (field.Meta, field.Input, error) {
		meta, input, err := state.Field(name)
		if err != nil {
			return meta, input, err
		}
		if messages := normalizeMessages(fields[name]); len(messages) > 0 {
			meta.Touched = true
			meta.Invalid = true
			meta.Valid = false
			meta.Error = strings.Join(messages, "; ")
		}
		return meta, input, nil
	})
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mapErrorPath(raw string, known map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", true
	}
	segments := parsePathSegments(trimmed)
	if len(segments) == 0 {
		return "", true
	}

	best := ""
	for _, variant := range segmentVariants(segments) {
		if path := longestMatchingPath(variant, known); len(path) > len(best) {
			best = path
		}
	}
	if best == "" {
		return "", true
	}
	return best, false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for _, prefix := range []string{"#/", "$/", "$."} {
		clean = strings.TrimPrefix(clean, prefix)
	}
	clean = strings.TrimLeft(clean, "#/.$")
	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)
	clean = strings.Trim(clean, "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func segmentVariants(segments []string) [][]string {
	unwrapped := dropWrapperSegments(segments)
	return [][]string{
		segments,
		unwrapped,
		stripNumericSegments(segments),
		stripNumericSegments(unwrapped),
	}
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func longestMatchingPath(segments []string, known map[string]struct{}) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := known[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
