package formstate

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/goliatone/go-formbind/pkg/field"
)

// ErrUnknownField is returned by Snapshot for names it does not hold.
var ErrUnknownField = errors.New("formstate: unknown field")

// State is the contract a form-state library satisfies to back registered
// fields: given a field name it reports the current meta and input.
type State interface {
	Field(name string) (field.Meta, field.Input, error)
}

// StateFunc adapts a function to State.
type StateFunc func(name string) (field.Meta, field.Input, error)

// Field implements State.
func (f StateFunc) Field(name string) (field.Meta, field.Input, error) {
	return f(name)
}

// Entry is the recorded state of one field.
type Entry struct {
	Meta  field.Meta
	Input field.Input
}

// Snapshot is a fixed, read-only view of form state. It does not track
// interaction; it exists to feed hosts from precomputed values.
type Snapshot struct {
	entries map[string]Entry
}

// NewSnapshot builds pristine, valid entries for values. Every input gets an
// OnChange handler forwarding the event to onChange when it is not nil.
func NewSnapshot(form string, values map[string]any, onChange func(field.Event) error) *Snapshot {
	entries := make(map[string]Entry, len(values))
	for name, value := range values {
		input := field.Input{Name: name, Value: value}
		if onChange != nil {
			input.OnChange = field.NewHandler(onChange)
		}
		entries[name] = Entry{
			Meta: field.Meta{
				Form:     form,
				Initial:  value,
				Pristine: true,
				Valid:    true,
			},
			Input: input,
		}
	}
	return &Snapshot{entries: entries}
}

// SnapshotOf wraps explicit entries. The map is copied.
func SnapshotOf(entries map[string]Entry) *Snapshot {
	return &Snapshot{entries: maps.Clone(entries)}
}

// Field implements State.
func (s *Snapshot) Field(name string) (field.Meta, field.Input, error) {
	if s == nil {
		return field.Meta{}, field.Input{}, fmt.Errorf("%w %q", ErrUnknownField, name)
	}
	entry, ok := s.entries[name]
	if !ok {
		return field.Meta{}, field.Input{}, fmt.Errorf("%w %q", ErrUnknownField, name)
	}
	if entry.Input.Name == "" {
		entry.Input.Name = name
	}
	return entry.Meta, entry.Input, nil
}

// Names returns the field names in sorted order.
func (s *Snapshot) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.entries))
}
