package field

import (
	"slices"

	"github.com/goliatone/go-formbind/pkg/props"
)

// Input carries the field value, its name and the handlers bound by the
// form-state library.
type Input struct {
	Name  string
	Value any

	OnChange    *Handler
	OnBlur      *Handler
	OnFocus     *Handler
	OnDragStart *Handler
	OnDrop      *Handler
}

// Input prop names as exposed by Props.
const (
	InputName        = "name"
	InputValue       = "value"
	InputOnChange    = "onChange"
	InputOnBlur      = "onBlur"
	InputOnFocus     = "onFocus"
	InputOnDragStart = "onDragStart"
	InputOnDrop      = "onDrop"
)

var inputKeys = []string{
	InputName,
	InputValue,
	InputOnChange,
	InputOnBlur,
	InputOnFocus,
	InputOnDragStart,
	InputOnDrop,
}

// InputKeys lists every key Input.Props can expose.
func InputKeys() []string {
	return slices.Clone(inputKeys)
}

// IsInputKey reports whether key is a known input prop name.
func IsInputKey(key string) bool {
	return slices.Contains(inputKeys, key)
}

// Props exposes the input keyed by prop name. Name and value are always
// present; handlers only when bound, so projecting an unbound handler yields
// an untyped nil.
func (in Input) Props() props.Props {
	out := props.Props{
		InputName:  in.Name,
		InputValue: in.Value,
	}
	setHandler(out, InputOnChange, in.OnChange)
	setHandler(out, InputOnBlur, in.OnBlur)
	setHandler(out, InputOnFocus, in.OnFocus)
	setHandler(out, InputOnDragStart, in.OnDragStart)
	setHandler(out, InputOnDrop, in.OnDrop)
	return out
}

// Handler returns the handler bound to the given event type.
func (in Input) Handler(event EventType) *Handler {
	switch event {
	case EventChange:
		return in.OnChange
	case EventBlur:
		return in.OnBlur
	case EventFocus:
		return in.OnFocus
	case EventDragStart:
		return in.OnDragStart
	case EventDrop:
		return in.OnDrop
	default:
		return nil
	}
}

// Dispatch calls the handler bound to event with value, filling in the field
// name. Unbound events are ignored.
func (in Input) Dispatch(event EventType, value any) error {
	return in.Handler(event).Call(Event{Type: event, Name: in.Name, Value: value})
}

func setHandler(out props.Props, key string, h *Handler) {
	if h != nil {
		out[key] = h
	}
}
