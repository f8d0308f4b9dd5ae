package field

// EventType names the input event a handler is bound to.
type EventType string

const (
	EventChange    EventType = "change"
	EventBlur      EventType = "blur"
	EventFocus     EventType = "focus"
	EventDragStart EventType = "dragstart"
	EventDrop      EventType = "drop"
)

// Event is the payload passed to input handlers.
type Event struct {
	Type  EventType
	Name  string
	Value any
}

// Handler wraps an event callback. Handlers are always used through pointers
// so that two props holding the same handler compare equal and projected
// handlers keep their identity.
type Handler struct {
	fn func(Event) error
}

// NewHandler returns a handler invoking fn. A nil fn yields a handler whose
// Call is a no-op.
func NewHandler(fn func(Event) error) *Handler {
	return &Handler{fn: fn}
}

// ValueHandler adapts a callback that only cares about the event value.
func ValueHandler(fn func(value any)) *Handler {
	return NewHandler(func(ev Event) error {
		if fn != nil {
			fn(ev.Value)
		}
		return nil
	})
}

// Call invokes the handler. Calling a nil handler does nothing.
func (h *Handler) Call(ev Event) error {
	if h == nil || h.fn == nil {
		return nil
	}
	return h.fn(ev)
}
