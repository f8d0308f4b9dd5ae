package field

import "github.com/goliatone/go-formbind/pkg/props"

// Meta carries the status flags a form-state library reports for a field on
// every render. The struct is treated as immutable once handed to a render.
type Meta struct {
	Active          bool
	Autofilled      bool
	AsyncValidating bool
	Dirty           bool
	Invalid         bool
	Pristine        bool
	Submitting      bool
	SubmitFailed    bool
	Touched         bool
	Valid           bool
	Visited         bool

	Form    string
	Initial any
	Error   any
	Warning any
}

// Meta prop names as exposed by Props.
const (
	MetaActive          = "active"
	MetaAutofilled      = "autofilled"
	MetaAsyncValidating = "asyncValidating"
	MetaDirty           = "dirty"
	MetaInvalid         = "invalid"
	MetaPristine        = "pristine"
	MetaSubmitting      = "submitting"
	MetaSubmitFailed    = "submitFailed"
	MetaTouched         = "touched"
	MetaValid           = "valid"
	MetaVisited         = "visited"
	MetaForm            = "form"
	MetaInitial         = "initial"
	MetaError           = "error"
	MetaWarning         = "warning"
)

// Props exposes the meta state keyed by lower-camel flag names. Initial, Error
// and Warning are only present when set.
func (m Meta) Props() props.Props {
	out := props.Props{
		MetaActive:          m.Active,
		MetaAutofilled:      m.Autofilled,
		MetaAsyncValidating: m.AsyncValidating,
		MetaDirty:           m.Dirty,
		MetaInvalid:         m.Invalid,
		MetaPristine:        m.Pristine,
		MetaSubmitting:      m.Submitting,
		MetaSubmitFailed:    m.SubmitFailed,
		MetaTouched:         m.Touched,
		MetaValid:           m.Valid,
		MetaVisited:         m.Visited,
		MetaForm:            m.Form,
	}
	if m.Initial != nil {
		out[MetaInitial] = m.Initial
	}
	if m.Error != nil {
		out[MetaError] = m.Error
	}
	if m.Warning != nil {
		out[MetaWarning] = m.Warning
	}
	return out
}
