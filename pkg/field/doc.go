// Package field models the per-render state a form-state library hands to a
// bound component: Meta (status flags such as touched, dirty, valid) and
// Input (name, value and event handlers). Both expose a Props view keyed by
// lower-camel names so mappers can project them into presentation props.
//
// Handlers are pointers. Projecting `onChange` from an Input yields the very
// same *Handler, which keeps identity checks and shallow re-render checks
// meaningful.
package field
