// Package formstate describes the boundary to the form-state library that
// backs registered fields. State is the lookup contract; Host is the
// component a registrar.Field renders into, turning the `component` and
// `name` props into a render of the component with `meta` and `input`.
//
// Snapshot is a read-only State built from precomputed values. It is not a
// form-state library: it never changes in response to events.
package formstate
