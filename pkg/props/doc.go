// Package props defines the prop map handed to components on every render and
// the helpers the composer relies on: ordered merging (later sources win),
// key projection, reserved-name stripping and the shallow equality check used
// to skip re-renders.
//
// Reserved names (`meta`, `input`, `children`) belong to the form-state
// wiring and never count as own props.
package props
