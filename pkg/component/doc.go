// Package component defines the render contract shared by presentation
// components and the wrappers in compose and registrar: a Component writes
// markup for a props map into a buffer. Children travel as the `children`
// prop and are rendered with RenderChildren.
//
// Pure adds the shallow-equality memo that lets a wrapped component skip work
// when its props are unchanged, and Registry keeps named components together
// with their asset dependencies.
package component
