// Package template defines the template seam used by presentation components
// and, in the gotemplate subpackage, a go-template engine that understands
// prop maps and field handlers.
package template
