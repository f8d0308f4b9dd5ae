// Package presenters ships template-backed presentation components (text,
// textarea, checkbox, select) and the mappers that bind them to form-state
// meta and input. Markup comes from embedded pongo2 templates; the `help`
// prop may carry limited HTML and is sanitised with bluemonday's UGC policy,
// every other value is escaped by the engine.
package presenters
