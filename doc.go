// Package formbind binds presentation components to form state.
//
// A field is built in two steps. Compose wraps a presentation component so
// that the meta and input records supplied by form state are projected into
// the props it understands:
//
//	wrap := formbind.Compose(presenters.MapMeta, formbind.MapInputKeys("name", "value", "onChange"))
//	title := wrap(presenters.Text(engine))
//
// Field then registers the composed component with the form-state host,
// which looks the field up by name and renders it with `meta` and `input`:
//
//	registered := formbind.Field(formstate.Host(state), formbind.Props{"label": "Title"})(title)
//	registered(&buf, formbind.Props{"name": "title"})
//
// Render does both for every field of a formdef.Definition and wraps the
// result in a form element.
package formbind
