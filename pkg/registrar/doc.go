// Package registrar binds presentation components to a form-state host with
// static default configuration.
//
//	text := registrar.Field(formstate.Host(state), props.Props{"label": "Title"})(
//	    compose.Compose(mapMeta, mapping.InputKeys("value", "onChange"))(presenters.Text(engine)),
//	)
//	html, err := component.Render(text, props.Props{"name": "title"})
//
// The host receives `component`, then the static config, then the caller
// props, later values winning. The registrar synthesises nothing else.
package registrar
