// Package mapping builds the mapper functions handed to compose.Compose.
//
// InputKeys is the common case: it projects named keys of a field's input
// into presentation props, keeping handler identity.
//
//	wrap := compose.Compose(
//	    func(meta field.Meta, _ props.Props) props.Props {
//	        return props.Props{"isTouched": meta.Touched}
//	    },
//	    mapping.InputKeys("onChange", "value"),
//	)
//
// ChainInput and ChainMeta combine several mappers, and Rename moves keys
// when the presentation component uses different prop names.
package mapping
