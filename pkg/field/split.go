package field

import "github.com/goliatone/go-formbind/pkg/props"

// Wrapped is an incoming prop set separated into its form-state parts.
type Wrapped struct {
	Meta        Meta
	Input       Input
	Children    any
	HasChildren bool
	Own         props.Props
}

// Split separates the reserved meta, input and children props from the own
// props. Own always holds every other key and never a reserved one. Meta and
// input accept values or pointers; anything else reads as the zero value.
func Split(p props.Props) Wrapped {
	wrapped := Wrapped{
		Meta:  MetaFrom(p[props.KeyMeta]),
		Input: InputFrom(p[props.KeyInput]),
		Own:   props.Omit(p, props.Reserved()...),
	}
	wrapped.Children, wrapped.HasChildren = p.Get(props.KeyChildren)
	return wrapped
}

// MetaFrom reads a Meta stored as a prop value.
func MetaFrom(value any) Meta {
	switch v := value.(type) {
	case Meta:
		return v
	case *Meta:
		if v != nil {
			return *v
		}
	}
	return Meta{}
}

// InputFrom reads an Input stored as a prop value.
func InputFrom(value any) Input {
	switch v := value.(type) {
	case Input:
		return v
	case *Input:
		if v != nil {
			return *v
		}
	}
	return Input{}
}
