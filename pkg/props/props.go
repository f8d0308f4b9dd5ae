package props

import (
	"slices"
)

// Reserved prop names. The composer strips these before computing own props;
// callers declare everything else explicitly.
const (
	KeyMeta     = "meta"
	KeyInput    = "input"
	KeyChildren = "children"
)

var reserved = []string{KeyMeta, KeyInput, KeyChildren}

// Props is the prop set handed to a component on a single render.
type Props map[string]any

// Reserved returns the prop names that never count as own props.
func Reserved() []string {
	return slices.Clone(reserved)
}

// IsReserved reports whether key is one of the reserved prop names.
func IsReserved(key string) bool {
	return slices.Contains(reserved, key)
}

// Get returns the value stored under key.
func (p Props) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	value, ok := p[key]
	return value, ok
}

// Has reports whether key is present, even when its value is nil.
func (p Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// String returns the value under key when it holds a string.
func (p Props) String(key string) string {
	if value, ok := p.Get(key); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

// Bool returns the value under key when it holds a bool.
func (p Props) Bool(key string) bool {
	if value, ok := p.Get(key); ok {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	return false
}

// Clone returns a shallow copy. Values are shared, never copied.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Keys returns the prop names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Merge overlays sources in order into a new Props. Later sources win on key
// collisions; nil sources are skipped. The result is never nil.
func Merge(sources ...Props) Props {
	size := 0
	for _, src := range sources {
		size += len(src)
	}
	out := make(Props, size)
	for _, src := range sources {
		for key, value := range src {
			out[key] = value
		}
	}
	return out
}

// Omit returns a copy of p without the named keys.
func Omit(p Props, keys ...string) Props {
	out := make(Props, len(p))
	for key, value := range p {
		if slices.Contains(keys, key) {
			continue
		}
		out[key] = value
	}
	return out
}

// Pick returns a new Props holding exactly the named keys. A key missing
// from p is still present in the result with a nil value. Repeated keys are
// harmless.
func Pick(p Props, keys ...string) Props {
	out := make(Props, len(keys))
	for _, key := range keys {
		out[key] = p[key]
	}
	return out
}
