package props

import "reflect"

// ShallowEqual reports whether a and b hold the same keys and every value is
// the same according to Same. Nil and empty Props are equal.
func ShallowEqual(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for key, left := range a {
		right, ok := b[key]
		if !ok {
			return false
		}
		if !Same(left, right) {
			return false
		}
	}
	return true
}

// Same compares two prop values the way a shallow render check does.
// Comparable values use ==, maps and slices compare by identity (backing
// pointer and length) and funcs are never the same.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return safeEqual(a, b)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		return false
	}
}

// safeEqual guards against structs or arrays whose interface fields hold
// values that cannot be compared at runtime.
func safeEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
