// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

// Equal reports whether a and b are structurally equal. Values of different
// kinds are never equal. Numbers are equal if they are written the same way,
// so 1 and 1.0 are not equal. Arrays and objects are equal if their elements
// or members are equal in order; object members must also agree by name.
//
// A nil Value is equal only to nil.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch at := a.(type) {
	case Literal, String:
		return a == b
	case Number:
		bt, ok := b.(Number)
		return ok && at.Text() == bt.Text()
	case *Array:
		bt, ok := b.(*Array)
		if !ok {
			return false
		} else if at.s == bt.s {
			return true
		}
		if at.Len() != bt.Len() {
			return false
		}
		for i, v := range at.All() {
			if !Equal(v, bt.At(i)) {
				return false
			}
		}
		return true
	case *Object:
		bt, ok := b.(*Object)
		if !ok {
			return false
		} else if at.s == bt.s {
			return true
		}
		if at.Len() != bt.Len() {
			return false
		}
		for i, m := range at.store().members {
			n := bt.At(i)
			if m.Name != n.Name || !Equal(m.Value, n.Value) {
				return false
			}
		}
		return true
	}
	return false
}
