// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

import (
	"fmt"
	"iter"
	"slices"
)

// An Array is an ordered sequence of values. Elements may be of any kind, and
// need not be distinct.
//
// An Array is either mutable, or a read-only view of another array (see
// View). A view shares storage with the array it was made from, so changes to
// that array are visible through the view, but the methods of a view that
// would modify it report ErrReadOnly instead.
//
// An Array is not safe for concurrent use by multiple goroutines while any
// of them modifies it.
type Array struct {
	s        *arrayStore
	readOnly bool
}

// arrayStore is the storage shared by an array and its views.
type arrayStore struct {
	values []Value
}

// NewArray constructs a mutable array containing the specified values.
// A nil value is stored as Null.
func NewArray(vs ...Value) *Array {
	a := &Array{s: new(arrayStore)}
	if len(vs) != 0 {
		a.s.values = make([]Value, 0, len(vs))
		a.add(vs)
	}
	return a
}

// ArrayOf constructs a mutable array from Go values, converted by ToValue.
func ArrayOf[T any](vs ...T) *Array {
	a := NewArray()
	for _, v := range vs {
		a.s.values = append(a.s.values, ToValue(v))
	}
	return a
}

func (a *Array) store() *arrayStore {
	if a.s == nil {
		a.s = new(arrayStore)
	}
	return a.s
}

// Kind satisfies the Value interface.
func (*Array) Kind() Kind { return KindArray }

// JSON satisfies the Value interface.
func (a *Array) JSON() string { return string(Marshal(a)) }

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", a.Len()) }

func (*Array) isValue() {}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.store().values) }

// At returns the element of a at index i. It panics if i is out of range.
func (a *Array) At(i int) Value { return a.store().values[i] }

// All returns an iterator over the indexes and elements of a, in order.
func (a *Array) All() iter.Seq2[int, Value] { return slices.All(a.store().values) }

// ReadOnly reports whether a is a read-only view.
func (a *Array) ReadOnly() bool { return a.readOnly }

// View returns a read-only view of a. The view shares storage with a, so
// subsequent changes to a are visible through the view.
func (a *Array) View() *Array { return &Array{s: a.store(), readOnly: true} }

// Add appends the specified values to the end of a. A nil value is stored as
// Null. Add reports ErrCycle, and adds nothing, if any of vs is or contains a
// or a view of a.
func (a *Array) Add(vs ...Value) error {
	if a.readOnly {
		return ErrReadOnly
	}
	s := a.store()
	for _, v := range vs {
		if refersTo(v, s) {
			return ErrCycle
		}
	}
	a.add(vs)
	return nil
}

func (a *Array) add(vs []Value) {
	s := a.store()
	for _, v := range vs {
		s.values = append(s.values, nullIfNil(v))
	}
}

// Set replaces the element of a at index i with v.
func (a *Array) Set(i int, v Value) error {
	if a.readOnly {
		return ErrReadOnly
	}
	s := a.store()
	if i < 0 || i >= len(s.values) {
		return fmt.Errorf("index %d out of range (n=%d)", i, len(s.values))
	} else if refersTo(v, s) {
		return ErrCycle
	}
	s.values[i] = nullIfNil(v)
	return nil
}

// Remove removes the element of a at index i, shifting later elements down.
func (a *Array) Remove(i int) error {
	if a.readOnly {
		return ErrReadOnly
	}
	s := a.store()
	if i < 0 || i >= len(s.values) {
		return fmt.Errorf("index %d out of range (n=%d)", i, len(s.values))
	}
	s.values = slices.Delete(s.values, i, i+1)
	return nil
}

// refersTo reports whether v is or contains an array or object whose storage
// is s.
func refersTo(v Value, s any) bool {
	switch t := v.(type) {
	case *Array:
		if t.s == nil {
			return false
		} else if any(t.s) == s {
			return true
		}
		for _, elt := range t.s.values {
			if refersTo(elt, s) {
				return true
			}
		}
	case *Object:
		if t.s == nil {
			return false
		} else if any(t.s) == s {
			return true
		}
		for _, m := range t.s.members {
			if refersTo(m.Value, s) {
				return true
			}
		}
	}
	return false
}

func nullIfNil(v Value) Value {
	if v == nil {
		return Null
	}
	return v
}
