// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a tree of JSON values.
package cursor

import (
	"fmt"

	"github.com/creachadair/mjson"
)

// Path traverses a sequential path into the structure of v, with path
// elements as documented for the Cursor.Down method, and returns the value
// reached as a T.
func Path[T mjson.Value](v mjson.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var zero T
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("wrong value type %T", c.Value())
	}
	return out, nil
}

// A Cursor is a pointer that navigates into the structure of an mjson.Value.
type Cursor struct {
	org mjson.Value
	stk []mjson.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin mjson.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() mjson.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() mjson.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the sequence of values from the origin to the current location
// of c, inclusive.
func (c *Cursor) Path() []mjson.Value {
	return append([]mjson.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value. If the path cannot be completely consumed, traversal stops
// at the last value reached and an error is recorded; use Err to recover it.
//
// A string path element selects the value of the first member of an object
// with that name.
//
// An integer path element selects an element of an array, or the value of a
// member of an object, by position. Negative indices count backward from the
// end (-1 is last).
//
// A function path element must have the signature
//
//	func(mjson.Value) (mjson.Value, error)
//
// Its result becomes the next value in the path. If it reports an error,
// traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(*mjson.Object)
			if !ok {
				return c.setErrorf("cannot traverse %v with %q", kindOf(cur), t)
			}
			v := o.Get(t)
			if v == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(v)

		case int:
			switch e := cur.(type) {
			case *mjson.Array:
				i, ok := fixArrayBound(e.Len(), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", t, e.Len())
				}
				cur = c.push(e.At(i))
			case *mjson.Object:
				i, ok := fixArrayBound(e.Len(), t)
				if !ok {
					return c.setErrorf("object index %d out of bounds (n=%d)", t, e.Len())
				}
				cur = c.push(e.At(i).Value)
			default:
				return c.setErrorf("cannot traverse %v with %d", kindOf(cur), t)
			}

		case func(mjson.Value) (mjson.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v mjson.Value) mjson.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func kindOf(v mjson.Value) mjson.Kind {
	if v == nil {
		return 0
	}
	return v.Kind()
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
