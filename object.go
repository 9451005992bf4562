// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

import (
	"fmt"
	"iter"
	"slices"
)

// A Member is a single name-value pair belonging to an Object.
type Member struct {
	Name  string
	Value Value
}

// Field constructs an object member with the given name and value.
// The value is converted by ToValue.
func Field(name string, value any) Member {
	return Member{Name: name, Value: ToValue(value)}
}

// An Object is an ordered sequence of members. Members keep the order in
// which they were added, and names need not be unique. Methods that look up a
// member by name use the first member with that name.
//
// Like an Array, an Object is either mutable or a read-only view of another
// object, and is not safe for concurrent modification.
type Object struct {
	s        *objectStore
	readOnly bool
}

// objectStore is the storage shared by an object and its views.
type objectStore struct {
	members []Member
}

// NewObject constructs a mutable object containing the specified members.
// A nil member value is stored as Null.
func NewObject(ms ...Member) *Object {
	o := &Object{s: new(objectStore)}
	for _, m := range ms {
		o.s.members = append(o.s.members, Member{Name: m.Name, Value: nullIfNil(m.Value)})
	}
	return o
}

func (o *Object) store() *objectStore {
	if o.s == nil {
		o.s = new(objectStore)
	}
	return o.s
}

// Kind satisfies the Value interface.
func (*Object) Kind() Kind { return KindObject }

// JSON satisfies the Value interface.
func (o *Object) JSON() string { return string(Marshal(o)) }

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", o.Len()) }

func (*Object) isValue() {}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.store().members) }

// At returns the member of o at index i. It panics if i is out of range.
func (o *Object) At(i int) Member { return o.store().members[i] }

// All returns an iterator over the names and values of the members of o, in
// order. A name occurs once for each member that has it.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, m := range o.store().members {
			if !yield(m.Name, m.Value) {
				return
			}
		}
	}
}

// Names returns the names of the members of o, in order, including
// duplicates.
func (o *Object) Names() []string {
	ms := o.store().members
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}
	return names
}

// Index returns the index of the first member of o with the given name, or -1.
func (o *Object) Index(name string) int {
	return slices.IndexFunc(o.store().members, func(m Member) bool { return m.Name == name })
}

// Get returns the value of the first member of o with the given name, or nil
// if there is no such member.
func (o *Object) Get(name string) Value {
	if i := o.Index(name); i >= 0 {
		return o.s.members[i].Value
	}
	return nil
}

// ReadOnly reports whether o is a read-only view.
func (o *Object) ReadOnly() bool { return o.readOnly }

// View returns a read-only view of o. The view shares storage with o, so
// subsequent changes to o are visible through the view.
func (o *Object) View() *Object { return &Object{s: o.store(), readOnly: true} }

// Add appends a member with the given name and value to o, even if o
// already has a member with that name. Add reports ErrCycle if v is or
// contains o or a view of o.
func (o *Object) Add(name string, v Value) error {
	if o.readOnly {
		return ErrReadOnly
	}
	s := o.store()
	if refersTo(v, s) {
		return ErrCycle
	}
	s.members = append(s.members, Member{Name: name, Value: nullIfNil(v)})
	return nil
}

// Set replaces the value of the first member of o with the given name.
// If o has no such member, Set appends one. Like Add, Set reports ErrCycle if
// v is or contains o.
func (o *Object) Set(name string, v Value) error {
	if o.readOnly {
		return ErrReadOnly
	} else if refersTo(v, o.store()) {
		return ErrCycle
	}
	if i := o.Index(name); i >= 0 {
		o.s.members[i].Value = nullIfNil(v)
		return nil
	}
	return o.Add(name, v)
}

// Remove removes the first member of o with the given name, if any.
func (o *Object) Remove(name string) error {
	if o.readOnly {
		return ErrReadOnly
	}
	if i := o.Index(name); i >= 0 {
		o.s.members = slices.Delete(o.s.members, i, i+1)
	}
	return nil
}
