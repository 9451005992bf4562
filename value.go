// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

import (
	"fmt"
	"math"
)

// Kind identifies the variant of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindNull   Kind = iota + 1 // null
	KindTrue                   // true
	KindFalse                  // false
	KindNumber                 // number
	KindString                 // string
	KindArray                  // array
	KindObject                 // object
)

var kindStr = [...]string{
	0:          "invalid",
	KindNull:   "null",
	KindTrue:   "true",
	KindFalse:  "false",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// IsBool reports whether k is KindTrue or KindFalse.
func (k Kind) IsBool() bool { return k == KindTrue || k == KindFalse }

// A Value is a JSON value. The concrete type of a Value is one of Literal,
// Number, String, *Array, or *Object; no other implementations exist.
type Value interface {
	// Kind reports the variant of the value.
	Kind() Kind

	// JSON renders the value as minimal JSON text.
	JSON() string

	isValue()
}

// A Literal is one of the constant values null, true, and false. Converting
// any other byte to a Literal does not produce a valid value.
type Literal byte

// The literal constants. Each is a single shared value, so these may be
// compared with ==.
const (
	Null  = Literal(KindNull)
	True  = Literal(KindTrue)
	False = Literal(KindFalse)
)

// Bool returns True if b is true, otherwise False.
func Bool(b bool) Literal {
	if b {
		return True
	}
	return False
}

// Kind satisfies the Value interface. It panics if c is not one of Null,
// True, or False.
func (c Literal) Kind() Kind { return c.check() }

// JSON satisfies the Value interface. It panics if c is not one of Null,
// True, or False.
func (c Literal) JSON() string { return c.check().String() }

func (c Literal) check() Kind {
	if c != Null && c != True && c != False {
		panic(fmt.Sprintf("invalid literal value %d", byte(c)))
	}
	return Kind(c)
}

func (c Literal) String() string { return c.JSON() }

func (Literal) isValue() {}

// A String is a JSON string value. The contents are stored without escapes;
// escaping is applied when the string is written.
type String string

// StringOf returns a String with the contents of *s, or Null if s == nil.
func StringOf(s *string) Value {
	if s == nil {
		return Null
	}
	return String(*s)
}

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

// JSON satisfies the Value interface.
func (s String) JSON() string { return Quote(string(s)) }

func (String) isValue() {}

// ToValue converts a Go value into a JSON Value. The input must be nil, a
// bool, a string or *string, an integer, a float, a Value, or a []Value.
// A nil input or a nil *string becomes Null. ToValue panics if v does not
// have one of these types, or is a float NaN or infinity.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case *string:
		return StringOf(t)
	case int:
		return Int(t)
	case int8:
		return Int64(int64(t))
	case int16:
		return Int64(int64(t))
	case int32:
		return Int64(int64(t))
	case int64:
		return Int64(t)
	case uint:
		return Uint64(uint64(t))
	case uint8:
		return Uint64(uint64(t))
	case uint16:
		return Uint64(uint64(t))
	case uint32:
		return Uint64(uint64(t))
	case uint64:
		return Uint64(t)
	case float32:
		return Float32(t)
	case float64:
		return Float64(t)
	case []Value:
		return NewArray(t...)
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}

// IsNull reports whether v is nil or Null.
func IsNull(v Value) bool { return v == nil || v == Null }

// AsBool returns the Boolean value of v, which must be True or False.
func AsBool(v Value) (bool, error) {
	switch v {
	case True:
		return true, nil
	case False:
		return false, nil
	}
	return false, typeError(v, "boolean")
}

// AsString returns the contents of v, which must be a String.
func AsString(v Value) (string, error) {
	if s, ok := v.(String); ok {
		return string(s), nil
	}
	return "", typeError(v, "string")
}

// AsNumber returns v as a Number.
func AsNumber(v Value) (Number, error) {
	if n, ok := v.(Number); ok {
		return n, nil
	}
	return Number{}, typeError(v, "number")
}

// AsArray returns v as an *Array.
func AsArray(v Value) (*Array, error) {
	if a, ok := v.(*Array); ok {
		return a, nil
	}
	return nil, typeError(v, "array")
}

// AsObject returns v as an *Object.
func AsObject(v Value) (*Object, error) {
	if o, ok := v.(*Object); ok {
		return o, nil
	}
	return nil, typeError(v, "object")
}

// AsInt returns the value of v, which must be a Number representing an
// integer in the range of int.
func AsInt(v Value) (int, error) {
	n, err := AsNumber(v)
	if err != nil {
		return 0, err
	}
	return n.Int()
}

// AsInt64 returns the value of v, which must be a Number representing an
// integer in the range of int64.
func AsInt64(v Value) (int64, error) {
	n, err := AsNumber(v)
	if err != nil {
		return 0, err
	}
	return n.Int64()
}

// AsFloat64 returns the value of v, which must be a Number.
func AsFloat64(v Value) (float64, error) {
	n, err := AsNumber(v)
	if err != nil {
		return math.NaN(), err
	}
	return n.Float64()
}

func typeError(v Value, want string) error {
	var k Kind
	if v != nil {
		k = v.Kind()
	}
	return &TypeError{Kind: k, Want: want}
}
