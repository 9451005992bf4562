// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

import (
	"fmt"
	"io"

	"github.com/creachadair/mjson/internal/escape"
	"github.com/valyala/bytebufferpool"

	"go4.org/mem"
)

// A Writer renders values to an io.Writer as minimal JSON, with no
// whitespace between tokens.
type Writer struct {
	w   io.Writer
	buf []byte // scratch space for escaped strings
}

// NewWriter constructs a Writer that delivers output to w.
// The Writer does not buffer; each token is written to w as it is produced.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// WriteValue writes the JSON text of v. A nil v is written as null.
// WriteValue panics if v contains a Literal other than Null, True, or False.
// If the underlying writer fails, WriteValue stops and returns its error
// without modification.
func (w *Writer) WriteValue(v Value) error {
	switch t := v.(type) {
	case nil:
		return w.writeString("null")
	case Literal:
		return w.writeString(t.JSON())
	case Number:
		return w.writeString(t.Text())
	case String:
		return w.writeQuoted(string(t))
	case *Array:
		return w.writeArray(t)
	case *Object:
		return w.writeObject(t)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (w *Writer) writeArray(a *Array) error {
	if err := w.writeString("["); err != nil {
		return err
	}
	for i, elt := range a.All() {
		if i > 0 {
			if err := w.writeString(","); err != nil {
				return err
			}
		}
		if err := w.WriteValue(elt); err != nil {
			return err
		}
	}
	return w.writeString("]")
}

func (w *Writer) writeObject(o *Object) error {
	if err := w.writeString("{"); err != nil {
		return err
	}
	for i, m := range o.store().members {
		if i > 0 {
			if err := w.writeString(","); err != nil {
				return err
			}
		}
		if err := w.writeQuoted(m.Name); err != nil {
			return err
		}
		if err := w.writeString(":"); err != nil {
			return err
		}
		if err := w.WriteValue(m.Value); err != nil {
			return err
		}
	}
	return w.writeString("}")
}

func (w *Writer) writeQuoted(s string) error {
	w.buf = append(w.buf[:0], '"')
	w.buf = escape.Append(w.buf, mem.S(s))
	w.buf = append(w.buf, '"')
	_, err := w.w.Write(w.buf)
	return err
}

func (w *Writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// Marshal returns the minimal JSON text of v.
func Marshal(v Value) []byte {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	// Writes to a ByteBuffer do not fail.
	NewWriter(bb).WriteValue(v)
	return append([]byte(nil), bb.B...)
}
