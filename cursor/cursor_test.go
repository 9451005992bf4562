// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/mjson"
	"github.com/creachadair/mjson/cursor"
	"github.com/creachadair/mjson/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  },
  "y": "again"
}`

func mustParse(t *testing.T, s string) mjson.Value {
	t.Helper()
	v, err := mjson.Parse(s)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return v
}

func TestCursor(t *testing.T) {
	v := mustParse(t, testJSON)
	root := v.(*mjson.Object)
	list := root.Get("list").(*mjson.Array)
	xyz := root.Get("xyz").(*mjson.Object)

	tests := []struct {
		name string
		path []any
		want mjson.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"BadElement", []any{true}, v, true},

		{"ArrayPos", []any{"list", 1}, list.At(1), false},
		{"ArrayNeg", []any{"list", -1}, list.At(1), false},
		{"ArrayRange", []any{"o", 25}, root.Get("o"), true},
		{"ObjPath", []any{"xyz", "d"}, mjson.True, false},
		{"ObjIndex", []any{"xyz", -1}, mjson.False, false},
		{"DeepPath", []any{"list", 0, "x"}, mjson.Int(1), false},
		{"FirstDuplicate", []any{"y", "hello"}, mjson.String("there"), false},
		{"NotObject", []any{"o", "x"}, root.Get("o"), true},

		{"FuncArray", []any{"o", testPathFunc}, mjson.Int(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, mjson.Int(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, xyz.Get("d"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Fatalf("Down %+v: got %v, want error", tc.path, c.Value())
			}
			got := c.Value()
			if diff := cmp.Diff(tc.want, got, testutil.EqualValues); diff != "" {
				t.Errorf("Down %+v: wrong result (-want, +got):\n%s", tc.path, diff)
			}
		})
	}
}

func TestNavigation(t *testing.T) {
	v := mustParse(t, `{"a": [10, {"b": null}]}`)
	c := cursor.New(v)
	if !c.AtOrigin() {
		t.Error("New cursor is not at its origin")
	}

	c.Down("a", 1, "b")
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	if got := c.Value(); got != mjson.Null {
		t.Errorf("Value: got %v, want null", got)
	}
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path: got %d values, want 4", got)
	}

	if got := c.Up().Up().Value().JSON(); got != `[10,{"b":null}]` {
		t.Errorf("Up twice: got %s", got)
	}
	if got, err := cursor.Path[mjson.Number](c.Value(), 0); err != nil || got.Text() != "10" {
		t.Errorf("Path: got (%v, %v), want 10", got, err)
	}

	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down: got nil error, want error")
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: origin=%v err=%v, want origin, no error", c.AtOrigin(), c.Err())
	}
	if c.Origin() != v {
		t.Error("Origin does not match")
	}
}

func TestPathType(t *testing.T) {
	v := mustParse(t, `{"s": "x", "n": 5}`)
	if got, err := cursor.Path[mjson.String](v, "s"); err != nil || got != "x" {
		t.Errorf(`Path[String] "s": got (%q, %v), want x`, got, err)
	}
	if _, err := cursor.Path[mjson.String](v, "n"); err == nil {
		t.Error(`Path[String] "n": got nil error, want wrong type`)
	}
	if _, err := cursor.Path[*mjson.Object](v, "missing"); err == nil {
		t.Error(`Path "missing": got nil error, want not found`)
	}
}

func testPathFunc(v mjson.Value) (mjson.Value, error) {
	switch t := v.(type) {
	case *mjson.Array:
		return mjson.Int(t.Len()), nil
	case *mjson.Object:
		return mjson.Int(t.Len()), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
