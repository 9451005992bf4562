// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

import (
	"github.com/creachadair/mjson/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = escape.Append(buf, mem.S(src))
	return string(append(buf, '"'))
}

// Unquote decodes a JSON string value, including its double quotation
// marks, and returns its contents with escape sequences replaced. The text
// must be exactly one string with no surrounding space; otherwise Unquote
// reports a [*SyntaxError].
func Unquote(text string) (_ string, err error) {
	defer recoverParseError(&err)

	p := &parser{scanner: newMemScanner(mem.S(text))}
	p.read()
	if p.cur != '"' {
		panic(p.expected("string"))
	}
	s := p.readString()
	if p.cur != eof {
		panic(p.syntaxError("Unexpected character"))
	}
	return s, nil
}
