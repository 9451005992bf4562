// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

import (
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

const (
	// DefaultBufferSize is the size in bytes of the buffer used by ParseReader
	// when no other size is specified.
	DefaultBufferSize = 1024

	// DefaultMaxDepth is the default limit on the nesting of arrays and
	// objects in parsed input.
	DefaultMaxDepth = 1000
)

// ParseOptions are settings for parsing JSON input. A nil *ParseOptions is
// ready for use and provides default settings.
type ParseOptions struct {
	// The size in bytes of the input buffer used when reading from an
	// io.Reader. If zero, DefaultBufferSize is used.
	BufferSize int

	// The maximum nesting depth of arrays and objects. If zero,
	// DefaultMaxDepth is used.
	MaxDepth int
}

func (o *ParseOptions) bufferSize() int {
	if o == nil || o.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

func (o *ParseOptions) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Parse parses s as a single JSON value with default options.
// A syntax error has concrete type [*SyntaxError].
func Parse(s string) (Value, error) { return (*ParseOptions)(nil).Parse(s) }

// ParseBytes parses data as a single JSON value with default options.
func ParseBytes(data []byte) (Value, error) { return (*ParseOptions)(nil).ParseBytes(data) }

// ParseReader parses a single JSON value from r with default options.
// The input must contain nothing but whitespace after the value.
//
// A syntax error has concrete type [*SyntaxError]. If r reports an error
// other than io.EOF, that error is returned without modification.
func ParseReader(r io.Reader) (Value, error) { return (*ParseOptions)(nil).ParseReader(r) }

// Parse parses s as a single JSON value.
func (o *ParseOptions) Parse(s string) (Value, error) {
	return o.parse(newMemScanner(mem.S(s)))
}

// ParseBytes parses data as a single JSON value. The parser does not retain
// data after it returns.
func (o *ParseOptions) ParseBytes(data []byte) (Value, error) {
	return o.parse(newMemScanner(mem.B(data)))
}

// ParseReader parses a single JSON value from r, reading r through a buffer
// of the configured size.
func (o *ParseOptions) ParseReader(r io.Reader) (Value, error) {
	return o.parse(newReaderScanner(r, o.bufferSize()))
}

// A parser is a recursive-descent parser for JSON. Each production begins
// with its first byte as the current byte and consumes through its last byte.
// Errors are reported by panicking with a *SyntaxError or ioError, which are
// recovered at the entry point.
type parser struct {
	*scanner

	depth    int
	maxDepth int
}

func (o *ParseOptions) parse(s *scanner) (_ Value, err error) {
	defer recoverParseError(&err)

	p := &parser{scanner: s, maxDepth: o.maxDepth()}
	p.read()
	p.skipSpace()
	v := p.readValue()
	p.skipSpace()
	if p.cur != eof {
		panic(p.syntaxError("Unexpected character"))
	}
	return v, nil
}

func recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch err := perr.(type) {
		case *SyntaxError:
			*errp = err
		case ioError:
			*errp = err.error
		default:
			panic(perr)
		}
	}
}

func (p *parser) readValue() Value {
	switch p.cur {
	case 'n':
		p.readLiteral("null")
		return Null
	case 't':
		p.readLiteral("true")
		return True
	case 'f':
		p.readLiteral("false")
		return False
	case '"':
		return String(p.readString())
	case '[':
		return p.readArray()
	case '{':
		return p.readObject()
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.readNumber()
	}
	panic(p.expected("value"))
}

func (p *parser) readArray() *Array {
	p.enter()
	p.read()
	a := NewArray()
	p.skipSpace()
	if p.readByte(']') {
		p.depth--
		return a
	}
	for {
		p.skipSpace()
		a.s.values = append(a.s.values, p.readValue())
		p.skipSpace()
		if !p.readByte(',') {
			break
		}
	}
	if !p.readByte(']') {
		panic(p.expected("',' or ']'"))
	}
	p.depth--
	return a
}

func (p *parser) readObject() *Object {
	p.enter()
	p.read()
	o := NewObject()
	p.skipSpace()
	if p.readByte('}') {
		p.depth--
		return o
	}
	for {
		p.skipSpace()
		name := p.readName()
		p.skipSpace()
		if !p.readByte(':') {
			panic(p.expected("':'"))
		}
		p.skipSpace()
		o.s.members = append(o.s.members, Member{Name: name, Value: p.readValue()})
		p.skipSpace()
		if !p.readByte(',') {
			break
		}
	}
	if !p.readByte('}') {
		panic(p.expected("',' or '}'"))
	}
	p.depth--
	return o
}

// enter records the start of a nested array or object.
func (p *parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		panic(p.syntaxError("Nesting too deep"))
	}
}

func (p *parser) readName() string {
	if p.cur != '"' {
		panic(p.expected("name"))
	}
	return p.readString()
}

func (p *parser) readLiteral(word string) {
	p.read()
	for i := 1; i < len(word); i++ {
		if !p.readByte(word[i]) {
			panic(p.expected("'" + word[i:i+1] + "'"))
		}
	}
}

func (p *parser) readString() string {
	p.read()
	p.startCapture()
	for p.cur != '"' {
		if p.cur == '\\' {
			p.pauseCapture()
			p.readEscape()
			p.startCapture()
		} else if p.cur < 0x20 {
			panic(p.expected("valid string character")) // includes eof
		} else {
			p.read()
		}
	}
	text := p.endCapture()
	p.read()
	return text
}

// readEscape consumes an escape sequence beginning with the current "\".
// The decoded text is added to the capture buffer.
func (p *parser) readEscape() {
	p.read()
	if p.cur == 'u' {
		p.readUnicodeEscape()
	} else {
		p.readSimpleEscape()
	}
}

func (p *parser) readSimpleEscape() {
	switch p.cur {
	case '"', '/', '\\':
		p.capBuf = append(p.capBuf, byte(p.cur))
	case 'b':
		p.capBuf = append(p.capBuf, '\b')
	case 'f':
		p.capBuf = append(p.capBuf, '\f')
	case 'n':
		p.capBuf = append(p.capBuf, '\n')
	case 'r':
		p.capBuf = append(p.capBuf, '\r')
	case 't':
		p.capBuf = append(p.capBuf, '\t')
	default:
		panic(p.expected("valid escape sequence"))
	}
	p.read()
}

// readUnicodeEscape consumes a \uXXXX escape whose "u" is the current byte.
// A high surrogate escape immediately followed by a low surrogate escape is
// decoded as a pair; an unpaired surrogate decodes as utf8.RuneError.
func (p *parser) readUnicodeEscape() {
	r := p.readHex4()
	for utf16.IsSurrogate(r) && r < 0xdc00 && p.cur == '\\' {
		p.read()
		if p.cur != 'u' {
			p.capBuf = utf8.AppendRune(p.capBuf, utf8.RuneError)
			p.readSimpleEscape()
			return
		}
		lo := p.readHex4()
		if dec := utf16.DecodeRune(r, lo); dec != utf8.RuneError {
			p.capBuf = utf8.AppendRune(p.capBuf, dec)
			return
		}
		p.capBuf = utf8.AppendRune(p.capBuf, utf8.RuneError)
		r = lo
	}
	p.capBuf = utf8.AppendRune(p.capBuf, r) // lone surrogates encode as RuneError
}

// readHex4 consumes the current "u" and the four hexadecimal digits after it,
// and returns their value.
func (p *parser) readHex4() rune {
	var r rune
	for range 4 {
		p.read()
		d, ok := hexValue(p.cur)
		if !ok {
			panic(p.expected("hexadecimal digit"))
		}
		r = r<<4 | d
	}
	p.read()
	return r
}

func (p *parser) readNumber() Number {
	p.startCapture()
	p.readByte('-')
	first := p.cur
	if !p.readDigit() {
		panic(p.expected("digit"))
	}
	if first != '0' {
		for p.readDigit() {
		}
	}
	if p.readByte('.') {
		p.readDigits()
	}
	if p.readByte('e') || p.readByte('E') {
		if !p.readByte('+') {
			p.readByte('-')
		}
		p.readDigits()
	}
	return Number{text: p.endCapture()}
}

// readDigits consumes one or more decimal digits.
func (p *parser) readDigits() {
	if !p.readDigit() {
		panic(p.expected("digit"))
	}
	for p.readDigit() {
	}
}

func (p *parser) readByte(ch byte) bool {
	if p.cur != int(ch) {
		return false
	}
	p.read()
	return true
}

func (p *parser) readDigit() bool {
	if !isDigit(p.cur) {
		return false
	}
	p.read()
	return true
}

func (p *parser) skipSpace() {
	for isSpace(p.cur) {
		p.read()
	}
}

func isSpace(ch int) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch int) bool { return '0' <= ch && ch <= '9' }

func hexValue(ch int) (rune, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return rune(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return rune(ch - 'a' + 10), true
	case 'A' <= ch && ch <= 'F':
		return rune(ch - 'A' + 10), true
	}
	return 0, false
}
