// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

import (
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fastjson/fastfloat"
	"go4.org/mem"
)

// A Number is a JSON number value. It records the number exactly as written,
// and converts it to a Go numeric type only on request. The zero Number is 0.
type Number struct{ text string }

// Int returns a Number with the value of z.
func Int(z int) Number { return Number{text: strconv.Itoa(z)} }

// Int64 returns a Number with the value of z.
func Int64(z int64) Number { return Number{text: strconv.FormatInt(z, 10)} }

// Uint64 returns a Number with the value of z.
func Uint64(z uint64) Number { return Number{text: strconv.FormatUint(z, 10)} }

// Float64 returns a Number with the value of f, in the shortest form that
// parses back to f. It panics if f is NaN or an infinity, which have no JSON
// representation.
func Float64(f float64) Number { return Number{text: formatFloat(f, 64)} }

// Float32 returns a Number with the value of f, in the shortest form that
// parses back to f as a float32. It panics if f is NaN or an infinity.
func Float32(f float32) Number { return Number{text: formatFloat(float64(f), 32)} }

// ParseNumber returns a Number for text, which must be exactly a JSON
// number with no surrounding space. A malformed number is reported as a
// [*SyntaxError].
func ParseNumber(text string) (_ Number, err error) {
	defer recoverParseError(&err)

	p := &parser{scanner: newMemScanner(mem.S(text))}
	p.read()
	n := p.readNumber()
	if p.cur != eof {
		panic(p.syntaxError("Unexpected character"))
	}
	return n, nil
}

// formatFloat renders f as a JSON number. Like encoding/json, it uses
// exponent notation only for very large and very small magnitudes.
func formatFloat(f float64, bits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("mjson: NaN and infinite values are not valid JSON numbers")
	}
	fmtc := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmtc = 'e'
		}
	}
	s := strconv.FormatFloat(f, fmtc, -1, bits)
	if fmtc == 'e' {
		// Trim a redundant exponent zero: 1e-07 becomes 1e-7.
		if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

// JSON satisfies the Value interface. The result is the text of the number
// exactly as it was parsed or constructed.
func (n Number) JSON() string { return n.Text() }

func (n Number) String() string { return n.Text() }

func (Number) isValue() {}

// Text returns the text of the number.
func (n Number) Text() string {
	if n.text == "" {
		return "0"
	}
	return n.text
}

// IsInt reports whether n is written as an integer, with no fraction or
// exponent.
func (n Number) IsInt() bool { return !strings.ContainsAny(n.text, ".eE") }

// Int64 returns the value of n as an int64. It reports ErrNotInteger if n has
// a fraction or exponent, and ErrOutOfRange if n does not fit in an int64.
func (n Number) Int64() (int64, error) {
	if !n.IsInt() {
		return 0, n.numError("int64", ErrNotInteger)
	}
	z, err := fastfloat.ParseInt64(n.Text())
	if err != nil {
		return 0, n.numError("int64", ErrOutOfRange)
	}
	return z, nil
}

// Int returns the value of n as an int, with the same constraints as Int64.
func (n Number) Int() (int, error) {
	z, err := n.Int64()
	if err != nil {
		return 0, n.retype(err, "int")
	} else if int64(int(z)) != z {
		return 0, n.numError("int", ErrOutOfRange)
	}
	return int(z), nil
}

// Int32 returns the value of n as an int32, with the same constraints as
// Int64.
func (n Number) Int32() (int32, error) {
	z, err := n.Int64()
	if err != nil {
		return 0, n.retype(err, "int32")
	} else if z < math.MinInt32 || z > math.MaxInt32 {
		return 0, n.numError("int32", ErrOutOfRange)
	}
	return int32(z), nil
}

// Float64 returns the value of n as a float64. It reports ErrOutOfRange if
// the magnitude of n is too large for a float64.
func (n Number) Float64() (float64, error) {
	f, err := fastfloat.Parse(n.Text())
	if err != nil || math.IsInf(f, 0) {
		return 0, n.numError("float64", ErrOutOfRange)
	}
	return f, nil
}

// Float32 returns the value of n as a float32. It reports ErrOutOfRange if
// the magnitude of n is too large for a float32.
func (n Number) Float32() (float32, error) {
	f, err := n.Float64()
	if err != nil || math.Abs(f) > math.MaxFloat32 {
		return 0, n.numError("float32", ErrOutOfRange)
	}
	return float32(f), nil
}

func (n Number) numError(typ string, err error) error {
	return &NumberError{Text: n.Text(), Type: typ, Err: err}
}

// retype changes the target type of a *NumberError from Int64.
func (n Number) retype(err error, typ string) error {
	if ne, ok := err.(*NumberError); ok {
		return n.numError(typ, ne.Err)
	}
	return err
}
