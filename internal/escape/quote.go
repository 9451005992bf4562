// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape implements the string escaping used when writing JSON.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// controlEsc maps the control characters that have a short escape form.
// Other control characters are written as \u00xx.
var controlEsc = [...]byte{
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Append appends src to dst, escaped for inclusion in a JSON string, and
// returns the extended slice. The enclosing quotation marks are not added.
// Only the quotation mark, backslash, control characters, and the separators
// U+2028 and U+2029 are escaped; all other text is copied as-is.
func Append(dst []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		i := nextEscape(src)
		dst = mem.Append(dst, src.SliceTo(i))
		if i == src.Len() {
			break
		}
		if b := src.At(i); b < utf8.RuneSelf {
			if b < ' ' {
				if c := controlEsc[b]; c != 0 {
					dst = append(dst, '\\', c)
				} else {
					dst = append(dst, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
				}
			} else {
				dst = append(dst, '\\', b)
			}
			src = src.SliceFrom(i + 1)
			continue
		}

		// The only multi-byte sequences that stop the scan are the separators.
		r, n := mem.DecodeRune(src.SliceFrom(i))
		if r == '\u2028' {
			dst = append(dst, `\u2028`...)
		} else {
			dst = append(dst, `\u2029`...)
		}
		src = src.SliceFrom(i + n)
	}
	return dst
}

// nextEscape returns the index of the first byte of src that begins a
// character requiring an escape, or src.Len() if there is none.
func nextEscape(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		switch b := src.At(i); {
		case b < ' ', b == '"', b == '\\':
			return i
		case b == 0xe2 && i+2 < src.Len() && src.At(i+1) == 0x80:
			if c := src.At(i + 2); c == 0xa8 || c == 0xa9 {
				return i
			}
		}
	}
	return src.Len()
}
