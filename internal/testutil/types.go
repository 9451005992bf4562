// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/mjson"
	"github.com/google/go-cmp/cmp"
)

// EqualValues is a cmp option that compares JSON values with mjson.Equal.
var EqualValues = cmp.Comparer(mjson.Equal)

// Document returns a JSON document of at least n bytes. The document is an
// array of objects that exercises every value kind, nesting, escapes, and
// numbers in several forms.
func Document(n int) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i := 0; sb.Len() < n; i++ {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `  {"id": %d, "name": "item \"%d\"\ttab\\", "ratio": %d.%02de-%d,`, i, i, i%10, i%100, i%4)
		fmt.Fprintf(&sb, ` "tags": ["aé", "\u2028", null, true, false, -%d],`, i*7)
		fmt.Fprintf(&sb, ` "nested": {"deep": [[{"k": [%d, {}, []]}]], "empty": ""}}`, i)
	}
	sb.WriteString("\n]\n")
	return sb.String()
}

// ChunkReader returns a reader that delivers s at most n bytes at a time.
func ChunkReader(s string, n int) io.Reader {
	return &chunkReader{s: s, n: n}
}

type chunkReader struct {
	s string
	n int
}

func (c *chunkReader) Read(data []byte) (int, error) {
	if c.s == "" {
		return 0, io.EOF
	}
	nr := copy(data[:min(len(data), c.n)], c.s)
	c.s = c.s[nr:]
	return nr, nil
}
