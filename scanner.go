// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

import (
	"io"

	"go4.org/mem"
)

// eof is the value of scanner.cur once the input is exhausted.
const eof = -1

// maxEmptyReads is the number of consecutive empty reads the scanner accepts
// from its reader before giving up with io.ErrNoProgress.
const maxEmptyReads = 100

// A scanner is a single-byte lookahead cursor over an input. When the input is
// an io.Reader, the scanner reads it through a fixed-size buffer that is
// refilled whenever the cursor reaches its end. When the input is already in
// memory, the whole input is the buffer and no refill occurs.
//
// The scanner can "capture" a run of input bytes: startCapture marks the
// position of the current byte, and endCapture returns the text from there up
// to (not including) the current byte. Bytes are copied only when the run is
// interrupted by a buffer refill or an explicit pause, so a run that fits in
// one buffer is copied exactly once.
type scanner struct {
	r    io.Reader // the input source, or nil if the input is all in buf
	raw  []byte    // storage for buf when reading from r
	rerr error     // an error from r to report at the next refill

	buf  mem.RO // the current window of input
	next int    // index in buf of the byte after cur
	base int    // absolute offset of buf[0]
	cur  int    // the current byte, or eof

	line   int // the current line number, 1-based
	lineAt int // the absolute offset of the first byte of the current line

	capStart int    // index in buf where the capture began, or -1
	capBuf   []byte // captured text preserved across breaks
}

func newMemScanner(input mem.RO) *scanner {
	return &scanner{buf: input, line: 1, capStart: -1}
}

func newReaderScanner(r io.Reader, bufSize int) *scanner {
	return &scanner{r: r, raw: make([]byte, bufSize), line: 1, capStart: -1}
}

// read advances the cursor to the next byte of input.
func (s *scanner) read() {
	if s.cur == eof {
		return
	}
	if s.cur == '\n' {
		s.line++
		s.lineAt = s.base + s.next
	}
	if s.next == s.buf.Len() {
		if s.capStart >= 0 {
			s.capBuf = mem.Append(s.capBuf, s.buf.SliceFrom(s.capStart))
			s.capStart = 0
		}
		s.base += s.buf.Len()
		s.buf, s.next = mem.RO{}, 0
		if !s.refill() {
			s.cur = eof
			return
		}
	}
	s.cur = int(s.buf.At(s.next))
	s.next++
}

// refill loads the next window of input into buf. It reports false at the
// end of the input, and panics with an ioError if the reader fails.
func (s *scanner) refill() bool {
	if s.r == nil {
		return false
	}
	if err := s.rerr; err != nil {
		s.rerr = nil
		return s.readFailed(err)
	}
	for range maxEmptyReads {
		n, err := s.r.Read(s.raw)
		if n > 0 {
			s.buf = mem.B(s.raw[:n])
			s.rerr = err
			return true
		} else if err != nil {
			return s.readFailed(err)
		}
	}
	panic(ioError{io.ErrNoProgress})
}

func (s *scanner) readFailed(err error) bool {
	if err != io.EOF {
		panic(ioError{err})
	}
	s.r = nil
	return false
}

// pos returns the index in buf of the current byte.
func (s *scanner) pos() int {
	if s.cur == eof {
		return s.buf.Len()
	}
	return s.next - 1
}

// offset returns the absolute offset of the current byte. At the end of
// input, this is the total length of the input.
func (s *scanner) offset() int { return s.base + s.pos() }

// startCapture begins capturing text at the current byte.
func (s *scanner) startCapture() { s.capStart = s.pos() }

// pauseCapture saves the text captured so far and suspends capturing.
// Text added to capBuf while paused becomes part of the captured result.
func (s *scanner) pauseCapture() {
	s.capBuf = mem.Append(s.capBuf, s.buf.Slice(s.capStart, s.pos()))
	s.capStart = -1
}

// endCapture returns the captured text preceding the current byte and resets
// the capture state.
func (s *scanner) endCapture() string {
	run := s.buf.Slice(s.capStart, s.pos())
	s.capStart = -1
	if len(s.capBuf) == 0 {
		return run.StringCopy()
	}
	s.capBuf = mem.Append(s.capBuf, run)
	text := string(s.capBuf)
	s.capBuf = s.capBuf[:0]
	return text
}

// syntaxError returns an error with msg at the current location.
func (s *scanner) syntaxError(msg string) *SyntaxError {
	off := s.offset()
	return &SyntaxError{
		Message: msg,
		Offset:  off,
		LineCol: LineCol{Line: s.line, Column: off - s.lineAt},
	}
}

// expected returns a syntax error reporting that what was expected at the
// current location. At the end of input the message does not mention what.
func (s *scanner) expected(what string) *SyntaxError {
	if s.cur == eof {
		return s.syntaxError("Unexpected end of input")
	}
	return s.syntaxError("Expected " + what)
}

// ioError marks a failure of the underlying reader, so it can be separated
// from syntax errors during recovery.
type ioError struct{ error }
