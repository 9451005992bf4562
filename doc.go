// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package mjson implements a minimal JSON parser and writer over an in-memory
// tree of values.
//
// # Values
//
// A Value is one of the following concrete types:
//
//	JSON type     | Go type   | Notes
//	------------- | --------- | ------------------------------------------
//	null, boolean | Literal   | the constants Null, True, False
//	number        | Number    | keeps the number exactly as written
//	string        | String    | contents without escapes
//	array         | *Array    | ordered, mutable
//	object        | *Object   | ordered members, duplicate names allowed
//
// The Kind method reports which of these a value is, and the JSON method
// renders it as minimal JSON text. Use the As* functions to convert a Value
// to a Go type with a check of its kind:
//
//	n, err := mjson.AsInt(v)
//
// # Parsing
//
// Parse, ParseBytes, and ParseReader parse exactly one JSON value, which may
// be surrounded by whitespace:
//
//	v, err := mjson.ParseReader(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Invalid input is reported as a *SyntaxError giving the byte offset, line,
// and column of the problem. An error from the reader is returned as-is.
// Use a ParseOptions value to change the input buffer size or the maximum
// nesting depth.
//
// # Writing
//
// A Writer renders values to an io.Writer with no insignificant whitespace:
//
//	if err := mjson.NewWriter(os.Stdout).WriteValue(v); err != nil {
//	   log.Fatalf("Write failed: %v", err)
//	}
//
// Numbers are written as they were parsed or constructed, so "1.50" stays
// "1.50". Strings escape only the quotation mark, backslash, control
// characters, and U+2028 and U+2029.
package mjson
