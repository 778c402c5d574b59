// Copyright 2025 The Try Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render produces diagnostic text for arbitrary values.
//
// Rendering is total: it never panics, even when a value's own String or
// Error method does. It runs inside failure reporting, which must not
// itself fail.
package render

import (
	"fmt"
	"io"
	"reflect"
)

// Value renders v as one line of a failure report.
//
// A value with a textual capability renders as `"<text>" (<type>)`; one
// without renders as `[Can't print] (<type>)`; an untyped nil renders as
// `"nullptr" (nullptr_t)`. The type name comes from reflection and is
// best-effort, not stable across builds.
func Value(v any) string {
	if v == nil {
		return `"nullptr" (nullptr_t)`
	}
	name := reflect.TypeOf(v).String()
	text, ok := selfText(v)
	if !ok {
		return fmt.Sprintf("[Can't print] (%s)", name)
	}
	return fmt.Sprintf("\"%s\" (%s)", text, name)
}

// Args writes one Value line per argument to w, then a terminating blank
// line. Zero arguments produce just the blank line.
func Args(w io.Writer, args []any) {
	for _, a := range args {
		fmt.Fprintln(w, Value(a))
	}
	fmt.Fprintln(w)
}

// selfText probes v for a textual capability and returns its text.
//
// error and fmt.Stringer implementations describe themselves; values of
// scalar kinds have literal forms; pointers render as addresses. Anything
// else has no textual form of its own.
func selfText(v any) (string, bool) {
	switch x := v.(type) {
	case error:
		return probe(x.Error)
	case fmt.Stringer:
		return probe(x.String)
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprint(v), true
	case reflect.Pointer, reflect.UnsafePointer:
		return fmt.Sprintf("%p", v), true
	}
	return "", false
}

// probe calls fn, absorbing a panic (e.g. a String method on a nil
// receiver).
func probe(fn func() string) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	return fn(), true
}
