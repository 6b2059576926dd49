// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package expect unwraps fallible values or panics with a message that points
at the line of the caller.

It replaces the "check, then panic with context" boilerplate in code where a
failure is a bug and not something to handle:

	port := expect.Value(strconv.Atoi(os.Getenv("PORT")))
	tmpl := expect.Of(template.ParseFS(fsys, "*.html")).Getf("parsing templates from %v", fsys)
	home := expect.OK(os.LookupEnv("HOME"))

On failure, the panic value is a [*Failure] whose message looks like this:

	main.go:12 expected value to not be error: strconv.Atoi: parsing "": invalid syntax

or, when a format was given:

	main.go:13 parsing templates from ...

Before panicking, the failure is passed to the current [Reporter], which by
default writes it to standard error.
*/
package expect

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsent is the cause of a failed comma-ok lookup.
	ErrAbsent = errors.New("absent")
	// ErrNil is the cause of a failed nil pointer check.
	ErrNil = errors.New("nil")
)

// Fallible is implemented by types that hold either a value or the reason
// there is none.
type Fallible[T any] interface {
	Result() (T, error)
}

// Value returns v if err is nil. Otherwise it panics.
func Value[T any](v T, err error) T {
	if err != nil {
		fail(err, "")
	}
	return v
}

// Valuef is like [Value], but panics with a formatted message.
func Valuef[T any](v T, err error, format string, args ...any) T {
	if err != nil {
		fail(err, fmt.Sprintf(format, args...))
	}
	return v
}

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		fail(err, "")
	}
}

// NoErrorf is like [NoError], but panics with a formatted message.
func NoErrorf(err error, format string, args ...any) {
	if err != nil {
		fail(err, fmt.Sprintf(format, args...))
	}
}

// OK returns v if ok is true. Otherwise it panics.
func OK[T any](v T, ok bool) T {
	if !ok {
		fail(ErrAbsent, "")
	}
	return v
}

// OKf is like [OK], but panics with a formatted message.
func OKf[T any](v T, ok bool, format string, args ...any) T {
	if !ok {
		fail(ErrAbsent, fmt.Sprintf(format, args...))
	}
	return v
}

// NotNil returns p if it is not nil. Otherwise it panics.
func NotNil[T any](p *T) *T {
	if p == nil {
		fail(ErrNil, "")
	}
	return p
}

// NotNilf is like [NotNil], but panics with a formatted message.
func NotNilf[T any](p *T, format string, args ...any) *T {
	if p == nil {
		fail(ErrNil, fmt.Sprintf(format, args...))
	}
	return p
}

// That returns the value held by f, or panics if f holds an error.
func That[T any](f Fallible[T]) T {
	v, err := f.Result()
	if err != nil {
		fail(err, "")
	}
	return v
}

// Thatf is like [That], but panics with a formatted message.
func Thatf[T any](f Fallible[T], format string, args ...any) T {
	v, err := f.Result()
	if err != nil {
		fail(err, fmt.Sprintf(format, args...))
	}
	return v
}
