// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package expect

import (
	"fmt"

	"go.astrophena.name/expect/internal/callsite"
)

const pkgPath = "go.astrophena.name/expect"

// Location is the position of a call into this package.
type Location struct {
	Func string // fully qualified function name
	File string // absolute path
	Line int
}

// String returns "file.go:line" with the base name of the file.
func (l Location) String() string { return callsite.Frame(l).String() }

// Failure is the value this package panics with.
type Failure struct {
	Location Location
	// Msg is the caller-supplied message. It is empty when the default
	// message is used.
	Msg string
	// Cause is the error that was unwrapped, or ErrAbsent or ErrNil for
	// option-like values.
	Cause error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Msg != "" {
		return f.Location.String() + " " + f.Msg
	}
	return f.Location.String() + " expected value to not be " + describe(f.Cause)
}

// Unwrap returns the cause of the failure.
func (f *Failure) Unwrap() error { return f.Cause }

func describe(cause error) string {
	switch cause {
	case ErrAbsent, ErrNil:
		return cause.Error()
	}
	// fmt recovers from Error methods that panic on a nil receiver.
	return fmt.Sprintf("error: %v", cause)
}

// fail reports the failure and panics. It must only be called from this
// package's exported functions.
func fail(cause error, msg string) {
	loc, _ := callsite.Caller(pkgPath)
	f := &Failure{
		Location: Location(loc),
		Msg:      msg,
		Cause:    cause,
	}
	report(f)
	panic(f)
}
