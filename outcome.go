// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package expect

import "fmt"

// Outcome holds a value or the reason there is none. It allows a custom
// message for calls returning multiple values, which Go can only spread
// into a call that takes nothing else:
//
//	n := expect.Of(strconv.Atoi(s)).Getf("bad count %q", s)
type Outcome[T any] struct {
	v   T
	err error
}

// Of returns an Outcome that fails if err is not nil.
func Of[T any](v T, err error) Outcome[T] {
	return Outcome[T]{v: v, err: err}
}

// Lookup returns an Outcome that fails with [ErrAbsent] if ok is false.
func Lookup[T any](v T, ok bool) Outcome[T] {
	if !ok {
		return Outcome[T]{v: v, err: ErrAbsent}
	}
	return Outcome[T]{v: v}
}

// Ptr returns an Outcome that fails with [ErrNil] if p is nil.
func Ptr[T any](p *T) Outcome[*T] {
	if p == nil {
		return Outcome[*T]{err: ErrNil}
	}
	return Outcome[*T]{v: p}
}

// Result implements [Fallible].
func (o Outcome[T]) Result() (T, error) { return o.v, o.err }

// Err returns the reason of the failure, or nil.
func (o Outcome[T]) Err() error { return o.err }

// OK reports whether o holds a value.
func (o Outcome[T]) OK() bool { return o.err == nil }

// Get returns the value, or panics with the default message.
func (o Outcome[T]) Get() T {
	if o.err != nil {
		fail(o.err, "")
	}
	return o.v
}

// Getf returns the value, or panics with a formatted message.
func (o Outcome[T]) Getf(format string, args ...any) T {
	if o.err != nil {
		fail(o.err, fmt.Sprintf(format, args...))
	}
	return o.v
}

// GetFunc returns the value, or panics with the message returned by msg.
// msg is called only on failure and receives its cause. A nil msg or an
// empty message selects the default one.
func (o Outcome[T]) GetFunc(msg func(cause error) string) T {
	if o.err != nil {
		var m string
		if msg != nil {
			m = msg(o.err)
		}
		fail(o.err, m)
	}
	return o.v
}
