// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package testutil provides helpers for common testing scenarios.
package testutil

import (
	"reflect"
	"testing"
)

// AssertEqual fails the test if got is not deeply equal to want.
// It prints both values for easy comparison upon failure.
func AssertEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values are not equal:\ngot:  %#v\nwant: %#v", got, want)
	}
}

// AssertPanics calls f and fails the test if it returns normally.
// It returns the recovered panic value.
func AssertPanics(t *testing.T, f func()) (v any) {
	t.Helper()
	panicked := true
	func() {
		defer func() { v = recover() }()
		f()
		panicked = false
	}()
	if !panicked {
		t.Fatalf("function did not panic")
	}
	return v
}
