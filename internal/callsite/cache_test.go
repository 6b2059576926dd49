// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package callsite

import (
	"strings"
	"testing"

	"go.astrophena.name/expect/testutil"
)

func TestCacheBounded(t *testing.T) {
	prev := cached.Load()
	cached.Store(maxCached)
	t.Cleanup(func() { cached.Store(prev) })

	// Frames of this package are always skipped, so the test function itself
	// is never reported.
	f, ok := Caller("go.astrophena.name/expect/internal/callsite.bounded")
	testutil.AssertEqual(t, ok, true)
	if !strings.HasPrefix(f.Func, "testing.") {
		t.Fatalf("expected a frame from package testing, got %q", f.Func)
	}
	testutil.AssertEqual(t, cached.Load(), int64(maxCached))
}
