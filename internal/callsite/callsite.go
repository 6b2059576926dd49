// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package callsite resolves the source position of the code that called into
// a helper package.
package callsite

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go4org/hashtriemap"
)

const self = "go.astrophena.name/expect/internal/callsite"

// depth is the number of program counters captured per lookup. It only has to
// cover the frames of the skipped packages plus one.
const depth = 16

// Frame is a resolved stack frame.
type Frame struct {
	Func string
	File string
	Line int
}

// String returns the frame position as "file.go:line", using only the base
// name of the file.
func (f Frame) String() string {
	if f.File == "" {
		return "???:" + strconv.Itoa(f.Line)
	}
	return filepath.Base(f.File) + ":" + strconv.Itoa(f.Line)
}

// maxCached bounds the memo. Lookups beyond it are resolved every time.
const maxCached = 1024

type key struct {
	pcs  [depth]uintptr
	skip string // NUL-joined pkgs
}

// cache memoizes resolved frames by the raw PC window and skip list.
// Failures recovered in long-running goroutines tend to repeat from the same
// stack.
var (
	cache  hashtriemap.HashTrieMap[key, Frame]
	cached atomic.Int64
)

// Caller returns the first frame on the calling goroutine's stack whose
// function does not belong to one of pkgs (import paths) or to this package.
// It reports false if every captured frame belongs to a skipped package.
func Caller(pkgs ...string) (Frame, bool) {
	k := key{skip: strings.Join(pkgs, "\x00")}
	// Skip runtime.Callers and Caller.
	n := runtime.Callers(2, k.pcs[:])
	if n == 0 {
		return Frame{}, false
	}
	if f, ok := cache.Load(k); ok {
		return f, true
	}

	frames := runtime.CallersFrames(k.pcs[:n])
	for {
		fr, more := frames.Next()
		if !skipped(pkgPath(fr.Function), pkgs) {
			f := Frame{Func: fr.Function, File: fr.File, Line: fr.Line}
			if cached.Load() < maxCached {
				if _, loaded := cache.LoadOrStore(k, f); !loaded {
					cached.Add(1)
				}
			}
			return f, true
		}
		if !more {
			return Frame{}, false
		}
	}
}

func skipped(pkg string, pkgs []string) bool {
	if pkg == self {
		return true
	}
	for _, p := range pkgs {
		if pkg == p {
			return true
		}
	}
	return false
}

// pkgPath extracts the import path from a fully qualified function name such
// as "example.com/a/b.(*T).M.func1".
func pkgPath(fn string) string {
	i := max(strings.LastIndexByte(fn, '/'), 0)
	if j := strings.IndexByte(fn[i:], '.'); j >= 0 {
		return fn[:i+j]
	}
	return fn
}
