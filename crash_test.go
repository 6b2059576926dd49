// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package expect_test

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"go.astrophena.name/expect"
	"go.astrophena.name/expect/testutil"
)

// crashEnv makes TestMain run one of the crashers instead of the tests.
const crashEnv = "EXPECT_TEST_CRASH"

var crashers = map[string]func(){
	"default": func() {
		expect.Value(0, errBoom) // crash:default
	},
	"format": func() {
		x, err := 0, errBoom
		expect.Valuef(x, err, "got bad value: %v", err) // crash:format
	},
}

func crash(name string) {
	crashers[name]()
	os.Exit(0) // only if the crasher did not panic
}

// markerPos returns the "file:line" position of the line in this file that
// ends with the given marker comment.
func markerPos(t *testing.T, marker string) string {
	t.Helper()
	_, file, _, _ := runtime.Caller(0)
	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	s := bufio.NewScanner(bytes.NewReader(b))
	for line := 1; s.Scan(); line++ {
		if strings.HasSuffix(s.Text(), "// "+marker) {
			return "crash_test.go:" + strconv.Itoa(line)
		}
	}
	t.Fatalf("marker %q not found", marker)
	return ""
}

func TestCrash(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping subprocess test in short mode")
	}

	cases := map[string]string{
		"default": " expected value to not be error: boom",
		"format":  " got bad value: boom",
	}
	for name, suffix := range cases {
		t.Run(name, func(t *testing.T) {
			want := markerPos(t, "crash:"+name) + suffix

			cmd := exec.Command(os.Args[0])
			cmd.Env = append(os.Environ(), crashEnv+"="+name)
			var stderr bytes.Buffer
			cmd.Stderr = &stderr
			err := cmd.Run()

			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("process did not fail: %v\n%s", err, stderr.String())
			}
			testutil.AssertEqual(t, exitErr.ExitCode(), 2)

			out := stderr.String()
			// Once from the reporter, once from the runtime.
			testutil.AssertEqual(t, strings.Count(out, want), 2)
			testutil.AssertEqual(t, strings.Contains(out, "ERR "+want), true)
			testutil.AssertEqual(t, strings.Contains(out, "panic: "+want), true)
		})
	}
}
