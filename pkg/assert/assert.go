// Ripple: A terminal-native messaging client
// Copyright (C) 2026 Kessym
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package assert kills the process on broken invariants. Use it for
// states that are impossible unless the program itself is wrong, never
// for expected failures.
package assert

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime/debug"
	"sync"
)

var (
	writer io.Writer = os.Stderr

	flushes = []io.Closer{}
	flushMu sync.Mutex
)

// AddFlush registers a resource to close before the process dies, so a
// failing assertion does not take unsynced state with it.
func AddFlush(flusher io.Closer) {
	flushMu.Lock()
	flushes = append(flushes, flusher)
	flushMu.Unlock()
}

func SetWriter(w io.Writer) {
	writer = w
}

func runAssert(message string, args ...any) {
	flushMu.Lock()
	for len(flushes) != 0 {
		flusher := flushes[len(flushes)-1]
		_ = flusher.Close()
		flushes = flushes[:len(flushes)-1]
	}
	flushMu.Unlock()

	fmt.Fprintf(writer, "ASSERT: %s\n", message)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(writer, "   %v=%v\n", args[i], args[i+1])
	}
	fmt.Fprintln(writer, string(debug.Stack()))

	os.Exit(1)
}

func Assert(assertion bool, message string, args ...any) {
	if !assertion {
		runAssert(message, args...)
	}
}

func NoError(err error, message string, args ...any) {
	if err != nil {
		args = append(args, "error", err)
		runAssert(message, args...)
	}
}

func Never(message string, args ...any) {
	runAssert(message, args...)
}

func NotNil(value any, message string, args ...any) {
	if value == nil || reflect.ValueOf(value).Kind() == reflect.Ptr && reflect.ValueOf(value).IsNil() {
		runAssert(message, args...)
	}
}
