// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cantreturn

import (
	"log"
	"os"
	"runtime"
	"syscall"
	"testing"
)

func logFatal() {
	log.Fatal() // want "Call exits the process"
}

func logPanicf() {
	log.Panicf("%d", 1) // want "Call panics"
}

func builtinPanic() {
	panic("") // want "Call panics"
}

func logFatalf() {
	l := log.Default()

	l.Fatalf("") // want "Call exits the process"
}

func osExit() {
	os.Exit(1) // want "Call exits the process"
}

func syscallExit() {
	syscall.Exit(1) // want "Call exits the process"
}

func runtimeGoexit() {
	runtime.Goexit() // want "Call exits the goroutine"
}

func testingFatal(t *testing.T) {
	t.Fatal() // want "Call exits the goroutine"
}

func testingTBSkip(tb testing.TB) {
	tb.SkipNow() // want "Call exits the goroutine"
}

func normalReturn() {
	println("hello") // OK
}

func funcReturn() {
	panic := log.Fatal

	panic("hello") // OK
}
