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

package escaping

import (
	"errors"
	"os"
)

var errBoom = errors.New("boom")

func nested(fail bool) {
	if fail {
		for {
			panic(errBoom) // want "Call panics"
		}
	}
}

func recovered() {
	defer func() { _ = recover() }()

	panic(errBoom) // OK
}

func recoveredLater() {
	panic(errBoom) // want "Call panics"

	defer func() { _ = recover() }()
}

func exitNotRecovered() {
	defer func() {
		if r := recover(); r != nil {
			return
		}
	}()

	os.Exit(1) // want "Call exits the process"
}

func nestedRecover() {
	defer func() {
		func() { _ = recover() }() // does not stop the panic
	}()

	panic(errBoom) // want "Call panics"
}

func literal() {
	f := func() { panic(errBoom) } // OK, not called here

	_ = f
}

func goroutine() {
	go panic(errBoom) // OK, different goroutine
}
