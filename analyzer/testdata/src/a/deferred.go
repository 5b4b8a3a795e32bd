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

package a

import "fillmore-labs.com/scopeexit"

func direct() (err error) {
	g := scopeexit.Fail(func() {})
	defer g.CloseErr(&err)

	defer scopeexit.Exit(func() {}).Close()

	return nil
}

func indirect() {
	g := scopeexit.Fail(func() {})
	defer func() {
		println("leaving")
		g.Close() // want `Close must be deferred directly to observe panics \(se:ind\)`
	}()
}

func nestedDefer() {
	g := scopeexit.Fail(func() {})
	defer func() {
		println("leaving")
		defer g.Close() // want `Close must be deferred directly to observe panics \(se:ind\)`
	}()
}

func nestedDeferOwnGuard() {
	defer func() {
		g := scopeexit.Fail(func() {})
		defer g.Close() // OK

		defer scopeexit.Exit(func() {}).Close() // OK
	}()
}

func notDeferred() {
	g := scopeexit.Success(func() {})

	g.Close() // want `Close is not deferred, use RunOn for an explicit outcome \(se:def\)`
}

func explicitOutcome(failed bool) {
	g := scopeexit.Fail(func() {})

	g.RunOn(failed) // OK
}

func nestedLiteral() {
	func() {
		g := scopeexit.Exit(func() {})
		defer g.Close() // OK
	}()
}

func moved() *scopeexit.Guard {
	g := scopeexit.Exit(func() {})
	defer g.Close()

	return g.Move()
}
