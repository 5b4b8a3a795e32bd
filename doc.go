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

/*
Package scopeexit provides scope guards: a callback bound to an exit policy that runs when
the enclosing function returns.

A guard is created armed and torn down by deferring its Close method:

	func copyFile(dst, src string) (err error) {
		out, err := os.Create(dst)
		if err != nil {
			return err
		}
		defer scopeexit.Exit(func() { _ = out.Close() }).Close()

		undo := scopeexit.Fail(func() { _ = os.Remove(dst) })
		defer undo.CloseErr(&err)

		// ...
	}

# Exit Policies

  - [Always] fires on every exit path.
  - [OnFailure] fires only when the function is left because of a panic (or, with
    [Guard.CloseErr], a non-nil error result).
  - [OnSuccess] fires only on a normal exit.

A guard fires at most once. [Guard.Release] disarms it, [Guard.Move] hands the firing
responsibility to a new guard and disarms the source. Guards deferred in the same function
fire in reverse order of their defer statements.

# Detecting Failure

An error propagating through the call stack is a panic. [Guard.Close] calls recover to observe
it, so Close must be the deferred function itself:

	defer g.Close()             // sees panics
	defer func() { g.Close() }() // never sees panics

A recovered panic is re-raised unchanged after the callback ran. Go reports a panic only to
deferred calls run by that panic, so a guard created and deferred inside a deferred function
that runs during a panic observes a normal exit of its own scope.

Functions reporting failure through an error result use [Guard.CloseErr] with a pointer to a
named result. Call sites that end a scope without defer use [Guard.RunOn] with an explicit
outcome.

# Callback Contract

Callbacks of [Always] and [OnFailure] guards must not panic. A callback panicking while a
panic is already propagating is logged as a [*DoublePanicError] and terminates the process.
[OnSuccess] callbacks may panic; the panic propagates to the caller like any other.

The scopeexitlint analyzer in [fillmore-labs.com/scopeexit/analyzer] checks these rules
statically. Guards embed a marker that makes go vet's copylocks check reject copies.
*/
package scopeexit
