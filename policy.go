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

package scopeexit

// Policy decides whether a guard fires when its scope is left.
type Policy uint8

//go:generate go tool stringer -type Policy
const (
	// Always fires on every exit path while the guard is armed.
	Always Policy = iota

	// OnFailure fires only when the scope is left because of a failure.
	OnFailure

	// OnSuccess fires only when the scope is left normally.
	OnSuccess
)

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p <= OnSuccess
}

// ShouldFire reports whether an armed or disarmed guard with this policy fires on a
// failing or normal exit.
func (p Policy) ShouldFire(armed, failing bool) bool {
	if !armed {
		return false
	}

	switch p {
	case Always:
		return true

	case OnFailure:
		return failing

	case OnSuccess:
		return !failing

	default:
		return false
	}
}

// CallbackMayPanic reports whether the callback contract of p permits a panicking callback.
//
// Only [OnSuccess] callbacks run outside of a propagating panic by construction. [Always]
// callbacks may panic on a normal exit, but doing so during a failure is fatal, so they are
// held to the same contract as [OnFailure].
func (p Policy) CallbackMayPanic() bool {
	return p == OnSuccess
}
