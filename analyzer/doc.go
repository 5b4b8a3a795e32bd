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

// Package analyzer implements the scopeexit static analysis pass.
//
// # Overview
//
// Go can not express the callback contract of [fillmore-labs.com/scopeexit] guards in the type
// system, and a guard only observes panics when its Close method is the deferred function. This
// analyzer reports code breaking these rules.
//
// # Checks
//
//   - callback (se:nil, se:pan): a guard is constructed with a nil callback, or the callback of an
//     Always or OnFailure guard calls a function that panics or never returns (panic, log.Fatal,
//     os.Exit, runtime.Goexit, testing.TB.FailNow, ...). Callbacks are followed into function
//     literals and functions declared in the same package.
//   - defer (se:ind, se:def): Close or CloseErr is called from a deferred function literal, where
//     recover can not see the panic, or is not deferred at all.
//   - discard (se:dis): the guard returned by a constructor is dropped and can never fire.
//
// # Example
//
// Before:
//
//	defer func() { g.Close() }() // Close must be deferred directly to observe panics
//
// After applying the suggested fix:
//
//	defer g.Close()
//
// Diagnostics can be suppressed with a //nolint:scopeexit comment on the reported line, the
// function documentation or the package clause.
package analyzer
