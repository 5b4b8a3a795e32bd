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

package fix

import "fillmore-labs.com/scopeexit"

func closeLiteral() {
	g := scopeexit.Fail(func() {})
	defer func() { g.Close() }() // want `Close must be deferred directly to observe panics \(se:ind\)`
}

func closeErrLiteral() (err error) {
	g := scopeexit.Success(func() {})
	defer func() {
		g.CloseErr(&err) // want `CloseErr must be deferred directly to observe panics \(se:ind\)`
	}()

	return nil
}
