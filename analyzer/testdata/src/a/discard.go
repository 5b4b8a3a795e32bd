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

func dropped() {
	scopeexit.Exit(func() {}) // want `Guard from Exit is discarded and never fires \(se:dis\)`
}

func blank() {
	_ = scopeexit.Fail(func() {}) // want `Guard from Fail is discarded and never fires \(se:dis\)`
}

func blankVar() {
	var _ = scopeexit.Success(func() {}) // want `Guard from Success is discarded and never fires \(se:dis\)`
}

func deferredConstructor() {
	defer scopeexit.Exit(func() {}) // want `Guard from Exit is discarded and never fires \(se:dis\)`
}

func kept() {
	g, h := scopeexit.Exit(func() {}), scopeexit.Fail(func() {})
	defer g.Close()
	defer h.Close()
}
