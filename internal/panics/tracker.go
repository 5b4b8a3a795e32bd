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

package panics

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"
)

// Tracker finds calls that leave a function body without returning.
type Tracker struct {
	info *types.Info
}

// New creates and returns a new Tracker.
func New(info *types.Info) Tracker {
	return Tracker{
		info: info,
	}
}

// ExitOf reports how the call leaves its caller.
func (t Tracker) ExitOf(n *ast.CallExpr) Exit {
	return ExitOf(t.info, n)
}

// Escaping yields the calls in body that can leave it without returning normally.
//
// Panics following a top-level deferred function literal calling recover are contained by
// body and not yielded. Function literals and go statements are not descended into.
func (t Tracker) Escaping(body *ast.BlockStmt) iter.Seq[*ast.CallExpr] {
	return func(yield func(*ast.CallExpr) bool) {
		if body == nil {
			return
		}

		recovered := t.recoverPos(body)
		proceed := true

		ast.Inspect(body, func(n ast.Node) bool {
			if !proceed {
				return false
			}

			switch n := n.(type) {
			case *ast.FuncLit, *ast.GoStmt:
				return false

			case *ast.CallExpr:
				switch t.ExitOf(n) {
				case Returns:

				case Panic:
					if !recovered.IsValid() || n.Pos() < recovered {
						proceed = yield(n)
					}

				default:
					proceed = yield(n)
				}
			}

			return proceed
		})
	}
}

// recoverPos returns the position of the first top-level defer statement in body that
// recovers panics, or [token.NoPos].
func (t Tracker) recoverPos(body *ast.BlockStmt) token.Pos {
	for _, stmt := range body.List {
		d, ok := stmt.(*ast.DeferStmt)
		if !ok {
			continue
		}

		lit, ok := ast.Unparen(d.Call.Fun).(*ast.FuncLit)
		if !ok {
			continue
		}

		if t.callsRecover(lit.Body) {
			return d.Pos()
		}
	}

	return token.NoPos
}

// callsRecover reports whether body calls recover directly.
func (t Tracker) callsRecover(body *ast.BlockStmt) bool {
	found := false

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false

		case *ast.CallExpr:
			if isRecover(t.info, n) {
				found = true
			}
		}

		return !found
	})

	return found
}
