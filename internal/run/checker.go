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

package run

import (
	"context"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/scopeexit/internal/astutil"
	"fillmore-labs.com/scopeexit/internal/config"
	"fillmore-labs.com/scopeexit/internal/guardcall"
	"fillmore-labs.com/scopeexit/internal/panics"
	"fillmore-labs.com/scopeexit/internal/report"
)

const guardPkgPath = guardcall.PkgPath

// checker verifies guard usage in function bodies.
type checker struct {
	pass    *analysis.Pass
	checks  config.Checks
	tracker panics.Tracker
	decls   *astutil.FuncDecls
	report  report.Reporter
}

// checkBody checks all guard constructions and closers in a function body, including
// nested function literals.
func (ch *checker) checkBody(ctx context.Context, body inspector.Cursor) {
	defer trace.StartRegion(ctx, "CheckBody").End()

	info := ch.pass.TypesInfo

	for c := range body.Preorder((*ast.CallExpr)(nil)) {
		call := c.Node().(*ast.CallExpr)

		if g, ok := guardcall.ConstructionOf(info, call); ok {
			ch.construction(c, g)

			continue
		}

		if cl, ok := guardcall.CloserOf(info, call); ok && ch.checks.Enabled(config.DeferCheck) {
			ch.closer(c, cl)
		}
	}
}

// construction checks a guard constructor call.
func (ch *checker) construction(c inspector.Cursor, g guardcall.Construction) {
	if ch.checks.Enabled(config.DiscardCheck) && discarded(c) {
		ch.report.Discarded(g)
	}

	if !ch.checks.Enabled(config.CallbackCheck) {
		return
	}

	if tv, ok := ch.pass.TypesInfo.Types[g.Callback]; ok && tv.IsNil() {
		ch.report.NilCallback(g)

		return
	}

	if !g.Known || g.Policy.CallbackMayPanic() {
		return
	}

	for call := range ch.tracker.Escaping(ch.callbackBody(g.Callback)) {
		ch.report.Escaping(g, call, ch.tracker.ExitOf(call))
	}
}

// callbackBody returns the body of a callback declared in the analyzed package, or nil.
func (ch *checker) callbackBody(cb ast.Expr) *ast.BlockStmt {
	var id *ast.Ident

	switch e := ast.Unparen(cb).(type) {
	case *ast.FuncLit:
		return e.Body

	case *ast.Ident:
		id = e

	case *ast.SelectorExpr:
		id = e.Sel

	default:
		return nil
	}

	fun, ok := ch.pass.TypesInfo.Uses[id].(*types.Func)
	if !ok {
		return nil
	}

	return ch.decls.Body(fun)
}

// discarded reports whether the result of the constructor call at c is dropped.
func discarded(c inspector.Cursor) bool {
	switch kind, index := c.ParentEdge(); kind {
	case edge.ExprStmt_X, edge.DeferStmt_Call, edge.GoStmt_Call:
		return true

	case edge.AssignStmt_Rhs:
		asgn := c.Parent().Node().(*ast.AssignStmt)
		if len(asgn.Lhs) != len(asgn.Rhs) {
			return false
		}

		return isBlank(asgn.Lhs[index])

	case edge.ValueSpec_Values:
		spec := c.Parent().Node().(*ast.ValueSpec)
		if len(spec.Names) != len(spec.Values) {
			return false
		}

		return isBlank(spec.Names[index])

	default:
		return false
	}
}

func isBlank(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)

	return ok && id.Name == "_"
}

// closer checks that a guard is closed by a direct defer statement of the guarded function.
func (ch *checker) closer(c inspector.Cursor, cl guardcall.Closer) {
	deferred, lit, inLiteral := deferredLiteral(c)

	if kind, _ := c.ParentEdge(); kind == edge.DeferStmt_Call {
		// Deferred within a deferred literal, the closer runs after the literal returned
		// and never observes a panic of the enclosing function.
		if inLiteral && !ch.declaredIn(cl.Guard, lit) {
			ch.report.Indirect(cl, deferred, false)
		}

		return
	}

	if inLiteral {
		fixable := len(deferred.Call.Args) == 0 && lit.Type.Params.NumFields() == 0 && onlyStatement(lit.Body, cl.Call)
		ch.report.Indirect(cl, deferred, fixable)

		return
	}

	ch.report.NotDeferred(cl)
}

// deferredLiteral finds a defer statement calling the function literal enclosing the closer at c.
func deferredLiteral(c inspector.Cursor) (deferred *ast.DeferStmt, lit *ast.FuncLit, ok bool) {
	for e := range c.Enclosing((*ast.FuncLit)(nil), (*ast.FuncDecl)(nil)) {
		fl, isLit := e.Node().(*ast.FuncLit)
		if !isLit {
			return nil, nil, false
		}

		if kind, _ := e.ParentEdge(); kind != edge.CallExpr_Fun {
			return nil, nil, false
		}

		call := e.Parent()
		if kind, _ := call.ParentEdge(); kind != edge.DeferStmt_Call {
			return nil, nil, false
		}

		return call.Parent().Node().(*ast.DeferStmt), fl, true
	}

	return nil, nil, false
}

// declaredIn reports whether the guard is constructed or declared within lit.
func (ch *checker) declaredIn(guard ast.Expr, lit *ast.FuncLit) bool {
	switch e := ast.Unparen(guard).(type) {
	case *ast.CallExpr:
		return true

	case *ast.Ident:
		obj := ch.pass.TypesInfo.Uses[e]

		return obj != nil && lit.Pos() <= obj.Pos() && obj.Pos() < lit.End()

	default:
		return false
	}
}

// onlyStatement reports whether body consists of the single call.
func onlyStatement(body *ast.BlockStmt, call *ast.CallExpr) bool {
	if len(body.List) != 1 {
		return false
	}

	stmt, ok := body.List[0].(*ast.ExprStmt)

	return ok && stmt.X == call
}
