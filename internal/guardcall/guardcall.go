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

// Package guardcall recognizes calls of the scopeexit API in type-checked syntax.
package guardcall

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/scopeexit"
)

// PkgPath is the import path of the guard package.
const PkgPath = "fillmore-labs.com/scopeexit"

// guardType is the name of the guard type.
const guardType = "Guard"

// Construction describes a call creating a guard.
type Construction struct {
	// Call is the constructor call.
	Call *ast.CallExpr

	// Func is the name of the constructor.
	Func string

	// Callback is the callback argument.
	Callback ast.Expr

	// Policy is the exit policy, valid if Known is true.
	Policy scopeexit.Policy

	// Known reports whether the policy is a compile-time constant.
	Known bool
}

// ConstructionOf returns the [Construction] for a guard constructor call.
func ConstructionOf(info *types.Info, call *ast.CallExpr) (Construction, bool) {
	fun, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || !isPkgFunc(fun) || len(call.Args) == 0 {
		return Construction{}, false
	}

	c := Construction{Call: call, Func: fun.Name(), Callback: call.Args[0], Known: true}

	switch fun.Name() {
	case "Exit":
		c.Policy = scopeexit.Always

	case "Fail":
		c.Policy = scopeexit.OnFailure

	case "Success":
		c.Policy = scopeexit.OnSuccess

	case "New":
		if len(call.Args) != 2 {
			return Construction{}, false
		}

		c.Policy, c.Known = constPolicy(info, call.Args[1])

	default:
		return Construction{}, false
	}

	return c, true
}

// constPolicy returns the value of a constant policy expression.
func constPolicy(info *types.Info, expr ast.Expr) (scopeexit.Policy, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
		return 0, false
	}

	v, exact := constant.Uint64Val(tv.Value)
	if p := scopeexit.Policy(v); exact && v <= uint64(^scopeexit.Policy(0)) && p.Valid() {
		return p, true
	}

	return 0, false
}

// Closer describes a call ending a guarded scope.
type Closer struct {
	// Call is the method call.
	Call *ast.CallExpr

	// Method is the name of the method.
	Method string

	// Guard is the receiver expression.
	Guard ast.Expr
}

// CloserOf returns the [Closer] for a call of a method that must be deferred.
func CloserOf(info *types.Info, call *ast.CallExpr) (Closer, bool) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return Closer{}, false
	}

	fun, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || !isGuardMethod(fun) {
		return Closer{}, false
	}

	switch name := fun.Name(); name {
	case "Close", "CloseErr":
		return Closer{Call: call, Method: name, Guard: sel.X}, true

	default:
		return Closer{}, false
	}
}

// isPkgFunc reports whether fun is a package-level function of the guard package.
func isPkgFunc(fun *types.Func) bool {
	pkg := fun.Pkg()
	if pkg == nil || pkg.Path() != PkgPath {
		return false
	}

	sig, ok := fun.Type().(*types.Signature)

	return ok && sig.Recv() == nil
}

// isGuardMethod reports whether fun is a method of the guard type.
func isGuardMethod(fun *types.Func) bool {
	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	named, ok := recv.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Name() == guardType && obj.Pkg() != nil && obj.Pkg().Path() == PkgPath
}
