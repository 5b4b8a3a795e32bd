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
	"go/types"
)

// Exit describes how a call leaves its caller when it does not return.
type Exit uint8

//go:generate go tool stringer -type Exit -linecomment
const (
	// Returns is a call that returns normally.
	Returns Exit = iota // returns

	// Panic is a call that panics.
	Panic // panics

	// ExitProcess is a call that terminates the process.
	ExitProcess // exits the process

	// ExitGoroutine is a call that terminates the calling goroutine.
	ExitGoroutine // exits the goroutine
)

// _knownFuncs are functions that do not return normally.
var _knownFuncs = map[FuncName]Exit{
	{Path: "log", Name: "Fatal"}:   ExitProcess,
	{Path: "log", Name: "Fatalf"}:  ExitProcess,
	{Path: "log", Name: "Fatalln"}: ExitProcess,
	{Path: "log", Name: "Panic"}:   Panic,
	{Path: "log", Name: "Panicf"}:  Panic,
	{Path: "log", Name: "Panicln"}: Panic,

	{Path: "log", Receiver: "Logger", Name: "Fatal"}:   ExitProcess,
	{Path: "log", Receiver: "Logger", Name: "Fatalf"}:  ExitProcess,
	{Path: "log", Receiver: "Logger", Name: "Fatalln"}: ExitProcess,
	{Path: "log", Receiver: "Logger", Name: "Panic"}:   Panic,
	{Path: "log", Receiver: "Logger", Name: "Panicf"}:  Panic,
	{Path: "log", Receiver: "Logger", Name: "Panicln"}: Panic,

	{Path: "os", Name: "Exit"}:        ExitProcess,
	{Path: "syscall", Name: "Exit"}:   ExitProcess,
	{Path: "runtime", Name: "Goexit"}: ExitGoroutine,

	{Path: "testing", Receiver: "common", Name: "Fatal"}:   ExitGoroutine,
	{Path: "testing", Receiver: "common", Name: "Fatalf"}:  ExitGoroutine,
	{Path: "testing", Receiver: "common", Name: "FailNow"}: ExitGoroutine,
	{Path: "testing", Receiver: "common", Name: "Skip"}:    ExitGoroutine,
	{Path: "testing", Receiver: "common", Name: "Skipf"}:   ExitGoroutine,
	{Path: "testing", Receiver: "common", Name: "SkipNow"}: ExitGoroutine,

	{Path: "testing", Receiver: "TB", Name: "Fatal"}:   ExitGoroutine,
	{Path: "testing", Receiver: "TB", Name: "Fatalf"}:  ExitGoroutine,
	{Path: "testing", Receiver: "TB", Name: "FailNow"}: ExitGoroutine,
	{Path: "testing", Receiver: "TB", Name: "Skip"}:    ExitGoroutine,
	{Path: "testing", Receiver: "TB", Name: "Skipf"}:   ExitGoroutine,
	{Path: "testing", Receiver: "TB", Name: "SkipNow"}: ExitGoroutine,

	{Path: "github.com/sirupsen/logrus", Receiver: "Entry", Name: "Panic"}:    Panic,
	{Path: "github.com/sirupsen/logrus", Receiver: "Entry", Name: "Panicf"}:   Panic,
	{Path: "github.com/sirupsen/logrus", Receiver: "Entry", Name: "Panicln"}:  Panic,
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Exit"}:    ExitProcess,
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Panic"}:   Panic,
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Panicf"}:  Panic,
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Panicln"}: Panic,

	{Path: "go.uber.org/zap", Receiver: "Logger", Name: "Fatal"}:         ExitProcess,
	{Path: "go.uber.org/zap", Receiver: "Logger", Name: "Panic"}:         Panic,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatal"}:  ExitProcess,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalf"}: ExitProcess,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalw"}: ExitProcess,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Panic"}:  Panic,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Panicf"}: Panic,
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Panicw"}: Panic,

	{Path: "k8s.io/klog/v2", Name: "Exit"}:   ExitProcess,
	{Path: "k8s.io/klog/v2", Name: "Exitf"}:  ExitProcess,
	{Path: "k8s.io/klog/v2", Name: "Fatal"}:  ExitProcess,
	{Path: "k8s.io/klog/v2", Name: "Fatalf"}: ExitProcess,
}

// ExitOf reports how the call leaves its caller. Calls of function values are assumed to return.
func ExitOf(info *types.Info, n *ast.CallExpr) Exit {
	ex := n.Fun

unwrap:
	switch e := ex.(type) {
	case *ast.Ident:
		return exitOfFunc(info, e)

	case *ast.SelectorExpr:
		return exitOfFunc(info, e.Sel)

	case *ast.IndexExpr: // Generic function instantiation with a type parameter ("myFunc[T]").
		ex = e.X
		goto unwrap

	case *ast.IndexListExpr: // Generic function instantiation with multiple type parameters ("myFunc[T, U]").
		ex = e.X
		goto unwrap

	case *ast.ParenExpr:
		ex = e.X
		goto unwrap

	default:
		return Returns
	}
}

func exitOfFunc(info *types.Info, id *ast.Ident) Exit {
	switch use := info.Uses[id].(type) {
	case *types.Func:
		return _knownFuncs[FuncNameOf(use)]

	case *types.Builtin:
		if use == builtinPanic {
			return Panic
		}
	}

	return Returns
}

// isRecover reports whether the call is the builtin recover.
func isRecover(info *types.Info, n *ast.CallExpr) bool {
	id, ok := ast.Unparen(n.Fun).(*ast.Ident)

	return ok && info.Uses[id] == builtinRecover
}

var (
	builtinPanic   = types.Universe.Lookup("panic").(*types.Builtin)
	builtinRecover = types.Universe.Lookup("recover").(*types.Builtin)
)
