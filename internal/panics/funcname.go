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

import "go/types"

// FuncName identifies a function or method independent of a type-checking run.
type FuncName struct {
	// Path is the import path of the package declaring the function or the receiver type.
	// It is empty for interface literals and universe types.
	Path string

	// Receiver is the name of the receiver type, empty for functions.
	Receiver string

	// Name is the function or method name.
	Name string
}

// Placeholders for receivers without a type name.
const (
	interfaceReceiver = "interface"
	invalidReceiver   = "<invalid>"
)

// FuncNameOf returns the [FuncName] of fun.
func FuncNameOf(fun *types.Func) FuncName {
	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		var path string
		if pkg := fun.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Name: fun.Name()}
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch t := recv.(type) {
	case *types.Named:
		var path string

		obj := t.Obj()
		if pkg := obj.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: interfaceReceiver, Name: fun.Name()}

	default:
		return FuncName{Receiver: invalidReceiver, Name: fun.Name()}
	}
}

func (f FuncName) String() string {
	switch {
	case f.Receiver == "" && f.Path == "":
		return f.Name

	case f.Receiver == "":
		return f.Path + "." + f.Name

	case f.Path == "":
		return "(" + f.Receiver + ")." + f.Name

	default:
		return "(" + f.Path + "." + f.Receiver + ")." + f.Name
	}
}
