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

package astutil

import (
	"go/ast"
	"go/types"
)

// FuncDecls maps functions declared in a package to their declarations.
// The index is built on first use.
type FuncDecls struct {
	files []*ast.File
	info  *types.Info
	decls map[*types.Func]*ast.FuncDecl
}

// NewFuncDecls creates a lazy [FuncDecls] index over the files of a package.
func NewFuncDecls(files []*ast.File, info *types.Info) *FuncDecls {
	return &FuncDecls{files: files, info: info}
}

// Body returns the body of the declaration of fun, or nil if fun is declared elsewhere or has no body.
func (d *FuncDecls) Body(fun *types.Func) *ast.BlockStmt {
	if d.decls == nil {
		d.build()
	}

	if decl, ok := d.decls[fun.Origin()]; ok {
		return decl.Body
	}

	return nil
}

func (d *FuncDecls) build() {
	d.decls = make(map[*types.Func]*ast.FuncDecl)

	for _, f := range d.files {
		for _, decl := range f.Decls {
			fdecl, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}

			if fun, ok := d.info.Defs[fdecl.Name].(*types.Func); ok {
				d.decls[fun] = fdecl
			}
		}
	}
}
