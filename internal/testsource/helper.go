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

// Package testsource provides utilities for parsing and type-checking Go source fragments in tests.
//
// Fragments are wrapped into a function body, so tests can focus on statements. Imported
// packages can be replaced by stub sources, which keeps tests independent of compiled export
// data for packages of this module.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Stub is the source of an importable package.
type Stub struct {
	Path string
	Src  string
}

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test` importing the given paths.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string, imports ...string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()
	srcFile := wrapSource(src, imports)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body = firstFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// Check performs type checking on the provided AST file.
// Imports matching a [Stub] are type-checked from its source, others use the default importer.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File, stubs ...Stub) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:     make(map[ast.Expr]types.TypeAndValue),
		Defs:      make(map[*ast.Ident]types.Object),
		Uses:      make(map[*ast.Ident]types.Object),
		Instances: make(map[*ast.Ident]types.Instance),
		Scopes:    make(map[ast.Node]*types.Scope),
	}

	imp := &stubImporter{
		fset:     fset,
		stubs:    make(map[string]string, len(stubs)),
		pkgs:     make(map[string]*types.Package, len(stubs)),
		fallback: importer.Default(),
	}
	for _, s := range stubs {
		imp.stubs[s.Path] = s.Src
	}

	conf := types.Config{Importer: imp}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

type stubImporter struct {
	fset     *token.FileSet
	stubs    map[string]string
	pkgs     map[string]*types.Package
	fallback types.Importer
}

func (s *stubImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := s.pkgs[path]; ok {
		return pkg, nil
	}

	src, ok := s.stubs[path]
	if !ok {
		return s.fallback.Import(path)
	}

	f, err := parser.ParseFile(s.fset, path+"/stub.go", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	conf := types.Config{Importer: s}

	pkg, err := conf.Check(path, s.fset, []*ast.File{f}, nil)
	if err != nil {
		return nil, err
	}

	s.pkgs[path] = pkg

	return pkg, nil
}

func wrapSource(src string, imports []string) *bytes.Buffer {
	const (
		header = "package " + testpkg + "\n\n"
		open   = "func _() {\n"
		suffix = "\n}"
	)

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(open) + len(src) + len(suffix))

	srcFile.WriteString(header) // ignore error

	for _, path := range imports {
		srcFile.WriteString("import " + strconv.Quote(path) + "\n") // ignore error
	}

	srcFile.WriteString(open)   // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}

func firstFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)

		return fn, body
	}

	return nil, root
}
