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
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/scopeexit/internal/astutil"
	"fillmore-labs.com/scopeexit/internal/config"
	"fillmore-labs.com/scopeexit/internal/panics"
	"fillmore-labs.com/scopeexit/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the scopeexit analyzer.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("scopeexit: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Checks.Empty() || !importsGuards(p) {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ScopeExit")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	ch := checker{
		pass:    p,
		checks:  r.Checks,
		tracker: panics.New(p.TypesInfo),
		decls:   astutil.NewFuncDecls(p.Files, p.TypesInfo),
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		ch.report = report.New(p, currentFile)

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
				continue
			}

			ch.checkBody(ctx, c.ChildAt(edge.FuncDecl_Body, -1))
		}
	}

	return nil, nil
}

// importsGuards reports whether the package can construct or close guards.
func importsGuards(p *analysis.Pass) bool {
	if p.Pkg.Path() == guardPkgPath {
		return true
	}

	for _, imp := range p.Pkg.Imports() {
		if imp.Path() == guardPkgPath {
			return true
		}
	}

	return false
}
