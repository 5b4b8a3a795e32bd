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

// Package report emits the diagnostics of the scopeexit analyzer.
package report

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/scopeexit/internal/astutil"
	"fillmore-labs.com/scopeexit/internal/guardcall"
	"fillmore-labs.com/scopeexit/internal/panics"
)

// Reporter emits diagnostics for one file, honoring nolint comments.
type Reporter struct {
	pass        *analysis.Pass
	currentFile astutil.CurrentFile
}

// New creates a [Reporter] for the given file.
func New(p *analysis.Pass, currentFile astutil.CurrentFile) Reporter {
	return Reporter{pass: p, currentFile: currentFile}
}

func (r Reporter) report(d analysis.Diagnostic) {
	if r.currentFile.NoLintComment(d.Pos) {
		return
	}

	r.pass.Report(d)
}

// Discarded reports a guard that is never closed because the constructor result is dropped.
func (r Reporter) Discarded(c guardcall.Construction) {
	r.report(analysis.Diagnostic{
		Pos:      c.Call.Pos(),
		End:      c.Call.End(),
		Category: "discard",
		Message:  fmt.Sprintf("Guard from %s is discarded and never fires (se:dis)", c.Func),
	})
}

// NilCallback reports a guard constructed with a nil callback.
func (r Reporter) NilCallback(c guardcall.Construction) {
	r.report(analysis.Diagnostic{
		Pos:      c.Callback.Pos(),
		End:      c.Callback.End(),
		Category: "callback",
		Message:  fmt.Sprintf("Guard from %s has a nil callback (se:nil)", c.Func),
	})
}

// Escaping reports a call in the callback of a guard whose policy requires callbacks to return.
func (r Reporter) Escaping(c guardcall.Construction, call *ast.CallExpr, exit panics.Exit) {
	r.report(analysis.Diagnostic{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: "callback",
		Message:  fmt.Sprintf("Callback of %s guard %s (se:pan)", c.Policy, exit),
		Related: []analysis.RelatedInformation{{
			Pos:     c.Call.Pos(),
			End:     c.Call.End(),
			Message: "Guard constructed here",
		}},
	})
}

// Indirect reports a closer called from a deferred function literal, where it can't observe panics.
//
// When the literal does nothing but close the guard, a fix replaces the deferred literal call.
func (r Reporter) Indirect(cl guardcall.Closer, deferred *ast.DeferStmt, fixable bool) {
	d := analysis.Diagnostic{
		Pos:      cl.Call.Pos(),
		End:      cl.Call.End(),
		Category: "defer",
		Message:  fmt.Sprintf("%s must be deferred directly to observe panics (se:ind)", cl.Method),
		Related: []analysis.RelatedInformation{{
			Pos:     deferred.Pos(),
			End:     deferred.End(),
			Message: "Deferred here",
		}},
	}

	if fixable {
		d.SuggestedFixes = []analysis.SuggestedFix{{
			Message: "Defer " + cl.Method + " directly",
			TextEdits: []analysis.TextEdit{{
				Pos:     deferred.Call.Pos(),
				End:     deferred.Call.End(),
				NewText: []byte(types.ExprString(cl.Call)),
			}},
		}}
	}

	r.report(d)
}

// NotDeferred reports a closer called outside of a defer statement.
func (r Reporter) NotDeferred(cl guardcall.Closer) {
	r.report(analysis.Diagnostic{
		Pos:      cl.Call.Pos(),
		End:      cl.Call.End(),
		Category: "defer",
		Message:  fmt.Sprintf("%s is not deferred, use RunOn for an explicit outcome (se:def)", cl.Method),
	})
}
