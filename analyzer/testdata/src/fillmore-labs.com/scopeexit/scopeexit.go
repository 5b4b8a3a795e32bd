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

// Package scopeexit is a stub of the guard API for analyzer tests.
package scopeexit

type Policy uint8

const (
	Always Policy = iota
	OnFailure
	OnSuccess
)

type Guard struct{}

func New(fn func(), policy Policy) *Guard { return &Guard{} }

func Exit(fn func()) *Guard { return New(fn, Always) }

func Fail(fn func()) *Guard { return New(fn, OnFailure) }

func Success(fn func()) *Guard { return New(fn, OnSuccess) }

func (g *Guard) Release() {}

func (g *Guard) Move() *Guard { return g }

func (g *Guard) Close() {}

func (g *Guard) CloseErr(errp *error) {}

func (g *Guard) RunOn(failed bool) {}
