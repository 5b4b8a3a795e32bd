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

package a

import (
	"errors"
	"log"
	"os"
	"testing"

	"fillmore-labs.com/scopeexit"
)

var errBoom = errors.New("boom")

func panickingExit() {
	defer scopeexit.Exit(func() {
		panic(errBoom) // want `Callback of Always guard panics \(se:pan\)`
	}).Close()
}

func panickingFail() {
	defer scopeexit.Fail(func() {
		log.Fatal("rollback failed") // want `Callback of OnFailure guard exits the process \(se:pan\)`
	}).Close()
}

func panickingSuccess() {
	defer scopeexit.Success(func() {
		panic(errBoom) // OK, success callbacks may panic
	}).Close()
}

func panickingNew(t *testing.T) {
	defer scopeexit.New(func() {
		t.Fatal("cleanup") // want `Callback of OnFailure guard exits the goroutine \(se:pan\)`
	}, scopeexit.OnFailure).Close()
}

func dynamicPolicy(p scopeexit.Policy) {
	defer scopeexit.New(func() {
		panic(errBoom) // OK, policy unknown
	}, p).Close()
}

func rollback() {
	os.Exit(1) // want `Callback of OnFailure guard exits the process \(se:pan\)`
}

func namedCallback() {
	defer scopeexit.Fail(rollback).Close()
}

func recoveringCallback() {
	defer scopeexit.Fail(func() {
		defer func() { _ = recover() }()

		panic(errBoom) // OK, recovered
	}).Close()
}

func nilCallback() {
	defer scopeexit.Exit(nil).Close() // want `Guard from Exit has a nil callback \(se:nil\)`
}

func suppressed() {
	defer scopeexit.Fail(func() {
		panic(errBoom) //nolint:scopeexit
	}).Close()
}
