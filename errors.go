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

package scopeexit

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	// ErrNilCallback is reported when a guard is constructed without a callback.
	ErrNilCallback = errors.New("nil callback")

	// ErrUnknownPolicy is reported when a guard is constructed with an undefined [Policy].
	ErrUnknownPolicy = errors.New("unknown policy")

	// ErrGoexit is recorded as the callback value of a [DoublePanicError] when the callback
	// called [runtime.Goexit].
	ErrGoexit = errors.New("callback exited the goroutine")
)

// ContractError is the panic value of a guard constructor called with invalid arguments.
type ContractError struct {
	Policy Policy
	Err    error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("scopeexit: %s guard: %v", e.Policy, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

// DoublePanicError describes a guard callback that panicked while the guarded scope was
// already being left because of a panic.
type DoublePanicError struct {
	// Policy of the guard that fired.
	Policy Policy

	// Panic is the value of the panic propagating through the guarded scope.
	Panic any

	// Callback is the value the callback panicked with.
	Callback any

	// Stack is the stack trace of the callback panic.
	Stack []byte
}

func (e *DoublePanicError) Error() string {
	if errors.Is(e.Unwrap(), ErrGoexit) {
		return fmt.Sprintf("scopeexit: %s callback exited the goroutine while handling panic %v", e.Policy, e.Panic)
	}

	return fmt.Sprintf("scopeexit: %s callback panicked with %v while handling panic %v", e.Policy, e.Callback, e.Panic)
}

// Unwrap returns the callback panic value if it is an error.
func (e *DoublePanicError) Unwrap() error {
	err, _ := e.Callback.(error)

	return err
}

// LogValue implements [slog.LogValuer].
func (e *DoublePanicError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("policy", e.Policy.String()),
		slog.Any("panic", e.Panic),
		slog.Any("callback", e.Callback),
		slog.String("stack", string(e.Stack)),
	)
}

// exitCode is the process exit code after a double panic, matching the runtime's exit code for
// unrecovered panics.
const exitCode = 2

// terminate ends the process after a double panic. Replaced in tests.
var terminate = func(err *DoublePanicError) {
	slog.Error("Guard callback panicked during panic", slog.Any("error", err))
	os.Exit(exitCode)
}
