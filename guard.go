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

import "runtime/debug"

// Guard binds a callback to an exit [Policy].
//
// Guards must not be copied after construction; use [Guard.Move] to transfer ownership.
type Guard struct {
	_ noCopy

	fn     func()
	policy Policy
	armed  bool
}

// New returns an armed guard running fn on scope exit according to policy.
//
// New panics with a [*ContractError] if fn is nil or policy is undefined.
func New(fn func(), policy Policy) *Guard {
	switch {
	case !policy.Valid():
		panic(&ContractError{Policy: policy, Err: ErrUnknownPolicy})

	case fn == nil:
		panic(&ContractError{Policy: policy, Err: ErrNilCallback})
	}

	return &Guard{fn: fn, policy: policy, armed: true}
}

// Exit returns an armed guard running fn on every exit path.
func Exit(fn func()) *Guard { return New(fn, Always) }

// Fail returns an armed guard running fn only when the scope is left because of a failure.
func Fail(fn func()) *Guard { return New(fn, OnFailure) }

// Success returns an armed guard running fn only when the scope is left normally.
func Success(fn func()) *Guard { return New(fn, OnSuccess) }

// Policy returns the exit policy of the guard.
func (g *Guard) Policy() Policy { return g.policy }

// Armed reports whether the guard will still attempt to fire.
func (g *Guard) Armed() bool {
	return g != nil && g.armed
}

// Release disarms the guard. Calling Release more than once has no further effect.
func (g *Guard) Release() {
	if g == nil {
		return
	}

	g.armed = false
}

// Move returns a guard owning the callback and armed state of g and disarms g.
// Moving a disarmed guard yields a disarmed guard.
func (g *Guard) Move() *Guard {
	if g == nil {
		return nil
	}

	m := &Guard{fn: g.fn, policy: g.policy, armed: g.armed}
	g.armed, g.fn = false, nil

	return m
}

// Close ends the guarded scope and must be deferred directly:
//
//	defer g.Close()
//
// A panic propagating through the deferring function counts as failure. The panic is
// re-raised after the callback ran.
func (g *Guard) Close() {
	r := recover()
	if r == nil {
		g.fire(false, nil)

		return
	}

	g.fire(true, r)
	panic(r)
}

// CloseErr ends the guarded scope of a function with a named error result and must be deferred
// directly:
//
//	defer g.CloseErr(&err)
//
// The scope fails if a panic propagates or *errp is not nil when the function returns.
func (g *Guard) CloseErr(errp *error) {
	r := recover()
	if r == nil {
		g.fire(errp != nil && *errp != nil, nil)

		return
	}

	g.fire(true, r)
	panic(r)
}

// RunOn ends the guarded scope with an explicit outcome. It does not inspect panics.
func (g *Guard) RunOn(failed bool) {
	g.fire(failed, nil)
}

// fire disarms the guard and invokes the callback if the policy calls for it, so the callback
// runs at most once. inflight is the value of a propagating panic, if any.
func (g *Guard) fire(failing bool, inflight any) {
	if g == nil {
		return
	}

	fire, fn := g.policy.ShouldFire(g.armed, failing), g.fn
	g.armed, g.fn = false, nil

	if !fire {
		return
	}

	if inflight == nil {
		fn()

		return
	}

	protect(fn, func(v any, stack []byte) {
		terminate(&DoublePanicError{Policy: g.policy, Panic: inflight, Callback: v, Stack: stack})
	})
}

// protect calls fn. When fn does not return, abort receives the panic value and stack trace,
// or [ErrGoexit] when fn exited the goroutine.
func protect(fn func(), abort func(v any, stack []byte)) {
	returned := false

	defer func() {
		if returned {
			return
		}

		v := recover()
		if v == nil {
			v = ErrGoexit
		}

		abort(v, debug.Stack())
	}()

	fn()

	returned = true
}

// noCopy may be embedded into structs which must not be copied after first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
type noCopy struct{}

// Lock is a no-op used by the go vet copylocks checker.
func (*noCopy) Lock() {}

// Unlock is a no-op used by the go vet copylocks checker.
func (*noCopy) Unlock() {}
