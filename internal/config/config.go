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

package config

// Check represents a specific guard check.
type Check uint8

//go:generate go tool stringer -type Check -linecomment
const (
	// CallbackCheck verifies guard callbacks: no nil callbacks and no panicking callbacks
	// for policies that forbid them.
	CallbackCheck Check = 1 << iota // callback

	// DeferCheck verifies that guards are closed by a direct defer statement.
	DeferCheck // defer

	// DiscardCheck verifies that constructed guards are not thrown away.
	DiscardCheck // discard
)

// Checks is a set of enabled [Check] values.
type Checks = BitMask[Check]

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() Checks {
	return NewBitMask(CallbackCheck, DeferCheck, DiscardCheck)
}

// Config represents behavioral options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Behavior is a set of enabled [Config] values.
type Behavior = BitMask[Config]

// DefaultBehavior returns the behavior enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
