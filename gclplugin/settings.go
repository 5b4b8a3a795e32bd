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

package gclplugin

import "fillmore-labs.com/scopeexit/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Callback enables guard callback checks.
	Callback *bool `json:"callback,omitzero"`
	// Defer enables checks that guards are closed by defer.
	Defer *bool `json:"defer,omitzero"`
	// Discard enables checks for discarded guards.
	Discard *bool `json:"discard,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the scopeexit analyzer.
// Only explicitly set (non-nil) settings are applied.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Callback, analyzer.WithCallback)
	opts = appendOption(opts, s.Defer, analyzer.WithDefer)
	opts = appendOption(opts, s.Discard, analyzer.WithDiscard)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
